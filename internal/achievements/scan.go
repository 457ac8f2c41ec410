package achievements

// Scan returns the definitions in defs that qualify for value and are not yet
// unlocked, in the order given. defs must be in ascending requirement order
// (as returned by Catalog.ForCategory), so the result is ascending too and its
// last element is the highest milestone crossed.
func Scan(defs []Definition, isUnlocked func(id string) bool, value int) []Definition {
	var crossed []Definition
	for _, d := range defs {
		if d.Requirement > value {
			break
		}
		if isUnlocked(d.ID) {
			continue
		}
		crossed = append(crossed, d)
	}
	return crossed
}
