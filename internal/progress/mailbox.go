package progress

// LastUnlocked returns the id in the notification mailbox, if any.
func (s *State) LastUnlocked() (string, bool) {
	if s.LastUnlockedAchievementID == nil {
		return "", false
	}
	return *s.LastUnlockedAchievementID, true
}

// ClearLastUnlockedIf empties the mailbox only while it still holds id. It
// reports whether it cleared.
func (s *State) ClearLastUnlockedIf(id string) bool {
	if s.LastUnlockedAchievementID == nil || *s.LastUnlockedAchievementID != id {
		return false
	}
	s.LastUnlockedAchievementID = nil
	return true
}

// ClearLastUnlocked empties the mailbox. It reports whether there was
// anything to clear.
func (s *State) ClearLastUnlocked() bool {
	if s.LastUnlockedAchievementID == nil {
		return false
	}
	s.LastUnlockedAchievementID = nil
	return true
}
