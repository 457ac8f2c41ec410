package achievements

import "fmt"

// Localizer resolves the display text for an achievement id. Titles and
// descriptions are owned outside the catalog so they can be translated
// without touching the ids.
type Localizer interface {
	Title(id string) string
	Description(id string) string
}

// Display is everything a presenter needs to show an unlocked achievement.
type Display struct {
	Definition
	Title       string
	Description string
}

// Resolve looks up id in the catalog and attaches localized text.
// Returns false if the id is not in the catalog.
func Resolve(c *Catalog, l Localizer, id string) (Display, bool) {
	d, ok := c.Lookup(id)
	if !ok {
		return Display{}, false
	}
	return Display{
		Definition:  d,
		Title:       l.Title(id),
		Description: l.Description(id),
	}, true
}

type englishText struct {
	title string
	desc  string
}

var englishTitles = map[string]englishText{
	"streak_1":   {"First Spark", "Study on your first day"},
	"streak_3":   {"Warming Up", "Study 3 days in a row"},
	"streak_7":   {"Week Warrior", "Study 7 days in a row"},
	"streak_14":  {"Fortnight Focus", "Study 14 days in a row"},
	"streak_30":  {"Monthly Habit", "Study 30 days in a row"},
	"streak_60":  {"Unstoppable", "Study 60 days in a row"},
	"streak_100": {"Century Streak", "Study 100 days in a row"},
	"streak_365": {"Year of Words", "Study every day for a year"},

	"words_1":    {"First Word", "Learn your first word"},
	"words_10":   {"Word Collector", "Learn 10 words"},
	"words_50":   {"Bookworm", "Learn 50 words"},
	"words_100":  {"Centurion", "Learn 100 words"},
	"words_250":  {"Lexicon Builder", "Learn 250 words"},
	"words_500":  {"Wordsmith", "Learn 500 words"},
	"words_1000": {"Polyglot in Training", "Learn 1,000 words"},
	"words_2500": {"Vocabulary Rocket", "Learn 2,500 words"},
	"words_5000": {"Living Dictionary", "Learn 5,000 words"},

	"exercises_1":    {"First Drill", "Complete your first exercise"},
	"exercises_10":   {"Practice Makes Progress", "Complete 10 exercises"},
	"exercises_50":   {"Gym Regular", "Complete 50 exercises"},
	"exercises_100":  {"Drill Sergeant", "Complete 100 exercises"},
	"exercises_500":  {"Gold Standard", "Complete 500 exercises"},
	"exercises_1000": {"Exercise Legend", "Complete 1,000 exercises"},

	"accuracy_5":   {"On Target", "Answer 5 questions correctly in a row"},
	"accuracy_10":  {"Sharp Mind", "Answer 10 questions correctly in a row"},
	"accuracy_25":  {"Sharpshooter", "Answer 25 questions correctly in a row"},
	"accuracy_50":  {"Precision", "Answer 50 questions correctly in a row"},
	"accuracy_100": {"Flawless", "Answer 100 questions correctly in a row"},

	"time_10":   {"Getting Started", "Study for 10 minutes"},
	"time_30":   {"Half Hour Hero", "Study for 30 minutes"},
	"time_60":   {"Hour of Power", "Study for 1 hour"},
	"time_300":  {"Dedicated", "Study for 5 hours"},
	"time_600":  {"Committed", "Study for 10 hours"},
	"time_1200": {"Scholar", "Study for 20 hours"},
	"time_3000": {"Sage", "Study for 50 hours"},

	"games_1":   {"Player One", "Play your first game"},
	"games_10":  {"Game On", "Play 10 games"},
	"games_50":  {"Arcade Regular", "Play 50 games"},
	"games_100": {"Game Master", "Play 100 games"},

	"perfect_1":  {"Flawless Round", "Finish a game without mistakes"},
	"perfect_5":  {"Perfectionist", "Finish 5 games without mistakes"},
	"perfect_10": {"Star Player", "Finish 10 games without mistakes"},
	"perfect_25": {"Champion", "Finish 25 games without mistakes"},
	"perfect_50": {"Immaculate", "Finish 50 games without mistakes"},
}

// English is the built-in Localizer. Unknown ids fall back to the id itself.
var English Localizer = english{}

type english struct{}

func (english) Title(id string) string {
	if t, ok := englishTitles[id]; ok {
		return t.title
	}
	return id
}

func (english) Description(id string) string {
	if t, ok := englishTitles[id]; ok {
		return t.desc
	}
	if d, ok := Default().Lookup(id); ok {
		return fmt.Sprintf("Reach %d %s", d.Requirement, d.Category.Unit())
	}
	return ""
}
