package components

import (
	"fmt"

	"github.com/abhisek/vocabstreak/internal/achievements"
	"github.com/abhisek/vocabstreak/internal/ui/theme"
)

// AchievementRow renders one catalog entry for a listing. Locked entries
// are dimmed and show how far the learner still has to go.
func AchievementRow(d achievements.Display, unlocked bool, current int) string {
	if unlocked {
		return theme.Unlocked.Render(fmt.Sprintf("%s %-24s", d.Icon, d.Title)) +
			"  " + theme.Body.Render(d.Description)
	}
	remaining := d.Requirement - current
	if remaining < 0 {
		remaining = 0
	}
	return theme.Locked.Render(fmt.Sprintf("%s %-24s  %s (%d %s to go)",
		"🔒", d.Title, d.Description, remaining, d.Category.Unit()))
}

// Toast renders the notification box for a freshly unlocked achievement.
func Toast(d achievements.Display) string {
	body := theme.ToastTitle.Render("Achievement unlocked!") + "\n" +
		theme.Body.Render(fmt.Sprintf("%s  %s", d.Icon, d.Title)) + "\n" +
		theme.Hint.Render(d.Description)
	return theme.Toast.Render(body)
}
