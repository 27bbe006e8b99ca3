package reputation

import (
	"fmt"
	"time"

	model "auction-house/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Completion-count milestones and their badges.
var milestones = []struct {
	count       int
	id          string
	name        string
	description string
}{
	{1, "first-task", "Task Taker", "Complete your first task"},
	{10, "task-veteran", "Task Veteran", "Complete 10 tasks"},
	{100, "task-master", "Task Master", "Complete 100 tasks"},
}

// categoryHeroThreshold is the exact completion count within one category
// that unlocks the per-category Hero badge.
const categoryHeroThreshold = 10

var titleCaser = cases.Title(language.English)

// RecordCompletion applies one completed task to the user's reputation:
// bumps the completion count, folds an optional 1-5 rating into the running
// quality mean, and raises the reliability score by 0.5 capped at 100.
//
// The running mean divides by totalTasksCompleted even though unrated
// completions contribute no rating term; that matches the source system.
func RecordCompletion(user *model.UserProfile, qualityRating *float64) {
	user.TotalTasksCompleted++

	if qualityRating != nil {
		n := float64(user.TotalTasksCompleted)
		user.QualityRating = (user.QualityRating*(n-1) + *qualityRating) / n
	}

	user.ReliabilityScore = min(100, user.ReliabilityScore+0.5)
}

// UnlockAchievements awards every badge the user has newly earned and returns
// the awarded set. Badges already held (by id) are never re-awarded.
func UnlockAchievements(user *model.UserProfile, completed []model.CompletedTask, tasks map[string]*model.Task, now time.Time) []model.Achievement {
	var earned []model.Achievement

	for _, m := range milestones {
		if user.TotalTasksCompleted == m.count {
			earned = append(earned, model.Achievement{
				ID:          m.id,
				Name:        m.name,
				Description: m.description,
				UnlockedAt:  now,
			})
		}
	}

	for category, count := range completionsByCategory(user.ID, completed, tasks) {
		if count == categoryHeroThreshold {
			earned = append(earned, model.Achievement{
				ID:          category + "-hero",
				Name:        titleCaser.String(category) + " Hero",
				Description: fmt.Sprintf("Complete %d %s tasks", categoryHeroThreshold, category),
				UnlockedAt:  now,
			})
		}
	}

	var awarded []model.Achievement
	for _, a := range earned {
		if user.HasAchievement(a.ID) {
			continue
		}
		user.Achievements = append(user.Achievements, a)
		awarded = append(awarded, a)
	}
	return awarded
}

// completionsByCategory counts the user's completed tasks per category by
// joining the completed-task log against each task's category.
func completionsByCategory(userID string, completed []model.CompletedTask, tasks map[string]*model.Task) map[string]int {
	counts := make(map[string]int)
	for _, ct := range completed {
		if ct.WinnerID != userID {
			continue
		}
		if task, ok := tasks[ct.TaskID]; ok && task.Category != "" {
			counts[task.Category]++
		}
	}
	return counts
}
