package reputation

import (
	"testing"
	"time"

	model "auction-house/internal/models"

	"github.com/stretchr/testify/require"
)

func rating(v float64) *float64 {
	return &v
}

func TestRecordCompletion_QualityRunningMean(t *testing.T) {
	t.Parallel()

	// Table-driven test cases
	tests := []struct {
		name     string
		ratings  []*float64
		expected float64
	}{
		{name: "two_ratings_5_then_3", ratings: []*float64{rating(5), rating(3)}, expected: 4.0},
		{name: "three_ratings_5_3_4", ratings: []*float64{rating(5), rating(3), rating(4)}, expected: 4.0},
		{name: "single_rating", ratings: []*float64{rating(2)}, expected: 2.0},
		{name: "unrated_keeps_previous_value", ratings: []*float64{rating(4), nil}, expected: 4.0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user := &model.UserProfile{ID: "user1", QualityRating: 5}
			for _, r := range tc.ratings {
				RecordCompletion(user, r)
			}
			require.InDelta(t, tc.expected, user.QualityRating, 1e-9)
			require.Equal(t, len(tc.ratings), user.TotalTasksCompleted)
		})
	}
}

// The denominator is totalTasksCompleted even when earlier completions carried
// no rating; behavior parity with the source system.
func TestRecordCompletion_UnratedGrowsDenominator(t *testing.T) {
	t.Parallel()

	user := &model.UserProfile{ID: "user1", QualityRating: 5}
	RecordCompletion(user, nil)       // n=1, no rating term
	RecordCompletion(user, rating(3)) // n=2: (5*1 + 3) / 2

	require.InDelta(t, 4.0, user.QualityRating, 1e-9)
}

func TestRecordCompletion_ReliabilityCappedAt100(t *testing.T) {
	t.Parallel()

	user := &model.UserProfile{ID: "user1", ReliabilityScore: 99.2}

	RecordCompletion(user, nil)
	require.InDelta(t, 99.7, user.ReliabilityScore, 1e-9)

	RecordCompletion(user, nil)
	require.Equal(t, 100.0, user.ReliabilityScore)

	// Monotonic: never decreases, never exceeds the cap
	RecordCompletion(user, nil)
	require.Equal(t, 100.0, user.ReliabilityScore)
}

func TestUnlockAchievements_Milestones(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	// Table-driven test cases
	tests := []struct {
		name       string
		completed  int
		expectedID string
	}{
		{name: "first_completion", completed: 1, expectedID: "first-task"},
		{name: "tenth_completion", completed: 10, expectedID: "task-veteran"},
		{name: "hundredth_completion", completed: 100, expectedID: "task-master"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user := &model.UserProfile{ID: "user1", TotalTasksCompleted: tc.completed}

			awarded := UnlockAchievements(user, nil, nil, now)
			require.Len(t, awarded, 1)
			require.Equal(t, tc.expectedID, awarded[0].ID)
			require.Equal(t, now, awarded[0].UnlockedAt)

			// Repeated checks never re-award an achievement already held
			again := UnlockAchievements(user, nil, nil, now)
			require.Empty(t, again)
			require.Len(t, user.Achievements, 1)
		})
	}
}

func TestUnlockAchievements_NoMilestone(t *testing.T) {
	t.Parallel()

	user := &model.UserProfile{ID: "user1", TotalTasksCompleted: 7}
	require.Empty(t, UnlockAchievements(user, nil, nil, time.Now().UTC()))
}

func TestUnlockAchievements_CategoryHero(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	tasks := make(map[string]*model.Task)
	var completed []model.CompletedTask

	for i := 0; i < 10; i++ {
		id := string(rune('a' + i))
		tasks[id] = &model.Task{ID: id, Category: "cleaning"}
		completed = append(completed, model.CompletedTask{TaskID: id, WinnerID: "user1"})
	}

	// 25 completions overall so no count milestone fires alongside
	user := &model.UserProfile{ID: "user1", TotalTasksCompleted: 25}

	awarded := UnlockAchievements(user, completed, tasks, now)
	require.Len(t, awarded, 1)
	require.Equal(t, "cleaning-hero", awarded[0].ID)
	require.Equal(t, "Cleaning Hero", awarded[0].Name)

	// Other users' completions never count toward the badge
	other := &model.UserProfile{ID: "user2", TotalTasksCompleted: 25}
	require.Empty(t, UnlockAchievements(other, completed, tasks, now))
}

func TestUnlockAchievements_CategoryHeroExactThresholdOnly(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	tasks := make(map[string]*model.Task)
	var completed []model.CompletedTask

	for i := 0; i < 11; i++ {
		id := string(rune('a' + i))
		tasks[id] = &model.Task{ID: id, Category: "errands"}
		completed = append(completed, model.CompletedTask{TaskID: id, WinnerID: "user1"})
	}

	// Eleven category completions: past the exact-match threshold
	user := &model.UserProfile{ID: "user1", TotalTasksCompleted: 25}
	require.Empty(t, UnlockAchievements(user, completed, tasks, now))
}
