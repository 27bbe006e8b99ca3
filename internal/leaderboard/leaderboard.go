package leaderboard

import (
	"sort"

	"auction-house/internal/ledger"
	model "auction-house/internal/models"
)

// Build recomputes the full ranked list from scratch: one entry per registered
// user, sorted by tasks completed descending, ties broken by points earned
// descending. Ranks are 1-based and distinct; ties in both keys keep a stable
// order, so rebuilding from the same inputs is idempotent.
func Build(users map[string]*model.UserProfile, l ledger.Ledger) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(users))

	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids) // stable input order for equal keys

	for _, id := range ids {
		user := users[id]
		entries = append(entries, model.LeaderboardEntry{
			UserID:           id,
			UserName:         user.Name,
			TasksCompleted:   user.TotalTasksCompleted,
			PointsEarned:     l.BalanceFor(id).Points,
			ReliabilityScore: user.ReliabilityScore,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TasksCompleted != entries[j].TasksCompleted {
			return entries[i].TasksCompleted > entries[j].TasksCompleted
		}
		return entries[i].PointsEarned > entries[j].PointsEarned
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
