package state

import (
	"testing"
	"time"

	model "auction-house/internal/models"

	"github.com/stretchr/testify/require"
)

func seededState(now time.Time) *AuctionState {
	s := New()
	s.Tasks["t1"] = &model.Task{
		ID:              "t1",
		CreatorID:       "u1",
		Title:           "Walk the dog",
		StartingPayment: model.Currency{Kind: model.CurrencyPoints, Amount: 100},
		CurrentBid:      model.Currency{Kind: model.CurrencyPoints, Amount: 80},
		AuctionType:     model.AuctionStandard,
		Status:          model.StatusActive,
		StartTime:       now,
		EndTime:         now.Add(time.Hour),
		Tags:            []string{"pets"},
	}
	s.Bids["t1"] = []model.Bid{
		{BidID: "b1", TaskID: "t1", UserID: "u2", Amount: model.Currency{Kind: model.CurrencyPoints, Amount: 80}, CreatedAt: now},
	}
	s.Users["u2"] = &model.UserProfile{
		ID:            "u2",
		Name:          "Bidder",
		QualityRating: 5,
		Achievements:  []model.Achievement{{ID: "first-task", Name: "Task Taker", UnlockedAt: now}},
		BidHistory:    []string{"b1"},
	}
	s.Balances["u2"] = model.Balances{Points: 100, FavorTokens: 2}
	s.CompletedTasks = append(s.CompletedTasks, model.CompletedTask{
		TaskID:        "t0",
		WinnerID:      "u2",
		CreatorID:     "u1",
		CompletedAt:   now,
		PaymentAmount: model.Currency{Kind: model.CurrencyPoints, Amount: 50},
		Verified:      true,
	})
	return s
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	original := seededState(now)
	clone := original.Clone()

	// Mutate every collection of the clone
	clone.Tasks["t1"].Status = model.StatusCancelled
	clone.Tasks["t1"].Tags[0] = "changed"
	clone.Bids["t1"] = append(clone.Bids["t1"], model.Bid{BidID: "b2"})
	clone.Users["u2"].Name = "Renamed"
	clone.Users["u2"].BidHistory[0] = "changed"
	clone.Users["u2"].Achievements[0].Name = "changed"
	clone.Balances["u2"] = model.Balances{}
	clone.CompletedTasks[0].Feedback = "changed"
	clone.Leaderboard = append(clone.Leaderboard, model.LeaderboardEntry{UserID: "u2", Rank: 1})

	// Original must be untouched
	require.Equal(t, model.StatusActive, original.Tasks["t1"].Status)
	require.Equal(t, []string{"pets"}, original.Tasks["t1"].Tags)
	require.Len(t, original.Bids["t1"], 1)
	require.Equal(t, "Bidder", original.Users["u2"].Name)
	require.Equal(t, []string{"b1"}, original.Users["u2"].BidHistory)
	require.Equal(t, "Task Taker", original.Users["u2"].Achievements[0].Name)
	require.Equal(t, 100.0, original.Balances["u2"].Points)
	require.Empty(t, original.CompletedTasks[0].Feedback)
	require.Empty(t, original.Leaderboard)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	original := seededState(now)

	data, err := original.MarshalSnapshot()
	require.NoError(t, err)

	restored, err := UnmarshalSnapshot(data)
	require.NoError(t, err)

	require.Equal(t, original.Tasks["t1"].Title, restored.Tasks["t1"].Title)
	require.True(t, original.Tasks["t1"].EndTime.Equal(restored.Tasks["t1"].EndTime))
	require.Equal(t, original.Bids["t1"], restored.Bids["t1"])
	require.Equal(t, original.Users["u2"].Achievements, restored.Users["u2"].Achievements)
	require.Equal(t, original.Balances["u2"], restored.Balances["u2"])
	require.Equal(t, original.CompletedTasks, restored.CompletedTasks)
}

func TestUnmarshalSnapshot_EmptyBlobAllocatesCollections(t *testing.T) {
	t.Parallel()

	restored, err := UnmarshalSnapshot([]byte(`{}`))
	require.NoError(t, err)
	require.NotNil(t, restored.Tasks)
	require.NotNil(t, restored.Bids)
	require.NotNil(t, restored.Users)
	require.NotNil(t, restored.Balances)
}

func TestUnmarshalSnapshot_Malformed(t *testing.T) {
	t.Parallel()

	_, err := UnmarshalSnapshot([]byte(`{not json`))
	require.Error(t, err)
}
