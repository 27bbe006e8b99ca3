package state

import (
	"encoding/json"
	"fmt"

	model "auction-house/internal/models"
)

// AuctionState is the owned aggregate for one coordinator instance. All
// collections live here; no package-level state exists anywhere in the engine.
// The engine mutates clones and swaps the whole aggregate, so a *AuctionState
// handed out by a read path is never written to again.
type AuctionState struct {
	Tasks          map[string]*model.Task        `json:"tasks"`
	Bids           map[string][]model.Bid        `json:"bids"` // key: taskID -> append-only bid history
	Users          map[string]*model.UserProfile `json:"users"`
	Balances       map[string]model.Balances     `json:"balances"`
	CompletedTasks []model.CompletedTask         `json:"completed_tasks"`
	Leaderboard    []model.LeaderboardEntry      `json:"leaderboard"`
}

// New returns an empty aggregate with all collections allocated.
func New() *AuctionState {
	return &AuctionState{
		Tasks:          make(map[string]*model.Task),
		Bids:           make(map[string][]model.Bid),
		Users:          make(map[string]*model.UserProfile),
		Balances:       make(map[string]model.Balances),
		CompletedTasks: []model.CompletedTask{},
		Leaderboard:    []model.LeaderboardEntry{},
	}
}

// Clone returns a deep copy of the aggregate. Mutating the clone never
// affects the receiver.
func (s *AuctionState) Clone() *AuctionState {
	c := New()

	for id, t := range s.Tasks {
		task := *t
		task.Tags = append([]string(nil), t.Tags...)
		if t.BuyItNowPrice != nil {
			price := *t.BuyItNowPrice
			task.BuyItNowPrice = &price
		}
		c.Tasks[id] = &task
	}

	for taskID, bids := range s.Bids {
		c.Bids[taskID] = append([]model.Bid(nil), bids...)
	}

	for id, u := range s.Users {
		user := *u
		user.BidHistory = append([]string(nil), u.BidHistory...)
		user.Achievements = append([]model.Achievement(nil), u.Achievements...)
		user.Preferences.CategoryPreferences = append([]string(nil), u.Preferences.CategoryPreferences...)
		if u.Preferences.AutoMaxBid != nil {
			maxBid := *u.Preferences.AutoMaxBid
			user.Preferences.AutoMaxBid = &maxBid
		}
		c.Users[id] = &user
	}

	for id, b := range s.Balances {
		c.Balances[id] = b
	}

	c.CompletedTasks = append(c.CompletedTasks, s.CompletedTasks...)
	for i, ct := range c.CompletedTasks {
		if ct.QualityRating != nil {
			rating := *ct.QualityRating
			c.CompletedTasks[i].QualityRating = &rating
		}
	}

	c.Leaderboard = append(c.Leaderboard, s.Leaderboard...)

	return c
}

// MarshalSnapshot serializes the full aggregate into the single persisted blob.
func (s *AuctionState) MarshalSnapshot() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("state: marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot restores an aggregate from a persisted blob. Collections
// absent from the blob come back allocated, never nil.
func UnmarshalSnapshot(data []byte) (*AuctionState, error) {
	s := New()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("state: unmarshal snapshot: %w", err)
	}
	if s.Tasks == nil {
		s.Tasks = make(map[string]*model.Task)
	}
	if s.Bids == nil {
		s.Bids = make(map[string][]model.Bid)
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.UserProfile)
	}
	if s.Balances == nil {
		s.Balances = make(map[string]model.Balances)
	}
	return s, nil
}
