package auction

import (
	"fmt"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/leaderboard"
	"auction-house/internal/ledger"
	model "auction-house/internal/models"
	"auction-house/internal/state"
)

const defaultLeaderboardLimit = 10

// CreateUser registers a participant. Registration happens once; a second
// registration under the same id is rejected.
func (s *AuctionService) CreateUser(id, name, email string) (*model.UserProfile, error) {
	if id == "" || name == "" {
		return nil, fmt.Errorf("service: %w - missing id or name", auctionerrors.ErrInvalidUser)
	}

	var user *model.UserProfile
	err := s.mutate(func(st *state.AuctionState, emit func(model.NotificationEvent)) error {
		if _, ok := st.Users[id]; ok {
			return fmt.Errorf("service: create user %s: %w", id, auctionerrors.ErrUserExists)
		}

		user = &model.UserProfile{
			ID:               id,
			Name:             name,
			Email:            email,
			ReliabilityScore: 100,
			QualityRating:    5,
			Achievements:     []model.Achievement{},
			Preferences: model.UserPreferences{
				Notifications: model.NotificationSettings{
					Outbid:        true,
					NewTasks:      true,
					TaskReminders: true,
				},
			},
		}
		st.Users[id] = user
		st.Balances[id] = ledger.DefaultBalances()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUserPreferences replaces the user's notification settings and
// category preferences. These feed new-task fanout and recommendations.
func (s *AuctionService) UpdateUserPreferences(userID string, prefs model.UserPreferences) (*model.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - missing userID", auctionerrors.ErrInvalidUser)
	}

	var user *model.UserProfile
	err := s.mutate(func(st *state.AuctionState, emit func(model.NotificationEvent)) error {
		u, ok := st.Users[userID]
		if !ok {
			return fmt.Errorf("service: update preferences %s: %w", userID, auctionerrors.ErrUserNotFound)
		}
		u.Preferences = prefs
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserProfile returns the registered profile for the user.
func (s *AuctionService) GetUserProfile(userID string) (*model.UserProfile, error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.state.Users[userID]
	if !ok {
		return nil, fmt.Errorf("service: get profile %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserBalance returns the user's balances. Unknown users read the default
// record without a persisted entry being created.
func (s *AuctionService) GetUserBalance(userID string) (model.Balances, error) {
	if err := s.ensureInitialized(); err != nil {
		return model.Balances{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return ledger.New(s.state.Balances).BalanceFor(userID), nil
}

// AddBalance credits the user with the given currency and returns the updated
// balance record.
func (s *AuctionService) AddBalance(userID string, currency model.Currency) (model.Balances, error) {
	if userID == "" {
		return model.Balances{}, fmt.Errorf("service: %w - missing userID", auctionerrors.ErrInvalidUser)
	}
	if !currency.Kind.Valid() {
		return model.Balances{}, fmt.Errorf("service: %w - unknown kind %q", auctionerrors.ErrInvalidCurrency, currency.Kind)
	}

	var updated model.Balances
	err := s.mutate(func(st *state.AuctionState, emit func(model.NotificationEvent)) error {
		var err error
		updated, err = ledger.New(st.Balances).Credit(userID, currency)
		return err
	})
	if err != nil {
		return model.Balances{}, err
	}

	return updated, nil
}

// GetLeaderboard rebuilds the ranked list from scratch, caches it in state
// alongside the snapshot, and returns the top entries.
func (s *AuctionService) GetLeaderboard(limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	err := s.mutate(func(st *state.AuctionState, emit func(model.NotificationEvent)) error {
		st.Leaderboard = leaderboard.Build(st.Users, ledger.New(st.Balances))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	board := s.state.Leaderboard
	if limit > len(board) {
		limit = len(board)
	}
	return append([]model.LeaderboardEntry(nil), board[:limit]...), nil
}
