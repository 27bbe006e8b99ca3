package auction

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/ledger"
	model "auction-house/internal/models"
	"auction-house/internal/notify"
	"auction-house/internal/reputation"
	"auction-house/internal/state"
	"auction-house/internal/store"
	"auction-house/utils"
)

const (
	// A bid landing inside this window before the end time triggers the
	// anti-snipe extension. The extension may repeat on subsequent late bids.
	antiSnipeWindow    = time.Minute
	antiSnipeExtension = 5 * time.Minute

	// Active tasks entering this window notify their watchers once.
	endingSoonWindow = time.Hour
)

// AuctionService coordinates the reverse-auction marketplace for one house:
// the task/bid state machine, bid validation, finalization, the currency
// ledger and the derived reputation and leaderboard views. All mutations are
// serialized; each one persists the full state snapshot before it becomes
// visible, so a mutation is durable exactly when it is observable.
type AuctionService struct {
	store    store.SnapshotStore
	notifier notify.Notifier
	now      func() time.Time

	initOnce sync.Once
	initErr  error

	mu    sync.RWMutex
	state *state.AuctionState
}

// Option configures an AuctionService.
type Option func(*AuctionService)

// WithClock injects a time source. Tests use this to drive auction expiry.
func WithClock(now func() time.Time) Option {
	return func(s *AuctionService) {
		s.now = now
	}
}

// NewAuctionService creates a service on top of a snapshot store and a
// notifier. Persisted state is loaded lazily, exactly once, on first use.
func NewAuctionService(st store.SnapshotStore, notifier notify.Notifier, opts ...Option) *AuctionService {
	s := &AuctionService{
		store:    st,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ensureInitialized loads the persisted snapshot exactly once per process
// lifetime. Concurrent callers during cold start cannot double-load.
func (s *AuctionService) ensureInitialized() error {
	s.initOnce.Do(func() {
		data, err := s.store.Load()
		if errors.Is(err, store.ErrNoSnapshot) {
			s.state = state.New()
			return
		}
		if err != nil {
			s.initErr = fmt.Errorf("service: load state: %w", err)
			return
		}
		st, err := state.UnmarshalSnapshot(data)
		if err != nil {
			s.initErr = fmt.Errorf("service: restore state: %w", err)
			return
		}
		s.state = st
	})
	return s.initErr
}

// mutateOptional runs fn against a clone of the aggregate. When fn reports a
// change, the clone is serialized and persisted before the state pointer is
// swapped, so a failed persist leaves both memory and disk untouched. Queued
// notifications are flushed only after a successful commit; delivery is
// fire-and-forget.
func (s *AuctionService) mutateOptional(fn func(st *state.AuctionState, emit func(model.NotificationEvent)) (bool, error)) error {
	if err := s.ensureInitialized(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	var events []model.NotificationEvent
	emit := func(ev model.NotificationEvent) {
		events = append(events, ev)
	}

	changed, err := fn(next, emit)
	if err != nil {
		return err
	}

	if changed {
		data, err := next.MarshalSnapshot()
		if err != nil {
			return fmt.Errorf("service: %w", err)
		}
		if err := s.store.Save(data); err != nil {
			return fmt.Errorf("service: persist state: %w", err)
		}
		s.state = next
	}

	for _, ev := range events {
		s.notifier.Notify(ev)
	}
	return nil
}

// mutate is mutateOptional for operations that always change state.
func (s *AuctionService) mutate(fn func(st *state.AuctionState, emit func(model.NotificationEvent)) error) error {
	return s.mutateOptional(func(st *state.AuctionState, emit func(model.NotificationEvent)) (bool, error) {
		return true, fn(st, emit)
	})
}

// CreateTaskParams carries the fields needed to post a task.
type CreateTaskParams struct {
	Title                string
	Description          string
	CreatorID            string
	StartingPayment      model.Currency
	Duration             time.Duration
	AuctionType          model.AuctionType
	BuyItNowPrice        *model.Currency
	DutchDecreaseRate    float64
	VerificationRequired bool
	VerificationMethod   string
	Category             string
	Tags                 []string
}

// CreateTask posts a new task in active state with the current bid seeded from
// the starting payment, and notifies users whose preferences match.
func (s *AuctionService) CreateTask(params CreateTaskParams) (*model.Task, error) {
	if err := validateTaskParams(params); err != nil {
		return nil, err
	}

	auctionType := params.AuctionType
	if auctionType == "" {
		auctionType = model.AuctionStandard
	}

	var task *model.Task
	err := s.mutate(func(st *state.AuctionState, emit func(model.NotificationEvent)) error {
		now := s.now()
		task = &model.Task{
			ID:                   utils.GenerateID(),
			CreatorID:            params.CreatorID,
			Title:                params.Title,
			Description:          params.Description,
			Category:             params.Category,
			Tags:                 params.Tags,
			StartingPayment:      params.StartingPayment,
			CurrentBid:           params.StartingPayment,
			AuctionType:          auctionType,
			BuyItNowPrice:        params.BuyItNowPrice,
			DutchDecreaseRate:    params.DutchDecreaseRate,
			Duration:             params.Duration.Milliseconds(),
			StartTime:            now,
			EndTime:              now.Add(params.Duration),
			Status:               model.StatusActive,
			VerificationRequired: params.VerificationRequired,
			VerificationMethod:   params.VerificationMethod,
		}

		st.Tasks[task.ID] = task
		st.Bids[task.ID] = []model.Bid{}

		if creator, ok := st.Users[params.CreatorID]; ok {
			creator.TotalTasksCreated++
		}

		for userID, user := range st.Users {
			if !user.Preferences.Notifications.NewTasks {
				continue
			}
			if len(user.Preferences.CategoryPreferences) > 0 && !contains(user.Preferences.CategoryPreferences, task.Category) {
				continue
			}
			emit(model.NotificationEvent{
				Type:      model.NotifyNewTask,
				UserID:    userID,
				TaskID:    task.ID,
				Message:   fmt.Sprintf("New task posted: %s", task.Title),
				Timestamp: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func validateTaskParams(params CreateTaskParams) error {
	if params.Title == "" || params.CreatorID == "" {
		return fmt.Errorf("service: %w - missing title or creatorID", auctionerrors.ErrInvalidTask)
	}
	if params.Duration <= 0 {
		return fmt.Errorf("service: %w - non-positive duration", auctionerrors.ErrInvalidTask)
	}
	if !params.StartingPayment.Kind.Valid() || params.StartingPayment.Amount <= 0 {
		return fmt.Errorf("service: %w - bad starting payment", auctionerrors.ErrInvalidCurrency)
	}
	if params.BuyItNowPrice != nil && params.BuyItNowPrice.Kind != params.StartingPayment.Kind {
		return fmt.Errorf("service: %w - buy it now price kind differs from starting payment", auctionerrors.ErrCurrencyMismatch)
	}
	switch params.AuctionType {
	case "", model.AuctionStandard, model.AuctionDutch, model.AuctionBuyItNow:
	default:
		return fmt.Errorf("service: %w - unknown auction type %q", auctionerrors.ErrInvalidTask, params.AuctionType)
	}
	return nil
}

// PlaceBid validates and records a bid. In a reverse auction the bid must be
// strictly lower than the current bid; equal or higher bids are rejected.
// Validation failures leave state untouched.
func (s *AuctionService) PlaceBid(taskID, userID string, amount model.Currency) (model.Bid, error) {
	if taskID == "" || userID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing taskID or userID", auctionerrors.ErrInvalidTask)
	}

	var bid model.Bid
	err := s.mutate(func(st *state.AuctionState, emit func(model.NotificationEvent)) error {
		task, ok := st.Tasks[taskID]
		if !ok {
			return fmt.Errorf("service: place bid on task %s: %w", taskID, auctionerrors.ErrTaskNotFound)
		}
		if task.Status != model.StatusActive {
			return fmt.Errorf("service: %w - status is %s", auctionerrors.ErrTaskNotActive, task.Status)
		}
		now := s.now()
		if now.After(task.EndTime) {
			return fmt.Errorf("service: %w", auctionerrors.ErrAuctionEnded)
		}
		if task.CreatorID == userID {
			return fmt.Errorf("service: %w", auctionerrors.ErrSelfBid)
		}
		if amount.Kind != task.CurrentBid.Kind {
			return fmt.Errorf("service: %w - task pays %s", auctionerrors.ErrCurrencyMismatch, task.CurrentBid.Kind)
		}
		if amount.Amount >= task.CurrentBid.Amount {
			return fmt.Errorf("service: %w - current bid is %.2f", auctionerrors.ErrBidNotLower, task.CurrentBid.Amount)
		}

		bid = model.Bid{
			BidID:     utils.GenerateID(),
			TaskID:    taskID,
			UserID:    userID,
			Amount:    amount,
			CreatedAt: now,
		}

		// The previous lowest bidder is always the last bid holder, since
		// accepted bids decrease monotonically.
		bids := st.Bids[taskID]
		if len(bids) > 0 {
			previous := bids[len(bids)-1]
			emit(model.NotificationEvent{
				Type:      model.NotifyOutbid,
				UserID:    previous.UserID,
				TaskID:    taskID,
				Message:   fmt.Sprintf("You've been outbid on %q", task.Title),
				Timestamp: now,
			})
		}

		st.Bids[taskID] = append(bids, bid)
		task.CurrentBid = amount

		if user, ok := st.Users[userID]; ok {
			user.BidHistory = append(user.BidHistory, bid.BidID)
		}

		// Anti-snipe: late bids extend the end time from its pre-extension
		// value, repeatedly if needed.
		if task.EndTime.Sub(now) < antiSnipeWindow {
			task.EndTime = task.EndTime.Add(antiSnipeExtension)
		}
		return nil
	})
	if err != nil {
		return model.Bid{}, err
	}

	return bid, nil
}

// AcceptBuyItNow claims a task instantly at its fixed buy-it-now price,
// bypassing bidding. No bid record is created on this path.
func (s *AuctionService) AcceptBuyItNow(taskID, userID string) error {
	return s.mutate(func(st *state.AuctionState, emit func(model.NotificationEvent)) error {
		task, ok := st.Tasks[taskID]
		if !ok {
			return fmt.Errorf("service: buy it now on task %s: %w", taskID, auctionerrors.ErrTaskNotFound)
		}
		if task.BuyItNowPrice == nil {
			return fmt.Errorf("service: %w", auctionerrors.ErrNoBuyItNowPrice)
		}
		if task.Status != model.StatusActive {
			return fmt.Errorf("service: %w - status is %s", auctionerrors.ErrTaskNotActive, task.Status)
		}

		now := s.now()
		task.Status = model.StatusInProgress
		task.WinnerID = userID
		task.CurrentBid = *task.BuyItNowPrice
		task.EndTime = now

		emit(wonEvent(task, now))
		return nil
	})
}

// CurrentDutchPrice returns the effective price of a dutch auction at this
// instant: the starting payment decreased by the hourly rate since start,
// clamped at zero.
func (s *AuctionService) CurrentDutchPrice(taskID string) (model.Currency, error) {
	if err := s.ensureInitialized(); err != nil {
		return model.Currency{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.state.Tasks[taskID]
	if !ok {
		return model.Currency{}, fmt.Errorf("service: dutch price for task %s: %w", taskID, auctionerrors.ErrTaskNotFound)
	}
	if task.AuctionType != model.AuctionDutch {
		return model.Currency{}, fmt.Errorf("service: %w", auctionerrors.ErrNotDutchAuction)
	}
	return dutchPriceAt(task, s.now()), nil
}

func dutchPriceAt(task *model.Task, now time.Time) model.Currency {
	hours := now.Sub(task.StartTime).Hours()
	price := task.StartingPayment.Amount - task.DutchDecreaseRate*hours
	if price < 0 {
		price = 0
	}
	return model.Currency{Kind: task.StartingPayment.Kind, Amount: price}
}

// AcceptDutchPrice claims a dutch auction at its current clock-derived price.
// The first accepter wins; the claim is recorded as an implicit single bid.
func (s *AuctionService) AcceptDutchPrice(taskID, userID string) (model.Bid, error) {
	var bid model.Bid
	err := s.mutate(func(st *state.AuctionState, emit func(model.NotificationEvent)) error {
		task, ok := st.Tasks[taskID]
		if !ok {
			return fmt.Errorf("service: claim task %s: %w", taskID, auctionerrors.ErrTaskNotFound)
		}
		if task.AuctionType != model.AuctionDutch {
			return fmt.Errorf("service: %w", auctionerrors.ErrNotDutchAuction)
		}
		if task.Status != model.StatusActive {
			return fmt.Errorf("service: %w - status is %s", auctionerrors.ErrTaskNotActive, task.Status)
		}
		now := s.now()
		if now.After(task.EndTime) {
			return fmt.Errorf("service: %w", auctionerrors.ErrAuctionEnded)
		}
		if task.CreatorID == userID {
			return fmt.Errorf("service: %w", auctionerrors.ErrSelfBid)
		}

		price := dutchPriceAt(task, now)
		bid = model.Bid{
			BidID:     utils.GenerateID(),
			TaskID:    taskID,
			UserID:    userID,
			Amount:    price,
			CreatedAt: now,
		}
		st.Bids[taskID] = append(st.Bids[taskID], bid)

		task.CurrentBid = price
		task.Status = model.StatusInProgress
		task.WinnerID = userID
		task.EndTime = now

		emit(wonEvent(task, now))
		return nil
	})
	if err != nil {
		return model.Bid{}, err
	}

	return bid, nil
}

// CompleteTask settles a won task: the creator pays the winner the final bid
// amount through the ledger, the task becomes completed, an immutable
// completed-task record is appended, and the winner's reputation and
// achievements are updated - all in one atomic mutation.
func (s *AuctionService) CompleteTask(taskID, completerID, proof string, qualityRating *float64, feedback string) error {
	if qualityRating != nil && (*qualityRating < 1 || *qualityRating > 5) {
		return fmt.Errorf("service: %w - got %.1f", auctionerrors.ErrInvalidRating, *qualityRating)
	}

	return s.mutate(func(st *state.AuctionState, emit func(model.NotificationEvent)) error {
		task, ok := st.Tasks[taskID]
		if !ok {
			return fmt.Errorf("service: complete task %s: %w", taskID, auctionerrors.ErrTaskNotFound)
		}
		if task.WinnerID != completerID {
			return fmt.Errorf("service: %w", auctionerrors.ErrNotWinner)
		}
		if task.Status != model.StatusInProgress {
			return fmt.Errorf("service: %w - status is %s", auctionerrors.ErrTaskNotInProgress, task.Status)
		}

		if err := ledger.New(st.Balances).Transfer(task.CreatorID, task.WinnerID, task.CurrentBid); err != nil {
			return fmt.Errorf("service: completion payment: %w", err)
		}

		now := s.now()
		task.Status = model.StatusCompleted

		st.CompletedTasks = append(st.CompletedTasks, model.CompletedTask{
			TaskID:        taskID,
			WinnerID:      task.WinnerID,
			CreatorID:     task.CreatorID,
			CompletedAt:   now,
			PaymentAmount: task.CurrentBid,
			QualityRating: qualityRating,
			Feedback:      feedback,
			Verified:      true,
		})

		if winner, ok := st.Users[task.WinnerID]; ok {
			reputation.RecordCompletion(winner, qualityRating)
			for _, a := range reputation.UnlockAchievements(winner, st.CompletedTasks, st.Tasks, now) {
				emit(model.NotificationEvent{
					Type:      model.NotifyNewTask,
					UserID:    winner.ID,
					Message:   fmt.Sprintf("Achievement unlocked: %s", a.Name),
					Timestamp: now,
				})
			}
		}

		emit(model.NotificationEvent{
			Type:      model.NotifyTaskCompleted,
			UserID:    task.CreatorID,
			TaskID:    taskID,
			Message:   fmt.Sprintf("Task %q was completed", task.Title),
			Timestamp: now,
		})
		return nil
	})
}

// settleExpired finalizes every expired active task and fires ending-soon
// notifications. Finalization is idempotent per task: the status leaves
// active on the first run, so a task settles at most once.
func (s *AuctionService) settleExpired() error {
	return s.mutateOptional(func(st *state.AuctionState, emit func(model.NotificationEvent)) (bool, error) {
		now := s.now()
		changed := false

		for taskID, task := range st.Tasks {
			if task.Status != model.StatusActive {
				continue
			}

			if !now.Before(task.EndTime) {
				finalizeAuction(st, taskID, emit, now)
				changed = true
				continue
			}

			if !task.EndingSoonNotified && task.EndTime.Sub(now) < endingSoonWindow {
				task.EndingSoonNotified = true
				changed = true

				emit(model.NotificationEvent{
					Type:      model.NotifyTaskEnding,
					UserID:    task.CreatorID,
					TaskID:    taskID,
					Message:   fmt.Sprintf("Task %q is ending soon", task.Title),
					Timestamp: now,
				})
				if bids := st.Bids[taskID]; len(bids) > 0 {
					emit(model.NotificationEvent{
						Type:      model.NotifyTaskEnding,
						UserID:    bids[len(bids)-1].UserID,
						TaskID:    taskID,
						Message:   fmt.Sprintf("Task %q is ending soon - you hold the lowest bid", task.Title),
						Timestamp: now,
					})
				}
			}
		}
		return changed, nil
	})
}

// finalizeAuction resolves one expired active task: with at least one bid the
// last (lowest) bidder wins and the task moves to in-progress; with none the
// task is cancelled and no winner is set.
func finalizeAuction(st *state.AuctionState, taskID string, emit func(model.NotificationEvent), now time.Time) {
	task := st.Tasks[taskID]

	bids := st.Bids[taskID]
	if len(bids) == 0 {
		task.Status = model.StatusCancelled
		return
	}

	winning := bids[len(bids)-1]
	task.WinnerID = winning.UserID
	task.Status = model.StatusInProgress
	emit(wonEvent(task, now))
}

func wonEvent(task *model.Task, now time.Time) model.NotificationEvent {
	return model.NotificationEvent{
		Type:      model.NotifyWon,
		UserID:    task.WinnerID,
		TaskID:    task.ID,
		Message:   fmt.Sprintf("Congratulations! You won the task %q", task.Title),
		Timestamp: now,
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
