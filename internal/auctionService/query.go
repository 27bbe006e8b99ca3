package auction

import (
	"fmt"
	"sort"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

const recommendationLimit = 10

// GetTask returns the task by id.
func (s *AuctionService) GetTask(taskID string) (*model.Task, error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.state.Tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("service: get task %s: %w", taskID, auctionerrors.ErrTaskNotFound)
	}
	return task, nil
}

// GetActiveTasks settles every expired auction first, then returns the
// remaining active tasks ordered by ascending end time. Settlement before any
// active-task read is part of the lifecycle contract; there is no background
// scheduler.
func (s *AuctionService) GetActiveTasks() ([]*model.Task, error) {
	if err := s.settleExpired(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*model.Task
	for _, task := range s.state.Tasks {
		if task.Status == model.StatusActive {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].EndTime.Before(tasks[j].EndTime)
	})
	return tasks, nil
}

// GetTaskBids returns the ordered bid history of a task. The last element is
// always the current lowest bid.
func (s *AuctionService) GetTaskBids(taskID string) ([]model.Bid, error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.state.Tasks[taskID]; !ok {
		return nil, fmt.Errorf("service: get bids for task %s: %w", taskID, auctionerrors.ErrTaskNotFound)
	}
	return append([]model.Bid(nil), s.state.Bids[taskID]...), nil
}

// UserTasks groups a user's tasks by their relation to the user.
type UserTasks struct {
	Created []*model.Task `json:"created"`
	Won     []*model.Task `json:"won"`
	Bidding []*model.Task `json:"bidding"`
}

// GetUserTasks returns the tasks the user created, the tasks the user won,
// and the active tasks the user is still bidding on without holding the win.
func (s *AuctionService) GetUserTasks(userID string) (UserTasks, error) {
	if err := s.ensureInitialized(); err != nil {
		return UserTasks{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := UserTasks{
		Created: []*model.Task{},
		Won:     []*model.Task{},
		Bidding: []*model.Task{},
	}

	bidOn := make(map[string]bool)
	for taskID, bids := range s.state.Bids {
		for _, b := range bids {
			if b.UserID == userID {
				bidOn[taskID] = true
				break
			}
		}
	}

	for _, task := range s.state.Tasks {
		if task.CreatorID == userID {
			result.Created = append(result.Created, task)
		}
		if task.WinnerID == userID && task.WinnerID != "" {
			result.Won = append(result.Won, task)
		}
		if bidOn[task.ID] && task.Status == model.StatusActive && task.WinnerID != userID {
			result.Bidding = append(result.Bidding, task)
		}
	}
	return result, nil
}

// BidRange is the advisory prediction derived from comparable completed tasks.
type BidRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// GetPredictedBidRange scans the completed-task log for tasks sharing the
// target's category and currency kind and summarizes their final payments.
// Returns nil when no comparable history exists. Purely advisory.
func (s *AuctionService) GetPredictedBidRange(taskID string) (*BidRange, error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.state.Tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("service: predict range for task %s: %w", taskID, auctionerrors.ErrTaskNotFound)
	}

	var amounts []float64
	for _, ct := range s.state.CompletedTasks {
		done, ok := s.state.Tasks[ct.TaskID]
		if !ok || done.Category != task.Category {
			continue
		}
		if ct.PaymentAmount.Kind != task.StartingPayment.Kind {
			continue
		}
		amounts = append(amounts, ct.PaymentAmount.Amount)
	}
	if len(amounts) == 0 {
		return nil, nil
	}

	r := &BidRange{Min: amounts[0], Max: amounts[0]}
	var sum float64
	for _, a := range amounts {
		if a < r.Min {
			r.Min = a
		}
		if a > r.Max {
			r.Max = a
		}
		sum += a
	}
	r.Average = sum / float64(len(amounts))
	return r, nil
}

// GetRecommendedTasks scores active tasks against the user's category
// preferences, most-used payment currency, and closing time, returning the
// top matches. Unknown users get an empty list.
func (s *AuctionService) GetRecommendedTasks(userID string) ([]*model.Task, error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.state.Users[userID]
	if !ok {
		return []*model.Task{}, nil
	}

	var won []model.CompletedTask
	for _, ct := range s.state.CompletedTasks {
		if ct.WinnerID == userID {
			won = append(won, ct)
		}
	}
	preferredKind := mostUsedCurrency(won)

	now := s.now()
	type scored struct {
		task  *model.Task
		score int
	}
	var candidates []scored
	for _, task := range s.state.Tasks {
		if task.Status != model.StatusActive {
			continue
		}
		score := 0
		if task.Category != "" && contains(user.Preferences.CategoryPreferences, task.Category) {
			score += 10
		}
		if task.CurrentBid.Kind == preferredKind {
			score += 5
		}
		if task.EndTime.Sub(now) < endingSoonWindow {
			score += 3
		}
		candidates = append(candidates, scored{task: task, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	limit := recommendationLimit
	if limit > len(candidates) {
		limit = len(candidates)
	}
	tasks := make([]*model.Task, 0, limit)
	for _, c := range candidates[:limit] {
		tasks = append(tasks, c.task)
	}
	return tasks, nil
}

// mostUsedCurrency returns the currency kind appearing most often in the
// user's completed tasks, defaulting to points.
func mostUsedCurrency(completed []model.CompletedTask) model.CurrencyKind {
	counts := make(map[model.CurrencyKind]int)
	for _, ct := range completed {
		counts[ct.PaymentAmount.Kind]++
	}

	best := model.CurrencyPoints
	bestCount := 0
	for kind, count := range counts {
		if count > bestCount {
			bestCount = count
			best = kind
		}
	}
	return best
}
