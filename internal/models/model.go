package models

import (
	"fmt"
	"time"
)

// CurrencyKind enumerates the four mutually non-fungible currency kinds.
type CurrencyKind string

const (
	CurrencyCash        CurrencyKind = "cash"
	CurrencyPoints      CurrencyKind = "points"
	CurrencyFavorTokens CurrencyKind = "favorTokens"
	CurrencyTimeBank    CurrencyKind = "timeBank"
)

// Valid reports whether k is one of the known currency kinds.
func (k CurrencyKind) Valid() bool {
	switch k {
	case CurrencyCash, CurrencyPoints, CurrencyFavorTokens, CurrencyTimeBank:
		return true
	}
	return false
}

// Currency is an amount of a single currency kind. Arithmetic between two
// Currency values is only defined when their kinds match.
type Currency struct {
	Kind   CurrencyKind `json:"kind"`
	Amount float64      `json:"amount"`
}

// TaskStatus is the lifecycle state of a task. Transitions only move forward:
// active -> in-progress -> completed, or active -> cancelled.
type TaskStatus string

const (
	StatusActive     TaskStatus = "active"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// AuctionType selects the pricing mechanics of a task auction.
type AuctionType string

const (
	AuctionStandard AuctionType = "standard"
	AuctionDutch    AuctionType = "dutch"
	AuctionBuyItNow AuctionType = "buyItNow"
)

// Task represents a posted task whose payment is auctioned downward.
// CurrentBid always has the same currency kind as StartingPayment.
type Task struct {
	ID                   string      `json:"id"`
	CreatorID            string      `json:"creator_id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Category             string      `json:"category,omitempty"`
	Tags                 []string    `json:"tags,omitempty"`
	StartingPayment      Currency    `json:"starting_payment"`
	CurrentBid           Currency    `json:"current_bid"`
	AuctionType          AuctionType `json:"auction_type"`
	BuyItNowPrice        *Currency   `json:"buy_it_now_price,omitempty"`
	DutchDecreaseRate    float64     `json:"dutch_decrease_rate,omitempty"` // amount per hour
	Duration             int64       `json:"duration_ms"`
	StartTime            time.Time   `json:"start_time"`
	EndTime              time.Time   `json:"end_time"`
	Status               TaskStatus  `json:"status"`
	WinnerID             string      `json:"winner_id,omitempty"`
	VerificationRequired bool        `json:"verification_required"`
	VerificationMethod   string      `json:"verification_method,omitempty"`
	EndingSoonNotified   bool        `json:"ending_soon_notified,omitempty"`
}

// Bid is one user's bid on a task. Immutable once created; bids for a task
// form an append-only sequence whose last element is the current lowest bid.
type Bid struct {
	BidID     string    `json:"bid_id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	Amount    Currency  `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Achievement is a badge unlocked by completed-task milestones.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// NotificationSettings toggles the notification categories a user receives.
type NotificationSettings struct {
	Outbid        bool `json:"outbid"`
	NewTasks      bool `json:"new_tasks"`
	TaskReminders bool `json:"task_reminders"`
}

// UserPreferences holds per-user marketplace preferences.
type UserPreferences struct {
	AutoMaxBid          *Currency            `json:"auto_max_bid,omitempty"`
	CategoryPreferences []string             `json:"category_preferences,omitempty"`
	Notifications       NotificationSettings `json:"notification_settings"`
}

// UserProfile represents a registered participant.
type UserProfile struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	ReliabilityScore    float64         `json:"reliability_score"` // 0-100
	QualityRating       float64         `json:"quality_rating"`    // 0-5
	TotalTasksCompleted int             `json:"total_tasks_completed"`
	TotalTasksCreated   int             `json:"total_tasks_created"`
	BidHistory          []string        `json:"bid_history,omitempty"`
	Achievements        []Achievement   `json:"achievements"`
	Preferences         UserPreferences `json:"preferences"`
}

// HasAchievement reports whether the user already holds the achievement id.
func (u *UserProfile) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Balances holds one counter per currency kind for a single user.
// TimeBank is denominated in minutes.
type Balances struct {
	Cash        float64 `json:"cash"`
	Points      float64 `json:"points"`
	FavorTokens float64 `json:"favor_tokens"`
	TimeBank    float64 `json:"time_bank"`
}

// Amount returns the counter for the given currency kind.
func (b Balances) Amount(kind CurrencyKind) (float64, error) {
	switch kind {
	case CurrencyCash:
		return b.Cash, nil
	case CurrencyPoints:
		return b.Points, nil
	case CurrencyFavorTokens:
		return b.FavorTokens, nil
	case CurrencyTimeBank:
		return b.TimeBank, nil
	default:
		return 0, fmt.Errorf("unknown currency kind %q", kind)
	}
}

// Add adjusts the counter for the given currency kind by delta, which may be
// negative. Counters of other kinds are never touched.
func (b *Balances) Add(kind CurrencyKind, delta float64) error {
	switch kind {
	case CurrencyCash:
		b.Cash += delta
	case CurrencyPoints:
		b.Points += delta
	case CurrencyFavorTokens:
		b.FavorTokens += delta
	case CurrencyTimeBank:
		b.TimeBank += delta
	default:
		return fmt.Errorf("unknown currency kind %q", kind)
	}
	return nil
}

// CompletedTask is an immutable historical record of a finished task.
// The completed-task log is append-only and is the sole input to reputation
// and prediction derivations.
type CompletedTask struct {
	TaskID        string    `json:"task_id"`
	WinnerID      string    `json:"winner_id"`
	CreatorID     string    `json:"creator_id"`
	CompletedAt   time.Time `json:"completed_at"`
	PaymentAmount Currency  `json:"payment_amount"`
	QualityRating *float64  `json:"quality_rating,omitempty"`
	Feedback      string    `json:"feedback,omitempty"`
	Verified      bool      `json:"verified"`
}

// LeaderboardEntry is a derived ranking row, fully recomputed on each rebuild.
type LeaderboardEntry struct {
	UserID           string  `json:"user_id"`
	UserName         string  `json:"user_name"`
	TasksCompleted   int     `json:"tasks_completed"`
	PointsEarned     float64 `json:"points_earned"`
	ReliabilityScore float64 `json:"reliability_score"`
	Rank             int     `json:"rank"`
}

// NotificationType enumerates the event types of the notification contract.
type NotificationType string

const (
	NotifyOutbid        NotificationType = "outbid"
	NotifyWon           NotificationType = "won"
	NotifyNewTask       NotificationType = "new_task"
	NotifyTaskEnding    NotificationType = "task_ending"
	NotifyTaskCompleted NotificationType = "task_completed"
)

// NotificationEvent is the fire-and-forget event handed to the delivery
// collaborator. Emission never blocks or fails the triggering operation.
type NotificationEvent struct {
	Type      NotificationType `json:"type"`
	UserID    string           `json:"user_id"`
	TaskID    string           `json:"task_id,omitempty"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
}
