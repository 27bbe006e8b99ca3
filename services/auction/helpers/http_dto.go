package helpers

import (
	model "auction-house/internal/models"
)

// CurrencyDTO is the wire form of a currency value. Amount intentionally has
// no required binding: zero is a legal bid in a reverse auction.
type CurrencyDTO struct {
	Kind   string  `json:"kind" binding:"required"`
	Amount float64 `json:"amount"`
}

// ToCurrency converts the wire form to the domain type. Kind validation is a
// service concern.
func (c CurrencyDTO) ToCurrency() model.Currency {
	return model.Currency{Kind: model.CurrencyKind(c.Kind), Amount: c.Amount}
}

// FromCurrency converts a domain currency to its wire form.
func FromCurrency(c model.Currency) CurrencyDTO {
	return CurrencyDTO{Kind: string(c.Kind), Amount: c.Amount}
}

// Request DTOs
type CreateTaskRequest struct {
	Title                string       `json:"title" binding:"required"`
	Description          string       `json:"description"`
	CreatorID            string       `json:"creator_id" binding:"required"`
	StartingPayment      CurrencyDTO  `json:"starting_payment" binding:"required"`
	DurationMs           int64        `json:"duration_ms" binding:"required,gt=0"`
	AuctionType          string       `json:"auction_type"`
	BuyItNowPrice        *CurrencyDTO `json:"buy_it_now_price"`
	DutchDecreaseRate    float64      `json:"dutch_decrease_rate"`
	VerificationRequired bool         `json:"verification_required"`
	VerificationMethod   string       `json:"verification_method"`
	Category             string       `json:"category"`
	Tags                 []string     `json:"tags"`
}

type PlaceBidRequest struct {
	TaskID string      `json:"task_id" binding:"required"`
	UserID string      `json:"user_id" binding:"required"`
	Amount CurrencyDTO `json:"amount" binding:"required"`
}

type ClaimRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type CompleteTaskRequest struct {
	CompleterID   string   `json:"completer_id" binding:"required"`
	Proof         string   `json:"proof"`
	QualityRating *float64 `json:"quality_rating"`
	Feedback      string   `json:"feedback"`
}

type CreateUserRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Response DTOs
type BidResponse struct {
	BidID     string      `json:"bid_id"`
	TaskID    string      `json:"task_id"`
	UserID    string      `json:"user_id"`
	Amount    CurrencyDTO `json:"amount"`
	CreatedAt string      `json:"created_at"`
}
