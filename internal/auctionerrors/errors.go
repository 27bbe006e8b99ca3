package auctionerrors

import "errors"

// Lookup errors
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")
	ErrNoBids       = errors.New("no bids found for task")
)

// Bidding errors, one per validation rule of the reverse auction
var (
	ErrTaskNotActive    = errors.New("task is not active")
	ErrAuctionEnded     = errors.New("auction has ended")
	ErrSelfBid          = errors.New("cannot bid on your own task")
	ErrCurrencyMismatch = errors.New("currency kind must match task payment kind")
	ErrBidNotLower      = errors.New("bid must be lower than current bid")
)

// Lifecycle errors
var (
	ErrNoBuyItNowPrice   = errors.New("buy it now not available for task")
	ErrNotDutchAuction   = errors.New("task is not a dutch auction")
	ErrNotWinner         = errors.New("only the winner can complete this task")
	ErrTaskNotInProgress = errors.New("task is not in progress")
)

// Input errors
var (
	ErrInvalidTask     = errors.New("invalid task details")
	ErrInvalidUser     = errors.New("invalid user details")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidRating   = errors.New("quality rating must be between 1 and 5")
	ErrUserExists      = errors.New("user already registered")
)
