package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrTaskNotFound):
		return http.StatusNotFound, "task not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrTaskNotActive):
		return http.StatusConflict, "task is not active"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusConflict, "cannot bid on your own task"
	case errors.Is(err, auctionerrors.ErrCurrencyMismatch):
		return http.StatusConflict, "currency kind mismatch"
	case errors.Is(err, auctionerrors.ErrBidNotLower):
		return http.StatusConflict, "bid must be lower than current bid"
	case errors.Is(err, auctionerrors.ErrNoBuyItNowPrice):
		return http.StatusConflict, "buy it now not available"
	case errors.Is(err, auctionerrors.ErrNotDutchAuction):
		return http.StatusConflict, "task is not a dutch auction"
	case errors.Is(err, auctionerrors.ErrNotWinner):
		return http.StatusConflict, "only the winner can complete this task"
	case errors.Is(err, auctionerrors.ErrTaskNotInProgress):
		return http.StatusConflict, "task is not in progress"
	case errors.Is(err, auctionerrors.ErrUserExists):
		return http.StatusConflict, "user already registered"
	case errors.Is(err, auctionerrors.ErrInvalidTask),
		errors.Is(err, auctionerrors.ErrInvalidUser),
		errors.Is(err, auctionerrors.ErrInvalidCurrency),
		errors.Is(err, auctionerrors.ErrInvalidRating):
		return http.StatusBadRequest, "invalid request details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
