package handler

import (
	"fmt"
	"net/http"
	"time"

	auction "auction-house/internal/auctionService"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// AuctionServiceInterface is the engine surface the HTTP layer depends on.
type AuctionServiceInterface interface {
	CreateTask(params auction.CreateTaskParams) (*model.Task, error)
	PlaceBid(taskID, userID string, amount model.Currency) (model.Bid, error)
	AcceptBuyItNow(taskID, userID string) error
	AcceptDutchPrice(taskID, userID string) (model.Bid, error)
	CurrentDutchPrice(taskID string) (model.Currency, error)
	CompleteTask(taskID, completerID, proof string, qualityRating *float64, feedback string) error
	GetTask(taskID string) (*model.Task, error)
	GetActiveTasks() ([]*model.Task, error)
	GetTaskBids(taskID string) ([]model.Bid, error)
	GetUserTasks(userID string) (auction.UserTasks, error)
	GetPredictedBidRange(taskID string) (*auction.BidRange, error)
	GetRecommendedTasks(userID string) ([]*model.Task, error)
	CreateUser(id, name, email string) (*model.UserProfile, error)
	GetUserProfile(userID string) (*model.UserProfile, error)
	UpdateUserPreferences(userID string, prefs model.UserPreferences) (*model.UserProfile, error)
	GetUserBalance(userID string) (model.Balances, error)
	AddBalance(userID string, currency model.Currency) (model.Balances, error)
	GetLeaderboard(limit int) ([]model.LeaderboardEntry, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// respondServiceError maps a service error onto the JSON envelope and logs it.
func respondServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": request failed", ctx)
}

// CreateTaskHandler handles POST /tasks
func (h *AuctionHandler) CreateTaskHandler(c *gin.Context) {
	var req helpers.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateTaskHandler", err)
		return
	}

	params := auction.CreateTaskParams{
		Title:                req.Title,
		Description:          req.Description,
		CreatorID:            req.CreatorID,
		StartingPayment:      req.StartingPayment.ToCurrency(),
		Duration:             time.Duration(req.DurationMs) * time.Millisecond,
		AuctionType:          model.AuctionType(req.AuctionType),
		DutchDecreaseRate:    req.DutchDecreaseRate,
		VerificationRequired: req.VerificationRequired,
		VerificationMethod:   req.VerificationMethod,
		Category:             req.Category,
		Tags:                 req.Tags,
	}
	if req.BuyItNowPrice != nil {
		price := req.BuyItNowPrice.ToCurrency()
		params.BuyItNowPrice = &price
	}

	task, err := h.service.CreateTask(params)
	if err != nil {
		respondServiceError(c, "CreateTaskHandler", err, map[string]any{"creator_id": req.CreatorID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, task, "task created successfully")
	helpers.LogSuccess("CreateTaskHandler", "task created successfully", map[string]any{
		"task_id":    task.ID,
		"creator_id": task.CreatorID,
		"title":      task.Title,
	})
}

// GetActiveTasksHandler handles GET /tasks
func (h *AuctionHandler) GetActiveTasksHandler(c *gin.Context) {
	tasks, err := h.service.GetActiveTasks()
	if err != nil {
		respondServiceError(c, "GetActiveTasksHandler", err, map[string]any{})
		return
	}

	if tasks == nil {
		tasks = []*model.Task{}
	}

	utils.JSONResponse(c, http.StatusOK, tasks, "active tasks retrieved successfully")
}

// GetTaskHandler handles GET /tasks/:task_id
func (h *AuctionHandler) GetTaskHandler(c *gin.Context) {
	taskID := c.Param("task_id")
	task, err := h.service.GetTask(taskID)
	if err != nil {
		respondServiceError(c, "GetTaskHandler", err, map[string]any{"task_id": taskID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, task, "task retrieved successfully")
}

// GetTaskBidsHandler handles GET /tasks/:task_id/bids
func (h *AuctionHandler) GetTaskBidsHandler(c *gin.Context) {
	taskID := c.Param("task_id")
	bids, err := h.service.GetTaskBids(taskID)
	if err != nil {
		respondServiceError(c, "GetTaskBidsHandler", err, map[string]any{"task_id": taskID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.TaskID, req.UserID, req.Amount.ToCurrency())
	if err != nil {
		respondServiceError(c, "PlaceBidHandler", err, map[string]any{
			"task_id": req.TaskID,
			"user_id": req.UserID,
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		TaskID:    bid.TaskID,
		UserID:    bid.UserID,
		Amount:    helpers.FromCurrency(bid.Amount),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":  bid.BidID,
		"task_id": bid.TaskID,
		"user_id": bid.UserID,
		"amount":  bid.Amount.Amount,
		"kind":    string(bid.Amount.Kind),
	})
}

// BuyItNowHandler handles POST /tasks/:task_id/buy-now
func (h *AuctionHandler) BuyItNowHandler(c *gin.Context) {
	taskID := c.Param("task_id")

	var req helpers.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyItNowHandler", err)
		return
	}

	if err := h.service.AcceptBuyItNow(taskID, req.UserID); err != nil {
		respondServiceError(c, "BuyItNowHandler", err, map[string]any{
			"task_id": taskID,
			"user_id": req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "task claimed via buy it now")
	helpers.LogSuccess("BuyItNowHandler", "task claimed via buy it now", map[string]any{
		"task_id": taskID,
		"user_id": req.UserID,
	})
}

// DutchPriceHandler handles GET /tasks/:task_id/price
func (h *AuctionHandler) DutchPriceHandler(c *gin.Context) {
	taskID := c.Param("task_id")
	price, err := h.service.CurrentDutchPrice(taskID)
	if err != nil {
		respondServiceError(c, "DutchPriceHandler", err, map[string]any{"task_id": taskID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.FromCurrency(price), "current dutch price retrieved")
}

// ClaimDutchHandler handles POST /tasks/:task_id/claim
func (h *AuctionHandler) ClaimDutchHandler(c *gin.Context) {
	taskID := c.Param("task_id")

	var req helpers.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ClaimDutchHandler", err)
		return
	}

	bid, err := h.service.AcceptDutchPrice(taskID, req.UserID)
	if err != nil {
		respondServiceError(c, "ClaimDutchHandler", err, map[string]any{
			"task_id": taskID,
			"user_id": req.UserID,
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		TaskID:    bid.TaskID,
		UserID:    bid.UserID,
		Amount:    helpers.FromCurrency(bid.Amount),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "dutch auction claimed")
	helpers.LogSuccess("ClaimDutchHandler", "dutch auction claimed", map[string]any{
		"task_id": taskID,
		"user_id": req.UserID,
		"amount":  bid.Amount.Amount,
	})
}

// CompleteTaskHandler handles POST /tasks/:task_id/complete
func (h *AuctionHandler) CompleteTaskHandler(c *gin.Context) {
	taskID := c.Param("task_id")

	var req helpers.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CompleteTaskHandler", err)
		return
	}

	if err := h.service.CompleteTask(taskID, req.CompleterID, req.Proof, req.QualityRating, req.Feedback); err != nil {
		respondServiceError(c, "CompleteTaskHandler", err, map[string]any{
			"task_id":      taskID,
			"completer_id": req.CompleterID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "task completed successfully")
	helpers.LogSuccess("CompleteTaskHandler", "task completed successfully", map[string]any{
		"task_id":      taskID,
		"completer_id": req.CompleterID,
	})
}

// PredictedBidRangeHandler handles GET /tasks/:task_id/prediction
func (h *AuctionHandler) PredictedBidRangeHandler(c *gin.Context) {
	taskID := c.Param("task_id")
	prediction, err := h.service.GetPredictedBidRange(taskID)
	if err != nil {
		respondServiceError(c, "PredictedBidRangeHandler", err, map[string]any{"task_id": taskID})
		return
	}

	if prediction == nil {
		utils.JSONResponse(c, http.StatusOK, nil, "no comparable history")
		return
	}

	utils.JSONResponse(c, http.StatusOK, prediction, "predicted bid range retrieved")
}
