package handler

import (
	"net/http"
	"strconv"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// CreateUserHandler handles POST /users
func (h *AuctionHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user, err := h.service.CreateUser(req.ID, req.Name, req.Email)
	if err != nil {
		respondServiceError(c, "CreateUserHandler", err, map[string]any{"user_id": req.ID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user registered successfully")
	helpers.LogSuccess("CreateUserHandler", "user registered successfully", map[string]any{
		"user_id": user.ID,
		"name":    user.Name,
	})
}

// GetUserProfileHandler handles GET /users/:user_id
func (h *AuctionHandler) GetUserProfileHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.GetUserProfile(userID)
	if err != nil {
		respondServiceError(c, "GetUserProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile retrieved successfully")
}

// UpdateUserPreferencesHandler handles PUT /users/:user_id/preferences
func (h *AuctionHandler) UpdateUserPreferencesHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var prefs model.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		helpers.HandleBindError(c, "UpdateUserPreferencesHandler", err)
		return
	}

	user, err := h.service.UpdateUserPreferences(userID, prefs)
	if err != nil {
		respondServiceError(c, "UpdateUserPreferencesHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "preferences updated successfully")
	helpers.LogSuccess("UpdateUserPreferencesHandler", "preferences updated successfully", map[string]any{
		"user_id": userID,
	})
}

// GetUserBalanceHandler handles GET /users/:user_id/balance
func (h *AuctionHandler) GetUserBalanceHandler(c *gin.Context) {
	userID := c.Param("user_id")
	balance, err := h.service.GetUserBalance(userID)
	if err != nil {
		respondServiceError(c, "GetUserBalanceHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, balance, "balance retrieved successfully")
}

// AddBalanceHandler handles POST /users/:user_id/balance
func (h *AuctionHandler) AddBalanceHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.CurrencyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddBalanceHandler", err)
		return
	}

	balance, err := h.service.AddBalance(userID, req.ToCurrency())
	if err != nil {
		respondServiceError(c, "AddBalanceHandler", err, map[string]any{
			"user_id": userID,
			"kind":    req.Kind,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, balance, "balance updated successfully")
	helpers.LogSuccess("AddBalanceHandler", "balance updated successfully", map[string]any{
		"user_id": userID,
		"kind":    req.Kind,
		"amount":  req.Amount,
	})
}

// GetUserTasksHandler handles GET /users/:user_id/tasks
func (h *AuctionHandler) GetUserTasksHandler(c *gin.Context) {
	userID := c.Param("user_id")
	tasks, err := h.service.GetUserTasks(userID)
	if err != nil {
		respondServiceError(c, "GetUserTasksHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, tasks, "user tasks retrieved successfully")
}

// GetRecommendedTasksHandler handles GET /users/:user_id/recommendations
func (h *AuctionHandler) GetRecommendedTasksHandler(c *gin.Context) {
	userID := c.Param("user_id")
	tasks, err := h.service.GetRecommendedTasks(userID)
	if err != nil {
		respondServiceError(c, "GetRecommendedTasksHandler", err, map[string]any{"user_id": userID})
		return
	}

	if tasks == nil {
		tasks = []*model.Task{}
	}

	utils.JSONResponse(c, http.StatusOK, tasks, "recommended tasks retrieved successfully")
}

// GetLeaderboardHandler handles GET /leaderboard?limit=N
func (h *AuctionHandler) GetLeaderboardHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			helpers.HandleBindError(c, "GetLeaderboardHandler", err)
			return
		}
		limit = parsed
	}

	entries, err := h.service.GetLeaderboard(limit)
	if err != nil {
		respondServiceError(c, "GetLeaderboardHandler", err, map[string]any{"limit": limit})
		return
	}

	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}

	utils.JSONResponse(c, http.StatusOK, entries, "leaderboard retrieved successfully")
}
