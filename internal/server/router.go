package server

import (
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(service)

	tasks := router.Group("/tasks")
	{
		tasks.POST("", auctionHandler.CreateTaskHandler)
		tasks.GET("", auctionHandler.GetActiveTasksHandler)
		tasks.GET("/:task_id", auctionHandler.GetTaskHandler)
		tasks.GET("/:task_id/bids", auctionHandler.GetTaskBidsHandler)
		tasks.GET("/:task_id/price", auctionHandler.DutchPriceHandler)
		tasks.GET("/:task_id/prediction", auctionHandler.PredictedBidRangeHandler)
		tasks.POST("/:task_id/buy-now", auctionHandler.BuyItNowHandler)
		tasks.POST("/:task_id/claim", auctionHandler.ClaimDutchHandler)
		tasks.POST("/:task_id/complete", auctionHandler.CompleteTaskHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", auctionHandler.CreateUserHandler)
		users.GET("/:user_id", auctionHandler.GetUserProfileHandler)
		users.PUT("/:user_id/preferences", auctionHandler.UpdateUserPreferencesHandler)
		users.GET("/:user_id/balance", auctionHandler.GetUserBalanceHandler)
		users.POST("/:user_id/balance", auctionHandler.AddBalanceHandler)
		users.GET("/:user_id/tasks", auctionHandler.GetUserTasksHandler)
		users.GET("/:user_id/recommendations", auctionHandler.GetRecommendedTasksHandler)
	}

	router.GET("/leaderboard", auctionHandler.GetLeaderboardHandler)

	return router
}
