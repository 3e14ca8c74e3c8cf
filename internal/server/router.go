package server

import (
	handler "auction-backoffice/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.AuctionServiceInterface, snapshots handler.SnapshotSource) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(service, snapshots)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.RecordBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id/phase", auctionHandler.GetPhaseHandler)
	}

	rounds := router.Group("/rounds")
	{
		rounds.GET("/:round_id/leaderboard", auctionHandler.GetLeaderboardHandler)
		rounds.GET("/:round_id/winning", auctionHandler.GetWinningBidsHandler)
		rounds.GET("/:round_id/statistics", auctionHandler.GetStatisticsHandler)
		rounds.GET("/:round_id/timeline", auctionHandler.GetTimelineHandler)
		rounds.GET("/:round_id/snapshot", auctionHandler.GetSnapshotHandler)
	}

	return router
}
