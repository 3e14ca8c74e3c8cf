package handler

import (
	"fmt"
	"net/http"

	model "auction-backoffice/internal/models"
	"auction-backoffice/internal/refresh"
	"auction-backoffice/services/auction/helpers"
	"auction-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_service.go -package=handler

type AuctionServiceInterface interface {
	GetPhase(auctionID string) (model.PhaseInfo, error)
	GetLeaderboard(roundID string) ([]model.RankedBid, error)
	GetWinningBids(roundID string) ([]model.RankedBid, error)
	GetStatistics(roundID string) (model.RoundStatistics, error)
	GetTimeline(roundID string) ([]model.TimelineEvent, error)
	PlaceBid(roundID, bidderName, citizenID, location, assetTag, createdBy string, price decimal.Decimal) (model.Bid, error)
}

// SnapshotSource serves the latest poller-produced snapshot per round.
type SnapshotSource interface {
	Get(roundID string) (refresh.Snapshot, bool)
}

type AuctionHandler struct {
	service   AuctionServiceInterface
	snapshots SnapshotSource
}

func NewAuctionHandler(service AuctionServiceInterface, snapshots SnapshotSource) *AuctionHandler {
	return &AuctionHandler{service: service, snapshots: snapshots}
}

// RecordBidHandler handles POST /bids
func (h *AuctionHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.RoundID, req.BidderName, req.BidderCitizenID, req.BidderLocation, req.AssetTag, req.CreatedBy, req.Price)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RecordBidHandler: failed to record bid", map[string]any{
			"handler":   "RecordBidHandler",
			"round_id":  req.RoundID,
			"asset_tag": req.AssetTag,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":    bid.BidID,
		"round_id":  bid.RoundID,
		"asset_tag": bid.AssetTag,
		"price":     bid.Price.String(),
	})
}

// GetPhaseHandler handles GET /auctions/:auction_id/phase
func (h *AuctionHandler) GetPhaseHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	info, err := h.service.GetPhase(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPhaseHandler: error classifying phase", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	if !info.WindowValid {
		utils.JSONResponseWithWarnings(c, http.StatusOK, info, "phase classified successfully",
			[]string{"auction timestamps not in non-decreasing order; phase is best-effort"})
	} else {
		utils.JSONResponse(c, http.StatusOK, info, "phase classified successfully")
	}
	helpers.LogSuccess("GetPhaseHandler", "phase classified successfully", map[string]any{
		"auction_id": auctionID,
		"phase":      string(info.Phase),
	})
}

// GetLeaderboardHandler handles GET /rounds/:round_id/leaderboard
func (h *AuctionHandler) GetLeaderboardHandler(c *gin.Context) {
	roundID := c.Param("round_id")
	ranked, err := h.service.GetLeaderboard(roundID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetLeaderboardHandler: error ranking bids", map[string]any{"round_id": roundID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRankedBidResponses(ranked), "leaderboard retrieved successfully")
	helpers.LogSuccess("GetLeaderboardHandler", "leaderboard retrieved successfully", map[string]any{
		"round_id": roundID,
		"count":    len(ranked),
	})
}

// GetWinningBidsHandler handles GET /rounds/:round_id/winning
func (h *AuctionHandler) GetWinningBidsHandler(c *gin.Context) {
	roundID := c.Param("round_id")
	winners, err := h.service.GetWinningBids(roundID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidsHandler: error retrieving winners", map[string]any{"round_id": roundID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRankedBidResponses(winners), "winning bids retrieved successfully")
	helpers.LogSuccess("GetWinningBidsHandler", "winning bids retrieved successfully", map[string]any{
		"round_id": roundID,
		"count":    len(winners),
	})
}

// GetStatisticsHandler handles GET /rounds/:round_id/statistics
func (h *AuctionHandler) GetStatisticsHandler(c *gin.Context) {
	roundID := c.Param("round_id")
	stats, err := h.service.GetStatistics(roundID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetStatisticsHandler: error aggregating round", map[string]any{"round_id": roundID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, stats, "statistics retrieved successfully")
	helpers.LogSuccess("GetStatisticsHandler", "statistics retrieved successfully", map[string]any{
		"round_id":   roundID,
		"total_bids": stats.TotalBids,
	})
}

// GetTimelineHandler handles GET /rounds/:round_id/timeline
func (h *AuctionHandler) GetTimelineHandler(c *gin.Context) {
	roundID := c.Param("round_id")
	events, err := h.service.GetTimeline(roundID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTimelineHandler: error building timeline", map[string]any{"round_id": roundID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, events, "timeline retrieved successfully")
	helpers.LogSuccess("GetTimelineHandler", "timeline retrieved successfully", map[string]any{
		"round_id": roundID,
		"events":   len(events),
	})
}

// GetSnapshotHandler handles GET /rounds/:round_id/snapshot, serving
// the latest poller-refreshed snapshot without recomputing.
func (h *AuctionHandler) GetSnapshotHandler(c *gin.Context) {
	roundID := c.Param("round_id")
	snap, ok := h.snapshots.Get(roundID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("no snapshot for round %s", roundID), "no snapshot available")
		utils.Info("GetSnapshotHandler: no snapshot available", map[string]any{"round_id": roundID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snap, "snapshot retrieved successfully")
	helpers.LogSuccess("GetSnapshotHandler", "snapshot retrieved successfully", map[string]any{
		"round_id":   roundID,
		"fetched_at": snap.FetchedAt,
	})
}
