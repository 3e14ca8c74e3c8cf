package helpers

import (
	"time"

	"github.com/shopspring/decimal"

	model "auction-backoffice/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	RoundID         string          `json:"round_id" binding:"required"`
	BidderName      string          `json:"bidder_name" binding:"required"`
	BidderCitizenID string          `json:"bidder_citizen_id" binding:"required"`
	BidderLocation  string          `json:"bidder_location"`
	AssetTag        string          `json:"asset_tag" binding:"required"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	CreatedBy       string          `json:"created_by"`
}

type BidResponse struct {
	BidID           string          `json:"bid_id"`
	RoundID         string          `json:"round_id"`
	BidderName      string          `json:"bidder_name"`
	BidderCitizenID string          `json:"bidder_citizen_id"`
	AssetTag        string          `json:"asset_tag"`
	Price           decimal.Decimal `json:"price"`
	CreatedAt       string          `json:"created_at"`
}

type RankedBidResponse struct {
	BidResponse
	Rank               int    `json:"rank"`
	IsWinning          bool   `json:"is_winning"`
	TimeFromRoundStart string `json:"time_from_round_start"`
}

// NewBidResponse converts a recorded bid into its wire shape
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:           bid.BidID,
		RoundID:         bid.RoundID,
		BidderName:      bid.BidderName,
		BidderCitizenID: bid.BidderCitizenID,
		AssetTag:        bid.AssetTag,
		Price:           bid.Price,
		CreatedAt:       bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewRankedBidResponses converts ranked bids into their wire shape
func NewRankedBidResponses(ranked []model.RankedBid) []RankedBidResponse {
	out := make([]RankedBidResponse, 0, len(ranked))
	for _, rb := range ranked {
		out = append(out, RankedBidResponse{
			BidResponse:        NewBidResponse(rb.Bid),
			Rank:               rb.Rank,
			IsWinning:          rb.IsWinning,
			TimeFromRoundStart: rb.TimeFromRoundStart.String(),
		})
	}
	return out
}
