package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"auction-backoffice/internal/models"
)

// Aggregate computes round-level metrics over the ledger. The bid
// increment is the round's configured step, passed through untouched.
// An empty ledger yields zero values across the board; in particular
// AverageBid is zero, never a division error.
func Aggregate(l Ledger, increment decimal.Decimal) models.RoundStatistics {
	stats := models.RoundStatistics{BidIncrement: increment}
	if l.IsEmpty() {
		return stats
	}

	bids := l.bids
	stats.TotalBids = len(bids)
	stats.FirstBidAt = bids[0].CreatedAt
	stats.LastBidAt = bids[len(bids)-1].CreatedAt

	sum := decimal.Zero
	bidders := make(map[string]bool)
	locationCounts := make(map[string]int)
	var locationOrder []string

	for i, b := range bids {
		if i == 0 {
			stats.HighestBid = b.Price
			stats.LowestBid = b.Price
		} else {
			if b.Price.GreaterThan(stats.HighestBid) {
				stats.HighestBid = b.Price
			}
			if b.Price.LessThan(stats.LowestBid) {
				stats.LowestBid = b.Price
			}
		}
		sum = sum.Add(b.Price)
		bidders[b.BidderCitizenID] = true

		if locationCounts[b.BidderLocation] == 0 {
			locationOrder = append(locationOrder, b.BidderLocation)
		}
		locationCounts[b.BidderLocation]++
	}

	stats.UniqueBidderCount = len(bidders)
	stats.AverageBid = sum.Div(decimal.NewFromInt(int64(len(bids))))

	// Ties on bid count go to the location seen first in the ledger.
	best := -1
	for _, loc := range locationOrder {
		if locationCounts[loc] > best {
			best = locationCounts[loc]
			stats.TopBidderLocation = loc
		}
	}

	return stats
}

// BidRate converts a bid count and a caller-supplied observation window
// into bids per minute. A non-positive window yields zero.
func BidRate(totalBids int, window time.Duration) float64 {
	if totalBids <= 0 || window <= 0 {
		return 0
	}
	return float64(totalBids) / window.Minutes()
}
