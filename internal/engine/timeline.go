package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"auction-backoffice/internal/models"
)

// milestoneEvery is the bid cadence at which running-count milestones
// are emitted into the timeline.
const milestoneEvery = 5

// Timeline converts the ledger into a narrated, chronological event
// sequence: a round-started marker at the first bid, one event per bid
// (flagged when it sets a new round-wide price record), and a milestone
// after every 5th bid. The result is recomputed fresh on every call.
func Timeline(l Ledger) []models.TimelineEvent {
	bids := l.bids
	if len(bids) == 0 {
		return []models.TimelineEvent{}
	}

	events := make([]models.TimelineEvent, 0, len(bids)+len(bids)/milestoneEvery+1)
	events = append(events, models.TimelineEvent{
		Kind:    models.EventRoundStarted,
		At:      bids[0].CreatedAt,
		Message: "round started",
	})

	var topPrice decimal.Decimal
	for i, b := range bids {
		// Record flag is round-wide, not per asset tag. The first
		// bid always sets the record.
		isRecord := i == 0 || b.Price.GreaterThan(topPrice)
		if isRecord {
			topPrice = b.Price
		}

		msg := fmt.Sprintf("%s bid %s on lot %s", b.BidderName, b.Price.String(), b.AssetTag)
		if isRecord {
			msg = fmt.Sprintf("%s bid %s on lot %s - new top bid", b.BidderName, b.Price.String(), b.AssetTag)
		}
		events = append(events, models.TimelineEvent{
			Kind:        models.EventBidPlaced,
			At:          b.CreatedAt,
			Message:     msg,
			BidID:       b.BidID,
			AssetTag:    b.AssetTag,
			BidderName:  b.BidderName,
			Price:       b.Price,
			IsNewRecord: isRecord,
		})

		if (i+1)%milestoneEvery == 0 {
			events = append(events, models.TimelineEvent{
				Kind:     models.EventMilestone,
				At:       b.CreatedAt,
				Message:  fmt.Sprintf("%d bids placed", i+1),
				BidCount: i + 1,
			})
		}
	}

	// The ledger is chronological and milestones share their bid's
	// timestamp, so events are already in non-decreasing time order.
	return events
}
