package engine

import (
	"fmt"
	"sort"
	"time"

	"auction-backoffice/internal/auctionerrors"
	"auction-backoffice/internal/models"
)

// Ledger is an immutable, time-ordered view over the bid records of one
// round. It is the single input to ranking, statistics and timelines.
type Ledger struct {
	bids []models.Bid // sorted by CreatedAt ascending
}

// MalformedBid is a bid record rejected during ledger construction,
// together with the reason it was rejected. Reason always wraps
// auctionerrors.ErrMalformedBid.
type MalformedBid struct {
	Bid    models.Bid
	Reason error
}

// NewLedger builds a ledger from raw bid records. Records with a
// non-positive price or a zero timestamp are malformed; they are
// dropped from the ledger and returned to the caller instead of
// failing the whole batch.
func NewLedger(bids []models.Bid) (Ledger, []MalformedBid) {
	kept := make([]models.Bid, 0, len(bids))
	var dropped []MalformedBid
	for _, b := range bids {
		switch {
		case !b.Price.IsPositive():
			dropped = append(dropped, MalformedBid{
				Bid:    b,
				Reason: fmt.Errorf("%w: non-positive price %s", auctionerrors.ErrMalformedBid, b.Price.String()),
			})
		case b.CreatedAt.IsZero():
			dropped = append(dropped, MalformedBid{
				Bid:    b,
				Reason: fmt.Errorf("%w: missing timestamp", auctionerrors.ErrMalformedBid),
			})
		default:
			kept = append(kept, b)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].CreatedAt.Before(kept[j].CreatedAt)
	})

	return Ledger{bids: kept}, dropped
}

// Len returns the number of well-formed bids in the ledger.
func (l Ledger) Len() int { return len(l.bids) }

// IsEmpty reports whether the ledger holds no bids.
func (l Ledger) IsEmpty() bool { return len(l.bids) == 0 }

// Bids returns a copy of the ledger's bids in chronological order.
func (l Ledger) Bids() []models.Bid {
	return append([]models.Bid(nil), l.bids...)
}

// StartedAt returns the timestamp of the earliest bid, the zero time
// when the ledger is empty. Downstream views treat it as the round's
// observable start.
func (l Ledger) StartedAt() time.Time {
	if len(l.bids) > 0 {
		return l.bids[0].CreatedAt
	}
	return time.Time{}
}
