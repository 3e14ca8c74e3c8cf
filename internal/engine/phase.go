// Package engine is the stateless computation core of the back office:
// phase classification, bid ranking, round statistics and timelines.
// Every function is a pure function of its input snapshot; nothing here
// performs I/O or holds state between calls.
package engine

import (
	"fmt"
	"time"

	"auction-backoffice/internal/auctionerrors"
	"auction-backoffice/internal/models"
)

// Phase classifies the auction's lifecycle phase at the given instant.
// Rules are evaluated in order, first match wins, so every instant maps
// to exactly one phase even when the configured windows overlap.
func Phase(a models.Auction, now time.Time) models.Phase {
	switch {
	case now.Before(a.RegisterOpenAt):
		return models.PhaseWaiting
	case !now.After(a.RegisterEndAt):
		return models.PhaseRegistration
	case now.Before(a.StartAt):
		return models.PhasePreparation
	case !now.After(a.EndAt):
		return models.PhaseLive
	default:
		return models.PhaseFinished
	}
}

// ValidateWindow reports whether the auction's four timestamps are in
// non-decreasing order. A violation is a warning, not a hard failure:
// Phase still returns a best-effort answer for such auctions.
func ValidateWindow(a models.Auction) error {
	ordered := !a.RegisterEndAt.Before(a.RegisterOpenAt) &&
		!a.StartAt.Before(a.RegisterEndAt) &&
		!a.EndAt.Before(a.StartAt)
	if !ordered {
		return fmt.Errorf("auction %s: %w", a.AuctionID, auctionerrors.ErrInvalidAuctionWindow)
	}
	return nil
}
