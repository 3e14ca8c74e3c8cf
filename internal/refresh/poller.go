// Package refresh implements the pull-based snapshot model: a poller
// periodically re-derives every registered round's views from the
// current data and a cache keeps the newest result per round.
package refresh

import (
	"context"
	"time"

	model "auction-backoffice/internal/models"
	"auction-backoffice/utils"
)

// Snapshot is one full derivation pass over a round: leaderboard,
// winning bids, statistics and timeline as of FetchedAt.
type Snapshot struct {
	RoundID     string                `json:"round_id"`
	FetchedAt   time.Time             `json:"fetched_at"`
	Leaderboard []model.RankedBid     `json:"leaderboard"`
	WinningBids []model.RankedBid     `json:"winning_bids"`
	Statistics  model.RoundStatistics `json:"statistics"`
	Timeline    []model.TimelineEvent `json:"timeline"`
}

// Recomputer produces a fresh snapshot for a round. Implemented by the
// auction service.
type Recomputer interface {
	Recompute(roundID string) (Snapshot, error)
}

// Poller re-derives snapshots for a fixed set of rounds on a fixed
// interval and stores them in a Cache. Each tick recomputes every
// round; rounds are independent, so failures are per-round.
type Poller struct {
	svc      Recomputer
	cache    *Cache
	rounds   []string
	interval time.Duration
}

// NewPoller creates a poller over the given rounds.
func NewPoller(svc Recomputer, cache *Cache, rounds []string, interval time.Duration) *Poller {
	return &Poller{
		svc:      svc,
		cache:    cache,
		rounds:   rounds,
		interval: interval,
	}
}

// Run polls until the context is cancelled. It recomputes once
// immediately so the cache is warm before the first tick.
func (p *Poller) Run(ctx context.Context) {
	p.refreshAll()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refreshAll()
		}
	}
}

// refreshAll recomputes every registered round once
func (p *Poller) refreshAll() {
	for _, roundID := range p.rounds {
		snap, err := p.svc.Recompute(roundID)
		if err != nil {
			utils.Warn("poller: recompute failed", map[string]any{
				"round_id": roundID,
				"error":    err.Error(),
			})
			continue
		}
		p.cache.Put(snap)
	}
}
