package engine

import (
	"sort"

	"auction-backoffice/internal/models"
)

// Rank orders every bid in the ledger by price descending and assigns
// dense 1-based ranks. Exact price ties rank the earlier bid higher:
// the ledger is already in chronological order and the sort is stable,
// so equal prices keep their time order. The highest-priced bid of each
// asset tag is flagged as winning.
func Rank(l Ledger) []models.RankedBid {
	bids := l.bids
	if len(bids) == 0 {
		return []models.RankedBid{}
	}

	start := l.StartedAt()
	ranked := make([]models.RankedBid, 0, len(bids))
	for _, b := range bids {
		ranked = append(ranked, models.RankedBid{
			Bid:                b,
			TimeFromRoundStart: b.CreatedAt.Sub(start),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price.GreaterThan(ranked[j].Price)
	})

	seenTags := make(map[string]bool, len(ranked))
	for i := range ranked {
		ranked[i].Rank = i + 1
		// First occurrence of a tag in rank order is its highest bid.
		if !seenTags[ranked[i].AssetTag] {
			seenTags[ranked[i].AssetTag] = true
			ranked[i].IsWinning = true
		}
	}

	return ranked
}

// WinningBids returns exactly one RankedBid per distinct asset tag in
// the ledger: the winning bid of each lot, ordered by rank. This is
// the leaderboard view; Rank is the full audit/history view.
func WinningBids(l Ledger) []models.RankedBid {
	ranked := Rank(l)
	winners := make([]models.RankedBid, 0, len(ranked))
	for _, rb := range ranked {
		if rb.IsWinning {
			winners = append(winners, rb)
		}
	}
	return winners
}
