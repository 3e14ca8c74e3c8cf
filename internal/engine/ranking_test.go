package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-backoffice/internal/models"
)

// Test the worked leaderboard scenario: assetA 100@t1, assetB 50@t2, assetA 150@t3
func TestRank_LeaderboardScenario(t *testing.T) {
	t.Parallel()

	ledger, _ := NewLedger([]models.Bid{
		newBid("bid1", "assetA", "c1", "north", 100, 1*time.Minute),
		newBid("bid2", "assetB", "c2", "south", 50, 2*time.Minute),
		newBid("bid3", "assetA", "c3", "north", 150, 3*time.Minute),
	})

	ranked := Rank(ledger)
	require.Len(t, ranked, 3)

	require.Equal(t, "bid3", ranked[0].BidID)
	require.Equal(t, 1, ranked[0].Rank)
	require.True(t, ranked[0].IsWinning)

	require.Equal(t, "bid1", ranked[1].BidID)
	require.Equal(t, 2, ranked[1].Rank)
	require.False(t, ranked[1].IsWinning)

	require.Equal(t, "bid2", ranked[2].BidID)
	require.Equal(t, 3, ranked[2].Rank)
	require.True(t, ranked[2].IsWinning)

	winners := WinningBids(ledger)
	require.Len(t, winners, 2)
	require.Equal(t, "bid3", winners[0].BidID)
	require.Equal(t, "bid2", winners[1].BidID)
}

// Test tie-break: earliest timestamp wins on exact price ties
func TestRank_PriceTieEarliestWins(t *testing.T) {
	t.Parallel()

	ledger, _ := NewLedger([]models.Bid{
		newBid("late", "assetA", "c2", "south", 100, 5*time.Minute),
		newBid("early", "assetA", "c1", "north", 100, 1*time.Minute),
	})

	ranked := Rank(ledger)
	require.Equal(t, "early", ranked[0].BidID)
	require.Equal(t, 1, ranked[0].Rank)
	require.True(t, ranked[0].IsWinning)

	require.Equal(t, "late", ranked[1].BidID)
	require.Equal(t, 2, ranked[1].Rank)
	require.False(t, ranked[1].IsWinning)
}

// Test rank density and winning-bid uniqueness over a larger round
func TestRank_Properties(t *testing.T) {
	t.Parallel()

	ledger, _ := NewLedger([]models.Bid{
		newBid("bid1", "assetA", "c1", "north", 100, 1*time.Minute),
		newBid("bid2", "assetB", "c2", "south", 100, 2*time.Minute),
		newBid("bid3", "assetA", "c3", "east", 175, 3*time.Minute),
		newBid("bid4", "assetC", "c1", "north", 60, 4*time.Minute),
		newBid("bid5", "assetB", "c4", "south", 100, 5*time.Minute),
		newBid("bid6", "assetC", "c5", "west", 60, 6*time.Minute),
	})

	ranked := Rank(ledger)
	require.Len(t, ranked, 6)

	// Dense 1-based ranks, price never increases down the list.
	for i, rb := range ranked {
		require.Equal(t, i+1, rb.Rank)
		if i > 0 {
			require.False(t, rb.Price.GreaterThan(ranked[i-1].Price))
		}
	}

	// Exactly one winning bid per asset tag.
	winnersPerTag := make(map[string]int)
	for _, rb := range ranked {
		if rb.IsWinning {
			winnersPerTag[rb.AssetTag]++
		}
	}
	require.Equal(t, map[string]int{"assetA": 1, "assetB": 1, "assetC": 1}, winnersPerTag)

	// Re-running yields identical assignments.
	again := Rank(ledger)
	require.Equal(t, ranked, again)
}

// Test time offsets are measured from the first bid in the round
func TestRank_TimeFromRoundStart(t *testing.T) {
	t.Parallel()

	ledger, _ := NewLedger([]models.Bid{
		newBid("bid2", "assetA", "c2", "south", 200, 7*time.Minute),
		newBid("bid1", "assetA", "c1", "north", 100, 2*time.Minute),
	})

	ranked := Rank(ledger)
	require.Equal(t, "bid2", ranked[0].BidID)
	require.Equal(t, 5*time.Minute, ranked[0].TimeFromRoundStart)
	require.Equal(t, time.Duration(0), ranked[1].TimeFromRoundStart)
}

// Test edge cases: empty ledger and single bid
func TestRank_EdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty_ledger", func(t *testing.T) {
		t.Parallel()
		ledger, _ := NewLedger(nil)
		require.Empty(t, Rank(ledger))
		require.Empty(t, WinningBids(ledger))
	})

	t.Run("single_bid", func(t *testing.T) {
		t.Parallel()
		ledger, _ := NewLedger([]models.Bid{
			newBid("only", "assetA", "c1", "north", 42, time.Minute),
		})

		ranked := Rank(ledger)
		require.Len(t, ranked, 1)
		require.Equal(t, 1, ranked[0].Rank)
		require.True(t, ranked[0].IsWinning)

		winners := WinningBids(ledger)
		require.Len(t, winners, 1)
		require.Equal(t, "only", winners[0].BidID)
	})
}
