package integrationtests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	auction "auction-backoffice/internal/auctionService"
	"auction-backoffice/internal/clock"
)

// Test recording bids through the API
func TestRecordBidAPI(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name: "valid_bid",
			request: map[string]any{
				"round_id":          "round1",
				"bidder_name":       "Anucha",
				"bidder_citizen_id": "c1",
				"bidder_location":   "north",
				"asset_tag":         "assetA",
				"price":             100,
				"created_by":        "clerk1",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid_json",
			request:    "{round_id: 'missing quotes', price: 100}",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_round",
			request: map[string]any{
				"round_id":          "roundX",
				"bidder_name":       "Anucha",
				"bidder_citizen_id": "c1",
				"asset_tag":         "assetA",
				"price":             100,
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			router, _, _ := SetupTestRouter(SeedLiveAuction)
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", tt.request)
			require.Equal(t, tt.wantStatus, w.Code, "response: %v", resp)
		})
	}
}

// Test the full derivation flow: record bids, then read every view
func TestRoundViewsAPI(t *testing.T) {
	router, _, _ := SetupTestRouter(SeedLiveAuction)

	// The worked scenario: assetA 100, assetB 50, assetA 150.
	bids := []map[string]any{
		{"round_id": "round1", "bidder_name": "Anucha", "bidder_citizen_id": "c1", "bidder_location": "north", "asset_tag": "assetA", "price": 100},
		{"round_id": "round1", "bidder_name": "Boon", "bidder_citizen_id": "c2", "bidder_location": "south", "asset_tag": "assetB", "price": 50},
		{"round_id": "round1", "bidder_name": "Chai", "bidder_citizen_id": "c3", "bidder_location": "north", "asset_tag": "assetA", "price": 150},
	}
	for _, b := range bids {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", b)
		require.Equal(t, http.StatusCreated, w.Code, "response: %v", resp)
	}

	t.Run("leaderboard", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/rounds/round1/leaderboard", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].([]any)
		require.Len(t, data, 3)

		first := data[0].(map[string]any)
		require.Equal(t, float64(1), first["rank"])
		require.Equal(t, "assetA", first["asset_tag"])
		require.Equal(t, true, first["is_winning"])

		third := data[2].(map[string]any)
		require.Equal(t, float64(3), third["rank"])
		require.Equal(t, "assetB", third["asset_tag"])
		require.Equal(t, true, third["is_winning"])
	})

	t.Run("winning_bids", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/rounds/round1/winning", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 2)
	})

	t.Run("statistics", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/rounds/round1/statistics", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, float64(3), data["total_bids"])
		require.Equal(t, float64(3), data["unique_bidder_count"])
		require.Equal(t, "150", fmt.Sprint(data["highest_bid"]))
		require.Equal(t, "50", fmt.Sprint(data["lowest_bid"]))
		require.Equal(t, "100", fmt.Sprint(data["average_bid"]))
		require.Equal(t, "north", data["top_bidder_location"])
	})

	t.Run("timeline", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/rounds/round1/timeline", nil)
		require.Equal(t, http.StatusOK, w.Code)

		events := resp["data"].([]any)
		require.Len(t, events, 4) // start marker + 3 bids

		first := events[0].(map[string]any)
		require.Equal(t, "round_started", first["kind"])
	})
}

// Test empty round: every view returns its empty shape, never an error
func TestEmptyRoundAPI(t *testing.T) {
	router, _, _ := SetupTestRouter(SeedLiveAuction)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/rounds/round1/leaderboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"].([]any))

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/rounds/round1/statistics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, float64(0), data["total_bids"])
	require.Equal(t, "0", fmt.Sprint(data["average_bid"]))

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/rounds/round1/timeline", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"].([]any))
}

// Test phase classification through the API
func TestPhaseAPI(t *testing.T) {
	router, _, _ := SetupTestRouter(SeedLiveAuction)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auction1/phase", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, "live", data["phase"])
	require.Equal(t, true, data["window_valid"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/auctionX/phase", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Test the snapshot route after one poller-style recompute
func TestSnapshotAPI(t *testing.T) {
	router, repo, cache := SetupTestRouter(SeedLiveAuction)

	_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/rounds/round1/snapshot", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	service := auction.NewAuctionService(repo, clock.Mock{T: FrozenNow})
	snap, err := service.Recompute("round1")
	require.NoError(t, err)
	require.True(t, cache.Put(snap))

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/rounds/round1/snapshot", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "round1", data["round_id"])
}
