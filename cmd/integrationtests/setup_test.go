package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	auction "auction-backoffice/internal/auctionService"
	"auction-backoffice/internal/clock"
	model "auction-backoffice/internal/models"
	"auction-backoffice/internal/refresh"
	"auction-backoffice/internal/repository"
	"auction-backoffice/internal/server"
)

// FrozenNow is the observation instant every integration test runs at.
var FrozenNow = time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

// SetupTestRouter initializes the router with an in-memory repository,
// a frozen clock and an empty snapshot cache for integration testing.
func SetupTestRouter(seed ...func(*repository.MemoryRepo)) (*gin.Engine, *repository.MemoryRepo, *refresh.Cache) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	for _, fn := range seed {
		fn(repo)
	}
	service := auction.NewAuctionService(repo, clock.Mock{T: FrozenNow})
	cache := refresh.NewCache()
	router := server.SetupRouter(service, cache)
	return router, repo, cache
}

// SeedLiveAuction seeds one published auction that is live at FrozenNow
// with one active round.
func SeedLiveAuction(repo *repository.MemoryRepo) {
	repo.AddAuction(model.Auction{
		AuctionID:      "auction1",
		Title:          "Integration auction",
		RegisterOpenAt: FrozenNow.Add(-72 * time.Hour),
		RegisterEndAt:  FrozenNow.Add(-48 * time.Hour),
		StartAt:        FrozenNow.Add(-2 * time.Hour),
		EndAt:          FrozenNow.Add(4 * time.Hour),
		Status:         model.AuctionPublished,
	})
	repo.AddRound(model.Round{
		RoundID:      "round1",
		AuctionID:    "auction1",
		RoundNumber:  1,
		Status:       model.RoundActive,
		BidIncrement: decimal.NewFromInt(10),
	})
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
