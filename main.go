package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	auction "auction-backoffice/internal/auctionService"
	"auction-backoffice/internal/clock"
	"auction-backoffice/internal/config"
	model "auction-backoffice/internal/models"
	"auction-backoffice/internal/refresh"
	"auction-backoffice/internal/repository"
	"auction-backoffice/internal/server"
	"auction-backoffice/utils"

	"github.com/shopspring/decimal"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := loadConfig(*configPath)
	utils.SetLogLevel(cfg.Logging.Level)

	repo := repository.NewMemoryRepo()
	seedSampleData(repo)

	auctionSvc := auction.NewAuctionService(repo, clock.Real{})

	cache := refresh.NewCache()
	rounds := cfg.Refresh.Rounds
	if len(rounds) == 0 {
		rounds = []string{"round1"}
	}
	poller := refresh.NewPoller(auctionSvc, cache, rounds, cfg.Refresh.Interval())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	router := server.SetupRouter(auctionSvc, cache)

	addr := getAddr(cfg)
	fmt.Printf("Starting auction back-office server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the YAML config when a path is given, defaults otherwise
func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// seedSampleData adds a sample auction with one active round to the in-memory repo
func seedSampleData(repo *repository.MemoryRepo) {
	now := time.Now().UTC()
	repo.AddAuction(model.Auction{
		AuctionID:      "auction1",
		Title:          "Sample asset disposal auction",
		RegisterOpenAt: now.Add(-48 * time.Hour),
		RegisterEndAt:  now.Add(-24 * time.Hour),
		StartAt:        now.Add(-1 * time.Hour),
		EndAt:          now.Add(6 * time.Hour),
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

// getAddr returns the listen address from env or config
func getAddr(cfg *config.Config) string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return cfg.Server.Addr()
}
