package auction

import (
	"fmt"

	"github.com/shopspring/decimal"

	"auction-backoffice/internal/auctionerrors"
	"auction-backoffice/internal/clock"
	"auction-backoffice/internal/engine"
	"auction-backoffice/internal/models"
	"auction-backoffice/internal/refresh"
	"auction-backoffice/internal/repository"
	"auction-backoffice/utils"
)

// AuctionService exposes the engine's derived views over the auction
// data service. It holds no derived state of its own; every call reads
// the current data and recomputes.
type AuctionService struct {
	repo repository.AuctionDB
	clk  clock.Clock
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, clk clock.Clock) *AuctionService {
	return &AuctionService{
		repo: repo,
		clk:  clk,
	}
}

// GetPhase classifies the auction's current lifecycle phase. A
// malformed time window is tolerated: the phase is still returned
// best-effort with WindowValid set to false.
func (s *AuctionService) GetPhase(auctionID string) (models.PhaseInfo, error) {
	if auctionID == "" {
		return models.PhaseInfo{}, fmt.Errorf("service: empty auction ID: %w", auctionerrors.ErrAuctionNotFound)
	}

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.PhaseInfo{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	info := models.PhaseInfo{
		AuctionID:   a.AuctionID,
		ObservedAt:  s.clk.Now(),
		WindowValid: true,
	}
	if werr := engine.ValidateWindow(a); werr != nil {
		info.WindowValid = false
		utils.Warn("service: auction window out of order, phase is best-effort", map[string]any{
			"auction_id": a.AuctionID,
			"error":      werr.Error(),
		})
	}
	info.Phase = engine.Phase(a, info.ObservedAt)

	return info, nil
}

// GetLeaderboard returns the full ranked bid list for a round.
func (s *AuctionService) GetLeaderboard(roundID string) ([]models.RankedBid, error) {
	ledger, _, err := s.roundLedger(roundID)
	if err != nil {
		return nil, err
	}
	return engine.Rank(ledger), nil
}

// GetWinningBids returns one ranked bid per asset tag: the current
// winner of each lot in the round.
func (s *AuctionService) GetWinningBids(roundID string) ([]models.RankedBid, error) {
	ledger, _, err := s.roundLedger(roundID)
	if err != nil {
		return nil, err
	}
	return engine.WinningBids(ledger), nil
}

// GetStatistics returns the round's aggregate metrics.
func (s *AuctionService) GetStatistics(roundID string) (models.RoundStatistics, error) {
	ledger, round, err := s.roundLedger(roundID)
	if err != nil {
		return models.RoundStatistics{}, err
	}
	return engine.Aggregate(ledger, round.BidIncrement), nil
}

// GetTimeline returns the round's narrated event sequence.
func (s *AuctionService) GetTimeline(roundID string) ([]models.TimelineEvent, error) {
	ledger, _, err := s.roundLedger(roundID)
	if err != nil {
		return nil, err
	}
	return engine.Timeline(ledger), nil
}

// Recompute performs one full derivation pass over a round. Used by
// the snapshot poller.
func (s *AuctionService) Recompute(roundID string) (refresh.Snapshot, error) {
	ledger, round, err := s.roundLedger(roundID)
	if err != nil {
		return refresh.Snapshot{}, err
	}
	return refresh.Snapshot{
		RoundID:     roundID,
		FetchedAt:   s.clk.Now(),
		Leaderboard: engine.Rank(ledger),
		WinningBids: engine.WinningBids(ledger),
		Statistics:  engine.Aggregate(ledger, round.BidIncrement),
		Timeline:    engine.Timeline(ledger),
	}, nil
}

// PlaceBid validates and records a bid on an asset lot within a round
func (s *AuctionService) PlaceBid(roundID, bidderName, citizenID, location, assetTag, createdBy string, price decimal.Decimal) (models.Bid, error) {
	if err := s.validateBid(roundID, bidderName, citizenID, assetTag, price); err != nil {
		return models.Bid{}, err
	}

	round, err := s.repo.GetRound(roundID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get round %s: %w", roundID, err)
	}
	if round.Status != models.RoundActive {
		return models.Bid{}, fmt.Errorf("service: round %s has status %s: %w", roundID, round.Status, auctionerrors.ErrRoundClosed)
	}

	if err := s.checkIncrement(round, assetTag, price); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:           utils.GenerateID(),
		RoundID:         roundID,
		BidderName:      bidderName,
		BidderCitizenID: citizenID,
		BidderLocation:  location,
		AssetTag:        assetTag,
		Price:           price,
		CreatedAt:       s.clk.Now().UTC(),
		CreatedBy:       createdBy,
	}

	if err := s.repo.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for round %s by %s: %w", roundID, citizenID, err)
	}

	return bid, nil
}

// validateBid checks input validity for bid intake
func (s *AuctionService) validateBid(roundID, bidderName, citizenID, assetTag string, price decimal.Decimal) error {
	if roundID == "" || bidderName == "" || citizenID == "" || assetTag == "" {
		return fmt.Errorf("service: %w - missing round, bidder or asset tag", auctionerrors.ErrInvalidBid)
	}
	if !price.IsPositive() {
		return fmt.Errorf("service: %w - non-positive bid price", auctionerrors.ErrInvalidBid)
	}
	return nil
}

// checkIncrement enforces the round's configured step: a bid on a lot
// that already has a winning bid must exceed it by at least the
// increment.
func (s *AuctionService) checkIncrement(round models.Round, assetTag string, price decimal.Decimal) error {
	ledger, _, err := s.roundLedger(round.RoundID)
	if err != nil {
		return err
	}
	for _, winner := range engine.WinningBids(ledger) {
		if winner.AssetTag != assetTag {
			continue
		}
		floor := winner.Price.Add(round.BidIncrement)
		if price.LessThan(floor) {
			return fmt.Errorf("service: %w - lot %s requires at least %s", auctionerrors.ErrBidTooLow, assetTag, floor.String())
		}
	}
	return nil
}

// roundLedger fetches a round and builds the ledger over its current
// bids, logging any malformed records that were dropped.
func (s *AuctionService) roundLedger(roundID string) (engine.Ledger, models.Round, error) {
	if roundID == "" {
		return engine.Ledger{}, models.Round{}, fmt.Errorf("service: empty round ID: %w", auctionerrors.ErrRoundNotFound)
	}

	round, err := s.repo.GetRound(roundID)
	if err != nil {
		return engine.Ledger{}, models.Round{}, fmt.Errorf("service: failed to get round %s: %w", roundID, err)
	}

	bids, err := s.repo.GetRoundBids(roundID)
	if err != nil {
		return engine.Ledger{}, models.Round{}, fmt.Errorf("service: failed to get bids for round %s: %w", roundID, err)
	}

	ledger, dropped := engine.NewLedger(bids)
	if len(dropped) > 0 {
		utils.Warn("service: dropped malformed bid records", map[string]any{
			"round_id": roundID,
			"dropped":  len(dropped),
			"reason":   dropped[0].Reason.Error(),
		})
	}

	return ledger, round, nil
}
