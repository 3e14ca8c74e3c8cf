package repository

import (
	"fmt"
	"sync"

	"auction-backoffice/internal/auctionerrors"
	model "auction-backoffice/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB is the auction data service the engine reads from. The
// back office owns no persisted state; everything derived is recomputed
// from this interface's current data.
type AuctionDB interface {
	GetAuction(auctionID string) (model.Auction, error)
	GetRound(roundID string) (model.Round, error)
	GetRoundBids(roundID string) ([]model.Bid, error)
	RecordBid(bid model.Bid) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	rounds   map[string]model.Round   // key: roundID
	bids     map[string][]model.Bid   // key: roundID -> bids in insertion order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
		rounds:   make(map[string]model.Round),
		bids:     make(map[string][]model.Bid),
	}
}

// GetAuction returns the auction's configured windows and status
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// GetRound returns one bidding round by ID
func (r *MemoryRepo) GetRound(roundID string) (model.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rd, ok := r.rounds[roundID]
	if !ok {
		return model.Round{}, fmt.Errorf("get round %s: %w", roundID, auctionerrors.ErrRoundNotFound)
	}
	return rd, nil
}

// GetRoundBids returns all bids recorded for a round. A known round
// with no bids yields an empty slice, not an error.
func (r *MemoryRepo) GetRoundBids(roundID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.rounds[roundID]; !ok {
		return nil, fmt.Errorf("get bids for round %s: %w", roundID, auctionerrors.ErrRoundNotFound)
	}
	return append([]model.Bid(nil), r.bids[roundID]...), nil
}

// RecordBid appends a bid to its round. Bids are append-only.
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rounds[bid.RoundID]; !ok {
		return fmt.Errorf("record bid for round %s: %w", bid.RoundID, auctionerrors.ErrRoundNotFound)
	}
	r.bids[bid.RoundID] = append(r.bids[bid.RoundID], bid)
	return nil
}

// AddAuction seeds an auction. Intended for startup seeding and tests.
func (r *MemoryRepo) AddAuction(a model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.AuctionID] = a
}

// AddRound seeds a round. Intended for startup seeding and tests.
func (r *MemoryRepo) AddRound(rd model.Round) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rounds[rd.RoundID] = rd
}
