package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the administrative status of an auction, set by
// back-office staff independently of the time-derived phase.
type AuctionStatus string

const (
	AuctionDraft     AuctionStatus = "draft"
	AuctionPublished AuctionStatus = "published"
	AuctionCancelled AuctionStatus = "cancelled"
)

// Auction holds the configured lifecycle windows for one auction.
// Expected ordering: RegisterOpenAt <= RegisterEndAt <= StartAt <= EndAt.
type Auction struct {
	AuctionID      string        `json:"auction_id"`
	Title          string        `json:"title"`
	RegisterOpenAt time.Time     `json:"register_open_at"`
	RegisterEndAt  time.Time     `json:"register_end_at"`
	StartAt        time.Time     `json:"start_at"`
	EndAt          time.Time     `json:"end_at"`
	Status         AuctionStatus `json:"status"`
}

// Phase is one of five mutually-exclusive lifecycle states derived
// purely from the auction's configured time windows.
type Phase string

const (
	PhaseWaiting      Phase = "waiting"
	PhaseRegistration Phase = "registration"
	PhasePreparation  Phase = "preparation"
	PhaseLive         Phase = "live"
	PhaseFinished     Phase = "finished"
)

// PhaseInfo is the phase of an auction as observed at a given instant.
// WindowValid is false when the auction's timestamps are not in
// non-decreasing order; the phase is then best-effort.
type PhaseInfo struct {
	AuctionID   string    `json:"auction_id"`
	Phase       Phase     `json:"phase"`
	ObservedAt  time.Time `json:"observed_at"`
	WindowValid bool      `json:"window_valid"`
}

// RoundStatus is the lifecycle status of a bidding round.
type RoundStatus string

const (
	RoundPending   RoundStatus = "pending"
	RoundActive    RoundStatus = "active"
	RoundCompleted RoundStatus = "completed"
	RoundCancelled RoundStatus = "cancelled"
)

// Round is one bidding session within an auction, scoped to one or
// more asset lots. Bids belong to exactly one round.
type Round struct {
	RoundID      string          `json:"round_id"`
	AuctionID    string          `json:"auction_id"`
	RoundNumber  int             `json:"round_number"`
	Status       RoundStatus     `json:"status"`
	BidIncrement decimal.Decimal `json:"bid_increment"`
}

// Bid is one recorded bid. Bids are append-only; they are never
// mutated or deleted once recorded.
type Bid struct {
	BidID           string          `json:"bid_id"`
	RoundID         string          `json:"round_id"`
	BidderName      string          `json:"bidder_name"`
	BidderCitizenID string          `json:"bidder_citizen_id"`
	BidderLocation  string          `json:"bidder_location"`
	AssetTag        string          `json:"asset_tag"`
	Price           decimal.Decimal `json:"price"`
	CreatedAt       time.Time       `json:"created_at"`
	CreatedBy       string          `json:"created_by"`
}

// RankedBid is a Bid enriched with its position in the round-wide
// price ordering. Rank is 1-based and dense; IsWinning is true only
// for the highest bid of the bid's asset tag.
type RankedBid struct {
	Bid
	Rank               int           `json:"rank"`
	IsWinning          bool          `json:"is_winning"`
	TimeFromRoundStart time.Duration `json:"time_from_round_start"`
}

// RoundStatistics holds round-level aggregate metrics. All fields are
// zero values when the round has no bids.
type RoundStatistics struct {
	TotalBids         int             `json:"total_bids"`
	UniqueBidderCount int             `json:"unique_bidder_count"`
	HighestBid        decimal.Decimal `json:"highest_bid"`
	LowestBid         decimal.Decimal `json:"lowest_bid"`
	AverageBid        decimal.Decimal `json:"average_bid"`
	BidIncrement      decimal.Decimal `json:"bid_increment"`
	FirstBidAt        time.Time       `json:"first_bid_at"`
	LastBidAt         time.Time       `json:"last_bid_at"`
	TopBidderLocation string          `json:"top_bidder_location"`
}

// EventKind classifies timeline events.
type EventKind string

const (
	EventRoundStarted EventKind = "round_started"
	EventBidPlaced    EventKind = "bid_placed"
	EventMilestone    EventKind = "milestone"
)

// TimelineEvent is one narrated entry in a round's chronological
// timeline. Bid-specific fields are empty for milestone events and
// BidCount is zero for bid events.
type TimelineEvent struct {
	Kind        EventKind       `json:"kind"`
	At          time.Time       `json:"at"`
	Message     string          `json:"message"`
	BidID       string          `json:"bid_id,omitempty"`
	AssetTag    string          `json:"asset_tag,omitempty"`
	BidderName  string          `json:"bidder_name,omitempty"`
	Price       decimal.Decimal `json:"price,omitempty"`
	IsNewRecord bool            `json:"is_new_record,omitempty"`
	BidCount    int             `json:"bid_count,omitempty"`
}
