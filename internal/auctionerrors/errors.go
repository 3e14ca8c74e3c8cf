package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrRoundNotFound   = errors.New("round not found")
)

// business logic errors
var (
	ErrInvalidBid           = errors.New("invalid bid")
	ErrBidTooLow            = errors.New("bid amount too low")
	ErrRoundClosed          = errors.New("round is not accepting bids")
	ErrMalformedBid         = errors.New("malformed bid record")
	ErrInvalidAuctionWindow = errors.New("auction timestamps not in non-decreasing order")
)
