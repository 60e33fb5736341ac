package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")

	// validation errors
	ErrInvalidPrice         = errors.New("price must be positive")
	ErrInvalidAuctionBounds = errors.New("buyout price must exceed starting bid")
	ErrInvalidDuration      = errors.New("auction duration must be positive")
	ErrWrongAmount          = errors.New("paid amount does not match listing price")

	// lifecycle precondition errors
	ErrWrongSaleMode     = errors.New("operation not allowed for this sale mode")
	ErrAuctionClosed     = errors.New("auction already closed")
	ErrAuctionStillOpen  = errors.New("auction has not closed yet")
	ErrBidTooLow         = errors.New("bid too low")
	ErrMarketplacePaused = errors.New("marketplace is paused")

	// authorization errors
	ErrNotTokenOwner       = errors.New("caller does not own the token")
	ErrNotApproved         = errors.New("marketplace is not approved for the token")
	ErrNotMarketplaceOwner = errors.New("caller is not the marketplace owner")

	// transfer errors surfaced by the custody and escrow bridge
	ErrTransferRejected  = errors.New("token transfer rejected")
	ErrInsufficientFunds = errors.New("insufficient balance")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)
