package marketplace

import (
	"time"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
)

// MaxFeeRateBps caps the configurable sale fee at 100%.
const MaxFeeRateBps = int64(10000)

// Settings is the single administrative record of the marketplace.
type Settings struct {
	Owner      domain.Address `json:"owner" bson:"owner"`
	Paused     bool           `json:"paused" bson:"paused"`
	FeeRateBps int64          `json:"feeRateBps" bson:"feeRateBps"`
	UpdatedAt  time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Patchable struct {
	Owner      *domain.Address `json:"owner" bson:"owner,omitempty"`
	Paused     *bool           `json:"paused" bson:"paused,omitempty"`
	FeeRateBps *int64          `json:"feeRateBps" bson:"feeRateBps,omitempty"`
}

type Repo interface {
	Get(ctx ctx.Ctx) (*Settings, error)
	Update(ctx ctx.Ctx, patchable Patchable) error
}

type UseCase interface {
	Get(ctx ctx.Ctx) (*Settings, error)
	Pause(ctx ctx.Ctx, caller domain.Address) error
	Unpause(ctx ctx.Ctx, caller domain.Address) error
	SetFeeRate(ctx ctx.Ctx, caller domain.Address, bps int64) error
	TransferOwnership(ctx ctx.Ctx, caller, newOwner domain.Address) error
	// WithdrawFees moves the accumulated treasury balance to the given
	// address inside the escrow ledger.
	WithdrawFees(ctx ctx.Ctx, caller, to domain.Address, amount domain.Amount) error
}
