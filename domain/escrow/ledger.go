package escrow

import (
	"math/big"
	"time"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
)

// internal principals owned by the marketplace itself
const (
	EscrowAddress   = domain.Address("marketplace:escrow")
	TreasuryAddress = domain.Address("marketplace:treasury")
)

// Account holds the funds the marketplace keeps on behalf of a principal.
type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Balance   domain.Amount  `json:"balance" bson:"balance"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
	// Credit adds amount to the account, creating it when absent.
	Credit(ctx ctx.Ctx, address domain.Address, amount *big.Int) error
	// Debit subtracts amount. Returns domain.ErrInsufficientFunds when the
	// balance cannot cover it; the account is left untouched in that case.
	Debit(ctx ctx.Ctx, address domain.Address, amount *big.Int) error
}

// Ledger is the value transfer primitive of the custody and escrow bridge.
// Every movement is fallible and must abort the surrounding transition on
// failure.
type Ledger interface {
	BalanceOf(ctx ctx.Ctx, address domain.Address) (domain.Amount, error)
	Deposit(ctx ctx.Ctx, address domain.Address, amount domain.Amount) error
	Withdraw(ctx ctx.Ctx, address domain.Address, amount domain.Amount) error
	// Transfer moves amount from one principal to another atomically with
	// respect to the surrounding mongo transaction.
	Transfer(ctx ctx.Ctx, from, to domain.Address, amount domain.Amount) error
}
