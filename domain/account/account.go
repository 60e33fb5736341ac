package account

import (
	"errors"
	"time"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
)

var (
	// ErrInvalidNonce is returned when no nonce was issued for the address
	ErrInvalidNonce = errors.New("invalid nonce")
	// ErrInvalidSignature is returned when the signature does not recover
	// to the address
	ErrInvalidSignature = errors.New("invalid signature")
)

// Account is a marketplace principal stored in database
type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Alias     string         `json:"alias" bson:"alias"`
	Nonce     int32          `json:"nonce" bson:"nonce"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type Updater struct {
	Alias     *string    `bson:"alias,omitempty"`
	Nonce     *int32     `bson:"nonce,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

type Repo interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
	Insert(ctx ctx.Ctx, a *Account) error
	Update(ctx ctx.Ctx, address domain.Address, updater *Updater) error
}

type Usecase interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
	Create(ctx ctx.Ctx, address domain.Address) (*Account, error)
	// GenerateNonce issues a fresh signing nonce for the address, creating
	// the account on first touch.
	GenerateNonce(ctx ctx.Ctx, address domain.Address) (int32, error)
	// ValidateSignature verifies the signature over the nonce message and
	// consumes the nonce.
	ValidateSignature(ctx ctx.Ctx, address domain.Address, signature string) error
}
