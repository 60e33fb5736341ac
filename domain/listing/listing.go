package listing

import (
	"time"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
)

// SaleMode selects the sale protocol of a listing. It is set at creation and
// never changes afterwards.
type SaleMode string

const (
	SaleModeFixedPrice SaleMode = "fixedPrice"
	SaleModeAuction    SaleMode = "auction"
)

func (m SaleMode) IsValid() bool {
	return m == SaleModeFixedPrice || m == SaleModeAuction
}

type Id struct {
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
}

// Listing is the registry record for one custodied token. A listing exists
// for a token iff the marketplace currently holds custody of that token.
type Listing struct {
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller          domain.Address `json:"seller" bson:"seller"`
	Mode            SaleMode       `json:"mode" bson:"mode"`

	// fixed price terms
	Price domain.Amount `json:"price,omitempty" bson:"price,omitempty"`

	// auction terms
	StartingBid    domain.Amount `json:"startingBid,omitempty" bson:"startingBid,omitempty"`
	BuyoutPrice    domain.Amount `json:"buyoutPrice,omitempty" bson:"buyoutPrice,omitempty"`
	AuctionEndTime time.Time     `json:"auctionEndTime,omitempty" bson:"auctionEndTime,omitempty"`

	// CurrentBid is always exactly the amount escrowed on behalf of
	// CurrentBidder. Empty bidder means no standing bid.
	CurrentBidder domain.Address `json:"currentBidder,omitempty" bson:"currentBidder,omitempty"`
	CurrentBid    domain.Amount  `json:"currentBid,omitempty" bson:"currentBid,omitempty"`

	DisplayPrice string    `json:"displayPrice" bson:"displayPrice"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

func (l *Listing) ToId() Id {
	return Id{
		ChainId:         l.ChainId,
		ContractAddress: l.ContractAddress,
		TokenId:         l.TokenId,
	}
}

func (l *Listing) LowerCase() {
	l.ContractAddress = l.ContractAddress.ToLower()
	l.Seller = l.Seller.ToLower()
	l.CurrentBidder = l.CurrentBidder.ToLower()
}

func (l *Listing) HasBidder() bool {
	return !l.CurrentBidder.IsEmpty()
}

type Patchable struct {
	CurrentBidder *domain.Address `json:"currentBidder" bson:"currentBidder,omitempty"`
	CurrentBid    *domain.Amount  `json:"currentBid" bson:"currentBid,omitempty"`
	DisplayPrice  *string         `json:"displayPrice" bson:"displayPrice,omitempty"`
}

type FindAllOptions struct {
	ChainId         *domain.ChainId
	ContractAddress *domain.Address
	Seller          *domain.Address
	Mode            *SaleMode
	EndTimeLT       *time.Time
	Offset          *int32
	Limit           *int32
	Sort            *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithContractAddress(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ContractAddress = address.ToLowerPtr()
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithMode(mode SaleMode) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Mode = &mode
		return nil
	}
}

func WithEndTimeLT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeLT = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

// Repo is the listing registry. Insert requires that no live listing exists
// for the id and Remove requires that one does.
type Repo interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	Insert(ctx ctx.Ctx, l *Listing) error
	Update(ctx ctx.Ctx, id Id, patchable Patchable) error
	Remove(ctx ctx.Ctx, id Id) error
}

type UseCase interface {
	Get(ctx ctx.Ctx, id Id) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	ListFixedPrice(ctx ctx.Ctx, seller domain.Address, id Id, price domain.Amount) (*Listing, error)
	ListAuction(ctx ctx.Ctx, seller domain.Address, id Id, startingBid, buyoutPrice domain.Amount, duration time.Duration) (*Listing, error)
	Buy(ctx ctx.Ctx, buyer domain.Address, id Id, paid domain.Amount) error
	PlaceBid(ctx ctx.Ctx, bidder domain.Address, id Id, amount domain.Amount) error
	BuyNow(ctx ctx.Ctx, bidder domain.Address, id Id) error
	EndAuction(ctx ctx.Ctx, caller domain.Address, id Id) error
}
