package account

import (
	"time"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
)

// ActivityHistoryType names every event the listing state machine emits.
type ActivityHistoryType string

const (
	ActivityHistoryTypeList          ActivityHistoryType = "list"
	ActivityHistoryTypeCreateAuction ActivityHistoryType = "createAuction"
	ActivityHistoryTypeSold          ActivityHistoryType = "sold"
	ActivityHistoryTypePlaceBid      ActivityHistoryType = "placeBid"
	ActivityHistoryTypeBidRefunded   ActivityHistoryType = "bidRefunded"
	ActivityHistoryTypeWonAuction    ActivityHistoryType = "wonAuction"
	ActivityHistoryTypeResultAuction ActivityHistoryType = "resultAuction"
	// auction ended with no standing bid, token returned to seller
	ActivityHistoryTypeAuctionNoSale ActivityHistoryType = "auctionNoSale"
)

// ActivityHistory is one emitted event, inserted in the same transaction as
// the transition that produced it.
type ActivityHistory struct {
	ReceiptId       string              `json:"receiptId" bson:"receiptId"`
	ChainId         domain.ChainId      `json:"chainId" bson:"chainId"`
	ContractAddress domain.Address      `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId      `json:"tokenId" bson:"tokenId"`
	Type            ActivityHistoryType `json:"type" bson:"type"`
	Account         domain.Address      `json:"account" bson:"account"`
	To              domain.Address      `json:"to" bson:"to"`
	Price           domain.Amount       `json:"price" bson:"price"`
	DisplayPrice    string              `json:"displayPrice" bson:"displayPrice"`
	Time            time.Time           `json:"time" bson:"time"`
}

type ActivityHistoryFindAllOptions struct {
	ChainId         *domain.ChainId
	ContractAddress *domain.Address
	TokenId         *domain.TokenId
	Account         *domain.Address
	Types           []ActivityHistoryType
	Offset          *int32
	Limit           *int32
}

type ActivityHistoryFindAllOptionsFunc func(*ActivityHistoryFindAllOptions) error

func GetActivityHistoryFindAllOptions(opts ...ActivityHistoryFindAllOptionsFunc) (ActivityHistoryFindAllOptions, error) {
	res := ActivityHistoryFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func ActivityHistoryWithChainId(chainId domain.ChainId) ActivityHistoryFindAllOptionsFunc {
	return func(options *ActivityHistoryFindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func ActivityHistoryWithToken(contract domain.Address, tokenId domain.TokenId) ActivityHistoryFindAllOptionsFunc {
	return func(options *ActivityHistoryFindAllOptions) error {
		options.ContractAddress = contract.ToLowerPtr()
		options.TokenId = &tokenId
		return nil
	}
}

func ActivityHistoryWithAccount(account domain.Address) ActivityHistoryFindAllOptionsFunc {
	return func(options *ActivityHistoryFindAllOptions) error {
		options.Account = account.ToLowerPtr()
		return nil
	}
}

func ActivityHistoryWithTypes(types ...ActivityHistoryType) ActivityHistoryFindAllOptionsFunc {
	return func(options *ActivityHistoryFindAllOptions) error {
		options.Types = types
		return nil
	}
}

func ActivityHistoryWithPagination(offset, limit int32) ActivityHistoryFindAllOptionsFunc {
	return func(options *ActivityHistoryFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type ActivityHistoryRepo interface {
	Insert(ctx ctx.Ctx, activity *ActivityHistory) error
	FindActivities(ctx ctx.Ctx, opts ...ActivityHistoryFindAllOptionsFunc) ([]*ActivityHistory, error)
	CountActivities(ctx ctx.Ctx, opts ...ActivityHistoryFindAllOptionsFunc) (int, error)
}
