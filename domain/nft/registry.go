package nft

import (
	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
)

// Registry is the external asset registry the marketplace custodies tokens
// through. Every call is fallible; a rejected transfer must abort the whole
// transition before any registry bookkeeping becomes visible.
type Registry interface {
	OwnerOf(ctx ctx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId) (domain.Address, error)
	IsApprovedForAll(ctx ctx.Ctx, chainId domain.ChainId, contract domain.Address, owner, operator domain.Address) (bool, error)
	TransferFrom(ctx ctx.Ctx, chainId domain.ChainId, contract domain.Address, from, to domain.Address, tokenId domain.TokenId) error
}
