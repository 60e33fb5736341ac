package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/nftvault/marketapi/base/abi"
	bCtx "github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/nft"
	"github.com/nftvault/marketapi/service/chain"
)

// Erc721 adapts an erc721 token contract to the asset registry the listing
// state machine custodies tokens through.
type Erc721 struct {
	chainService      chain.Client
	abi               ethabi.ABI
	erc721InterfaceId [4]byte
}

func NewErc721(chainService chain.Client) nft.Registry {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &Erc721{
		abi:               baseabi.ERC721TokenABI,
		chainService:      chainService,
		erc721InterfaceId: interfaceId,
	}
}

func (e *Erc721) Supports721Interface(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (bool, error) {
	method := "supportsInterface"
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(addr)), e.abi, method, e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	id, ok := new(big.Int).SetString(tokenId.String(), 10)
	if !ok {
		return "", domain.ErrInvalidNumberFormat
	}
	method := "ownerOf"
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(contract)), e.abi, method, id)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).String()).ToLower(), nil
}

func (e *Erc721) IsApprovedForAll(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, owner, operator domain.Address) (bool, error) {
	method := "isApprovedForAll"
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(contract)), e.abi, method,
		common.HexToAddress(string(owner)), common.HexToAddress(string(operator)))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) TransferFrom(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, from, to domain.Address, tokenId domain.TokenId) error {
	id, ok := new(big.Int).SetString(tokenId.String(), 10)
	if !ok {
		return domain.ErrInvalidNumberFormat
	}
	method := "transferFrom"
	if err := e.chainService.Transact(ctx, int32(chainId), common.HexToAddress(string(contract)), e.abi, method,
		common.HexToAddress(string(from)), common.HexToAddress(string(to)), id); err != nil {
		ctx.WithField("err", err).Error("chainService.Transact failed")
		return domain.ErrTransferRejected
	}
	return nil
}
