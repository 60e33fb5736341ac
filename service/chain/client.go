package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/log"
)

var ErrUnsupportedChain = errors.New("unsupported chain")
var ErrNoOperatorKey = errors.New("no operator key configured")

type ClientCfg struct {
	RpcUrls map[int32]string
	// OperatorKey signs custody transfer transactions. Hex encoded, no 0x
	// prefix. Optional for read-only deployments.
	OperatorKey string
}

type Client interface {
	// Call performs a read-only contract call and unpacks the result.
	Call(bCtx.Ctx, int32, common.Address, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// Transact sends a state-changing transaction signed by the operator
	// key and waits for it to be mined.
	Transact(bCtx.Ctx, int32, common.Address, abi.ABI, string, ...interface{}) error
	// OperatorAddress is the address the operator key controls.
	OperatorAddress() (common.Address, error)
}

type clientImpl struct {
	clients     map[int32]*ethclient.Client
	operatorKey *ecdsa.PrivateKey
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}

	var key *ecdsa.PrivateKey
	if len(cfg.OperatorKey) > 0 {
		k, err := crypto.HexToECDSA(cfg.OperatorKey)
		if err != nil {
			ctx.WithField("err", err).Error("failed to parse operator key")
			return nil, err
		}
		key = k
	}

	return &clientImpl{
		clients:     clients,
		operatorKey: key,
	}, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) error {
	client, ok := c.clients[chainId]
	if !ok {
		return ErrUnsupportedChain
	}
	if c.operatorKey == nil {
		return ErrNoOperatorKey
	}

	opts, err := bind.NewKeyedTransactorWithChainID(c.operatorKey, big.NewInt(int64(chainId)))
	if err != nil {
		ctx.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return err
	}
	opts.Context = ctx

	contract := bind.NewBoundContract(addr, _abi, client, client, client)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("contract.Transact failed")
		return err
	}

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"txHash": tx.Hash().Hex(),
			"err":    err,
		}).Error("bind.WaitMined failed")
		return err
	}
	if receipt.Status == 0 {
		ctx.WithField("txHash", tx.Hash().Hex()).Error("transaction reverted")
		return errors.New("transaction reverted")
	}
	return nil
}

func (c *clientImpl) OperatorAddress() (common.Address, error) {
	if c.operatorKey == nil {
		return common.Address{}, ErrNoOperatorKey
	}
	return crypto.PubkeyToAddress(c.operatorKey.PublicKey), nil
}
