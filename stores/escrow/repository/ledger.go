package repository

import (
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/log"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/escrow"
	"github.com/nftvault/marketapi/service/query"
)

type ledgerRepoImpl struct {
	q query.Mongo
}

func NewLedgerRepo(q query.Mongo) escrow.Repo {
	return &ledgerRepoImpl{q}
}

func (im *ledgerRepoImpl) Get(ctx ctx.Ctx, address domain.Address) (*escrow.Account, error) {
	qry := bson.M{"address": address.ToLower()}

	res := escrow.Account{}
	err := im.q.FindOne(ctx, domain.TableLedgerAccounts, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

// Credit adds amount to the balance of address, creating the account when it
// does not exist yet. Reads and writes are expected to run inside the
// surrounding mongo transaction.
func (im *ledgerRepoImpl) Credit(ctx ctx.Ctx, address domain.Address, amount *big.Int) error {
	balance := new(big.Int)
	acc, err := im.Get(ctx, address)
	if err == nil {
		if balance, err = acc.Balance.BigInt(); err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"address": address,
				"balance": acc.Balance,
			}).Error("stored balance is not a number")
			return err
		}
	} else if err != domain.ErrNotFound {
		return err
	}

	next := escrow.Account{
		Address:   address.ToLower(),
		Balance:   domain.AmountFromBigInt(new(big.Int).Add(balance, amount)),
		UpdatedAt: time.Now(),
	}

	selector := bson.M{"address": address.ToLower()}
	if err := im.q.Upsert(ctx, domain.TableLedgerAccounts, selector, &next); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"account":  next,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

// Debit subtracts amount from the balance of address. The account is left
// untouched when the balance cannot cover the amount.
func (im *ledgerRepoImpl) Debit(ctx ctx.Ctx, address domain.Address, amount *big.Int) error {
	acc, err := im.Get(ctx, address)
	if err == domain.ErrNotFound {
		return domain.ErrInsufficientFunds
	} else if err != nil {
		return err
	}

	balance, err := acc.Balance.BigInt()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"balance": acc.Balance,
		}).Error("stored balance is not a number")
		return err
	}

	if balance.Cmp(amount) < 0 {
		return domain.ErrInsufficientFunds
	}

	next := escrow.Account{
		Address:   address.ToLower(),
		Balance:   domain.AmountFromBigInt(new(big.Int).Sub(balance, amount)),
		UpdatedAt: time.Now(),
	}

	selector := bson.M{"address": address.ToLower()}
	if err := im.q.Upsert(ctx, domain.TableLedgerAccounts, selector, &next); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"account":  next,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
