package usecase

import (
	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/log"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/escrow"
)

type LedgerUseCaseCfg struct {
	LedgerRepo escrow.Repo
}

type impl struct {
	ledgerRepo escrow.Repo
}

// New builds the escrow ledger. Transaction boundaries belong to the caller:
// every method issues plain repo operations so it can participate in the
// caller's mongo transaction.
func New(cfg *LedgerUseCaseCfg) escrow.Ledger {
	return &impl{
		ledgerRepo: cfg.LedgerRepo,
	}
}

func (im *impl) BalanceOf(ctx ctx.Ctx, address domain.Address) (domain.Amount, error) {
	acc, err := im.ledgerRepo.Get(ctx, address)
	if err == domain.ErrNotFound {
		return domain.ZeroAmount, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to ledgerRepo.Get")
		return domain.ZeroAmount, err
	}
	return acc.Balance, nil
}

func (im *impl) Deposit(ctx ctx.Ctx, address domain.Address, amount domain.Amount) error {
	value, err := amount.BigInt()
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	if value.Sign() <= 0 {
		return domain.ErrWrongAmount
	}

	if err := im.ledgerRepo.Credit(ctx, address, value); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"amount":  amount,
		}).Error("failed to ledgerRepo.Credit")
		return err
	}
	return nil
}

func (im *impl) Withdraw(ctx ctx.Ctx, address domain.Address, amount domain.Amount) error {
	value, err := amount.BigInt()
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	if value.Sign() <= 0 {
		return domain.ErrWrongAmount
	}

	if err := im.ledgerRepo.Debit(ctx, address, value); err != nil {
		if err != domain.ErrInsufficientFunds {
			ctx.WithFields(log.Fields{
				"err":     err,
				"address": address,
				"amount":  amount,
			}).Error("failed to ledgerRepo.Debit")
		}
		return err
	}
	return nil
}

func (im *impl) Transfer(ctx ctx.Ctx, from, to domain.Address, amount domain.Amount) error {
	value, err := amount.BigInt()
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	if value.Sign() == 0 {
		// nothing to move
		return nil
	}
	if value.Sign() < 0 {
		return domain.ErrWrongAmount
	}

	if err := im.ledgerRepo.Debit(ctx, from, value); err != nil {
		if err != domain.ErrInsufficientFunds {
			ctx.WithFields(log.Fields{
				"err":    err,
				"from":   from,
				"amount": amount,
			}).Error("failed to ledgerRepo.Debit")
		}
		return err
	}

	if err := im.ledgerRepo.Credit(ctx, to, value); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount,
		}).Error("failed to ledgerRepo.Credit")
		return err
	}
	return nil
}
