package usecase

import (
	bCtx "github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/log"
	"github.com/nftvault/marketapi/base/ptr"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/escrow"
	"github.com/nftvault/marketapi/domain/marketplace"
	"github.com/nftvault/marketapi/service/query"
)

type MarketplaceUseCaseCfg struct {
	SettingsRepo marketplace.Repo
	Ledger       escrow.Ledger
	Q            query.Mongo
}

type impl struct {
	settingsRepo marketplace.Repo
	ledger       escrow.Ledger
	q            query.Mongo
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		settingsRepo: cfg.SettingsRepo,
		ledger:       cfg.Ledger,
		q:            cfg.Q,
	}
}

func (im *impl) Get(ctx bCtx.Ctx) (*marketplace.Settings, error) {
	settings, err := im.settingsRepo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to settingsRepo.Get")
		return nil, err
	}
	return settings, nil
}

func (im *impl) requireOwner(ctx bCtx.Ctx, caller domain.Address) (*marketplace.Settings, error) {
	settings, err := im.settingsRepo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to settingsRepo.Get")
		return nil, err
	}
	if !settings.Owner.Equals(caller) {
		return nil, domain.ErrNotMarketplaceOwner
	}
	return settings, nil
}

func (im *impl) Pause(ctx bCtx.Ctx, caller domain.Address) error {
	if _, err := im.requireOwner(ctx, caller); err != nil {
		return err
	}

	if err := im.settingsRepo.Update(ctx, marketplace.Patchable{Paused: ptr.Bool(true)}); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to settingsRepo.Update")
		return err
	}
	return nil
}

func (im *impl) Unpause(ctx bCtx.Ctx, caller domain.Address) error {
	if _, err := im.requireOwner(ctx, caller); err != nil {
		return err
	}

	if err := im.settingsRepo.Update(ctx, marketplace.Patchable{Paused: ptr.Bool(false)}); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to settingsRepo.Update")
		return err
	}
	return nil
}

func (im *impl) SetFeeRate(ctx bCtx.Ctx, caller domain.Address, bps int64) error {
	if bps < 0 || bps > marketplace.MaxFeeRateBps {
		return domain.ErrBadParamInput
	}

	if _, err := im.requireOwner(ctx, caller); err != nil {
		return err
	}

	if err := im.settingsRepo.Update(ctx, marketplace.Patchable{FeeRateBps: &bps}); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"bps": bps,
		}).Error("failed to settingsRepo.Update")
		return err
	}
	return nil
}

func (im *impl) TransferOwnership(ctx bCtx.Ctx, caller, newOwner domain.Address) error {
	if newOwner.IsEmpty() || newOwner.Equals(domain.EmptyAddress) {
		return domain.ErrInvalidAddress
	}

	if _, err := im.requireOwner(ctx, caller); err != nil {
		return err
	}

	owner := newOwner.ToLower()
	if err := im.settingsRepo.Update(ctx, marketplace.Patchable{Owner: &owner}); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"newOwner": newOwner,
		}).Error("failed to settingsRepo.Update")
		return err
	}
	return nil
}

func (im *impl) WithdrawFees(ctx bCtx.Ctx, caller, to domain.Address, amount domain.Amount) error {
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if !amount.IsPositive() {
		return domain.ErrWrongAmount
	}

	if _, err := im.requireOwner(ctx, caller); err != nil {
		return err
	}

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		if err := im.ledger.Transfer(ctx, escrow.TreasuryAddress, to, amount); err != nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"to":     to,
				"amount": amount,
			}).Error("failed to ledger.Transfer")
			return err
		}
		return nil
	})
}
