package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	bCtx "github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/base/log"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/account"
	"github.com/nftvault/marketapi/domain/escrow"
	"github.com/nftvault/marketapi/domain/listing"
	"github.com/nftvault/marketapi/domain/marketplace"
	"github.com/nftvault/marketapi/domain/nft"
	"github.com/nftvault/marketapi/service/query"
)

// base units per displayed token
const displayDecimals = 18

type ListingUseCaseCfg struct {
	ListingRepo         listing.Repo
	Ledger              escrow.Ledger
	Registry            nft.Registry
	SettingsRepo        marketplace.Repo
	ActivityHistoryRepo account.ActivityHistoryRepo
	Q                   query.Mongo

	// CustodyAddress is the registry account tokens are held under while
	// listed
	CustodyAddress domain.Address
}

type impl struct {
	listingRepo         listing.Repo
	ledger              escrow.Ledger
	registry            nft.Registry
	settingsRepo        marketplace.Repo
	activityHistoryRepo account.ActivityHistoryRepo
	q                   query.Mongo
	custodyAddress      domain.Address
	nowFn               func() time.Time
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		listingRepo:         cfg.ListingRepo,
		ledger:              cfg.Ledger,
		registry:            cfg.Registry,
		settingsRepo:        cfg.SettingsRepo,
		activityHistoryRepo: cfg.ActivityHistoryRepo,
		q:                   cfg.Q,
		custodyAddress:      cfg.CustodyAddress.ToLower(),
		nowFn:               time.Now,
	}
}

func (im *impl) Get(ctx bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	res, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to listingRepo.FindOne")
		}
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(ctx bCtx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	res, err := im.listingRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to listingRepo.FindAll")
		return nil, err
	}
	return res, nil
}

// requireActive loads marketplace settings and rejects every state
// transition while the marketplace is paused.
func (im *impl) requireActive(ctx bCtx.Ctx) (*marketplace.Settings, error) {
	settings, err := im.settingsRepo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to settingsRepo.Get")
		return nil, err
	}
	if settings.Paused {
		return nil, domain.ErrMarketplacePaused
	}
	return settings, nil
}

// requireCustodiable checks the seller owns the token and the custody
// account is approved to move it.
func (im *impl) requireCustodiable(ctx bCtx.Ctx, seller domain.Address, id listing.Id) error {
	owner, err := im.registry.OwnerOf(ctx, id.ChainId, id.ContractAddress, id.TokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to registry.OwnerOf")
		return err
	}
	if !owner.Equals(seller) {
		return domain.ErrNotTokenOwner
	}

	approved, err := im.registry.IsApprovedForAll(ctx, id.ChainId, id.ContractAddress, seller, im.custodyAddress)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to registry.IsApprovedForAll")
		return err
	}
	if !approved {
		return domain.ErrNotApproved
	}
	return nil
}

// feeSplit cuts the marketplace fee out of price. net goes to the seller,
// fee to the treasury.
func feeSplit(price *big.Int, feeRateBps int64) (net, fee *big.Int) {
	fee = new(big.Int).Mul(price, big.NewInt(feeRateBps))
	fee.Div(fee, big.NewInt(marketplace.MaxFeeRateBps))
	net = new(big.Int).Sub(price, fee)
	return net, fee
}

func displayPrice(amount domain.Amount) string {
	value, err := amount.BigInt()
	if err != nil {
		return ""
	}
	return decimal.NewFromBigInt(value, -displayDecimals).String()
}

func (im *impl) emitActivity(ctx bCtx.Ctx, id listing.Id, typ account.ActivityHistoryType, from, to domain.Address, price domain.Amount) error {
	activity := &account.ActivityHistory{
		ReceiptId:       uuid.New().String(),
		ChainId:         id.ChainId,
		ContractAddress: id.ContractAddress.ToLower(),
		TokenId:         id.TokenId,
		Type:            typ,
		Account:         from.ToLower(),
		To:              to.ToLower(),
		Price:           price,
		DisplayPrice:    displayPrice(price),
		Time:            im.nowFn(),
	}
	if err := im.activityHistoryRepo.Insert(ctx, activity); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"activity": *activity,
		}).Error("failed to activityHistoryRepo.Insert")
		return err
	}
	return nil
}

func (im *impl) ListFixedPrice(ctx bCtx.Ctx, seller domain.Address, id listing.Id, price domain.Amount) (*listing.Listing, error) {
	if _, err := im.requireActive(ctx); err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}
	if err := im.requireCustodiable(ctx, seller, id); err != nil {
		return nil, err
	}

	l := &listing.Listing{
		ChainId:         id.ChainId,
		ContractAddress: id.ContractAddress,
		TokenId:         id.TokenId,
		Seller:          seller,
		Mode:            listing.SaleModeFixedPrice,
		Price:           price,
		DisplayPrice:    displayPrice(price),
		CreatedAt:       im.nowFn(),
	}

	err := im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		if _, err := im.listingRepo.FindOne(ctx, id); err == nil {
			return domain.ErrConflict
		} else if err != domain.ErrNotFound {
			return err
		}

		if err := im.listingRepo.Insert(ctx, l); err != nil {
			return err
		}
		if err := im.emitActivity(ctx, id, account.ActivityHistoryTypeList, seller, domain.Address(""), price); err != nil {
			return err
		}
		// taking custody is the final step so a rejected transfer aborts
		// the registry mutation as a whole
		if err := im.registry.TransferFrom(ctx, id.ChainId, id.ContractAddress, seller, im.custodyAddress, id.TokenId); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (im *impl) ListAuction(ctx bCtx.Ctx, seller domain.Address, id listing.Id, startingBid, buyoutPrice domain.Amount, duration time.Duration) (*listing.Listing, error) {
	if _, err := im.requireActive(ctx); err != nil {
		return nil, err
	}
	if !startingBid.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}
	if duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	if buyoutPrice != "" {
		if cmp, err := buyoutPrice.Cmp(startingBid); err != nil {
			return nil, domain.ErrInvalidNumberFormat
		} else if cmp <= 0 {
			return nil, domain.ErrInvalidAuctionBounds
		}
	}
	if err := im.requireCustodiable(ctx, seller, id); err != nil {
		return nil, err
	}

	l := &listing.Listing{
		ChainId:         id.ChainId,
		ContractAddress: id.ContractAddress,
		TokenId:         id.TokenId,
		Seller:          seller,
		Mode:            listing.SaleModeAuction,
		StartingBid:     startingBid,
		BuyoutPrice:     buyoutPrice,
		AuctionEndTime:  im.nowFn().Add(duration),
		DisplayPrice:    displayPrice(startingBid),
		CreatedAt:       im.nowFn(),
	}

	err := im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		if _, err := im.listingRepo.FindOne(ctx, id); err == nil {
			return domain.ErrConflict
		} else if err != domain.ErrNotFound {
			return err
		}

		if err := im.listingRepo.Insert(ctx, l); err != nil {
			return err
		}
		if err := im.emitActivity(ctx, id, account.ActivityHistoryTypeCreateAuction, seller, domain.Address(""), startingBid); err != nil {
			return err
		}
		if err := im.registry.TransferFrom(ctx, id.ChainId, id.ContractAddress, seller, im.custodyAddress, id.TokenId); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (im *impl) Buy(ctx bCtx.Ctx, buyer domain.Address, id listing.Id, paid domain.Amount) error {
	settings, err := im.requireActive(ctx)
	if err != nil {
		return err
	}

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		l, err := im.listingRepo.FindOne(ctx, id)
		if err != nil {
			return err
		}
		if l.Mode != listing.SaleModeFixedPrice {
			return domain.ErrWrongSaleMode
		}
		if cmp, err := paid.Cmp(l.Price); err != nil {
			return domain.ErrInvalidNumberFormat
		} else if cmp != 0 {
			return domain.ErrWrongAmount
		}

		if err := im.settleSale(ctx, l, buyer, l.Price, settings.FeeRateBps); err != nil {
			return err
		}
		if err := im.listingRepo.Remove(ctx, id); err != nil {
			return err
		}
		if err := im.emitActivity(ctx, id, account.ActivityHistoryTypeSold, l.Seller, buyer, l.Price); err != nil {
			return err
		}
		if err := im.registry.TransferFrom(ctx, id.ChainId, id.ContractAddress, im.custodyAddress, buyer, id.TokenId); err != nil {
			return err
		}
		return nil
	})
}

// settleSale moves the sale price from buyer to seller, with the fee cut
// credited to the treasury.
func (im *impl) settleSale(ctx bCtx.Ctx, l *listing.Listing, buyer domain.Address, price domain.Amount, feeRateBps int64) error {
	value, err := price.BigInt()
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	net, fee := feeSplit(value, feeRateBps)

	if err := im.ledger.Transfer(ctx, buyer, l.Seller, domain.AmountFromBigInt(net)); err != nil {
		return err
	}
	if err := im.ledger.Transfer(ctx, buyer, escrow.TreasuryAddress, domain.AmountFromBigInt(fee)); err != nil {
		return err
	}
	return nil
}

// settleEscrowedSale pays out the bid already held in escrow.
func (im *impl) settleEscrowedSale(ctx bCtx.Ctx, l *listing.Listing, price domain.Amount, feeRateBps int64) error {
	value, err := price.BigInt()
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	net, fee := feeSplit(value, feeRateBps)

	if err := im.ledger.Transfer(ctx, escrow.EscrowAddress, l.Seller, domain.AmountFromBigInt(net)); err != nil {
		return err
	}
	if err := im.ledger.Transfer(ctx, escrow.EscrowAddress, escrow.TreasuryAddress, domain.AmountFromBigInt(fee)); err != nil {
		return err
	}
	return nil
}

// refundStandingBid releases the escrowed bid back to the current bidder.
func (im *impl) refundStandingBid(ctx bCtx.Ctx, l *listing.Listing) error {
	if !l.HasBidder() {
		return nil
	}
	if err := im.ledger.Transfer(ctx, escrow.EscrowAddress, l.CurrentBidder, l.CurrentBid); err != nil {
		return err
	}
	return im.emitActivity(ctx, l.ToId(), account.ActivityHistoryTypeBidRefunded, escrow.EscrowAddress, l.CurrentBidder, l.CurrentBid)
}

// buyout settles an open auction immediately at its buyout price: the
// standing bid is refunded, the buyer pays the buyout from their free
// balance, and custody releases to the buyer.
func (im *impl) buyout(ctx bCtx.Ctx, l *listing.Listing, buyer domain.Address, feeRateBps int64) error {
	id := l.ToId()
	if err := im.refundStandingBid(ctx, l); err != nil {
		return err
	}
	if err := im.settleSale(ctx, l, buyer, l.BuyoutPrice, feeRateBps); err != nil {
		return err
	}
	if err := im.listingRepo.Remove(ctx, id); err != nil {
		return err
	}
	if err := im.emitActivity(ctx, id, account.ActivityHistoryTypeWonAuction, l.Seller, buyer, l.BuyoutPrice); err != nil {
		return err
	}
	return im.registry.TransferFrom(ctx, id.ChainId, id.ContractAddress, im.custodyAddress, buyer, id.TokenId)
}

func (im *impl) PlaceBid(ctx bCtx.Ctx, bidder domain.Address, id listing.Id, amount domain.Amount) error {
	settings, err := im.requireActive(ctx)
	if err != nil {
		return err
	}

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		l, err := im.listingRepo.FindOne(ctx, id)
		if err != nil {
			return err
		}
		if l.Mode != listing.SaleModeAuction {
			return domain.ErrWrongSaleMode
		}
		if !im.nowFn().Before(l.AuctionEndTime) {
			return domain.ErrAuctionClosed
		}

		if l.HasBidder() {
			// outbidding requires strictly more than the standing bid
			if cmp, err := amount.Cmp(l.CurrentBid); err != nil {
				return domain.ErrInvalidNumberFormat
			} else if cmp <= 0 {
				return domain.ErrBidTooLow
			}
		} else {
			// the opening bid has to meet the starting bid
			if cmp, err := amount.Cmp(l.StartingBid); err != nil {
				return domain.ErrInvalidNumberFormat
			} else if cmp < 0 {
				return domain.ErrBidTooLow
			}
		}

		// a bid reaching the buyout price wins outright at the buyout
		if l.BuyoutPrice != "" {
			if cmp, err := amount.Cmp(l.BuyoutPrice); err != nil {
				return domain.ErrInvalidNumberFormat
			} else if cmp >= 0 {
				return im.buyout(ctx, l, bidder, settings.FeeRateBps)
			}
		}

		// refund before capture keeps at most one bid escrowed per listing
		if err := im.refundStandingBid(ctx, l); err != nil {
			return err
		}
		if err := im.ledger.Transfer(ctx, bidder, escrow.EscrowAddress, amount); err != nil {
			return err
		}

		bidderLower := bidder.ToLower()
		display := displayPrice(amount)
		patch := listing.Patchable{
			CurrentBidder: &bidderLower,
			CurrentBid:    &amount,
			DisplayPrice:  &display,
		}
		if err := im.listingRepo.Update(ctx, id, patch); err != nil {
			return err
		}
		return im.emitActivity(ctx, id, account.ActivityHistoryTypePlaceBid, bidder, l.Seller, amount)
	})
}

func (im *impl) BuyNow(ctx bCtx.Ctx, bidder domain.Address, id listing.Id) error {
	settings, err := im.requireActive(ctx)
	if err != nil {
		return err
	}

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		l, err := im.listingRepo.FindOne(ctx, id)
		if err != nil {
			return err
		}
		if l.Mode != listing.SaleModeAuction {
			return domain.ErrWrongSaleMode
		}
		if l.BuyoutPrice == "" {
			return domain.ErrBadParamInput
		}
		if !im.nowFn().Before(l.AuctionEndTime) {
			return domain.ErrAuctionClosed
		}
		// a standing bid already at or above the buyout outprices it; the
		// auction has to run to its end instead
		if l.HasBidder() {
			if cmp, err := l.CurrentBid.Cmp(l.BuyoutPrice); err != nil {
				return domain.ErrInvalidNumberFormat
			} else if cmp >= 0 {
				return domain.ErrBidTooLow
			}
		}

		return im.buyout(ctx, l, bidder, settings.FeeRateBps)
	})
}

func (im *impl) EndAuction(ctx bCtx.Ctx, caller domain.Address, id listing.Id) error {
	settings, err := im.requireActive(ctx)
	if err != nil {
		return err
	}

	return im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		l, err := im.listingRepo.FindOne(ctx, id)
		if err != nil {
			return err
		}
		if l.Mode != listing.SaleModeAuction {
			return domain.ErrWrongSaleMode
		}
		if im.nowFn().Before(l.AuctionEndTime) {
			return domain.ErrAuctionStillOpen
		}

		if !l.HasBidder() {
			// nothing sold, custody goes back to the seller
			if err := im.listingRepo.Remove(ctx, id); err != nil {
				return err
			}
			if err := im.emitActivity(ctx, id, account.ActivityHistoryTypeAuctionNoSale, l.Seller, domain.Address(""), domain.ZeroAmount); err != nil {
				return err
			}
			return im.registry.TransferFrom(ctx, id.ChainId, id.ContractAddress, im.custodyAddress, l.Seller, id.TokenId)
		}

		if err := im.settleEscrowedSale(ctx, l, l.CurrentBid, settings.FeeRateBps); err != nil {
			return err
		}
		if err := im.listingRepo.Remove(ctx, id); err != nil {
			return err
		}
		if err := im.emitActivity(ctx, id, account.ActivityHistoryTypeResultAuction, l.Seller, l.CurrentBidder, l.CurrentBid); err != nil {
			return err
		}
		if err := im.emitActivity(ctx, id, account.ActivityHistoryTypeWonAuction, l.CurrentBidder, l.Seller, l.CurrentBid); err != nil {
			return err
		}
		return im.registry.TransferFrom(ctx, id.ChainId, id.ContractAddress, im.custodyAddress, l.CurrentBidder, id.TokenId)
	})
}
