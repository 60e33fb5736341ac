package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/account"
	mAccount "github.com/nftvault/marketapi/domain/account/mocks"
	"github.com/nftvault/marketapi/domain/escrow"
	mEscrow "github.com/nftvault/marketapi/domain/escrow/mocks"
	"github.com/nftvault/marketapi/domain/listing"
	mListing "github.com/nftvault/marketapi/domain/listing/mocks"
	"github.com/nftvault/marketapi/domain/marketplace"
	mMarketplace "github.com/nftvault/marketapi/domain/marketplace/mocks"
	mNft "github.com/nftvault/marketapi/domain/nft/mocks"
	mQuery "github.com/nftvault/marketapi/service/query/mocks"
)

const custodyAddress = domain.Address("0x000000000000000000000000000000000000c057")

type listingSuite struct {
	suite.Suite

	listingRepo  *mListing.Repo
	ledger       *mEscrow.Ledger
	registry     *mNft.Registry
	settingsRepo *mMarketplace.Repo
	activityRepo *mAccount.ActivityHistoryRepo
	q            *mQuery.Mongo
	now          time.Time
	im           *impl
}

func (s *listingSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.ledger = &mEscrow.Ledger{}
	s.registry = &mNft.Registry{}
	s.settingsRepo = &mMarketplace.Repo{}
	s.activityRepo = &mAccount.ActivityHistoryRepo{}
	s.q = &mQuery.Mongo{}
	s.now = time.Date(2023, 5, 17, 12, 0, 0, 0, time.UTC)
	s.im = New(&ListingUseCaseCfg{
		ListingRepo:         s.listingRepo,
		Ledger:              s.ledger,
		Registry:            s.registry,
		SettingsRepo:        s.settingsRepo,
		ActivityHistoryRepo: s.activityRepo,
		Q:                   s.q,
		CustodyAddress:      custodyAddress,
	}).(*impl)
	s.im.nowFn = func() time.Time { return s.now }
}

func (s *listingSuite) TearDownTest() {
	s.listingRepo.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
	s.registry.AssertExpectations(s.T())
	s.settingsRepo.AssertExpectations(s.T())
	s.activityRepo.AssertExpectations(s.T())
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) useSettings(paused bool, feeRateBps int64) {
	s.settingsRepo.On("Get", mock.Anything).Return(&marketplace.Settings{
		Owner:      "0xowner",
		Paused:     paused,
		FeeRateBps: feeRateBps,
	}, nil)
}

// runTransactionsInline makes every RunWithTransaction call run its body
// directly against the ambient context.
func (s *listingSuite) runTransactionsInline() {
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) },
	)
}

func (s *listingSuite) expectActivity(typ account.ActivityHistoryType) {
	s.activityRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *account.ActivityHistory) bool {
		return a.Type == typ
	})).Return(nil).Once()
}

func (s *listingSuite) TestListFixedPrice() {
	c := ctx.Background()
	seller := domain.Address("0xseller")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}
	price := domain.Amount("1000000000000000000")

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.registry.On("OwnerOf", mock.Anything, id.ChainId, id.ContractAddress, id.TokenId).Return(seller, nil).Once()
	s.registry.On("IsApprovedForAll", mock.Anything, id.ChainId, id.ContractAddress, seller, custodyAddress).Return(true, nil).Once()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
	s.listingRepo.On("Insert", mock.Anything, mock.AnythingOfType("*listing.Listing")).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeList)
	s.registry.On("TransferFrom", mock.Anything, id.ChainId, id.ContractAddress, seller, custodyAddress, id.TokenId).Return(nil).Once()

	l, err := s.im.ListFixedPrice(c, seller, id, price)
	s.Nil(err)
	s.Equal(listing.SaleModeFixedPrice, l.Mode)
	s.Equal(price, l.Price)
	s.Equal("1", l.DisplayPrice)
	s.Equal(s.now, l.CreatedAt)
}

func (s *listingSuite) TestListFixedPriceRejectsNonOwner() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)
	s.registry.On("OwnerOf", mock.Anything, id.ChainId, id.ContractAddress, id.TokenId).Return(domain.Address("0xsomeoneelse"), nil).Once()

	_, err := s.im.ListFixedPrice(c, "0xseller", id, "100")
	s.Equal(domain.ErrNotTokenOwner, err)
}

func (s *listingSuite) TestListFixedPriceRejectsUnapproved() {
	c := ctx.Background()
	seller := domain.Address("0xseller")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)
	s.registry.On("OwnerOf", mock.Anything, id.ChainId, id.ContractAddress, id.TokenId).Return(seller, nil).Once()
	s.registry.On("IsApprovedForAll", mock.Anything, id.ChainId, id.ContractAddress, seller, custodyAddress).Return(false, nil).Once()

	_, err := s.im.ListFixedPrice(c, seller, id, "100")
	s.Equal(domain.ErrNotApproved, err)
}

func (s *listingSuite) TestListFixedPriceConflict() {
	c := ctx.Background()
	seller := domain.Address("0xseller")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.registry.On("OwnerOf", mock.Anything, id.ChainId, id.ContractAddress, id.TokenId).Return(seller, nil).Once()
	s.registry.On("IsApprovedForAll", mock.Anything, id.ChainId, id.ContractAddress, seller, custodyAddress).Return(true, nil).Once()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(&listing.Listing{}, nil).Once()

	_, err := s.im.ListFixedPrice(c, seller, id, "100")
	s.Equal(domain.ErrConflict, err)
}

func (s *listingSuite) TestListFixedPriceRejectsNonPositivePrice() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)

	_, err := s.im.ListFixedPrice(c, "0xseller", id, "0")
	s.Equal(domain.ErrInvalidPrice, err)

	_, err = s.im.ListFixedPrice(c, "0xseller", id, "-5")
	s.Equal(domain.ErrInvalidPrice, err)
}

func (s *listingSuite) TestListAuctionValidation() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)

	_, err := s.im.ListAuction(c, "0xseller", id, "0", "", time.Hour)
	s.Equal(domain.ErrInvalidPrice, err)

	_, err = s.im.ListAuction(c, "0xseller", id, "100", "", 0)
	s.Equal(domain.ErrInvalidDuration, err)

	_, err = s.im.ListAuction(c, "0xseller", id, "100", "100", time.Hour)
	s.Equal(domain.ErrInvalidAuctionBounds, err)

	_, err = s.im.ListAuction(c, "0xseller", id, "100", "50", time.Hour)
	s.Equal(domain.ErrInvalidAuctionBounds, err)
}

func (s *listingSuite) TestListAuction() {
	c := ctx.Background()
	seller := domain.Address("0xseller")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.registry.On("OwnerOf", mock.Anything, id.ChainId, id.ContractAddress, id.TokenId).Return(seller, nil).Once()
	s.registry.On("IsApprovedForAll", mock.Anything, id.ChainId, id.ContractAddress, seller, custodyAddress).Return(true, nil).Once()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
	s.listingRepo.On("Insert", mock.Anything, mock.AnythingOfType("*listing.Listing")).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeCreateAuction)
	s.registry.On("TransferFrom", mock.Anything, id.ChainId, id.ContractAddress, seller, custodyAddress, id.TokenId).Return(nil).Once()

	l, err := s.im.ListAuction(c, seller, id, "100", "300", time.Hour)
	s.Nil(err)
	s.Equal(listing.SaleModeAuction, l.Mode)
	s.Equal(s.now.Add(time.Hour), l.AuctionEndTime)
	s.False(l.HasBidder())
}

func (s *listingSuite) TestBuyRequiresExactPrice() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}
	l := &listing.Listing{
		ChainId:         1,
		ContractAddress: "0xcontract",
		TokenId:         "42",
		Seller:          "0xseller",
		Mode:            listing.SaleModeFixedPrice,
		Price:           "1000",
	}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Twice()

	s.Equal(domain.ErrWrongAmount, s.im.Buy(c, "0xbuyer", id, "999"))
	s.Equal(domain.ErrWrongAmount, s.im.Buy(c, "0xbuyer", id, "1001"))
}

func (s *listingSuite) TestBuy() {
	c := ctx.Background()
	buyer := domain.Address("0xbuyer")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}
	l := &listing.Listing{
		ChainId:         1,
		ContractAddress: "0xcontract",
		TokenId:         "42",
		Seller:          "0xseller",
		Mode:            listing.SaleModeFixedPrice,
		Price:           "10000",
	}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Once()
	// 2.5% of 10000 goes to the treasury
	s.ledger.On("Transfer", mock.Anything, buyer, l.Seller, domain.Amount("9750")).Return(nil).Once()
	s.ledger.On("Transfer", mock.Anything, buyer, escrow.TreasuryAddress, domain.Amount("250")).Return(nil).Once()
	s.listingRepo.On("Remove", mock.Anything, id).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeSold)
	s.registry.On("TransferFrom", mock.Anything, id.ChainId, id.ContractAddress, custodyAddress, buyer, id.TokenId).Return(nil).Once()

	s.Nil(s.im.Buy(c, buyer, id, "10000"))
}

func (s *listingSuite) TestBuyRejectsAuctionListing() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}
	l := &listing.Listing{Mode: listing.SaleModeAuction, StartingBid: "100"}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Once()

	s.Equal(domain.ErrWrongSaleMode, s.im.Buy(c, "0xbuyer", id, "100"))
}

func (s *listingSuite) TestBuyInsufficientFundsAbortsRemoval() {
	c := ctx.Background()
	buyer := domain.Address("0xbuyer")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}
	l := &listing.Listing{
		Seller: "0xseller",
		Mode:   listing.SaleModeFixedPrice,
		Price:  "10000",
	}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Once()
	s.ledger.On("Transfer", mock.Anything, buyer, l.Seller, domain.Amount("9750")).Return(domain.ErrInsufficientFunds).Once()

	s.Equal(domain.ErrInsufficientFunds, s.im.Buy(c, buyer, id, "10000"))
}

func (s *listingSuite) auctionListing() *listing.Listing {
	return &listing.Listing{
		ChainId:         1,
		ContractAddress: "0xcontract",
		TokenId:         "42",
		Seller:          "0xseller",
		Mode:            listing.SaleModeAuction,
		StartingBid:     "100",
		BuyoutPrice:     "1000",
		AuctionEndTime:  s.now.Add(time.Hour),
	}
}

func (s *listingSuite) TestPlaceBidFirstBidMustMeetStartingBid() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(s.auctionListing(), nil).Once()

	s.Equal(domain.ErrBidTooLow, s.im.PlaceBid(c, "0xbidder", id, "99"))
}

func (s *listingSuite) TestPlaceBidFirstBidAtStartingBid() {
	c := ctx.Background()
	bidder := domain.Address("0xbidder")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(s.auctionListing(), nil).Once()
	s.ledger.On("Transfer", mock.Anything, bidder, escrow.EscrowAddress, domain.Amount("100")).Return(nil).Once()
	s.listingRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(p listing.Patchable) bool {
		return *p.CurrentBidder == bidder && *p.CurrentBid == domain.Amount("100")
	})).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypePlaceBid)

	s.Nil(s.im.PlaceBid(c, bidder, id, "100"))
}

func (s *listingSuite) TestPlaceBidOutbidRefundsStandingBid() {
	c := ctx.Background()
	first := domain.Address("0xfirst")
	second := domain.Address("0xsecond")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	l := s.auctionListing()
	l.CurrentBidder = first
	l.CurrentBid = "150"

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Twice()

	// equal or lower than the standing bid is rejected
	s.Equal(domain.ErrBidTooLow, s.im.PlaceBid(c, second, id, "150"))

	s.ledger.On("Transfer", mock.Anything, escrow.EscrowAddress, first, domain.Amount("150")).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeBidRefunded)
	s.ledger.On("Transfer", mock.Anything, second, escrow.EscrowAddress, domain.Amount("200")).Return(nil).Once()
	s.listingRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(p listing.Patchable) bool {
		return *p.CurrentBidder == second && *p.CurrentBid == domain.Amount("200")
	})).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypePlaceBid)

	s.Nil(s.im.PlaceBid(c, second, id, "200"))
}

func (s *listingSuite) TestPlaceBidAfterEndTime() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	l := s.auctionListing()
	l.AuctionEndTime = s.now.Add(-time.Minute)

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Once()

	s.Equal(domain.ErrAuctionClosed, s.im.PlaceBid(c, "0xbidder", id, "100"))
}

func (s *listingSuite) TestPlaceBidOnFixedPriceListing() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(&listing.Listing{
		Mode:  listing.SaleModeFixedPrice,
		Price: "100",
	}, nil).Once()

	s.Equal(domain.ErrWrongSaleMode, s.im.PlaceBid(c, "0xbidder", id, "100"))
}

func (s *listingSuite) TestBuyNow() {
	c := ctx.Background()
	bidder := domain.Address("0xbidder")
	prev := domain.Address("0xprev")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	l := s.auctionListing()
	l.CurrentBidder = prev
	l.CurrentBid = "150"

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Once()
	s.ledger.On("Transfer", mock.Anything, escrow.EscrowAddress, prev, domain.Amount("150")).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeBidRefunded)
	// 2.5% of the 1000 buyout
	s.ledger.On("Transfer", mock.Anything, bidder, l.Seller, domain.Amount("975")).Return(nil).Once()
	s.ledger.On("Transfer", mock.Anything, bidder, escrow.TreasuryAddress, domain.Amount("25")).Return(nil).Once()
	s.listingRepo.On("Remove", mock.Anything, id).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeWonAuction)
	s.registry.On("TransferFrom", mock.Anything, id.ChainId, id.ContractAddress, custodyAddress, bidder, id.TokenId).Return(nil).Once()

	s.Nil(s.im.BuyNow(c, bidder, id))
}

func (s *listingSuite) TestBuyNowWithoutBuyout() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	l := s.auctionListing()
	l.BuyoutPrice = ""

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Once()

	s.Equal(domain.ErrBadParamInput, s.im.BuyNow(c, "0xbidder", id))
}

func (s *listingSuite) TestBuyNowRejectedWhenStandingBidCoversBuyout() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	l := s.auctionListing()
	l.CurrentBidder = "0xwhale"
	l.CurrentBid = "2000"

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Twice()

	// the standing bid beats the 1000 buyout; letting the buyout through
	// would refund the high bidder and sell below their escrowed bid
	s.Equal(domain.ErrBidTooLow, s.im.BuyNow(c, "0xsniper", id))

	l.CurrentBid = "1000"
	s.Equal(domain.ErrBidTooLow, s.im.BuyNow(c, "0xsniper", id))
}

func (s *listingSuite) TestPlaceBidAtBuyoutWinsImmediately() {
	c := ctx.Background()
	bidder := domain.Address("0xbidder")
	prev := domain.Address("0xprev")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	l := s.auctionListing()
	l.CurrentBidder = prev
	l.CurrentBid = "150"

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Once()
	s.ledger.On("Transfer", mock.Anything, escrow.EscrowAddress, prev, domain.Amount("150")).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeBidRefunded)
	// settles at the 1000 buyout even though the bid offered more
	s.ledger.On("Transfer", mock.Anything, bidder, l.Seller, domain.Amount("975")).Return(nil).Once()
	s.ledger.On("Transfer", mock.Anything, bidder, escrow.TreasuryAddress, domain.Amount("25")).Return(nil).Once()
	s.listingRepo.On("Remove", mock.Anything, id).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeWonAuction)
	s.registry.On("TransferFrom", mock.Anything, id.ChainId, id.ContractAddress, custodyAddress, bidder, id.TokenId).Return(nil).Once()

	s.Nil(s.im.PlaceBid(c, bidder, id, "1200"))
}

func (s *listingSuite) TestEndAuctionStillOpen() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(s.auctionListing(), nil).Once()

	s.Equal(domain.ErrAuctionStillOpen, s.im.EndAuction(c, "0xseller", id))
}

func (s *listingSuite) TestEndAuctionNoBidder() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	l := s.auctionListing()
	l.AuctionEndTime = s.now.Add(-time.Minute)

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Once()
	s.listingRepo.On("Remove", mock.Anything, id).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeAuctionNoSale)
	s.registry.On("TransferFrom", mock.Anything, id.ChainId, id.ContractAddress, custodyAddress, l.Seller, id.TokenId).Return(nil).Once()

	s.Nil(s.im.EndAuction(c, "0xanyone", id))
}

func (s *listingSuite) TestEndAuctionWithBidder() {
	c := ctx.Background()
	winner := domain.Address("0xwinner")
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	l := s.auctionListing()
	l.AuctionEndTime = s.now.Add(-time.Minute)
	l.CurrentBidder = winner
	l.CurrentBid = "400"

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(l, nil).Once()
	s.ledger.On("Transfer", mock.Anything, escrow.EscrowAddress, l.Seller, domain.Amount("390")).Return(nil).Once()
	s.ledger.On("Transfer", mock.Anything, escrow.EscrowAddress, escrow.TreasuryAddress, domain.Amount("10")).Return(nil).Once()
	s.listingRepo.On("Remove", mock.Anything, id).Return(nil).Once()
	s.expectActivity(account.ActivityHistoryTypeResultAuction)
	s.expectActivity(account.ActivityHistoryTypeWonAuction)
	s.registry.On("TransferFrom", mock.Anything, id.ChainId, id.ContractAddress, custodyAddress, winner, id.TokenId).Return(nil).Once()

	s.Nil(s.im.EndAuction(c, "0xanyone", id))
}

func (s *listingSuite) TestEndAuctionGoneListing() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(false, 250)
	s.runTransactionsInline()
	s.listingRepo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()

	s.Equal(domain.ErrNotFound, s.im.EndAuction(c, "0xanyone", id))
}

func (s *listingSuite) TestPausedRejectsEveryTransition() {
	c := ctx.Background()
	id := listing.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "42"}

	s.useSettings(true, 250)

	_, err := s.im.ListFixedPrice(c, "0xseller", id, "100")
	s.Equal(domain.ErrMarketplacePaused, err)
	_, err = s.im.ListAuction(c, "0xseller", id, "100", "", time.Hour)
	s.Equal(domain.ErrMarketplacePaused, err)
	s.Equal(domain.ErrMarketplacePaused, s.im.Buy(c, "0xbuyer", id, "100"))
	s.Equal(domain.ErrMarketplacePaused, s.im.PlaceBid(c, "0xbidder", id, "100"))
	s.Equal(domain.ErrMarketplacePaused, s.im.BuyNow(c, "0xbidder", id))
	s.Equal(domain.ErrMarketplacePaused, s.im.EndAuction(c, "0xanyone", id))
}

func (s *listingSuite) TestFeeSplit() {
	cases := []struct {
		price string
		bps   int64
		net   string
		fee   string
	}{
		{"10000", 250, "9750", "250"},
		{"10000", 0, "10000", "0"},
		{"10000", 10000, "0", "10000"},
		{"1", 250, "1", "0"}, // fee rounds down
	}
	for _, cc := range cases {
		price, err := domain.Amount(cc.price).BigInt()
		s.Nil(err)
		net, fee := feeSplit(price, cc.bps)
		s.Equal(cc.net, net.String())
		s.Equal(cc.fee, fee.String())
	}
}

func (s *listingSuite) TestDisplayPrice() {
	s.Equal("1", displayPrice("1000000000000000000"))
	s.Equal("0.5", displayPrice("500000000000000000"))
	s.Equal("0.000000000000000001", displayPrice("1"))
}
