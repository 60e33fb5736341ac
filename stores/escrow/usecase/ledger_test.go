package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/escrow"
	mEscrow "github.com/nftvault/marketapi/domain/escrow/mocks"
)

type ledgerSuite struct {
	suite.Suite

	repo *mEscrow.Repo
	im   *impl
}

func (s *ledgerSuite) SetupTest() {
	s.repo = &mEscrow.Repo{}
	s.im = New(&LedgerUseCaseCfg{LedgerRepo: s.repo}).(*impl)
}

func (s *ledgerSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(ledgerSuite))
}

func (s *ledgerSuite) TestBalanceOf() {
	c := ctx.Background()
	addr := domain.Address("0xholder")

	s.repo.On("Get", mock.Anything, addr).Return(&escrow.Account{
		Address: addr,
		Balance: "1500",
	}, nil).Once()

	balance, err := s.im.BalanceOf(c, addr)
	s.Nil(err)
	s.Equal(domain.Amount("1500"), balance)
}

func (s *ledgerSuite) TestBalanceOfUnknownAccount() {
	c := ctx.Background()
	addr := domain.Address("0xnobody")

	s.repo.On("Get", mock.Anything, addr).Return(nil, domain.ErrNotFound).Once()

	balance, err := s.im.BalanceOf(c, addr)
	s.Nil(err)
	s.Equal(domain.ZeroAmount, balance)
}

func (s *ledgerSuite) TestDeposit() {
	c := ctx.Background()
	addr := domain.Address("0xholder")

	s.repo.On("Credit", mock.Anything, addr, big.NewInt(1000)).Return(nil).Once()

	s.Nil(s.im.Deposit(c, addr, "1000"))
}

func (s *ledgerSuite) TestDepositValidation() {
	c := ctx.Background()
	addr := domain.Address("0xholder")

	s.Equal(domain.ErrInvalidNumberFormat, s.im.Deposit(c, addr, "abc"))
	s.Equal(domain.ErrWrongAmount, s.im.Deposit(c, addr, "0"))
	s.Equal(domain.ErrWrongAmount, s.im.Deposit(c, addr, "-10"))
}

func (s *ledgerSuite) TestWithdraw() {
	c := ctx.Background()
	addr := domain.Address("0xholder")

	s.repo.On("Debit", mock.Anything, addr, big.NewInt(400)).Return(nil).Once()

	s.Nil(s.im.Withdraw(c, addr, "400"))
}

func (s *ledgerSuite) TestWithdrawInsufficientFunds() {
	c := ctx.Background()
	addr := domain.Address("0xholder")

	s.repo.On("Debit", mock.Anything, addr, big.NewInt(400)).Return(domain.ErrInsufficientFunds).Once()

	s.Equal(domain.ErrInsufficientFunds, s.im.Withdraw(c, addr, "400"))
}

func (s *ledgerSuite) TestTransfer() {
	c := ctx.Background()
	from := domain.Address("0xfrom")
	to := domain.Address("0xto")

	s.repo.On("Debit", mock.Anything, from, big.NewInt(300)).Return(nil).Once()
	s.repo.On("Credit", mock.Anything, to, big.NewInt(300)).Return(nil).Once()

	s.Nil(s.im.Transfer(c, from, to, "300"))
}

func (s *ledgerSuite) TestTransferZeroIsNoop() {
	c := ctx.Background()

	s.Nil(s.im.Transfer(c, "0xfrom", "0xto", "0"))
}

func (s *ledgerSuite) TestTransferNegative() {
	c := ctx.Background()

	s.Equal(domain.ErrWrongAmount, s.im.Transfer(c, "0xfrom", "0xto", "-5"))
}

func (s *ledgerSuite) TestTransferInsufficientFundsSkipsCredit() {
	c := ctx.Background()
	from := domain.Address("0xfrom")

	s.repo.On("Debit", mock.Anything, from, big.NewInt(300)).Return(domain.ErrInsufficientFunds).Once()

	s.Equal(domain.ErrInsufficientFunds, s.im.Transfer(c, from, "0xto", "300"))
}
