package usecase

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/nftvault/marketapi/base/ctx"
	"github.com/nftvault/marketapi/domain"
	"github.com/nftvault/marketapi/domain/account"
	mAccount "github.com/nftvault/marketapi/domain/account/mocks"
)

const signatureMsg = "Welcome!\n\nNonce: %s"

type accountSuite struct {
	suite.Suite

	repo *mAccount.Repo
	im   *impl
}

func (s *accountSuite) SetupTest() {
	s.repo = &mAccount.Repo{}
	s.im = New(&AccountUseCaseCfg{
		Repo:         s.repo,
		SignatureMsg: signatureMsg,
	}).(*impl)
}

func (s *accountSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func TestAccountSuite(t *testing.T) {
	suite.Run(t, new(accountSuite))
}

func (s *accountSuite) TestGet() {
	c := ctx.Background()
	addr := domain.Address("0xholder")

	s.repo.On("Get", mock.Anything, addr).Return(&account.Account{Address: addr}, nil).Once()

	a, err := s.im.Get(c, addr)
	s.Nil(err)
	s.Equal(addr, a.Address)
}

func (s *accountSuite) TestCreate() {
	c := ctx.Background()

	s.repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return a.Address == domain.Address("0xholder") && a.Nonce == invalidNonce
	})).Return(nil).Once()

	a, err := s.im.Create(c, "0xHolder")
	s.Nil(err)
	s.Equal(invalidNonce, a.Nonce)
}

func (s *accountSuite) TestGenerateNonce() {
	c := ctx.Background()
	addr := domain.Address("0xholder")

	s.repo.On("Get", mock.Anything, addr).Return(&account.Account{Address: addr, Nonce: invalidNonce}, nil).Once()
	s.repo.On("Update", mock.Anything, addr, mock.MatchedBy(func(u *account.Updater) bool {
		return u.Nonce != nil && *u.Nonce >= 0 && *u.Nonce < nonceRange
	})).Return(nil).Once()

	nonce, err := s.im.GenerateNonce(c, addr)
	s.Nil(err)
	s.True(nonce >= 0 && nonce < nonceRange)
}

func (s *accountSuite) TestGenerateNonceCreatesMissingAccount() {
	c := ctx.Background()
	addr := domain.Address("0xfresh")

	s.repo.On("Get", mock.Anything, addr).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Insert", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once()
	s.repo.On("Update", mock.Anything, addr, mock.AnythingOfType("*account.Updater")).Return(nil).Once()

	_, err := s.im.GenerateNonce(c, addr)
	s.Nil(err)
}

func (s *accountSuite) TestValidateSignature() {
	c := ctx.Background()

	key, err := crypto.GenerateKey()
	s.Require().Nil(err)
	addr := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex())
	nonce := int32(123456)

	msg := []byte(fmt.Sprintf(signatureMsg, strconv.Itoa(int(nonce))))
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	s.Require().Nil(err)
	sig[64] += 27

	s.repo.On("Get", mock.Anything, addr).Return(&account.Account{Address: addr, Nonce: nonce}, nil).Once()
	// nonce is consumed whether or not the signature checks out
	s.repo.On("Update", mock.Anything, addr, mock.MatchedBy(func(u *account.Updater) bool {
		return u.Nonce != nil && *u.Nonce == invalidNonce
	})).Return(nil).Once()

	s.Nil(s.im.ValidateSignature(c, addr, hexutil.Encode(sig)))
}

func (s *accountSuite) TestValidateSignatureWrongSigner() {
	c := ctx.Background()

	key, err := crypto.GenerateKey()
	s.Require().Nil(err)
	addr := domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	nonce := int32(123456)

	msg := []byte(fmt.Sprintf(signatureMsg, strconv.Itoa(int(nonce))))
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	s.Require().Nil(err)
	sig[64] += 27

	s.repo.On("Get", mock.Anything, addr).Return(&account.Account{Address: addr, Nonce: nonce}, nil).Once()
	s.repo.On("Update", mock.Anything, addr, mock.AnythingOfType("*account.Updater")).Return(nil).Once()

	s.Equal(account.ErrInvalidSignature, s.im.ValidateSignature(c, addr, hexutil.Encode(sig)))
}

func (s *accountSuite) TestValidateSignatureWithoutNonce() {
	c := ctx.Background()
	addr := domain.Address("0xholder")

	s.repo.On("Get", mock.Anything, addr).Return(&account.Account{Address: addr, Nonce: invalidNonce}, nil).Once()

	s.Equal(account.ErrInvalidNonce, s.im.ValidateSignature(c, addr, "0xdeadbeef"))
}
