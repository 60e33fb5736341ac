package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToHexString() (string, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return "", xerrors.Errorf("invalid id %s", i)
	}
	return fmt.Sprintf("%064x", id), nil
}

// Amount is a token amount in base units, kept as a decimal string so it
// survives bson/json round trips without precision loss.
type Amount string

const ZeroAmount = Amount("0")

func (a Amount) String() string {
	return string(a)
}

func (a Amount) BigInt() (*big.Int, error) {
	n, ok := new(big.Int).SetString(string(a), 10)
	if !ok {
		return nil, ErrInvalidNumberFormat
	}
	return n, nil
}

func (a Amount) IsPositive() bool {
	n, err := a.BigInt()
	return err == nil && n.Sign() > 0
}

func (a Amount) IsZero() bool {
	n, err := a.BigInt()
	return err == nil && n.Sign() == 0
}

// Cmp compares two amounts, returning -1, 0 or 1 like big.Int.Cmp.
func (a Amount) Cmp(b Amount) (int, error) {
	x, err := a.BigInt()
	if err != nil {
		return 0, err
	}
	y, err := b.BigInt()
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

func AmountFromBigInt(n *big.Int) Amount {
	return Amount(n.String())
}

func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}
