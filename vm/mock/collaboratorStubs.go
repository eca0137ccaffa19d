package mock

import (
	"math/big"
)

// PriceSourceStub -
type PriceSourceStub struct {
	GetPriceCalled func() (*big.Int, error)
}

// GetPrice -
func (p *PriceSourceStub) GetPrice() (*big.Int, error) {
	if p.GetPriceCalled != nil {
		return p.GetPriceCalled()
	}
	return big.NewInt(0), nil
}

// IsInterfaceNil -
func (p *PriceSourceStub) IsInterfaceNil() bool {
	return p == nil
}

// TokenLedgerStub -
type TokenLedgerStub struct {
	TransferCalled  func(from []byte, to []byte, amount *big.Int) error
	BalanceOfCalled func(address []byte) (*big.Int, error)
}

// Transfer -
func (t *TokenLedgerStub) Transfer(from []byte, to []byte, amount *big.Int) error {
	if t.TransferCalled != nil {
		return t.TransferCalled(from, to, amount)
	}
	return nil
}

// BalanceOf -
func (t *TokenLedgerStub) BalanceOf(address []byte) (*big.Int, error) {
	if t.BalanceOfCalled != nil {
		return t.BalanceOfCalled(address)
	}
	return big.NewInt(0), nil
}

// IsInterfaceNil -
func (t *TokenLedgerStub) IsInterfaceNil() bool {
	return t == nil
}

// TokenMinterStub -
type TokenMinterStub struct {
	MintCalled func(to []byte, amount *big.Int) error
}

// Mint -
func (t *TokenMinterStub) Mint(to []byte, amount *big.Int) error {
	if t.MintCalled != nil {
		return t.MintCalled(to, amount)
	}
	return nil
}

// IsInterfaceNil -
func (t *TokenMinterStub) IsInterfaceNil() bool {
	return t == nil
}

// TreasuryRouterStub -
type TreasuryRouterStub struct {
	RouteCalled func(from []byte, amount *big.Int) error
}

// Route -
func (t *TreasuryRouterStub) Route(from []byte, amount *big.Int) error {
	if t.RouteCalled != nil {
		return t.RouteCalled(from, amount)
	}
	return nil
}

// IsInterfaceNil -
func (t *TreasuryRouterStub) IsInterfaceNil() bool {
	return t == nil
}
