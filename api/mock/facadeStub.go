package mock

import (
	"math/big"

	"github.com/alternun/gbt-minting-go/vm/systemSmartContracts"
)

// FacadeStub -
type FacadeStub struct {
	GetMineCalled                func(mineID uint32) (*systemSmartContracts.MineRecord, error)
	UpsertMineCalled             func(caller []byte, mineID uint32, record *systemSmartContracts.MineRecord) error
	MineCapacityCalled           func(mineID uint32) (*big.Int, error)
	TotalCapacityCalled          func() (*big.Int, error)
	AvailableCapacityCalled      func() (*big.Int, error)
	PreviewMintCalled            func(deposit *big.Int) (*systemSmartContracts.Preview, error)
	MintCalled                   func(payer []byte, deposit *big.Int) (*big.Int, error)
	SetFeeBpsCalled              func(caller []byte, feeBps uint32) error
	SetCommercialFactorBpsCalled func(caller []byte, factorBps uint32) error
	SetPausedCalled              func(caller []byte, paused bool) error
	GetPriceCalled               func() (*big.Int, error)
	SetPriceCalled               func(caller []byte, price *big.Int) error
	GBTBalanceOfCalled           func(address []byte) (*big.Int, error)
	StableBalanceOfCalled        func(address []byte) (*big.Int, error)
}

// GetMine -
func (f *FacadeStub) GetMine(mineID uint32) (*systemSmartContracts.MineRecord, error) {
	if f.GetMineCalled != nil {
		return f.GetMineCalled(mineID)
	}
	return &systemSmartContracts.MineRecord{}, nil
}

// UpsertMine -
func (f *FacadeStub) UpsertMine(caller []byte, mineID uint32, record *systemSmartContracts.MineRecord) error {
	if f.UpsertMineCalled != nil {
		return f.UpsertMineCalled(caller, mineID, record)
	}
	return nil
}

// MineCapacity -
func (f *FacadeStub) MineCapacity(mineID uint32) (*big.Int, error) {
	if f.MineCapacityCalled != nil {
		return f.MineCapacityCalled(mineID)
	}
	return big.NewInt(0), nil
}

// TotalCapacity -
func (f *FacadeStub) TotalCapacity() (*big.Int, error) {
	if f.TotalCapacityCalled != nil {
		return f.TotalCapacityCalled()
	}
	return big.NewInt(0), nil
}

// AvailableCapacity -
func (f *FacadeStub) AvailableCapacity() (*big.Int, error) {
	if f.AvailableCapacityCalled != nil {
		return f.AvailableCapacityCalled()
	}
	return big.NewInt(0), nil
}

// PreviewMint -
func (f *FacadeStub) PreviewMint(deposit *big.Int) (*systemSmartContracts.Preview, error) {
	if f.PreviewMintCalled != nil {
		return f.PreviewMintCalled(deposit)
	}
	return &systemSmartContracts.Preview{}, nil
}

// Mint -
func (f *FacadeStub) Mint(payer []byte, deposit *big.Int) (*big.Int, error) {
	if f.MintCalled != nil {
		return f.MintCalled(payer, deposit)
	}
	return big.NewInt(0), nil
}

// SetFeeBps -
func (f *FacadeStub) SetFeeBps(caller []byte, feeBps uint32) error {
	if f.SetFeeBpsCalled != nil {
		return f.SetFeeBpsCalled(caller, feeBps)
	}
	return nil
}

// SetCommercialFactorBps -
func (f *FacadeStub) SetCommercialFactorBps(caller []byte, factorBps uint32) error {
	if f.SetCommercialFactorBpsCalled != nil {
		return f.SetCommercialFactorBpsCalled(caller, factorBps)
	}
	return nil
}

// SetPaused -
func (f *FacadeStub) SetPaused(caller []byte, paused bool) error {
	if f.SetPausedCalled != nil {
		return f.SetPausedCalled(caller, paused)
	}
	return nil
}

// GetPrice -
func (f *FacadeStub) GetPrice() (*big.Int, error) {
	if f.GetPriceCalled != nil {
		return f.GetPriceCalled()
	}
	return big.NewInt(0), nil
}

// SetPrice -
func (f *FacadeStub) SetPrice(caller []byte, price *big.Int) error {
	if f.SetPriceCalled != nil {
		return f.SetPriceCalled(caller, price)
	}
	return nil
}

// GBTBalanceOf -
func (f *FacadeStub) GBTBalanceOf(address []byte) (*big.Int, error) {
	if f.GBTBalanceOfCalled != nil {
		return f.GBTBalanceOfCalled(address)
	}
	return big.NewInt(0), nil
}

// StableBalanceOf -
func (f *FacadeStub) StableBalanceOf(address []byte) (*big.Int, error) {
	if f.StableBalanceOfCalled != nil {
		return f.StableBalanceOfCalled(address)
	}
	return big.NewInt(0), nil
}

// IsInterfaceNil -
func (f *FacadeStub) IsInterfaceNil() bool {
	return f == nil
}
