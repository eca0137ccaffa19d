package api

import (
	"math/big"

	"github.com/alternun/gbt-minting-go/vm/systemSmartContracts"
)

// FacadeHandler defines the operations the web server exposes over HTTP
type FacadeHandler interface {
	GetMine(mineID uint32) (*systemSmartContracts.MineRecord, error)
	UpsertMine(caller []byte, mineID uint32, record *systemSmartContracts.MineRecord) error
	MineCapacity(mineID uint32) (*big.Int, error)
	TotalCapacity() (*big.Int, error)
	AvailableCapacity() (*big.Int, error)
	PreviewMint(deposit *big.Int) (*systemSmartContracts.Preview, error)
	Mint(payer []byte, deposit *big.Int) (*big.Int, error)
	SetFeeBps(caller []byte, feeBps uint32) error
	SetCommercialFactorBps(caller []byte, factorBps uint32) error
	SetPaused(caller []byte, paused bool) error
	GetPrice() (*big.Int, error)
	SetPrice(caller []byte, price *big.Int) error
	GBTBalanceOf(address []byte) (*big.Int, error)
	StableBalanceOf(address []byte) (*big.Int, error)
	IsInterfaceNil() bool
}
