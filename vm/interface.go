package vm

import (
	"math/big"

	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// SystemSmartContract defines the functions a contract of the minting suite exposes
type SystemSmartContract interface {
	Execute(args *vmcommon.ContractCallInput) vmcommon.ReturnCode
	IsInterfaceNil() bool
}

// SystemEI defines the environment interface the minting contracts run against. Storage
// writes are buffered until CommitChanges is called, mirroring the atomic transaction
// semantics of the hosting ledger: either every write of an operation becomes visible or
// none does.
type SystemEI interface {
	SetStorage(key []byte, value []byte)
	GetStorage(key []byte) []byte
	Finish(value []byte)
	AddReturnMessage(msg string)
	AddLogEntry(entry *vmcommon.LogEntry)
	CreateVMOutput() *vmcommon.VMOutput
	CommitChanges() error
	CleanCache()

	IsInterfaceNil() bool
}

// PriceSource defines the read-only price oracle collaborator. The returned price is
// USD per gram scaled by 1e7.
type PriceSource interface {
	GetPrice() (*big.Int, error)
	IsInterfaceNil() bool
}

// TokenLedger defines the operations the engine needs from an already-issued token
// ledger (the stable asset). Transfers are attributed to the payer whose authorization
// was verified by the hosting runtime.
type TokenLedger interface {
	Transfer(from []byte, to []byte, amount *big.Int) error
	BalanceOf(address []byte) (*big.Int, error)
	IsInterfaceNil() bool
}

// TokenMinter defines the mint primitive of the issued-asset ledger. The minting engine
// must be configured as the ledger's mint authority.
type TokenMinter interface {
	Mint(to []byte, amount *big.Int) error
	IsInterfaceNil() bool
}

// TreasuryRouter routes net proceeds from the payer. How the treasury splits the routed
// amount further is opaque to callers.
type TreasuryRouter interface {
	Route(from []byte, amount *big.Int) error
	IsInterfaceNil() bool
}
