package systemSmartContracts

import "math/big"

// MineRecord holds a deposit's resource-confidence inventory. All quantities are grams
// scaled by 1000 (three decimals of precision).
type MineRecord struct {
	InferredGm  *big.Int `json:"inferredGm"`
	IndicatedGm *big.Int `json:"indicatedGm"`
	MeasuredGm  *big.Int `json:"measuredGm"`
	ProbableGm  *big.Int `json:"probableGm"`
	ProvenGm    *big.Int `json:"provenGm"`
	Enabled     bool     `json:"enabled"`
}

// MintingConfig is the engine's persisted singleton configuration
type MintingConfig struct {
	AdminAddress        []byte `json:"adminAddress"`
	GBTTokenAddress     []byte `json:"gbtTokenAddress"`
	StableTokenAddress  []byte `json:"stableTokenAddress"`
	TreasuryAddress     []byte `json:"treasuryAddress"`
	OracleAddress       []byte `json:"oracleAddress"`
	FeeBps              uint32 `json:"feeBps"`
	CommercialFactorBps uint32 `json:"commercialFactorBps"`
	Paused              bool   `json:"paused"`
}

// Preview is the computed result of a mint quote. It is never persisted.
type Preview struct {
	GBTOutGm       *big.Int `json:"gbtOutGm"`
	NetStable      *big.Int `json:"netStable"`
	FeeStable      *big.Int `json:"feeStable"`
	Price          *big.Int `json:"price"`
	MeetsMinimum   bool     `json:"meetsMinimum"`
	CapacityLeftGm *big.Int `json:"capacityLeftGm"`
}

// LedgerConfig is the persisted configuration of a token ledger contract
type LedgerConfig struct {
	OwnerAddress []byte   `json:"ownerAddress"`
	TokenName    []byte   `json:"tokenName"`
	TickerName   []byte   `json:"tickerName"`
	NumDecimals  uint32   `json:"numDecimals"`
	MintedValue  *big.Int `json:"mintedValue"`
}

// TreasuryConfig is the persisted configuration of the treasury splitter contract
type TreasuryConfig struct {
	AdminAddress    []byte `json:"adminAddress"`
	ProjectsAddress []byte `json:"projectsAddress"`
	RecoveryAddress []byte `json:"recoveryAddress"`
	AlternunAddress []byte `json:"alternunAddress"`
}

// OracleConfig is the persisted configuration of the price oracle contract
type OracleConfig struct {
	AdminAddress []byte `json:"adminAddress"`
}

func newZeroMineRecord() *MineRecord {
	return &MineRecord{
		InferredGm:  big.NewInt(0),
		IndicatedGm: big.NewInt(0),
		MeasuredGm:  big.NewInt(0),
		ProbableGm:  big.NewInt(0),
		ProvenGm:    big.NewInt(0),
		Enabled:     false,
	}
}
