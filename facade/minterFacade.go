package facade

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"

	"github.com/alternun/gbt-minting-go/vm/systemSmartContracts"
)

var log = logger.GetOrCreate("facade")

// anonymousCaller stands in for view operations that carry no identity of their own
var anonymousCaller = []byte("anonymous")

// minterFacade serializes all contract operations over the shared buffered environment.
// Each operation is clean-execute-commit: the buffer starts empty, the contract runs, and
// the writes reach the storer only when the contract returned Ok.
type minterFacade struct {
	eei          EnvironmentHandler
	minting      ContractHandler
	oracle       ContractHandler
	treasury     ContractHandler
	gbtLedger    ContractHandler
	stableLedger ContractHandler
	mutOperation sync.Mutex
}

// ArgsNewMinterFacade defines the arguments needed to create a minter facade
type ArgsNewMinterFacade struct {
	Eei          EnvironmentHandler
	Minting      ContractHandler
	Oracle       ContractHandler
	Treasury     ContractHandler
	GBTLedger    ContractHandler
	StableLedger ContractHandler
}

// NewMinterFacade creates a new minter facade
func NewMinterFacade(args ArgsNewMinterFacade) (*minterFacade, error) {
	if check.IfNil(args.Eei) {
		return nil, ErrNilEnvironmentHandler
	}
	if check.IfNil(args.Minting) {
		return nil, ErrNilMintingContract
	}
	if check.IfNil(args.Oracle) {
		return nil, ErrNilOracleContract
	}
	if check.IfNil(args.Treasury) {
		return nil, ErrNilTreasuryContract
	}
	if check.IfNil(args.GBTLedger) || check.IfNil(args.StableLedger) {
		return nil, ErrNilLedgerContract
	}

	return &minterFacade{
		eei:          args.Eei,
		minting:      args.Minting,
		oracle:       args.Oracle,
		treasury:     args.Treasury,
		gbtLedger:    args.GBTLedger,
		stableLedger: args.StableLedger,
	}, nil
}

func (mf *minterFacade) runOperation(
	contract ContractHandler,
	caller []byte,
	function string,
	args [][]byte,
) (*vmcommon.VMOutput, error) {
	mf.mutOperation.Lock()
	defer mf.mutOperation.Unlock()

	mf.eei.CleanCache()
	if len(caller) == 0 {
		caller = anonymousCaller
	}
	input := &vmcommon.ContractCallInput{
		VMInput: vmcommon.VMInput{
			CallerAddr: caller,
			CallValue:  big.NewInt(0),
			Arguments:  args,
		},
		Function: function,
	}

	returnCode := contract.Execute(input)
	output := mf.eei.CreateVMOutput()
	output.ReturnCode = returnCode
	if returnCode != vmcommon.Ok {
		log.Trace("operation rejected",
			"function", function, "returnCode", returnCode, "message", output.ReturnMessage)
		return output, fmt.Errorf("%s: %s", returnCode.String(), output.ReturnMessage)
	}

	err := mf.eei.CommitChanges()
	if err != nil {
		return output, err
	}

	return output, nil
}

// InitMinting initializes the minting engine configuration
func (mf *minterFacade) InitMinting(caller []byte, args [][]byte) error {
	_, err := mf.runOperation(mf.minting, caller, "init", args)
	return err
}

// InitOracle initializes the price oracle
func (mf *minterFacade) InitOracle(caller []byte, args [][]byte) error {
	_, err := mf.runOperation(mf.oracle, caller, "init", args)
	return err
}

// InitTreasury initializes the treasury pools
func (mf *minterFacade) InitTreasury(caller []byte, args [][]byte) error {
	_, err := mf.runOperation(mf.treasury, caller, "init", args)
	return err
}

// InitGBTLedger initializes the issued-token ledger
func (mf *minterFacade) InitGBTLedger(caller []byte, args [][]byte) error {
	_, err := mf.runOperation(mf.gbtLedger, caller, "init", args)
	return err
}

// InitStableLedger initializes the stable-token ledger
func (mf *minterFacade) InitStableLedger(caller []byte, args [][]byte) error {
	_, err := mf.runOperation(mf.stableLedger, caller, "init", args)
	return err
}

// GetMine returns the stored mine record for the given id
func (mf *minterFacade) GetMine(mineID uint32) (*systemSmartContracts.MineRecord, error) {
	output, err := mf.runOperation(mf.minting, nil, "getMine", [][]byte{uint32ToBytes(mineID)})
	if err != nil {
		return nil, err
	}
	if len(output.ReturnData) != 6 {
		return nil, ErrUnexpectedReturnData
	}

	return &systemSmartContracts.MineRecord{
		InferredGm:  big.NewInt(0).SetBytes(output.ReturnData[0]),
		IndicatedGm: big.NewInt(0).SetBytes(output.ReturnData[1]),
		MeasuredGm:  big.NewInt(0).SetBytes(output.ReturnData[2]),
		ProbableGm:  big.NewInt(0).SetBytes(output.ReturnData[3]),
		ProvenGm:    big.NewInt(0).SetBytes(output.ReturnData[4]),
		Enabled:     string(output.ReturnData[5]) == "true",
	}, nil
}

// UpsertMine creates or overwrites a mine record
func (mf *minterFacade) UpsertMine(caller []byte, mineID uint32, record *systemSmartContracts.MineRecord) error {
	args := [][]byte{
		uint32ToBytes(mineID),
		record.InferredGm.Bytes(),
		record.IndicatedGm.Bytes(),
		record.MeasuredGm.Bytes(),
		record.ProbableGm.Bytes(),
		record.ProvenGm.Bytes(),
		boolArg(record.Enabled),
	}
	_, err := mf.runOperation(mf.minting, caller, "upsertMine", args)
	return err
}

// MineCapacity returns the issuance capacity contributed by one mine
func (mf *minterFacade) MineCapacity(mineID uint32) (*big.Int, error) {
	output, err := mf.runOperation(mf.minting, nil, "mineCapacity", [][]byte{uint32ToBytes(mineID)})
	if err != nil {
		return nil, err
	}

	return singleBigInt(output)
}

// TotalCapacity returns the engine's total issuance ceiling
func (mf *minterFacade) TotalCapacity() (*big.Int, error) {
	output, err := mf.runOperation(mf.minting, nil, "totalCapacity", nil)
	if err != nil {
		return nil, err
	}

	return singleBigInt(output)
}

// AvailableCapacity returns the remaining issuance headroom
func (mf *minterFacade) AvailableCapacity() (*big.Int, error) {
	output, err := mf.runOperation(mf.minting, nil, "availableCapacity", nil)
	if err != nil {
		return nil, err
	}

	return singleBigInt(output)
}

// PreviewMint returns a read-only quote for the given stable deposit
func (mf *minterFacade) PreviewMint(deposit *big.Int) (*systemSmartContracts.Preview, error) {
	output, err := mf.runOperation(mf.minting, nil, "previewMint", [][]byte{deposit.Bytes()})
	if err != nil {
		return nil, err
	}
	if len(output.ReturnData) != 6 {
		return nil, ErrUnexpectedReturnData
	}

	return &systemSmartContracts.Preview{
		GBTOutGm:       big.NewInt(0).SetBytes(output.ReturnData[0]),
		NetStable:      big.NewInt(0).SetBytes(output.ReturnData[1]),
		FeeStable:      big.NewInt(0).SetBytes(output.ReturnData[2]),
		Price:          big.NewInt(0).SetBytes(output.ReturnData[3]),
		MeetsMinimum:   string(output.ReturnData[4]) == "true",
		CapacityLeftGm: big.NewInt(0).SetBytes(output.ReturnData[5]),
	}, nil
}

// Mint converts the payer's stable deposit into issued GBT grams
func (mf *minterFacade) Mint(payer []byte, deposit *big.Int) (*big.Int, error) {
	output, err := mf.runOperation(mf.minting, payer, "mint", [][]byte{deposit.Bytes()})
	if err != nil {
		return nil, err
	}

	return singleBigInt(output)
}

// SetFeeBps updates the engine's fee rate
func (mf *minterFacade) SetFeeBps(caller []byte, feeBps uint32) error {
	_, err := mf.runOperation(mf.minting, caller, "setFeeBps", [][]byte{uint32ToBytes(feeBps)})
	return err
}

// SetCommercialFactorBps updates the engine's commercial factor
func (mf *minterFacade) SetCommercialFactorBps(caller []byte, factorBps uint32) error {
	_, err := mf.runOperation(mf.minting, caller, "setCommercialFactorBps", [][]byte{uint32ToBytes(factorBps)})
	return err
}

// SetPaused flips the engine's pause gate
func (mf *minterFacade) SetPaused(caller []byte, paused bool) error {
	_, err := mf.runOperation(mf.minting, caller, "setPaused", [][]byte{boolArg(paused)})
	return err
}

// GetPrice returns the oracle's current price
func (mf *minterFacade) GetPrice() (*big.Int, error) {
	output, err := mf.runOperation(mf.oracle, nil, "getPrice", nil)
	if err != nil {
		return nil, err
	}

	return singleBigInt(output)
}

// SetPrice updates the oracle's price
func (mf *minterFacade) SetPrice(caller []byte, price *big.Int) error {
	_, err := mf.runOperation(mf.oracle, caller, "setPrice", [][]byte{price.Bytes()})
	return err
}

// GBTBalanceOf returns an address' issued-token balance
func (mf *minterFacade) GBTBalanceOf(address []byte) (*big.Int, error) {
	output, err := mf.runOperation(mf.gbtLedger, nil, "balanceOf", [][]byte{address})
	if err != nil {
		return nil, err
	}

	return singleBigInt(output)
}

// StableBalanceOf returns an address' stable-token balance
func (mf *minterFacade) StableBalanceOf(address []byte) (*big.Int, error) {
	output, err := mf.runOperation(mf.stableLedger, nil, "balanceOf", [][]byte{address})
	if err != nil {
		return nil, err
	}

	return singleBigInt(output)
}

// MintStable credits stable tokens to an address, owner gated by the ledger
func (mf *minterFacade) MintStable(caller []byte, to []byte, amount *big.Int) error {
	_, err := mf.runOperation(mf.stableLedger, caller, "mint", [][]byte{to, amount.Bytes()})
	return err
}

func singleBigInt(output *vmcommon.VMOutput) (*big.Int, error) {
	if len(output.ReturnData) != 1 {
		return nil, ErrUnexpectedReturnData
	}

	return big.NewInt(0).SetBytes(output.ReturnData[0]), nil
}

func uint32ToBytes(value uint32) []byte {
	return big.NewInt(int64(value)).Bytes()
}

func boolArg(value bool) []byte {
	if value {
		return []byte("true")
	}

	return []byte("false")
}

// IsInterfaceNil returns true if underlying object is nil
func (mf *minterFacade) IsInterfaceNil() bool {
	return mf == nil
}
