package systemSmartContracts

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"

	"github.com/alternun/gbt-minting-go/vm"
)

var log = logger.GetOrCreate("vm/systemsmartcontracts")

const mintingConfigKey = "gbtMintingConfig"
const mintedGramsKey = "mintedGrams"
const maxMineIDKey = "maxMineID"
const mineKeyPrefix = "mine"

const bpsDenominator = 10000

// weights applied to the resource-confidence categories, in basis points
const weightInferredBps = 1500
const weightIndicatedBps = 3000
const weightMeasuredBps = 6000
const weightProbableBps = 5000
const weightProvenBps = 7000

// minIssuanceGm is one whole gram at the three-decimal gram scale
const minIssuanceGm = 1000

// gramScale converts stable units to three-decimal grams inside the issuance formula
const gramScale = 1000

// gramToTokenUnits converts three-decimal grams to seven-decimal token units
const gramToTokenUnits = 10000

const defaultFeeBps = 200
const defaultCommercialFactorBps = 8000

type gbtMinting struct {
	eei          vm.SystemEI
	marshalizer  marshal.Marshalizer
	oracle       vm.PriceSource
	stableLedger vm.TokenLedger
	gbtMinter    vm.TokenMinter
	treasury     vm.TreasuryRouter
	mutExecution sync.RWMutex
}

// ArgsNewGBTMinting defines the arguments needed to create the GBT minting contract
type ArgsNewGBTMinting struct {
	Eei          vm.SystemEI
	Marshalizer  marshal.Marshalizer
	Oracle       vm.PriceSource
	StableLedger vm.TokenLedger
	GBTMinter    vm.TokenMinter
	Treasury     vm.TreasuryRouter
}

// NewGBTMintingContract creates the capacity-bounded GBT minting contract
func NewGBTMintingContract(args ArgsNewGBTMinting) (*gbtMinting, error) {
	if check.IfNil(args.Eei) {
		return nil, vm.ErrNilSystemEnvironmentInterface
	}
	if check.IfNil(args.Marshalizer) {
		return nil, vm.ErrNilMarshalizer
	}
	if check.IfNil(args.Oracle) {
		return nil, vm.ErrNilPriceSource
	}
	if check.IfNil(args.StableLedger) {
		return nil, vm.ErrNilTokenLedger
	}
	if check.IfNil(args.GBTMinter) {
		return nil, vm.ErrNilTokenMinter
	}
	if check.IfNil(args.Treasury) {
		return nil, vm.ErrNilTreasuryRouter
	}

	return &gbtMinting{
		eei:          args.Eei,
		marshalizer:  args.Marshalizer,
		oracle:       args.Oracle,
		stableLedger: args.StableLedger,
		gbtMinter:    args.GBTMinter,
		treasury:     args.Treasury,
	}, nil
}

// Execute calls one of the functions of the GBT minting contract and runs the code
// according to the input. Execution is serialized: the minted-total read-modify-write of
// mint must not interleave with another mint.
func (g *gbtMinting) Execute(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	g.mutExecution.Lock()
	defer g.mutExecution.Unlock()

	if CheckIfNil(args) != nil {
		return vmcommon.UserError
	}
	if args.CallValue.Cmp(zero) != 0 {
		g.eei.AddReturnMessage("callValue must be 0")
		return vmcommon.UserError
	}

	switch args.Function {
	case "init":
		return g.init(args)
	case "setFeeBps":
		return g.setFeeBps(args)
	case "setCommercialFactorBps":
		return g.setCommercialFactorBps(args)
	case "setPaused":
		return g.setPaused(args)
	case "upsertMine":
		return g.upsertMine(args)
	case "getMine":
		return g.getMine(args)
	case "mineCapacity":
		return g.mineCapacity(args)
	case "totalCapacity":
		return g.totalCapacity(args)
	case "availableCapacity":
		return g.availableCapacity(args)
	case "previewMint":
		return g.previewMint(args)
	case "mint":
		return g.mint(args)
	}

	g.eei.AddReturnMessage("invalid method to call")
	return vmcommon.FunctionNotFound
}

var zero = big.NewInt(0)

// format: init@admin@gbtToken@stableToken@treasury@oracle@feeBps@commercialFactorBps
// A second init call is a silent no-op; it finishes the marker "already" so callers can
// distinguish first-time initialization from a duplicate one.
func (g *gbtMinting) init(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 7 {
		g.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	if len(g.eei.GetStorage([]byte(mintingConfigKey))) != 0 {
		g.eei.Finish([]byte("already"))
		return vmcommon.Ok
	}

	adminAddress := args.Arguments[0]
	if len(adminAddress) == 0 {
		g.eei.AddReturnMessage("admin address must not be empty")
		return vmcommon.UserError
	}
	if !bytes.Equal(args.CallerAddr, adminAddress) {
		g.eei.AddReturnMessage("init must be called by the admin")
		return vmcommon.UserError
	}
	for _, collaborator := range args.Arguments[1:5] {
		if len(collaborator) == 0 {
			g.eei.AddReturnMessage("collaborator address must not be empty")
			return vmcommon.UserError
		}
	}

	feeBps, err := parseUint32(args.Arguments[5])
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	commercialFactorBps, err := parseUint32(args.Arguments[6])
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if feeBps == 0 {
		feeBps = defaultFeeBps
	}
	if commercialFactorBps == 0 {
		commercialFactorBps = defaultCommercialFactorBps
	}
	if feeBps > bpsDenominator || commercialFactorBps > bpsDenominator {
		g.eei.AddReturnMessage(vm.ErrInvalidBasisPoints.Error())
		return vmcommon.UserError
	}

	config := &MintingConfig{
		AdminAddress:        adminAddress,
		GBTTokenAddress:     args.Arguments[1],
		StableTokenAddress:  args.Arguments[2],
		TreasuryAddress:     args.Arguments[3],
		OracleAddress:       args.Arguments[4],
		FeeBps:              feeBps,
		CommercialFactorBps: commercialFactorBps,
		Paused:              false,
	}
	err = g.saveConfig(config)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	g.eei.SetStorage([]byte(mintedGramsKey), zero.Bytes())

	log.Debug("gbt minting contract initialized",
		"feeBps", feeBps, "commercialFactorBps", commercialFactorBps)

	return vmcommon.Ok
}

func (g *gbtMinting) setFeeBps(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	config, returnCode := g.basicAdminChecks(args, 1)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	feeBps, err := parseUint32(args.Arguments[0])
	if err != nil || feeBps > bpsDenominator {
		g.eei.AddReturnMessage(vm.ErrInvalidBasisPoints.Error())
		return vmcommon.UserError
	}

	config.FeeBps = feeBps
	return g.saveConfigOrUserError(config)
}

func (g *gbtMinting) setCommercialFactorBps(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	config, returnCode := g.basicAdminChecks(args, 1)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	commercialFactorBps, err := parseUint32(args.Arguments[0])
	if err != nil || commercialFactorBps > bpsDenominator {
		g.eei.AddReturnMessage(vm.ErrInvalidBasisPoints.Error())
		return vmcommon.UserError
	}

	config.CommercialFactorBps = commercialFactorBps
	return g.saveConfigOrUserError(config)
}

func (g *gbtMinting) setPaused(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	config, returnCode := g.basicAdminChecks(args, 1)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	paused, err := parseBool(args.Arguments[0])
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	config.Paused = paused
	return g.saveConfigOrUserError(config)
}

// format: upsertMine@id@inferredGm@indicatedGm@measuredGm@probableGm@provenGm@enabled
// The record is overwritten unconditionally; mines are never deleted, only disabled.
func (g *gbtMinting) upsertMine(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	_, returnCode := g.basicAdminChecks(args, 7)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	mineID, err := parseUint32(args.Arguments[0])
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	enabled, err := parseBool(args.Arguments[6])
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	record := &MineRecord{
		InferredGm:  big.NewInt(0).SetBytes(args.Arguments[1]),
		IndicatedGm: big.NewInt(0).SetBytes(args.Arguments[2]),
		MeasuredGm:  big.NewInt(0).SetBytes(args.Arguments[3]),
		ProbableGm:  big.NewInt(0).SetBytes(args.Arguments[4]),
		ProvenGm:    big.NewInt(0).SetBytes(args.Arguments[5]),
		Enabled:     enabled,
	}
	err = g.saveMineRecord(mineID, record)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	maxID, tracked := g.getTrackedMaxMineID()
	if !tracked || mineID > maxID {
		g.eei.SetStorage([]byte(maxMineIDKey), encodeMineID(mineID))
	}

	log.Debug("mine record upserted", "id", mineID, "enabled", enabled)

	return vmcommon.Ok
}

// format: getMine@id
// Finishes the five quantities and the enabled flag. A missing id yields the zero,
// disabled record; the call never fails on absence.
func (g *gbtMinting) getMine(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 1 {
		g.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}

	mineID, err := parseUint32(args.Arguments[0])
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	record, err := g.getMineRecord(mineID)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	g.eei.Finish(record.InferredGm.Bytes())
	g.eei.Finish(record.IndicatedGm.Bytes())
	g.eei.Finish(record.MeasuredGm.Bytes())
	g.eei.Finish(record.ProbableGm.Bytes())
	g.eei.Finish(record.ProvenGm.Bytes())
	g.eei.Finish(boolToBytes(record.Enabled))

	return vmcommon.Ok
}

// format: mineCapacity@id
func (g *gbtMinting) mineCapacity(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 1 {
		g.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	config, err := g.getConfig()
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	mineID, err := parseUint32(args.Arguments[0])
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	record, err := g.getMineRecord(mineID)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	g.eei.Finish(capacityOfMine(record, config.CommercialFactorBps).Bytes())

	return vmcommon.Ok
}

// format: totalCapacity@[maxIdInclusive]
// The enumeration bound is the tracked highest upserted id; an explicit bound argument is
// accepted for interface parity with the original contract and clamped to the tracked one.
func (g *gbtMinting) totalCapacity(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) > 1 {
		g.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	config, err := g.getConfig()
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	bound, tracked := g.getTrackedMaxMineID()
	if !tracked {
		g.eei.Finish(zero.Bytes())
		return vmcommon.Ok
	}
	if len(args.Arguments) == 1 {
		explicitBound, errParse := parseUint32(args.Arguments[0])
		if errParse != nil {
			g.eei.AddReturnMessage(errParse.Error())
			return vmcommon.UserError
		}
		if explicitBound < bound {
			bound = explicitBound
		}
	}

	total, err := g.totalCapacityValue(config, bound)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	g.eei.Finish(total.Bytes())

	return vmcommon.Ok
}

// format: availableCapacity
func (g *gbtMinting) availableCapacity(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 0 {
		g.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	config, err := g.getConfig()
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	available, err := g.availableCapacityValue(config)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	g.eei.Finish(available.Bytes())

	return vmcommon.Ok
}

// format: previewMint@amountStable
// Read-only quote. Degenerate values produce a zero-issuance preview, never an error, so
// clients can poll quotes safely. A failing collaborator call is the one exception and
// surfaces as ExecutionFailed, same as in mint.
func (g *gbtMinting) previewMint(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 1 {
		g.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	config, err := g.getConfig()
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	deposit := big.NewInt(0).SetBytes(args.Arguments[0])
	preview, err := g.computePreview(config, deposit)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.ExecutionFailed
	}

	g.eei.Finish(preview.GBTOutGm.Bytes())
	g.eei.Finish(preview.NetStable.Bytes())
	g.eei.Finish(preview.FeeStable.Bytes())
	g.eei.Finish(preview.Price.Bytes())
	g.eei.Finish(boolToBytes(preview.MeetsMinimum))
	g.eei.Finish(preview.CapacityLeftGm.Bytes())

	return vmcommon.Ok
}

// format: mint@amountStable
// The payer is the authorized caller. Gates: pause, threshold. Effects, in order: fee to
// the admin, net to the treasury, GBT minted to the payer, minted-total accumulated.
func (g *gbtMinting) mint(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 1 {
		g.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	config, err := g.getConfig()
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if config.Paused {
		g.eei.AddReturnMessage(vm.ErrMintingPaused.Error())
		return vmcommon.UserError
	}

	payer := args.CallerAddr
	deposit := big.NewInt(0).SetBytes(args.Arguments[0])
	if deposit.Cmp(zero) <= 0 {
		g.eei.AddReturnMessage(vm.ErrNegativeOrZeroValue.Error())
		return vmcommon.UserError
	}

	preview, err := g.computePreview(config, deposit)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.ExecutionFailed
	}
	if !preview.MeetsMinimum || preview.GBTOutGm.Cmp(zero) <= 0 {
		g.eei.AddReturnMessage(vm.ErrBelowMinimumIssuance.Error())
		return vmcommon.UserError
	}

	if preview.FeeStable.Cmp(zero) > 0 {
		err = g.stableLedger.Transfer(payer, config.AdminAddress, preview.FeeStable)
		if err != nil {
			g.eei.AddReturnMessage(err.Error())
			return vmcommon.ExecutionFailed
		}
	}
	if preview.NetStable.Cmp(zero) > 0 {
		err = g.treasury.Route(payer, preview.NetStable)
		if err != nil {
			g.eei.AddReturnMessage(err.Error())
			return vmcommon.ExecutionFailed
		}
	}

	tokenUnits := big.NewInt(0).Mul(preview.GBTOutGm, big.NewInt(gramToTokenUnits))
	err = g.gbtMinter.Mint(payer, tokenUnits)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.ExecutionFailed
	}

	minted := g.getMintedGrams()
	minted.Add(minted, preview.GBTOutGm)
	g.eei.SetStorage([]byte(mintedGramsKey), minted.Bytes())

	g.eei.AddLogEntry(&vmcommon.LogEntry{
		Identifier: []byte("mint"),
		Address:    payer,
		Topics: [][]byte{
			deposit.Bytes(), preview.GBTOutGm.Bytes(), preview.FeeStable.Bytes(), preview.NetStable.Bytes(),
		},
	})
	g.eei.Finish(preview.GBTOutGm.Bytes())

	log.Debug("gbt minted",
		"deposit", deposit, "grams", preview.GBTOutGm, "fee", preview.FeeStable,
		"mintedTotal", minted)

	return vmcommon.Ok
}

// ComputePreview is the pure mint quote: fee split, scale conversion, minimum-issuance
// threshold and capacity clamp. All divisions truncate toward zero.
func ComputePreview(depositStable *big.Int, price *big.Int, availableGm *big.Int, feeBps uint32) *Preview {
	depositStable = zeroIfNil(depositStable)
	price = zeroIfNil(price)
	availableGm = zeroIfNil(availableGm)

	capacityLeft := big.NewInt(0)
	if availableGm.Cmp(zero) > 0 {
		capacityLeft.Set(availableGm)
	}
	preview := &Preview{
		GBTOutGm:       big.NewInt(0),
		NetStable:      big.NewInt(0),
		FeeStable:      big.NewInt(0),
		Price:          big.NewInt(0).Set(price),
		MeetsMinimum:   false,
		CapacityLeftGm: capacityLeft,
	}

	degenerate := depositStable.Cmp(zero) <= 0 || price.Cmp(zero) <= 0 || availableGm.Cmp(zero) <= 0
	if degenerate {
		return preview
	}

	fee := big.NewInt(0).Mul(depositStable, big.NewInt(int64(feeBps)))
	fee.Div(fee, big.NewInt(bpsDenominator))
	net := big.NewInt(0).Sub(depositStable, fee)

	gbtOutGm := big.NewInt(0).Mul(net, big.NewInt(gramScale))
	gbtOutGm.Div(gbtOutGm, price)

	meetsMinimum := gbtOutGm.Cmp(big.NewInt(minIssuanceGm)) >= 0
	if !meetsMinimum {
		gbtOutGm = big.NewInt(0)
	}
	if gbtOutGm.Cmp(availableGm) > 0 {
		gbtOutGm = big.NewInt(0).Set(availableGm)
	}

	preview.FeeStable = fee
	preview.NetStable = net
	preview.GBTOutGm = gbtOutGm
	preview.MeetsMinimum = meetsMinimum
	preview.CapacityLeftGm = big.NewInt(0).Sub(availableGm, gbtOutGm)
	if preview.CapacityLeftGm.Cmp(zero) < 0 {
		preview.CapacityLeftGm = big.NewInt(0)
	}

	return preview
}

func (g *gbtMinting) computePreview(config *MintingConfig, deposit *big.Int) (*Preview, error) {
	price, err := g.oracle.GetPrice()
	if err != nil {
		return nil, err
	}
	available, err := g.availableCapacityValue(config)
	if err != nil {
		return nil, err
	}

	return ComputePreview(deposit, price, available, config.FeeBps), nil
}

func capacityOfMine(record *MineRecord, commercialFactorBps uint32) *big.Int {
	if record == nil || !record.Enabled {
		return big.NewInt(0)
	}

	weighted := big.NewInt(0)
	weighted.Add(weighted, big.NewInt(0).Mul(zeroIfNil(record.InferredGm), big.NewInt(weightInferredBps)))
	weighted.Add(weighted, big.NewInt(0).Mul(zeroIfNil(record.IndicatedGm), big.NewInt(weightIndicatedBps)))
	weighted.Add(weighted, big.NewInt(0).Mul(zeroIfNil(record.MeasuredGm), big.NewInt(weightMeasuredBps)))
	weighted.Add(weighted, big.NewInt(0).Mul(zeroIfNil(record.ProbableGm), big.NewInt(weightProbableBps)))
	weighted.Add(weighted, big.NewInt(0).Mul(zeroIfNil(record.ProvenGm), big.NewInt(weightProvenBps)))

	weighted.Mul(weighted, big.NewInt(int64(commercialFactorBps)))
	return weighted.Div(weighted, big.NewInt(bpsDenominator*bpsDenominator))
}

func (g *gbtMinting) totalCapacityValue(config *MintingConfig, maxIDInclusive uint32) (*big.Int, error) {
	total := big.NewInt(0)
	for id := uint32(0); ; id++ {
		record, err := g.getMineRecord(id)
		if err != nil {
			return nil, err
		}
		total.Add(total, capacityOfMine(record, config.CommercialFactorBps))

		if id == maxIDInclusive {
			break
		}
	}

	return total, nil
}

func (g *gbtMinting) availableCapacityValue(config *MintingConfig) (*big.Int, error) {
	maxID, tracked := g.getTrackedMaxMineID()
	if !tracked {
		return big.NewInt(0), nil
	}

	total, err := g.totalCapacityValue(config, maxID)
	if err != nil {
		return nil, err
	}

	available := total.Sub(total, g.getMintedGrams())
	if available.Cmp(zero) < 0 {
		return big.NewInt(0), nil
	}

	return available, nil
}

func (g *gbtMinting) basicAdminChecks(args *vmcommon.ContractCallInput, numArgs int) (*MintingConfig, vmcommon.ReturnCode) {
	if len(args.Arguments) != numArgs {
		g.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return nil, vmcommon.FunctionWrongSignature
	}
	config, err := g.getConfig()
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return nil, vmcommon.UserError
	}
	if !bytes.Equal(args.CallerAddr, config.AdminAddress) {
		g.eei.AddReturnMessage(vm.ErrNotAdmin.Error())
		return nil, vmcommon.UserError
	}

	return config, vmcommon.Ok
}

func (g *gbtMinting) saveConfigOrUserError(config *MintingConfig) vmcommon.ReturnCode {
	err := g.saveConfig(config)
	if err != nil {
		g.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

func (g *gbtMinting) saveConfig(config *MintingConfig) error {
	marshaledData, err := g.marshalizer.Marshal(config)
	if err != nil {
		return err
	}

	g.eei.SetStorage([]byte(mintingConfigKey), marshaledData)
	return nil
}

func (g *gbtMinting) getConfig() (*MintingConfig, error) {
	marshaledData := g.eei.GetStorage([]byte(mintingConfigKey))
	if len(marshaledData) == 0 {
		return nil, vm.ErrNotInitialized
	}

	config := &MintingConfig{}
	err := g.marshalizer.Unmarshal(config, marshaledData)
	return config, err
}

// encodeMineID encodes ids fixed-width. Variable-length big.Int bytes would persist id 0
// as an empty value, which a persister may hand back as nil, indistinguishable from the
// key never having been written.
func encodeMineID(mineID uint32) []byte {
	encoded := make([]byte, 4)
	binary.BigEndian.PutUint32(encoded, mineID)
	return encoded
}

func mineKey(mineID uint32) []byte {
	return append([]byte(mineKeyPrefix), encodeMineID(mineID)...)
}

func (g *gbtMinting) saveMineRecord(mineID uint32, record *MineRecord) error {
	marshaledData, err := g.marshalizer.Marshal(record)
	if err != nil {
		return err
	}

	g.eei.SetStorage(mineKey(mineID), marshaledData)
	return nil
}

func (g *gbtMinting) getMineRecord(mineID uint32) (*MineRecord, error) {
	marshaledData := g.eei.GetStorage(mineKey(mineID))
	if len(marshaledData) == 0 {
		return newZeroMineRecord(), nil
	}

	record := &MineRecord{}
	err := g.marshalizer.Unmarshal(record, marshaledData)
	return record, err
}

func (g *gbtMinting) getTrackedMaxMineID() (uint32, bool) {
	data := g.eei.GetStorage([]byte(maxMineIDKey))
	if len(data) != 4 {
		return 0, false
	}

	return binary.BigEndian.Uint32(data), true
}

func (g *gbtMinting) getMintedGrams() *big.Int {
	return big.NewInt(0).SetBytes(g.eei.GetStorage([]byte(mintedGramsKey)))
}

// IsInterfaceNil returns true if underlying object is nil
func (g *gbtMinting) IsInterfaceNil() bool {
	return g == nil
}
