package systemSmartContracts

import (
	"bytes"
	"math/big"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"

	"github.com/alternun/gbt-minting-go/vm"
)

const treasuryConfigKey = "treasuryConfig"

// pool shares in basis points
const projectsShareBps = 5000
const recoveryShareBps = 3000
const alternunShareBps = 2000

type treasury struct {
	eei          vm.SystemEI
	marshalizer  marshal.Marshalizer
	stableLedger vm.TokenLedger
	mutExecution sync.RWMutex
}

// ArgsNewTreasury defines the arguments needed to create the treasury splitter contract
type ArgsNewTreasury struct {
	Eei          vm.SystemEI
	Marshalizer  marshal.Marshalizer
	StableLedger vm.TokenLedger
}

// NewTreasuryContract creates the treasury contract which splits incoming stable amounts
// between the projects, recovery and alternun pools
func NewTreasuryContract(args ArgsNewTreasury) (*treasury, error) {
	if check.IfNil(args.Eei) {
		return nil, vm.ErrNilSystemEnvironmentInterface
	}
	if check.IfNil(args.Marshalizer) {
		return nil, vm.ErrNilMarshalizer
	}
	if check.IfNil(args.StableLedger) {
		return nil, vm.ErrNilTokenLedger
	}

	return &treasury{
		eei:          args.Eei,
		marshalizer:  args.Marshalizer,
		stableLedger: args.StableLedger,
	}, nil
}

// Execute calls one of the functions of the treasury contract and runs the code according
// to the input
func (t *treasury) Execute(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	t.mutExecution.Lock()
	defer t.mutExecution.Unlock()

	if CheckIfNil(args) != nil {
		return vmcommon.UserError
	}
	if args.CallValue.Cmp(zero) != 0 {
		t.eei.AddReturnMessage("callValue must be 0")
		return vmcommon.UserError
	}

	switch args.Function {
	case "init":
		return t.init(args)
	case "setPools":
		return t.setPools(args)
	case "route":
		return t.route(args)
	}

	t.eei.AddReturnMessage("invalid method to call")
	return vmcommon.FunctionNotFound
}

// format: init@admin@projects@recovery@alternun
func (t *treasury) init(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 4 {
		t.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	if len(t.eei.GetStorage([]byte(treasuryConfigKey))) != 0 {
		t.eei.Finish([]byte("already"))
		return vmcommon.Ok
	}
	for _, address := range args.Arguments {
		if len(address) == 0 {
			t.eei.AddReturnMessage("pool address must not be empty")
			return vmcommon.UserError
		}
	}

	config := &TreasuryConfig{
		AdminAddress:    args.Arguments[0],
		ProjectsAddress: args.Arguments[1],
		RecoveryAddress: args.Arguments[2],
		AlternunAddress: args.Arguments[3],
	}
	err := t.saveConfig(config)
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// format: setPools@projects@recovery@alternun
func (t *treasury) setPools(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 3 {
		t.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	config, err := t.getConfig()
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if !bytes.Equal(args.CallerAddr, config.AdminAddress) {
		t.eei.AddReturnMessage(vm.ErrNotAdmin.Error())
		return vmcommon.UserError
	}
	for _, address := range args.Arguments {
		if len(address) == 0 {
			t.eei.AddReturnMessage("pool address must not be empty")
			return vmcommon.UserError
		}
	}

	config.ProjectsAddress = args.Arguments[0]
	config.RecoveryAddress = args.Arguments[1]
	config.AlternunAddress = args.Arguments[2]
	err = t.saveConfig(config)
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// format: route@amount
// The caller pays the routed amount out of its own stable balance.
func (t *treasury) route(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 1 {
		t.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}

	amount := big.NewInt(0).SetBytes(args.Arguments[0])
	err := t.doRoute(args.CallerAddr, amount)
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// Route splits the amount between the configured pools, called directly by a
// collaborating contract. Shares truncate, the rounding remainder stays with the payer.
func (t *treasury) Route(from []byte, amount *big.Int) error {
	t.mutExecution.Lock()
	defer t.mutExecution.Unlock()

	return t.doRoute(from, amount)
}

func (t *treasury) doRoute(from []byte, amount *big.Int) error {
	if amount == nil || amount.Cmp(zero) <= 0 {
		return vm.ErrNegativeOrZeroValue
	}
	config, err := t.getConfig()
	if err != nil {
		return err
	}

	shares := []struct {
		to       []byte
		shareBps int64
	}{
		{config.ProjectsAddress, projectsShareBps},
		{config.RecoveryAddress, recoveryShareBps},
		{config.AlternunAddress, alternunShareBps},
	}
	for _, share := range shares {
		part := big.NewInt(0).Mul(amount, big.NewInt(share.shareBps))
		part.Div(part, big.NewInt(bpsDenominator))
		if part.Cmp(zero) == 0 {
			continue
		}

		err = t.stableLedger.Transfer(from, share.to, part)
		if err != nil {
			return err
		}
	}

	return nil
}

func (t *treasury) saveConfig(config *TreasuryConfig) error {
	marshaledData, err := t.marshalizer.Marshal(config)
	if err != nil {
		return err
	}

	t.eei.SetStorage([]byte(treasuryConfigKey), marshaledData)
	return nil
}

func (t *treasury) getConfig() (*TreasuryConfig, error) {
	marshaledData := t.eei.GetStorage([]byte(treasuryConfigKey))
	if len(marshaledData) == 0 {
		return nil, vm.ErrNotInitialized
	}

	config := &TreasuryConfig{}
	err := t.marshalizer.Unmarshal(config, marshaledData)
	return config, err
}

// IsInterfaceNil returns true if underlying object is nil
func (t *treasury) IsInterfaceNil() bool {
	return t == nil
}
