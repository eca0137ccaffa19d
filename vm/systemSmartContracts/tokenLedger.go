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

const ledgerConfigKey = "ledgerConfig"
const balanceKeyPrefix = "balance"

type tokenLedger struct {
	eei          vm.SystemEI
	marshalizer  marshal.Marshalizer
	identifier   []byte
	mutExecution sync.RWMutex
}

// ArgsNewTokenLedger defines the arguments needed to create a token ledger contract
type ArgsNewTokenLedger struct {
	Eei         vm.SystemEI
	Marshalizer marshal.Marshalizer
	Identifier  []byte
}

// NewTokenLedgerContract creates a fungible token ledger. The identifier namespaces the
// contract's keys so several ledgers can share one environment.
func NewTokenLedgerContract(args ArgsNewTokenLedger) (*tokenLedger, error) {
	if check.IfNil(args.Eei) {
		return nil, vm.ErrNilSystemEnvironmentInterface
	}
	if check.IfNil(args.Marshalizer) {
		return nil, vm.ErrNilMarshalizer
	}
	if len(args.Identifier) == 0 {
		return nil, vm.ErrNilLedgerIdentifier
	}

	return &tokenLedger{
		eei:         args.Eei,
		marshalizer: args.Marshalizer,
		identifier:  args.Identifier,
	}, nil
}

// Execute calls one of the functions of the token ledger and runs the code according
// to the input
func (t *tokenLedger) Execute(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
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
	case "transfer":
		return t.transfer(args)
	case "mint":
		return t.mint(args)
	case "balanceOf":
		return t.balanceOf(args)
	case "transferOwnership":
		return t.transferOwnership(args)
	}

	t.eei.AddReturnMessage("invalid method to call")
	return vmcommon.FunctionNotFound
}

// format: init@owner@tokenName@tickerName@numDecimals
func (t *tokenLedger) init(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 4 {
		t.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	if len(t.eei.GetStorage(t.key(ledgerConfigKey))) != 0 {
		t.eei.Finish([]byte("already"))
		return vmcommon.Ok
	}

	ownerAddress := args.Arguments[0]
	if len(ownerAddress) == 0 {
		t.eei.AddReturnMessage("owner address must not be empty")
		return vmcommon.UserError
	}
	numDecimals, err := parseUint32(args.Arguments[3])
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	config := &LedgerConfig{
		OwnerAddress: ownerAddress,
		TokenName:    args.Arguments[1],
		TickerName:   args.Arguments[2],
		NumDecimals:  numDecimals,
		MintedValue:  big.NewInt(0),
	}
	err = t.saveConfig(config)
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// format: transfer@to@amount
func (t *tokenLedger) transfer(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 2 {
		t.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}

	amount := big.NewInt(0).SetBytes(args.Arguments[1])
	err := t.doTransfer(args.CallerAddr, args.Arguments[0], amount)
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// format: mint@to@amount
// Only the ledger owner can mint new supply.
func (t *tokenLedger) mint(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 2 {
		t.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	config, err := t.getConfig()
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if !bytes.Equal(args.CallerAddr, config.OwnerAddress) {
		t.eei.AddReturnMessage(vm.ErrNotLedgerOwner.Error())
		return vmcommon.UserError
	}

	amount := big.NewInt(0).SetBytes(args.Arguments[1])
	err = t.doMint(args.Arguments[0], amount)
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// format: balanceOf@address
func (t *tokenLedger) balanceOf(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 1 {
		t.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}

	t.eei.Finish(t.getBalance(args.Arguments[0]).Bytes())

	return vmcommon.Ok
}

// format: transferOwnership@newOwner
func (t *tokenLedger) transferOwnership(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 1 {
		t.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	config, err := t.getConfig()
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if !bytes.Equal(args.CallerAddr, config.OwnerAddress) {
		t.eei.AddReturnMessage(vm.ErrNotLedgerOwner.Error())
		return vmcommon.UserError
	}
	if len(args.Arguments[0]) == 0 {
		t.eei.AddReturnMessage("owner address must not be empty")
		return vmcommon.UserError
	}

	config.OwnerAddress = args.Arguments[0]
	err = t.saveConfig(config)
	if err != nil {
		t.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// Transfer moves tokens between two addresses, called directly by a collaborating contract
func (t *tokenLedger) Transfer(from []byte, to []byte, amount *big.Int) error {
	t.mutExecution.Lock()
	defer t.mutExecution.Unlock()

	return t.doTransfer(from, to, amount)
}

// Mint creates new supply for the given address, called directly by a collaborating contract
func (t *tokenLedger) Mint(to []byte, amount *big.Int) error {
	t.mutExecution.Lock()
	defer t.mutExecution.Unlock()

	return t.doMint(to, amount)
}

// BalanceOf returns the balance of the given address
func (t *tokenLedger) BalanceOf(address []byte) (*big.Int, error) {
	t.mutExecution.RLock()
	defer t.mutExecution.RUnlock()

	return t.getBalance(address), nil
}

func (t *tokenLedger) doTransfer(from []byte, to []byte, amount *big.Int) error {
	if amount == nil || amount.Cmp(zero) <= 0 {
		return vm.ErrNegativeOrZeroValue
	}
	if len(to) == 0 {
		return vm.ErrInvalidArgument
	}

	fromBalance := t.getBalance(from)
	if fromBalance.Cmp(amount) < 0 {
		return vm.ErrInsufficientBalance
	}

	t.setBalance(from, fromBalance.Sub(fromBalance, amount))
	toBalance := t.getBalance(to)
	t.setBalance(to, toBalance.Add(toBalance, amount))

	return nil
}

func (t *tokenLedger) doMint(to []byte, amount *big.Int) error {
	if amount == nil || amount.Cmp(zero) <= 0 {
		return vm.ErrNegativeOrZeroValue
	}
	if len(to) == 0 {
		return vm.ErrInvalidArgument
	}
	config, err := t.getConfig()
	if err != nil {
		return err
	}

	balance := t.getBalance(to)
	t.setBalance(to, balance.Add(balance, amount))

	config.MintedValue = config.MintedValue.Add(zeroIfNil(config.MintedValue), amount)
	return t.saveConfig(config)
}

func (t *tokenLedger) balanceKey(address []byte) []byte {
	return append(t.key(balanceKeyPrefix), address...)
}

func (t *tokenLedger) key(suffix string) []byte {
	return append(append([]byte{}, t.identifier...), []byte(suffix)...)
}

func (t *tokenLedger) getBalance(address []byte) *big.Int {
	return big.NewInt(0).SetBytes(t.eei.GetStorage(t.balanceKey(address)))
}

func (t *tokenLedger) setBalance(address []byte, value *big.Int) {
	t.eei.SetStorage(t.balanceKey(address), value.Bytes())
}

func (t *tokenLedger) saveConfig(config *LedgerConfig) error {
	marshaledData, err := t.marshalizer.Marshal(config)
	if err != nil {
		return err
	}

	t.eei.SetStorage(t.key(ledgerConfigKey), marshaledData)
	return nil
}

func (t *tokenLedger) getConfig() (*LedgerConfig, error) {
	marshaledData := t.eei.GetStorage(t.key(ledgerConfigKey))
	if len(marshaledData) == 0 {
		return nil, vm.ErrNotInitialized
	}

	config := &LedgerConfig{}
	err := t.marshalizer.Unmarshal(config, marshaledData)
	return config, err
}

// IsInterfaceNil returns true if underlying object is nil
func (t *tokenLedger) IsInterfaceNil() bool {
	return t == nil
}
