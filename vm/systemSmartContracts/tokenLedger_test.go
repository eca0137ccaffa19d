package systemSmartContracts

import (
	"math/big"
	"testing"

	"github.com/multiversx/mx-chain-core-go/marshal"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alternun/gbt-minting-go/vm"
)

var ownerAddress = []byte("owner_______________")
var holderAddress = []byte("holder______________")

func createMockLedgerArgs() ArgsNewTokenLedger {
	eei, _ := NewVMContext(newTestStorer())

	return ArgsNewTokenLedger{
		Eei:         eei,
		Marshalizer: &marshal.JsonMarshalizer{},
		Identifier:  []byte("gbt"),
	}
}

func createInitializedLedger(t *testing.T, args ArgsNewTokenLedger) *tokenLedger {
	ledger, err := NewTokenLedgerContract(args)
	require.Nil(t, err)

	input := getDefaultVmInputForFunc("init", [][]byte{
		ownerAddress,
		[]byte("GoldBackedToken"),
		[]byte("GBT"),
		big.NewInt(7).Bytes(),
	})
	input.CallerAddr = ownerAddress
	require.Equal(t, vmcommon.Ok, ledger.Execute(input))

	return ledger
}

func TestNewTokenLedgerContract_NilArgs(t *testing.T) {
	t.Parallel()

	args := createMockLedgerArgs()
	args.Eei = nil
	_, err := NewTokenLedgerContract(args)
	assert.Equal(t, vm.ErrNilSystemEnvironmentInterface, err)

	args = createMockLedgerArgs()
	args.Marshalizer = nil
	_, err = NewTokenLedgerContract(args)
	assert.Equal(t, vm.ErrNilMarshalizer, err)

	args = createMockLedgerArgs()
	args.Identifier = nil
	_, err = NewTokenLedgerContract(args)
	assert.Equal(t, vm.ErrNilLedgerIdentifier, err)
}

func TestTokenLedger_InitIsIdempotent(t *testing.T) {
	t.Parallel()

	args := createMockLedgerArgs()
	ledger := createInitializedLedger(t, args)

	input := getDefaultVmInputForFunc("init", [][]byte{
		holderAddress,
		[]byte("Other"),
		[]byte("OTH"),
		big.NewInt(2).Bytes(),
	})
	input.CallerAddr = holderAddress
	require.Equal(t, vmcommon.Ok, ledger.Execute(input))

	output := args.Eei.CreateVMOutput()
	require.Equal(t, 1, len(output.ReturnData))
	assert.Equal(t, []byte("already"), output.ReturnData[0])

	config, err := ledger.getConfig()
	require.Nil(t, err)
	assert.Equal(t, ownerAddress, config.OwnerAddress)
}

func TestTokenLedger_MintRequiresOwner(t *testing.T) {
	t.Parallel()

	args := createMockLedgerArgs()
	ledger := createInitializedLedger(t, args)

	input := getDefaultVmInputForFunc("mint", [][]byte{holderAddress, big.NewInt(100).Bytes()})
	input.CallerAddr = holderAddress
	assert.Equal(t, vmcommon.UserError, ledger.Execute(input))

	balance, _ := ledger.BalanceOf(holderAddress)
	assert.Equal(t, big.NewInt(0), balance)
}

func TestTokenLedger_MintAndTransferFlow(t *testing.T) {
	t.Parallel()

	args := createMockLedgerArgs()
	ledger := createInitializedLedger(t, args)

	input := getDefaultVmInputForFunc("mint", [][]byte{holderAddress, big.NewInt(100).Bytes()})
	input.CallerAddr = ownerAddress
	require.Equal(t, vmcommon.Ok, ledger.Execute(input))

	balance, _ := ledger.BalanceOf(holderAddress)
	assert.Equal(t, big.NewInt(100), balance)

	config, _ := ledger.getConfig()
	assert.Equal(t, big.NewInt(100), config.MintedValue)

	input = getDefaultVmInputForFunc("transfer", [][]byte{payerAddress, big.NewInt(40).Bytes()})
	input.CallerAddr = holderAddress
	require.Equal(t, vmcommon.Ok, ledger.Execute(input))

	balance, _ = ledger.BalanceOf(holderAddress)
	assert.Equal(t, big.NewInt(60), balance)
	balance, _ = ledger.BalanceOf(payerAddress)
	assert.Equal(t, big.NewInt(40), balance)
}

func TestTokenLedger_TransferInsufficientBalance(t *testing.T) {
	t.Parallel()

	args := createMockLedgerArgs()
	ledger := createInitializedLedger(t, args)

	input := getDefaultVmInputForFunc("transfer", [][]byte{payerAddress, big.NewInt(40).Bytes()})
	input.CallerAddr = holderAddress
	assert.Equal(t, vmcommon.UserError, ledger.Execute(input))

	balance, _ := ledger.BalanceOf(payerAddress)
	assert.Equal(t, big.NewInt(0), balance)
}

func TestTokenLedger_DirectPortMethods(t *testing.T) {
	t.Parallel()

	args := createMockLedgerArgs()
	ledger := createInitializedLedger(t, args)

	require.Nil(t, ledger.Mint(holderAddress, big.NewInt(500)))
	require.Nil(t, ledger.Transfer(holderAddress, payerAddress, big.NewInt(123)))

	balance, _ := ledger.BalanceOf(holderAddress)
	assert.Equal(t, big.NewInt(377), balance)
	balance, _ = ledger.BalanceOf(payerAddress)
	assert.Equal(t, big.NewInt(123), balance)

	assert.Equal(t, vm.ErrNegativeOrZeroValue, ledger.Transfer(holderAddress, payerAddress, big.NewInt(0)))
	assert.Equal(t, vm.ErrInsufficientBalance, ledger.Transfer(payerAddress, holderAddress, big.NewInt(1000)))
}

func TestTokenLedger_BalanceOfView(t *testing.T) {
	t.Parallel()

	args := createMockLedgerArgs()
	ledger := createInitializedLedger(t, args)
	require.Nil(t, ledger.Mint(holderAddress, big.NewInt(77)))
	flushOperation(t, args.Eei)

	input := getDefaultVmInputForFunc("balanceOf", [][]byte{holderAddress})
	require.Equal(t, vmcommon.Ok, ledger.Execute(input))

	output := args.Eei.CreateVMOutput()
	require.Equal(t, 1, len(output.ReturnData))
	assert.Equal(t, big.NewInt(77), big.NewInt(0).SetBytes(output.ReturnData[0]))
}

func TestTokenLedger_TransferOwnership(t *testing.T) {
	t.Parallel()

	args := createMockLedgerArgs()
	ledger := createInitializedLedger(t, args)

	input := getDefaultVmInputForFunc("transferOwnership", [][]byte{holderAddress})
	input.CallerAddr = payerAddress
	assert.Equal(t, vmcommon.UserError, ledger.Execute(input))

	input.CallerAddr = ownerAddress
	require.Equal(t, vmcommon.Ok, ledger.Execute(input))

	config, _ := ledger.getConfig()
	assert.Equal(t, holderAddress, config.OwnerAddress)
}

func TestTokenLedger_SeparateIdentifiersDoNotCollide(t *testing.T) {
	t.Parallel()

	eei, _ := NewVMContext(newTestStorer())
	marshalizer := &marshal.JsonMarshalizer{}

	gbt, err := NewTokenLedgerContract(ArgsNewTokenLedger{Eei: eei, Marshalizer: marshalizer, Identifier: []byte("gbt")})
	require.Nil(t, err)
	stable, err := NewTokenLedgerContract(ArgsNewTokenLedger{Eei: eei, Marshalizer: marshalizer, Identifier: []byte("stable")})
	require.Nil(t, err)

	initInput := getDefaultVmInputForFunc("init", [][]byte{
		ownerAddress, []byte("GoldBackedToken"), []byte("GBT"), big.NewInt(7).Bytes(),
	})
	initInput.CallerAddr = ownerAddress
	require.Equal(t, vmcommon.Ok, gbt.Execute(initInput))
	require.Equal(t, vmcommon.Ok, stable.Execute(initInput))

	require.Nil(t, gbt.Mint(holderAddress, big.NewInt(11)))
	require.Nil(t, stable.Mint(holderAddress, big.NewInt(22)))

	balance, _ := gbt.BalanceOf(holderAddress)
	assert.Equal(t, big.NewInt(11), balance)
	balance, _ = stable.BalanceOf(holderAddress)
	assert.Equal(t, big.NewInt(22), balance)
}
