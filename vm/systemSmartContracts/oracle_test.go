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

func createMockOracleArgs() ArgsNewPriceOracle {
	eei, _ := NewVMContext(newTestStorer())

	return ArgsNewPriceOracle{
		Eei:         eei,
		Marshalizer: &marshal.JsonMarshalizer{},
	}
}

func createInitializedOracle(t *testing.T, args ArgsNewPriceOracle) *priceOracle {
	oracle, err := NewPriceOracleContract(args)
	require.Nil(t, err)

	input := getDefaultVmInputForFunc("init", [][]byte{adminAddress})
	require.Equal(t, vmcommon.Ok, oracle.Execute(input))

	return oracle
}

func TestNewPriceOracleContract_NilArgs(t *testing.T) {
	t.Parallel()

	args := createMockOracleArgs()
	args.Eei = nil
	_, err := NewPriceOracleContract(args)
	assert.Equal(t, vm.ErrNilSystemEnvironmentInterface, err)

	args = createMockOracleArgs()
	args.Marshalizer = nil
	_, err = NewPriceOracleContract(args)
	assert.Equal(t, vm.ErrNilMarshalizer, err)
}

func TestPriceOracle_SetAndGetPrice(t *testing.T) {
	t.Parallel()

	args := createMockOracleArgs()
	oracle := createInitializedOracle(t, args)

	input := getDefaultVmInputForFunc("setPrice", [][]byte{big.NewInt(20000000).Bytes()})
	require.Equal(t, vmcommon.Ok, oracle.Execute(input))

	price, err := oracle.GetPrice()
	require.Nil(t, err)
	assert.Equal(t, big.NewInt(20000000), price)

	flushOperation(t, args.Eei)
	require.Equal(t, vmcommon.Ok, oracle.Execute(getDefaultVmInputForFunc("getPrice", nil)))
	output := args.Eei.CreateVMOutput()
	require.Equal(t, 1, len(output.ReturnData))
	assert.Equal(t, big.NewInt(20000000), big.NewInt(0).SetBytes(output.ReturnData[0]))
}

func TestPriceOracle_SetPriceRequiresAdmin(t *testing.T) {
	t.Parallel()

	args := createMockOracleArgs()
	oracle := createInitializedOracle(t, args)

	input := getDefaultVmInputForFunc("setPrice", [][]byte{big.NewInt(20000000).Bytes()})
	input.CallerAddr = payerAddress
	assert.Equal(t, vmcommon.UserError, oracle.Execute(input))

	price, _ := oracle.GetPrice()
	assert.Equal(t, big.NewInt(0), price)
}

func TestPriceOracle_SetPriceRejectsZero(t *testing.T) {
	t.Parallel()

	args := createMockOracleArgs()
	oracle := createInitializedOracle(t, args)

	input := getDefaultVmInputForFunc("setPrice", [][]byte{{}})
	assert.Equal(t, vmcommon.UserError, oracle.Execute(input))
}

func TestPriceOracle_GetPriceBeforeSet(t *testing.T) {
	t.Parallel()

	args := createMockOracleArgs()
	oracle := createInitializedOracle(t, args)

	price, err := oracle.GetPrice()
	require.Nil(t, err)
	assert.Equal(t, big.NewInt(0), price)
}

func TestPriceOracle_InitIsIdempotent(t *testing.T) {
	t.Parallel()

	args := createMockOracleArgs()
	oracle := createInitializedOracle(t, args)

	input := getDefaultVmInputForFunc("init", [][]byte{payerAddress})
	require.Equal(t, vmcommon.Ok, oracle.Execute(input))

	output := args.Eei.CreateVMOutput()
	require.Equal(t, 1, len(output.ReturnData))
	assert.Equal(t, []byte("already"), output.ReturnData[0])

	config, err := oracle.getConfig()
	require.Nil(t, err)
	assert.Equal(t, adminAddress, config.AdminAddress)
}
