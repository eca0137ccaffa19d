package systemSmartContracts

import (
	"math"
	"math/big"

	vmcommon "github.com/multiversx/mx-chain-vm-common-go"

	"github.com/alternun/gbt-minting-go/vm"
)

// CheckIfNil verifies that a contract call input is well formed
func CheckIfNil(args *vmcommon.ContractCallInput) error {
	if args == nil {
		return vm.ErrInputArgsIsNil
	}
	if args.CallValue == nil {
		return vm.ErrInputCallValueIsNil
	}
	if args.Function == "" {
		return vm.ErrInputFunctionIsEmpty
	}
	if args.CallerAddr == nil {
		return vm.ErrInputCallerAddrIsNil
	}

	return nil
}

func parseUint32(arg []byte) (uint32, error) {
	value := big.NewInt(0).SetBytes(arg)
	if !value.IsUint64() || value.Uint64() > math.MaxUint32 {
		return 0, vm.ErrInvalidArgument
	}

	return uint32(value.Uint64()), nil
}

func parseBool(arg []byte) (bool, error) {
	switch string(arg) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, vm.ErrInvalidArgument
}

func boolToBytes(value bool) []byte {
	if value {
		return []byte("true")
	}

	return []byte("false")
}

func zeroIfNil(value *big.Int) *big.Int {
	if value == nil {
		return big.NewInt(0)
	}

	return value
}
