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

const oracleConfigKey = "oracleConfig"
const oraclePriceKey = "oraclePrice"

type priceOracle struct {
	eei          vm.SystemEI
	marshalizer  marshal.Marshalizer
	mutExecution sync.RWMutex
}

// ArgsNewPriceOracle defines the arguments needed to create the price oracle contract
type ArgsNewPriceOracle struct {
	Eei         vm.SystemEI
	Marshalizer marshal.Marshalizer
}

// NewPriceOracleContract creates the admin-set gold price oracle. Prices are USD per
// gram scaled by 1e7.
func NewPriceOracleContract(args ArgsNewPriceOracle) (*priceOracle, error) {
	if check.IfNil(args.Eei) {
		return nil, vm.ErrNilSystemEnvironmentInterface
	}
	if check.IfNil(args.Marshalizer) {
		return nil, vm.ErrNilMarshalizer
	}

	return &priceOracle{
		eei:         args.Eei,
		marshalizer: args.Marshalizer,
	}, nil
}

// Execute calls one of the functions of the price oracle and runs the code according
// to the input
func (p *priceOracle) Execute(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	p.mutExecution.Lock()
	defer p.mutExecution.Unlock()

	if CheckIfNil(args) != nil {
		return vmcommon.UserError
	}
	if args.CallValue.Cmp(zero) != 0 {
		p.eei.AddReturnMessage("callValue must be 0")
		return vmcommon.UserError
	}

	switch args.Function {
	case "init":
		return p.init(args)
	case "setPrice":
		return p.setPrice(args)
	case "getPrice":
		return p.getPrice(args)
	}

	p.eei.AddReturnMessage("invalid method to call")
	return vmcommon.FunctionNotFound
}

// format: init@admin
func (p *priceOracle) init(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 1 {
		p.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	if len(p.eei.GetStorage([]byte(oracleConfigKey))) != 0 {
		p.eei.Finish([]byte("already"))
		return vmcommon.Ok
	}
	if len(args.Arguments[0]) == 0 {
		p.eei.AddReturnMessage("admin address must not be empty")
		return vmcommon.UserError
	}

	config := &OracleConfig{AdminAddress: args.Arguments[0]}
	err := p.saveConfig(config)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// format: setPrice@price
func (p *priceOracle) setPrice(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 1 {
		p.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}
	config, err := p.getConfig()
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if !bytes.Equal(args.CallerAddr, config.AdminAddress) {
		p.eei.AddReturnMessage(vm.ErrNotAdmin.Error())
		return vmcommon.UserError
	}

	price := big.NewInt(0).SetBytes(args.Arguments[0])
	if price.Cmp(zero) <= 0 {
		p.eei.AddReturnMessage(vm.ErrNegativeOrZeroValue.Error())
		return vmcommon.UserError
	}

	p.eei.SetStorage([]byte(oraclePriceKey), price.Bytes())

	return vmcommon.Ok
}

// format: getPrice
func (p *priceOracle) getPrice(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if len(args.Arguments) != 0 {
		p.eei.AddReturnMessage(vm.ErrInvalidNumOfArguments.Error())
		return vmcommon.FunctionWrongSignature
	}

	price := big.NewInt(0).SetBytes(p.eei.GetStorage([]byte(oraclePriceKey)))
	p.eei.Finish(price.Bytes())

	return vmcommon.Ok
}

// GetPrice returns the stored price, zero when none was set yet
func (p *priceOracle) GetPrice() (*big.Int, error) {
	p.mutExecution.RLock()
	defer p.mutExecution.RUnlock()

	return big.NewInt(0).SetBytes(p.eei.GetStorage([]byte(oraclePriceKey))), nil
}

func (p *priceOracle) saveConfig(config *OracleConfig) error {
	marshaledData, err := p.marshalizer.Marshal(config)
	if err != nil {
		return err
	}

	p.eei.SetStorage([]byte(oracleConfigKey), marshaledData)
	return nil
}

func (p *priceOracle) getConfig() (*OracleConfig, error) {
	marshaledData := p.eei.GetStorage([]byte(oracleConfigKey))
	if len(marshaledData) == 0 {
		return nil, vm.ErrNotInitialized
	}

	config := &OracleConfig{}
	err := p.marshalizer.Unmarshal(config, marshaledData)
	return config, err
}

// IsInterfaceNil returns true if underlying object is nil
func (p *priceOracle) IsInterfaceNil() bool {
	return p == nil
}
