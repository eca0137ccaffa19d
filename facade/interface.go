package facade

import (
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// ContractHandler defines what a hosted contract can do
type ContractHandler interface {
	Execute(args *vmcommon.ContractCallInput) vmcommon.ReturnCode
	IsInterfaceNil() bool
}

// EnvironmentHandler defines the buffered environment the facade drives. The facade is
// the single component allowed to clean and commit it, which is what makes each
// operation atomic: writes of a failed operation are discarded wholesale.
type EnvironmentHandler interface {
	CreateVMOutput() *vmcommon.VMOutput
	CommitChanges() error
	CleanCache()
	IsInterfaceNil() bool
}
