package systemSmartContracts

import (
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"

	"github.com/alternun/gbt-minting-go/storage"
	"github.com/alternun/gbt-minting-go/vm"
)

type vmContext struct {
	storer         storage.Storer
	storageUpdates map[string][]byte
	outputData     [][]byte
	returnMessage  string
	logs           []*vmcommon.LogEntry
}

// NewVMContext creates a new system environment interface over the given storer.
// All writes are buffered and become durable only on CommitChanges.
func NewVMContext(storer storage.Storer) (*vmContext, error) {
	if storer == nil || storer.IsInterfaceNil() {
		return nil, vm.ErrNilStorer
	}

	vmc := &vmContext{storer: storer}
	vmc.CleanCache()

	return vmc, nil
}

// SetStorage saves the key value pair into the buffered state
func (vmc *vmContext) SetStorage(key []byte, value []byte) {
	vmc.storageUpdates[string(key)] = value
}

// GetStorage returns the value for the given key, reading through the buffered state first
func (vmc *vmContext) GetStorage(key []byte) []byte {
	if value, ok := vmc.storageUpdates[string(key)]; ok {
		return value
	}

	value, err := vmc.storer.Get(key)
	if err != nil {
		return nil
	}

	return value
}

// Finish appends the value to the return data of the current operation
func (vmc *vmContext) Finish(value []byte) {
	vmc.outputData = append(vmc.outputData, value)
}

// AddReturnMessage appends a message to the operation's return message
func (vmc *vmContext) AddReturnMessage(message string) {
	if message == "" {
		return
	}

	if vmc.returnMessage == "" {
		vmc.returnMessage = message
		return
	}

	vmc.returnMessage += "@" + message
}

// AddLogEntry adds a new log entry to the state
func (vmc *vmContext) AddLogEntry(entry *vmcommon.LogEntry) {
	vmc.logs = append(vmc.logs, entry)
}

// CreateVMOutput builds the output of the current operation out of the accumulated state
func (vmc *vmContext) CreateVMOutput() *vmcommon.VMOutput {
	return &vmcommon.VMOutput{
		ReturnData:    vmc.outputData,
		ReturnCode:    vmcommon.Ok,
		ReturnMessage: vmc.returnMessage,
		Logs:          vmc.logs,
	}
}

// CommitChanges flushes the buffered storage updates into the underlying storer
func (vmc *vmContext) CommitChanges() error {
	for key, value := range vmc.storageUpdates {
		err := vmc.storer.Put([]byte(key), value)
		if err != nil {
			return err
		}
	}

	vmc.storageUpdates = make(map[string][]byte)

	return nil
}

// CleanCache discards all buffered state, preparing the context for a new operation
func (vmc *vmContext) CleanCache() {
	vmc.storageUpdates = make(map[string][]byte)
	vmc.outputData = make([][]byte, 0)
	vmc.returnMessage = ""
	vmc.logs = make([]*vmcommon.LogEntry, 0)
}

// IsInterfaceNil returns true if underlying object is nil
func (vmc *vmContext) IsInterfaceNil() bool {
	return vmc == nil
}
