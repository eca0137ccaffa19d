package mock

import (
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// SystemEIStub -
type SystemEIStub struct {
	SetStorageCalled       func(key []byte, value []byte)
	GetStorageCalled       func(key []byte) []byte
	FinishCalled           func(value []byte)
	AddReturnMessageCalled func(message string)
	AddLogEntryCalled      func(entry *vmcommon.LogEntry)
	CreateVMOutputCalled   func() *vmcommon.VMOutput
	CommitChangesCalled    func() error
	CleanCacheCalled       func()
	ReturnMessage          string
	storage                map[string][]byte
}

// SetStorage -
func (s *SystemEIStub) SetStorage(key []byte, value []byte) {
	if s.SetStorageCalled != nil {
		s.SetStorageCalled(key, value)
		return
	}
	if s.storage == nil {
		s.storage = make(map[string][]byte)
	}
	s.storage[string(key)] = value
}

// GetStorage -
func (s *SystemEIStub) GetStorage(key []byte) []byte {
	if s.GetStorageCalled != nil {
		return s.GetStorageCalled(key)
	}
	return s.storage[string(key)]
}

// Finish -
func (s *SystemEIStub) Finish(value []byte) {
	if s.FinishCalled != nil {
		s.FinishCalled(value)
	}
}

// AddReturnMessage -
func (s *SystemEIStub) AddReturnMessage(message string) {
	if s.AddReturnMessageCalled != nil {
		s.AddReturnMessageCalled(message)
		return
	}
	s.ReturnMessage = message
}

// AddLogEntry -
func (s *SystemEIStub) AddLogEntry(entry *vmcommon.LogEntry) {
	if s.AddLogEntryCalled != nil {
		s.AddLogEntryCalled(entry)
	}
}

// CreateVMOutput -
func (s *SystemEIStub) CreateVMOutput() *vmcommon.VMOutput {
	if s.CreateVMOutputCalled != nil {
		return s.CreateVMOutputCalled()
	}
	return &vmcommon.VMOutput{}
}

// CommitChanges -
func (s *SystemEIStub) CommitChanges() error {
	if s.CommitChangesCalled != nil {
		return s.CommitChangesCalled()
	}
	return nil
}

// CleanCache -
func (s *SystemEIStub) CleanCache() {
	if s.CleanCacheCalled != nil {
		s.CleanCacheCalled()
	}
}

// IsInterfaceNil -
func (s *SystemEIStub) IsInterfaceNil() bool {
	return s == nil
}
