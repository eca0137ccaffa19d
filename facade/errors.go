package facade

import "errors"

// ErrNilEnvironmentHandler signals that a nil environment handler has been provided
var ErrNilEnvironmentHandler = errors.New("nil environment handler")

// ErrNilMintingContract signals that a nil minting contract has been provided
var ErrNilMintingContract = errors.New("nil minting contract")

// ErrNilOracleContract signals that a nil oracle contract has been provided
var ErrNilOracleContract = errors.New("nil oracle contract")

// ErrNilTreasuryContract signals that a nil treasury contract has been provided
var ErrNilTreasuryContract = errors.New("nil treasury contract")

// ErrNilLedgerContract signals that a nil token ledger contract has been provided
var ErrNilLedgerContract = errors.New("nil token ledger contract")

// ErrUnexpectedReturnData signals that a contract call finished with a different shape
// of return data than the facade expected
var ErrUnexpectedReturnData = errors.New("unexpected return data")
