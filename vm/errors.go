package vm

import "errors"

// ErrNilSystemEnvironmentInterface signals that a nil system environment interface was provided
var ErrNilSystemEnvironmentInterface = errors.New("system environment interface is nil")

// ErrNilMarshalizer signals that an operation has been attempted to or with a nil Marshalizer implementation
var ErrNilMarshalizer = errors.New("nil Marshalizer")

// ErrNilPriceSource signals that a nil price source was provided
var ErrNilPriceSource = errors.New("nil price source")

// ErrNilTokenLedger signals that a nil stable token ledger was provided
var ErrNilTokenLedger = errors.New("nil token ledger")

// ErrNilTokenMinter signals that a nil token minter was provided
var ErrNilTokenMinter = errors.New("nil token minter")

// ErrNilTreasuryRouter signals that a nil treasury router was provided
var ErrNilTreasuryRouter = errors.New("nil treasury router")

// ErrNilStorer signals that a nil storer was provided
var ErrNilStorer = errors.New("nil storer")

// ErrNilLedgerIdentifier signals that an empty ledger identifier was provided
var ErrNilLedgerIdentifier = errors.New("nil or empty ledger identifier")

// ErrInputArgsIsNil signals that the contract call input is nil
var ErrInputArgsIsNil = errors.New("input arguments are nil")

// ErrInputCallValueIsNil signals that the input call value is nil
var ErrInputCallValueIsNil = errors.New("input call value is nil")

// ErrInputFunctionIsEmpty signals that the input function name is empty
var ErrInputFunctionIsEmpty = errors.New("input function is empty")

// ErrInputCallerAddrIsNil signals that the input caller address is nil
var ErrInputCallerAddrIsNil = errors.New("input caller address is nil")

// ErrInvalidNumOfArguments signals that the number of arguments does not match the called function
var ErrInvalidNumOfArguments = errors.New("invalid number of arguments")

// ErrInvalidArgument signals that an argument could not be parsed or is out of range
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidBasisPoints signals that a basis points value exceeds 10000
var ErrInvalidBasisPoints = errors.New("basis points value out of range")

// ErrNotAdmin signals that the caller does not match the stored admin identity
var ErrNotAdmin = errors.New("can be called by admin only")

// ErrNotInitialized signals that the contract was not initialized
var ErrNotInitialized = errors.New("contract was not initialized")

// ErrMintingPaused signals that a mint was attempted while the engine is paused
var ErrMintingPaused = errors.New("minting is paused")

// ErrBelowMinimumIssuance signals that the computed issuance is below one whole gram or zero
var ErrBelowMinimumIssuance = errors.New("issuance below minimum or zero")

// ErrNegativeOrZeroValue signals that a non-positive amount was provided where a positive one is required
var ErrNegativeOrZeroValue = errors.New("negative or zero value")

// ErrInsufficientBalance signals that the sender's balance does not cover the transfer
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrNotLedgerOwner signals that the caller is not the token ledger owner
var ErrNotLedgerOwner = errors.New("can be called by ledger owner only")
