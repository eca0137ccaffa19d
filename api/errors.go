package api

import "errors"

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

var errInvalidAmount = errors.New("amount must be a non-negative base-10 integer")
