package main

import "errors"

var errInvalidGenesisPrice = errors.New("genesis InitialPrice must be a base-10 integer")
