package storage

import "errors"

// ErrKeyNotFound signals that the requested key is not present in the storage medium
var ErrKeyNotFound = errors.New("key not found")

// ErrNilPersister signals that a nil persister was provided
var ErrNilPersister = errors.New("nil persister")

// ErrNilCacher signals that a nil cacher was provided
var ErrNilCacher = errors.New("nil cacher")

// ErrInvalidCacheSize signals that an invalid cache capacity was provided
var ErrInvalidCacheSize = errors.New("invalid cache size")

// ErrEmptyDBPath signals that an empty path was provided for the database files
var ErrEmptyDBPath = errors.New("empty path for database")
