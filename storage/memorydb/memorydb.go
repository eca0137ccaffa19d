package memorydb

import (
	"fmt"
	"sync"

	"github.com/alternun/gbt-minting-go/storage"
)

// DB represents the memory database storage. It holds a map of key value pairs
// and a mutex to handle concurrent accesses to the map
type DB struct {
	db   map[string][]byte
	mutx sync.RWMutex
}

// New creates a new memorydb object
func New() *DB {
	return &DB{
		db: make(map[string][]byte),
	}
}

// Put adds the value to the (key, val) storage medium
func (s *DB) Put(key, val []byte) error {
	s.mutx.Lock()
	defer s.mutx.Unlock()

	s.db[string(key)] = val

	return nil
}

// Get gets the value associated to the key
func (s *DB) Get(key []byte) ([]byte, error) {
	s.mutx.RLock()
	defer s.mutx.RUnlock()

	val, ok := s.db[string(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrKeyNotFound, key)
	}

	return val, nil
}

// Has returns true if the given key is present in the persistence medium
func (s *DB) Has(key []byte) (bool, error) {
	s.mutx.RLock()
	defer s.mutx.RUnlock()

	_, ok := s.db[string(key)]

	return ok, nil
}

// Close closes the files/resources associated to the storage medium
func (s *DB) Close() error {
	s.mutx.Lock()
	defer s.mutx.Unlock()

	s.db = make(map[string][]byte)

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *DB) IsInterfaceNil() bool {
	return s == nil
}
