package leveldb

import (
	"errors"

	"github.com/alternun/gbt-minting-go/storage"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const maxOpenFiles = 10

// DB holds a LevelDB instance and implements the storage.Persister interface
type DB struct {
	db   *leveldb.DB
	path string
}

// NewDB opens (or creates) the LevelDB database found at the given path
func NewDB(path string) (*DB, error) {
	if len(path) == 0 {
		return nil, storage.ErrEmptyDBPath
	}

	options := &opt.Options{
		OpenFilesCacheCapacity: maxOpenFiles,
	}
	db, err := leveldb.OpenFile(path, options)
	if err != nil {
		return nil, err
	}

	return &DB{
		db:   db,
		path: path,
	}, nil
}

// Put adds the value to the (key, val) persistence medium
func (s *DB) Put(key, val []byte) error {
	return s.db.Put(key, val, nil)
}

// Get gets the value associated to the key
func (s *DB) Get(key []byte) ([]byte, error) {
	val, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, storage.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	return val, nil
}

// Has returns true if the given key is present in the persistence medium
func (s *DB) Has(key []byte) (bool, error) {
	return s.db.Has(key, nil)
}

// Close closes the files/resources associated to the persistence medium
func (s *DB) Close() error {
	return s.db.Close()
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *DB) IsInterfaceNil() bool {
	return s == nil
}
