package storageunit

import (
	"sync"

	"github.com/alternun/gbt-minting-go/storage"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// Unit represents a storer's data bank holding the cache and the persistence unit
type Unit struct {
	lock      sync.RWMutex
	persister storage.Persister
	cacher    storage.Cacher
}

// NewStorageUnit is the constructor for the storage unit, creating a new storage unit
// from the given cacher and persister
func NewStorageUnit(c storage.Cacher, p storage.Persister) (*Unit, error) {
	if check.IfNil(p) {
		return nil, storage.ErrNilPersister
	}
	if check.IfNil(c) {
		return nil, storage.ErrNilCacher
	}

	return &Unit{
		persister: p,
		cacher:    c,
	}, nil
}

// Put adds data to both cache and persistence medium
func (u *Unit) Put(key, data []byte) error {
	u.lock.Lock()
	defer u.lock.Unlock()

	err := u.persister.Put(key, data)
	if err != nil {
		u.cacher.Remove(key)
		return err
	}
	u.cacher.Put(key, data)

	return nil
}

// Get searches the key in the cache. In case it is not found, it further searches it
// in the associated database. In case it is found in the database, the cache is updated
// with the value as well
func (u *Unit) Get(key []byte) ([]byte, error) {
	u.lock.Lock()
	defer u.lock.Unlock()

	val, ok := u.cacher.Get(key)
	if ok {
		return val, nil
	}

	val, err := u.persister.Get(key)
	if err != nil {
		return nil, err
	}

	u.cacher.Put(key, val)

	return val, nil
}

// Has checks if the key is in the Unit. It first checks the cache. If it is not found,
// it checks the db
func (u *Unit) Has(key []byte) (bool, error) {
	u.lock.RLock()
	defer u.lock.RUnlock()

	_, ok := u.cacher.Get(key)
	if ok {
		return true, nil
	}

	return u.persister.Has(key)
}

// ClearCache cleans up the whole cache
func (u *Unit) ClearCache() {
	u.cacher.Clear()
}

// Close will close the unit freeing the underlying resources
func (u *Unit) Close() error {
	u.cacher.Clear()
	return u.persister.Close()
}

// IsInterfaceNil returns true if there is no value under the interface
func (u *Unit) IsInterfaceNil() bool {
	return u == nil
}
