package storage

// Persister provides storage of data in a database like construct
type Persister interface {
	// Put adds the value to the (key, val) persistence medium
	Put(key, val []byte) error

	// Get gets the value associated to the key
	Get(key []byte) ([]byte, error)

	// Has returns true if the given key is present in the persistence medium
	Has(key []byte) (bool, error)

	// Close closes the files/resources associated to the persistence medium
	Close() error

	// IsInterfaceNil returns true if there is no value under the interface
	IsInterfaceNil() bool
}

// Cacher provides caching services
type Cacher interface {
	// Put adds a value to the cache. Returns true if an eviction occurred
	Put(key []byte, value []byte) (evicted bool)

	// Get looks up a key's value from the cache
	Get(key []byte) ([]byte, bool)

	// Remove removes the provided key from the cache
	Remove(key []byte)

	// Clear is used to completely clear the cache
	Clear()

	// Len returns the number of items in the cache
	Len() int

	// IsInterfaceNil returns true if there is no value under the interface
	IsInterfaceNil() bool
}

// Storer provides storage services backed by a cache and a persistence unit
type Storer interface {
	Put(key, data []byte) error
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	ClearCache()
	Close() error
	IsInterfaceNil() bool
}
