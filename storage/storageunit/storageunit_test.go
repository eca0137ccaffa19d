package storageunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alternun/gbt-minting-go/storage"
	"github.com/alternun/gbt-minting-go/storage/lrucache"
	"github.com/alternun/gbt-minting-go/storage/memorydb"
)

func createTestUnit(t *testing.T) *Unit {
	cache, err := lrucache.NewCache(10)
	require.Nil(t, err)

	unit, err := NewStorageUnit(cache, memorydb.New())
	require.Nil(t, err)

	return unit
}

func TestNewStorageUnit_NilArgs(t *testing.T) {
	t.Parallel()

	cache, _ := lrucache.NewCache(10)

	unit, err := NewStorageUnit(cache, nil)
	assert.Nil(t, unit)
	assert.Equal(t, storage.ErrNilPersister, err)

	unit, err = NewStorageUnit(nil, memorydb.New())
	assert.Nil(t, unit)
	assert.Equal(t, storage.ErrNilCacher, err)
}

func TestUnit_PutGet(t *testing.T) {
	t.Parallel()

	unit := createTestUnit(t)

	key := []byte("key")
	value := []byte("value")
	require.Nil(t, unit.Put(key, value))

	retrieved, err := unit.Get(key)
	require.Nil(t, err)
	assert.Equal(t, value, retrieved)
}

func TestUnit_GetPopulatesCacheFromPersister(t *testing.T) {
	t.Parallel()

	cache, _ := lrucache.NewCache(10)
	persister := memorydb.New()
	unit, err := NewStorageUnit(cache, persister)
	require.Nil(t, err)

	key := []byte("key")
	value := []byte("value")
	require.Nil(t, persister.Put(key, value))

	_, ok := cache.Get(key)
	assert.False(t, ok)

	retrieved, err := unit.Get(key)
	require.Nil(t, err)
	assert.Equal(t, value, retrieved)

	cached, ok := cache.Get(key)
	assert.True(t, ok)
	assert.Equal(t, value, cached)
}

func TestUnit_GetMissingKey(t *testing.T) {
	t.Parallel()

	unit := createTestUnit(t)

	_, err := unit.Get([]byte("missing"))
	assert.NotNil(t, err)

	has, err := unit.Has([]byte("missing"))
	require.Nil(t, err)
	assert.False(t, has)
}

func TestUnit_HasAfterClearCache(t *testing.T) {
	t.Parallel()

	unit := createTestUnit(t)

	key := []byte("key")
	require.Nil(t, unit.Put(key, []byte("value")))

	unit.ClearCache()

	// still found via the persister
	has, err := unit.Has(key)
	require.Nil(t, err)
	assert.True(t, has)
}

func TestUnit_IsInterfaceNil(t *testing.T) {
	t.Parallel()

	var unit *Unit
	assert.True(t, unit.IsInterfaceNil())
	assert.False(t, createTestUnit(t).IsInterfaceNil())
}
