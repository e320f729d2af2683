package boltseq

import (
	"path/filepath"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ib-77/tryiter/pkg/rop/tryiter"
)

var bucket = []byte("numbers")

func openDB(t *testing.T, entries ...Entry) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, &bolt.Options{Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Put(db, bucket, entries...))
	return db
}

func entry(k, v string) Entry {
	return Entry{Key: []byte(k), Value: []byte(v)}
}

func atoi(_, v []byte) (int, error) {
	return strconv.Atoi(string(v))
}

func TestCursor_KeyOrderAndFailures(t *testing.T) {
	db := openDB(t, entry("c", "3"), entry("a", "1"), entry("b", "two"))

	c, err := Open(db, bucket, atoi)
	require.NoError(t, err)

	r, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 1, r.Result())

	r, ok = c.Next()
	require.True(t, ok)
	require.True(t, r.IsFailure())
	assert.Contains(t, r.Err().Error(), `decode "b"`)
	var numErr *strconv.NumError
	assert.ErrorAs(t, r.Err(), &numErr)

	r, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, 3, r.Result())

	_, ok = c.Next()
	assert.False(t, ok)
	_, ok = c.Next()
	assert.False(t, ok, "exhausted cursor must stay exhausted")
	assert.NoError(t, c.Close())
}

func TestCursor_WithAdapters(t *testing.T) {
	db := openDB(t, entry("1", "10"), entry("2", "oops"), entry("3", "30"))

	c, err := Open(db, bucket, atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 30}, slices.Collect(tryiter.FilterOk[int](c).All()))

	c, err = Open(db, bucket, atoi)
	require.NoError(t, err)
	res := tryiter.TryCollectSlice[int](c)
	require.True(t, res.IsFailure())
	require.NoError(t, c.Close())
}

func TestCursor_SkipsNestedBuckets(t *testing.T) {
	db := openDB(t, entry("a", "1"), entry("c", "3"))
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.Bucket(bucket).CreateBucket([]byte("b"))
		return err
	}))

	c, err := Open(db, bucket, atoi)
	require.NoError(t, err)
	res := tryiter.TryCollectSlice[int](c)
	require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
	assert.Equal(t, []int{1, 3}, res.Result())
}

func TestCursor_CloseEarly(t *testing.T) {
	db := openDB(t, entry("a", "1"), entry("b", "2"))

	c, err := Open(db, bucket, atoi)
	require.NoError(t, err)
	_, ok := c.Next()
	require.True(t, ok)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	_, ok = c.Next()
	assert.False(t, ok)

	// the read transaction is released, so writes go through
	require.NoError(t, Put(db, bucket, entry("c", "3")))
}

func TestOpen_MissingBucket(t *testing.T) {
	db := openDB(t)

	_, err := Open(db, []byte("missing"), atoi)
	assert.ErrorIs(t, err, ErrBucketNotFound)
}

func TestCursor_EmptyBucket(t *testing.T) {
	db := openDB(t)

	c, err := Open(db, bucket, atoi)
	require.NoError(t, err)
	res := tryiter.TryCollectSlice[int](c)
	require.True(t, res.IsSuccess())
	assert.Empty(t, res.Result())
}
