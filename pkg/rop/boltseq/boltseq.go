package boltseq

import (
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/ib-77/tryiter/pkg/rop"
)

var ErrBucketNotFound = errors.New("bucket not found")

// Entry is a raw key/value pair as stored in a bucket.
type Entry struct {
	Key   []byte
	Value []byte
}

// Cursor is a fallible sequence over the entries of one bucket, in key
// order. Each entry is turned into a Result by decode.
type Cursor[T any] struct {
	tx      *bolt.Tx
	cursor  *bolt.Cursor
	decode  func(k, v []byte) (T, error)
	started bool
}

var _ rop.Iterator[any] = &Cursor[any]{}

// Open begins a read-only transaction on db and positions a cursor before
// the first entry of bucket. The transaction stays open until the cursor is
// exhausted or closed, so do not start a write transaction on db from the
// same goroutine in between.
//
// k and v are only valid inside decode; it must copy what it keeps. Nested
// buckets are skipped.
func Open[T any](db *bolt.DB, bucket []byte, decode func(k, v []byte) (T, error)) (*Cursor[T], error) {
	tx, err := db.Begin(false)
	if err != nil {
		return nil, fmt.Errorf("begin read tx: %w", err)
	}

	b := tx.Bucket(bucket)
	if b == nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("open %q: %w", bucket, ErrBucketNotFound)
	}

	return &Cursor[T]{
		tx:     tx,
		cursor: b.Cursor(),
		decode: decode,
	}, nil
}

func (c *Cursor[T]) Next() (rop.Result[T], bool) {
	if c.tx == nil {
		return rop.Result[T]{}, false
	}

	var k, v []byte
	if c.started {
		k, v = c.cursor.Next()
	} else {
		k, v = c.cursor.First()
		c.started = true
	}
	for k != nil && v == nil {
		k, v = c.cursor.Next()
	}

	if k == nil {
		_ = c.Close()
		return rop.Result[T]{}, false
	}

	out, err := c.decode(k, v)
	if err != nil {
		return rop.Fail[T](fmt.Errorf("decode %q: %w", k, err)), true
	}
	return rop.Success(out), true
}

// Close releases the read transaction. It is safe to call more than once.
func (c *Cursor[T]) Close() error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback()
	c.tx, c.cursor = nil, nil
	return err
}

// Put writes entries into bucket, creating the bucket if needed.
func Put(db *bolt.DB, bucket []byte, entries ...Entry) error {
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := b.Put(e.Key, e.Value); err != nil {
				return err
			}
		}
		return nil
	})
}
