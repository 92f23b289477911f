// Package boltview exposes bolt buckets as viewkit Iterables.
//
// A bucket is a sorted key-value container with its own cursors,
// so a BucketView is a reference view: it shares the data of the transaction it was created in.
// The view, its cursors and the KV byte slices are only valid while that transaction is open.
package boltview

import (
	"bytes"
	"context"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/lazyview/pkg/viewkit"
)

const ErrBucketNotFound errorkit.Error = "boltview: bucket not found"

// KV is a key-value pair of a bucket.
// Value is nil when the key names a nested bucket.
type KV struct {
	Key   []byte
	Value []byte
}

// Bucket returns a view over the keys of the named bucket in byte-sorted order.
// A missing bucket results in an empty view, use Lookup when that needs to be reported.
func Bucket(tx *bolt.Tx, name []byte) *BucketView {
	return &BucketView{Bucket: tx.Bucket(name)}
}

// Lookup returns a view over the named bucket or ErrBucketNotFound.
func Lookup(tx *bolt.Tx, name []byte) (*BucketView, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, ErrBucketNotFound.F("%q", name)
	}
	return &BucketView{Bucket: b}, nil
}

// View runs fn with a view over the named bucket within a read-only transaction.
func View(ctx context.Context, db *bolt.DB, name []byte, fn func(viewkit.Iterable[KV]) error) error {
	logger.Debug(ctx, "boltview traversal", logging.Field("bucket", string(name)))
	return db.View(func(tx *bolt.Tx) error {
		view, err := Lookup(tx, name)
		if err != nil {
			return err
		}
		return fn(view)
	})
}

// HasPrefix is a predicate for viewkit.Filter that keeps the keys starting with prefix.
func HasPrefix(prefix []byte) func(KV) bool {
	return func(kv KV) bool { return bytes.HasPrefix(kv.Key, prefix) }
}

type BucketView struct {
	Bucket *bolt.Bucket
}

func (v *BucketView) Begin() viewkit.Cursor[KV] {
	if v.Bucket == nil {
		return &cursor{view: v}
	}
	c := &cursor{view: v, cursor: v.Bucket.Cursor()}
	c.key, c.value = c.cursor.First()
	return c
}

// End is the position after the last key, where the bolt cursor returns a nil key.
func (v *BucketView) End() viewkit.Cursor[KV] {
	return &cursor{view: v}
}

type cursor struct {
	view   *BucketView
	cursor *bolt.Cursor
	key    []byte
	value  []byte
}

func (c *cursor) Value() KV {
	return KV{Key: c.key, Value: c.value}
}

func (c *cursor) Next() {
	c.key, c.value = c.cursor.Next()
}

// Equal compares keys, bolt keys are unique and never empty, so a nil key marks the end.
func (c *cursor) Equal(oth viewkit.Cursor[KV]) bool {
	o, ok := oth.(*cursor)
	if !ok || o.view != c.view {
		return false
	}
	if c.key == nil || o.key == nil {
		return c.key == nil && o.key == nil
	}
	return bytes.Equal(c.key, o.key)
}
