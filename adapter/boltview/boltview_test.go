package boltview_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"

	"go.llib.dev/lazyview/adapter/boltview"
	"go.llib.dev/lazyview/pkg/viewkit"
	"go.llib.dev/lazyview/pkg/viewkit/viewkitcontract"
)

var bucketName = []byte("things")

func openDB(tb testing.TB, kvs map[string]string) *bolt.DB {
	db, err := bolt.Open(filepath.Join(tb.TempDir(), "view.db"), 0600, nil)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = db.Close() })

	require.NoError(tb, db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		for k, v := range kvs {
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	}))
	return db
}

func keys(view viewkit.Iterable[boltview.KV]) []string {
	return viewkit.Collect[string](viewkit.Map(view, func(kv boltview.KV) string { return string(kv.Key) }))
}

func TestView(t *testing.T) {
	logger.Testing(t)
	ctx := context.Background()

	db := openDB(t, map[string]string{
		"c": "3",
		"a": "1",
		"b": "2",
		"x/1": "foo",
		"x/2": "bar",
	})

	t.Run("keys are visited in byte-sorted order", func(t *testing.T) {
		var got []string
		require.NoError(t, boltview.View(ctx, db, bucketName, func(view viewkit.Iterable[boltview.KV]) error {
			got = keys(view)
			return nil
		}))
		require.Equal(t, []string{"a", "b", "c", "x/1", "x/2"}, got)
	})

	t.Run("a filter can narrow the bucket down to a key prefix", func(t *testing.T) {
		var got []string
		require.NoError(t, boltview.View(ctx, db, bucketName, func(view viewkit.Iterable[boltview.KV]) error {
			values := viewkit.Map(viewkit.Filter(view, boltview.HasPrefix([]byte("x/"))),
				func(kv boltview.KV) string { return string(kv.Value) })
			got = viewkit.Collect[string](values)
			return nil
		}))
		require.Equal(t, []string{"foo", "bar"}, got)
	})

	t.Run("the callback error is returned", func(t *testing.T) {
		expErr := errors.New("boom")
		err := boltview.View(ctx, db, bucketName, func(viewkit.Iterable[boltview.KV]) error { return expErr })
		require.ErrorIs(t, err, expErr)
	})

	t.Run("a missing bucket is reported", func(t *testing.T) {
		err := boltview.View(ctx, db, []byte("unknown"), func(viewkit.Iterable[boltview.KV]) error {
			t.Fatal("unexpected call")
			return nil
		})
		require.ErrorIs(t, err, boltview.ErrBucketNotFound)
	})
}

func TestBucket(t *testing.T) {
	db := openDB(t, nil)

	require.NoError(t, db.View(func(tx *bolt.Tx) error {
		empty := boltview.Bucket(tx, bucketName)
		require.True(t, empty.Begin().Equal(empty.End()))

		missing := boltview.Bucket(tx, []byte("unknown"))
		require.True(t, missing.Begin().Equal(missing.End()))
		require.Empty(t, keys(missing))

		_, err := boltview.Lookup(tx, []byte("unknown"))
		require.ErrorIs(t, err, boltview.ErrBucketNotFound)
		return nil
	}))
}

func TestBucket_nestedBucket(t *testing.T) {
	db := openDB(t, map[string]string{"a": "1"})
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.Bucket(bucketName).CreateBucket([]byte("b"))
		return err
	}))

	require.NoError(t, db.View(func(tx *bolt.Tx) error {
		kvs := viewkit.Collect[boltview.KV](boltview.Bucket(tx, bucketName))
		require.Len(t, kvs, 2)
		require.Equal(t, "b", string(kvs[1].Key))
		require.Nil(t, kvs[1].Value)
		return nil
	}))
}

func TestBucketView_implementsIterable(t *testing.T) {
	viewkitcontract.Iterable[boltview.KV](func(tb testing.TB) viewkit.Iterable[boltview.KV] {
		t := testcase.ToT(&tb)
		kvs := make(map[string]string)
		t.Random.Repeat(0, 12, func() {
			kvs[t.Random.StringNC(8, random.CharsetAlpha())] = t.Random.String()
		})
		db := openDB(tb, kvs)
		tx, err := db.Begin(false)
		require.NoError(tb, err)
		tb.Cleanup(func() { _ = tx.Rollback() })
		return boltview.Bucket(tx, bucketName)
	}).Test(t)
}
