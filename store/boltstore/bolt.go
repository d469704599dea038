package boltstore

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/err0r500/go-ldp-server/store"
)

var (
	currentBucket  = []byte("current")
	versionsBucket = []byte("versions")
)

type boltStorage struct {
	db *bolt.DB
}

// New opens (or creates) the bolt file at path
func New(path string) (store.Backend, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(currentBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(versionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return boltStorage{db: db}, nil
}

func key(t time.Time) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(t.UnixNano()))
	return k
}

func keyTime(k []byte) time.Time {
	return time.Unix(0, int64(binary.BigEndian.Uint64(k))).UTC()
}

// current values are the modification key followed by the record
func entry(v []byte) store.Entry {
	return store.Entry{Modified: keyTime(v[:8]), Data: append([]byte(nil), v[8:]...)}
}

func (s boltStorage) Current(_ context.Context, identifier string) (e store.Entry, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(currentBucket).Get([]byte(identifier))
		if len(v) < 8 {
			return store.ErrNotFound
		}
		e = entry(v)
		return nil
	})
	return e, err
}

func (s boltStorage) Version(_ context.Context, identifier string, at time.Time) (e store.Entry, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(versionsBucket).Bucket([]byte(identifier))
		if bucket == nil {
			return store.ErrNotFound
		}
		c := bucket.Cursor()
		k, v := c.Seek(key(at))
		switch {
		case k == nil:
			k, v = c.Last()
		case !keyTime(k).Equal(at):
			k, v = c.Prev()
		}
		if k == nil {
			return store.ErrNotFound
		}
		e = store.Entry{Modified: keyTime(k), Data: append([]byte(nil), v...)}
		return nil
	})
	return e, err
}

func (s boltStorage) Versions(_ context.Context, identifier string) ([]time.Time, error) {
	var out []time.Time
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(versionsBucket).Bucket([]byte(identifier))
		if bucket == nil {
			return nil
		}
		c := bucket.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			out = append(out, keyTime(k))
		}
		return nil
	})
	return out, err
}

func (s boltStorage) Save(_ context.Context, identifier string, prev time.Time, e store.Entry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		current := tx.Bucket(currentBucket)
		var cur time.Time
		if v := current.Get([]byte(identifier)); len(v) >= 8 {
			cur = keyTime(v[:8])
		}
		if !cur.Equal(prev) {
			return store.ErrConflict
		}

		k := key(e.Modified)
		if err := current.Put([]byte(identifier), append(append([]byte(nil), k...), e.Data...)); err != nil {
			return err
		}
		versions, err := tx.Bucket(versionsBucket).CreateBucketIfNotExists([]byte(identifier))
		if err != nil {
			return err
		}
		return versions.Put(k, e.Data)
	})
}

func (s boltStorage) Close() error {
	return s.db.Close()
}
