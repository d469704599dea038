package badgerstore

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/err0r500/go-ldp-server/store"
)

type badgerStorage struct {
	db *badger.DB
}

// New opens the badger database in dir
func New(dir string) (store.Backend, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil) // Suppress Badger logger
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger db %s: %w", dir, err)
	}
	return badgerStorage{db: db}, nil
}

func currentKey(identifier string) []byte {
	return []byte("cur:" + identifier)
}

func versionPrefix(identifier string) []byte {
	return []byte("ver:" + identifier + "\x00")
}

func versionKey(identifier string, t time.Time) []byte {
	k := versionPrefix(identifier)
	return binary.BigEndian.AppendUint64(k, uint64(t.UnixNano()))
}

func keyTime(k []byte) time.Time {
	return time.Unix(0, int64(binary.BigEndian.Uint64(k[len(k)-8:]))).UTC()
}

func (s badgerStorage) Current(_ context.Context, identifier string) (e store.Entry, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(currentKey(identifier))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return err
		}
		v, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if len(v) < 8 {
			return fmt.Errorf("corrupt entry for %s", identifier)
		}
		e = store.Entry{Modified: keyTime(v[:8]), Data: v[8:]}
		return nil
	})
	return e, err
}

// scan walks the versions of identifier in ascending time order
func (s badgerStorage) scan(identifier string, fn func(k []byte, item *badger.Item) (bool, error)) error {
	return s.db.View(func(txn *badger.Txn) error {
		prefix := versionPrefix(identifier)
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			more, err := fn(item.KeyCopy(nil), item)
			if err != nil || !more {
				return err
			}
		}
		return nil
	})
}

func (s badgerStorage) Version(_ context.Context, identifier string, at time.Time) (store.Entry, error) {
	var (
		found bool
		e     store.Entry
	)
	err := s.scan(identifier, func(k []byte, item *badger.Item) (bool, error) {
		t := keyTime(k)
		if t.After(at) {
			return false, nil
		}
		v, err := item.ValueCopy(nil)
		if err != nil {
			return false, err
		}
		found, e = true, store.Entry{Modified: t, Data: v}
		return true, nil
	})
	if err != nil {
		return store.Entry{}, err
	}
	if !found {
		return store.Entry{}, store.ErrNotFound
	}
	return e, nil
}

func (s badgerStorage) Versions(_ context.Context, identifier string) ([]time.Time, error) {
	var out []time.Time
	err := s.scan(identifier, func(k []byte, _ *badger.Item) (bool, error) {
		out = append(out, keyTime(k))
		return true, nil
	})
	return out, err
}

func (s badgerStorage) Save(_ context.Context, identifier string, prev time.Time, e store.Entry) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		var cur time.Time
		item, err := txn.Get(currentKey(identifier))
		switch {
		case err == nil:
			if err := item.Value(func(v []byte) error {
				if len(v) >= 8 {
					cur = keyTime(v[:8])
				}
				return nil
			}); err != nil {
				return err
			}
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		if !cur.Equal(prev) {
			return store.ErrConflict
		}

		vk := versionKey(identifier, e.Modified)
		value := append(append([]byte(nil), vk[len(vk)-8:]...), e.Data...)
		if err := txn.Set(currentKey(identifier), value); err != nil {
			return err
		}
		return txn.Set(vk, append([]byte(nil), e.Data...))
	})
	if errors.Is(err, badger.ErrConflict) {
		return store.ErrConflict
	}
	return err
}

func (s badgerStorage) Close() error {
	return s.db.Close()
}
