package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BoltStore keeps the map in a bbolt database with msgpack values. The
// database is opened per call so no lock is held between load and save.
type BoltStore struct {
	path    string
	timeout time.Duration
	now     func() time.Time
}

func NewBoltStore(path string) *BoltStore {
	return &BoltStore{path: path, timeout: 10 * time.Second, now: time.Now}
}

var errSchemaMismatch = errors.New("cache schema version mismatch")

func (s *BoltStore) Load() (map[string]string, error) {
	hashes := map[string]string{}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return hashes, nil
	}

	db, err := bolt.Open(s.path, 0644, &bolt.Options{Timeout: s.timeout, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open BoltDB: %w", err)
	}
	defer func() { _ = db.Close() }()

	err = db.View(func(tx *bolt.Tx) error {
		meta := tx.Bucket([]byte(BucketMeta))
		if meta == nil {
			return errSchemaMismatch
		}
		v := meta.Get([]byte(KeySchemaVersion))
		if len(v) != 4 || binary.BigEndian.Uint32(v) != SchemaVersion {
			return errSchemaMismatch
		}

		bucket := tx.Bucket([]byte(BucketHashes))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			var e Entry
			if err := Decode(v, &e); err != nil {
				return fmt.Errorf("entry %s: %w", k, err)
			}
			hashes[string(k)] = e.Hash
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return hashes, nil
}

// Save replaces the whole bucket in one transaction. A database that
// cannot be opened is removed and recreated.
func (s *BoltStore) Save(hashes map[string]string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := bolt.Open(s.path, 0644, &bolt.Options{Timeout: s.timeout})
	if err != nil {
		if rmErr := os.Remove(s.path); rmErr != nil {
			return fmt.Errorf("failed to open BoltDB: %w", err)
		}
		if db, err = bolt.Open(s.path, 0644, &bolt.Options{Timeout: s.timeout}); err != nil {
			return fmt.Errorf("failed to open BoltDB: %w", err)
		}
	}
	defer func() { _ = db.Close() }()

	updated := s.now().Unix()
	return db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(BucketHashes)) != nil {
			if err := tx.DeleteBucket([]byte(BucketHashes)); err != nil {
				return err
			}
		}
		bucket, err := tx.CreateBucket([]byte(BucketHashes))
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", BucketHashes, err)
		}
		for path, hash := range hashes {
			data, err := Encode(&Entry{Hash: hash, UpdatedAt: updated})
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(path), data); err != nil {
				return err
			}
		}

		meta, err := tx.CreateBucketIfNotExists([]byte(BucketMeta))
		if err != nil {
			return err
		}
		v := make([]byte, 4)
		binary.BigEndian.PutUint32(v, SchemaVersion)
		return meta.Put([]byte(KeySchemaVersion), v)
	})
}
