package storage

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

const bucketName = "personalfit"

// BoltStore implements KeyValue on top of a bbolt database file. It is
// the process-local equivalent of the browser's local storage: one
// bucket, JSON values, swallow-and-log failure semantics.
type BoltStore struct {
	db  *bolt.DB
	log *logrus.Logger
}

// NewBoltStore opens (or creates) the database file and ensures the
// application bucket exists. Opening is the only operation allowed to
// fail loudly; everything after construction absorbs its own errors.
func NewBoltStore(path string, log *logrus.Logger) (*BoltStore, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, log: log}, nil
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Get(key string, out any) bool {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("storage read failed")
		return false
	}
	if raw == nil {
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// A corrupt value behaves like an absent one.
		s.log.WithError(err).WithField("key", key).Warn("discarding corrupt stored value")
		return false
	}
	return true
}

func (s *BoltStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("storage serialization failed")
		return
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), raw)
	})
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("storage write failed")
	}
}

func (s *BoltStore) Remove(key string) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("storage delete failed")
	}
}

func (s *BoltStore) Clear() {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketName)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketName))
		return err
	})
	if err != nil {
		s.log.WithError(err).Error("storage clear failed")
	}
}
