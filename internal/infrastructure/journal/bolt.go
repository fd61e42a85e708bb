// Package journal persists domain events per aggregate stream in BoltDB.
// Events appended here are the write path for state changes; reads fold
// them over the stored entity with ApplyEvent.
package journal

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Record is a single journaled event within a stream.
type Record struct {
	Seq     uint64          `json:"seq"`
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
	At      time.Time       `json:"at"`
}

// Store wraps BoltDB with one bucket per aggregate stream. Keys are the
// big-endian sequence number so a cursor walks events in append order.
type Store struct {
	db *bolt.DB
}

// Open initializes the BoltDB file.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Append adds an event to the end of a stream and returns its sequence number.
func (s *Store) Append(stream string, name string, payload json.RawMessage) (uint64, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}

	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(stream))
		if err != nil {
			return err
		}
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}

		rec := Record{Seq: seq, Name: name, Payload: payload, At: time.Now()}
		value, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put(seqKey(seq), value)
	})
	return seq, err
}

// Replay invokes fn for every event in the stream, oldest first. A missing
// stream replays nothing.
func (s *Store) Replay(stream string, fn func(Record) error) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(stream))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			if err := fn(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// Size returns the number of events in a stream.
func (s *Store) Size(stream string) (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket([]byte(stream)); b != nil {
			count = b.Stats().KeyN
		}
		return nil
	})
	return count, err
}

// Streams lists every stream with at least one event.
func (s *Store) Streams() ([]string, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	var streams []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			streams = append(streams, string(name))
			return nil
		})
	})
	return streams, err
}

// Stats exposes Bolt statistics for monitoring endpoints.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
