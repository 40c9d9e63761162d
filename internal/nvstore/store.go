// Package nvstore implements a byte-addressable non-volatile store:
// 4 bytes each at addresses 0 (Kp), 4 (Ti), 8 (Td) in native float
// encoding, durable across reboot, backed by a single bucket keyed by
// a 2-byte big-endian address.
package nvstore

import (
	"encoding/binary"
	"fmt"
	"math"

	"go.etcd.io/bbolt"
)

const bucketName = "tuning"

// Addresses of the persisted tuning triple.
const (
	AddrKp uint16 = 0
	AddrTi uint16 = 4
	AddrTd uint16 = 8
)

// Store is a bbolt-backed byte-addressable store.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if necessary) the bbolt file at path and ensures
// the tuning bucket exists.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("nvstore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("nvstore: create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying bbolt file.
func (s *Store) Close() error {
	return s.db.Close()
}

func addrKey(addr uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], addr)
	return b[:]
}

// ReadFloat32 reads the 4-byte native float encoding at addr. ok is
// false when nothing has been written there yet, the fresh-store case
// where the caller should fall back to a default.
func (s *Store) ReadFloat32(addr uint16) (v float32, ok bool) {
	s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(bucketName)).Get(addrKey(addr))
		if len(raw) != 4 {
			return nil
		}
		v = math.Float32frombits(binary.BigEndian.Uint32(raw))
		ok = true
		return nil
	})
	return v, ok
}

// WriteFloat32 stores v at addr.
func (s *Store) WriteFloat32(addr uint16, v float32) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		var raw [4]byte
		binary.BigEndian.PutUint32(raw[:], math.Float32bits(v))
		return tx.Bucket([]byte(bucketName)).Put(addrKey(addr), raw[:])
	})
}
