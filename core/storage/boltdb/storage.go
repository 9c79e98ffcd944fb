/*
 * Copyright (C) 2024 The "MysteriumNetwork/node" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package boltdb

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

// DatabaseFile is the name of the database file inside the data directory.
const DatabaseFile = "locator.db"

// ErrNotFound is returned when the requested key does not exist.
var ErrNotFound = storm.ErrNotFound

// Bolt is a key-value storage backed by BoltDB.
type Bolt struct {
	mux sync.RWMutex
	db  *storm.DB
}

// NewStorage creates a new BoltDB storage in the given directory.
func NewStorage(path string) (*Bolt, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, errors.Wrap(err, "failed to create storage directory")
	}
	return OpenDB(filepath.Join(path, DatabaseFile))
}

// OpenDB creates new or opens existing BoltDB file.
func OpenDB(name string) (*Bolt, error) {
	log.Debug().Msgf("Opening database: %s", name)
	db, err := storm.Open(name, storm.BoltOptions(0600, &bolt.Options{Timeout: 5 * time.Second}))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", name)
	}
	return &Bolt{db: db}, nil
}

// SetValue stores a single value under the given key of a bucket.
func (b *Bolt) SetValue(bucket string, key interface{}, value interface{}) error {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.db.Set(bucket, key, value)
}

// GetValue reads a single value stored under the given key of a bucket.
// ErrNotFound is returned if nothing was stored yet.
func (b *Bolt) GetValue(bucket string, key interface{}, to interface{}) error {
	b.mux.RLock()
	defer b.mux.RUnlock()
	return b.db.Get(bucket, key, to)
}

// Close closes database.
func (b *Bolt) Close() error {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.db.Close()
}
