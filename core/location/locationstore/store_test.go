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

package locationstore

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/core/storage/boltdb"
	"github.com/peraking/locator/core/storage/boltdb/boltdbtest"
)

func TestStore_CoordinateNotFound(t *testing.T) {
	store := NewStore(boltdbtest.CreateDB(t))

	_, err := store.Coordinate()

	assert.ErrorIs(t, err, boltdb.ErrNotFound)
}

func TestStore_SaveCoordinateOverwrites(t *testing.T) {
	store := NewStore(boltdbtest.CreateDB(t))
	timestamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveCoordinate(location.CachedCoordinate{Latitude: "1", Longitude: "2", Timestamp: timestamp}))
	require.NoError(t, store.SaveCoordinate(location.CachedCoordinate{Latitude: "54.687157", Longitude: "25.279652", Timestamp: timestamp.Add(time.Minute)}))

	coordinate, err := store.Coordinate()
	require.NoError(t, err)
	assert.Equal(t, "54.687157", coordinate.Latitude)
	assert.Equal(t, "25.279652", coordinate.Longitude)
	assert.True(t, timestamp.Add(time.Minute).Equal(coordinate.Timestamp))
}

func TestStore_AddressNotFound(t *testing.T) {
	store := NewStore(boltdbtest.CreateDB(t))

	_, err := store.Address()

	assert.ErrorIs(t, err, boltdb.ErrNotFound)
}

func TestStore_SaveAddressKeepsPlaceFieldsOnly(t *testing.T) {
	store := NewStore(boltdbtest.CreateDB(t))

	err := store.SaveAddress(location.AddressDetail{
		Province:    "Vilnius County",
		CountryCode: "LT",
		Country:     "Lithuania",
		Street:      "Gedimino pr. 9",
		Latitude:    "54.687157",
		Longitude:   "25.279652",
		City:        "Vilnius",
		District:    "Senamiestis",
	})
	require.NoError(t, err)

	detail, err := store.Address()
	require.NoError(t, err)
	assert.Equal(t, location.AddressDetail{
		Province:    "Vilnius County",
		CountryCode: "LT",
		Country:     "Lithuania",
		Street:      "Gedimino pr. 9",
		City:        "Vilnius",
		District:    "Senamiestis",
	}, detail)

	_, err = store.Coordinate()
	assert.ErrorIs(t, err, boltdb.ErrNotFound)
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := boltdbtest.CreateTempDir(t)
	defer boltdbtest.RemoveTempDir(t, dir)

	db, err := boltdb.NewStorage(dir)
	require.NoError(t, err)
	require.NoError(t, NewStore(db).SaveCoordinate(location.CachedCoordinate{Latitude: "-33.8688", Longitude: "151.2093"}))
	require.NoError(t, NewStore(db).SaveAddress(location.AddressDetail{City: "Sydney"}))
	require.NoError(t, db.Close())

	db, err = boltdb.NewStorage(dir)
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)
	coordinate, err := store.Coordinate()
	require.NoError(t, err)
	assert.Equal(t, "-33.8688", coordinate.Latitude)
	detail, err := store.Address()
	require.NoError(t, err)
	assert.Equal(t, "Sydney", detail.City)
}

func TestStore_SatisfiesCache(t *testing.T) {
	var _ location.Cache = NewStore(boltdbtest.CreateDB(t))
}

type failingStorage struct {
	storage
	mu         sync.Mutex
	writes     int
	failWrites bool
}

func (f *failingStorage) SetValue(bucket string, key interface{}, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("disk full")
	}
	f.writes++
	return f.storage.SetValue(bucket, key, value)
}

func TestStore_FailedCoordinateSaveKeepsPreviousPair(t *testing.T) {
	db := &failingStorage{storage: boltdbtest.CreateDB(t)}
	store := NewStore(db)

	require.NoError(t, store.SaveCoordinate(location.CachedCoordinate{Latitude: "10", Longitude: "20"}))
	assert.Equal(t, 1, db.writes)

	db.failWrites = true
	err := store.SaveCoordinate(location.CachedCoordinate{Latitude: "-33.8", Longitude: "151.2"})
	assert.EqualError(t, err, "disk full")

	coordinate, err := store.Coordinate()
	require.NoError(t, err)
	assert.Equal(t, "10", coordinate.Latitude)
	assert.Equal(t, "20", coordinate.Longitude)
}

func TestStore_FailedAddressSaveKeepsPreviousPlace(t *testing.T) {
	db := &failingStorage{storage: boltdbtest.CreateDB(t)}
	store := NewStore(db)

	require.NoError(t, store.SaveAddress(location.AddressDetail{City: "Vilnius", Country: "Lithuania"}))
	assert.Equal(t, 1, db.writes)

	db.failWrites = true
	assert.Error(t, store.SaveAddress(location.AddressDetail{City: "Sydney", Country: "Australia"}))

	detail, err := store.Address()
	require.NoError(t, err)
	assert.Equal(t, "Vilnius", detail.City)
	assert.Equal(t, "Lithuania", detail.Country)
}

func TestStore_ReadsNeverMixTwoSaves(t *testing.T) {
	store := NewStore(boltdbtest.CreateDB(t))
	require.NoError(t, store.SaveCoordinate(location.CachedCoordinate{Latitude: "0", Longitude: "0"}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= 50; i++ {
			value := strconv.Itoa(i)
			assert.NoError(t, store.SaveCoordinate(location.CachedCoordinate{Latitude: value, Longitude: value}))
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
		}
		coordinate, err := store.Coordinate()
		require.NoError(t, err)
		require.Equal(t, coordinate.Latitude, coordinate.Longitude)
	}
}
