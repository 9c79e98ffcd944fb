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
	"time"

	"github.com/peraking/locator/core/location"
)

const (
	locationBucket = "location"
	addressBucket  = "address"

	// Each record is kept under a single key so that a save either replaces
	// the whole record or leaves the previous one intact.
	keyCoordinate = "coordinate"
	keyPlace      = "place"
)

type storage interface {
	SetValue(bucket string, key interface{}, value interface{}) error
	GetValue(bucket string, key interface{}, to interface{}) error
}

type coordinateRecord struct {
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type placeRecord struct {
	Province    string `json:"province"`
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
	Street      string `json:"street"`
	City        string `json:"city"`
	District    string `json:"district"`
}

// Store keeps the last known coordinate and address in a key-value storage.
type Store struct {
	storage storage
}

// NewStore returns a new location store.
func NewStore(storage storage) *Store {
	return &Store{storage: storage}
}

// SaveCoordinate overwrites the last known coordinate.
func (s *Store) SaveCoordinate(coordinate location.CachedCoordinate) error {
	return s.storage.SetValue(locationBucket, keyCoordinate, coordinateRecord{
		Latitude:  coordinate.Latitude,
		Longitude: coordinate.Longitude,
		Timestamp: coordinate.Timestamp.UTC(),
	})
}

// Coordinate returns the last known coordinate, boltdb.ErrNotFound if none was saved.
func (s *Store) Coordinate() (location.CachedCoordinate, error) {
	var record coordinateRecord
	if err := s.storage.GetValue(locationBucket, keyCoordinate, &record); err != nil {
		return location.CachedCoordinate{}, err
	}
	return location.CachedCoordinate{
		Latitude:  record.Latitude,
		Longitude: record.Longitude,
		Timestamp: record.Timestamp,
	}, nil
}

// SaveAddress replaces the cached place fields of the detail as one record.
// Coordinates are kept by SaveCoordinate only.
func (s *Store) SaveAddress(detail location.AddressDetail) error {
	return s.storage.SetValue(addressBucket, keyPlace, placeRecord{
		Province:    detail.Province,
		CountryCode: detail.CountryCode,
		Country:     detail.Country,
		Street:      detail.Street,
		City:        detail.City,
		District:    detail.District,
	})
}

// Address returns the cached place fields, boltdb.ErrNotFound if nothing was cached.
func (s *Store) Address() (location.AddressDetail, error) {
	var record placeRecord
	if err := s.storage.GetValue(addressBucket, keyPlace, &record); err != nil {
		return location.AddressDetail{}, err
	}
	return location.AddressDetail{
		Province:    record.Province,
		CountryCode: record.CountryCode,
		Country:     record.Country,
		Street:      record.Street,
		City:        record.City,
		District:    record.District,
	}, nil
}
