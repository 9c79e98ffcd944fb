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

package location

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultGeocodeTimeout bounds a single reverse geocoding call.
	DefaultGeocodeTimeout = 10 * time.Second
	// MaxGeocodeTimeout is the longest geocoding bound a Manager accepts.
	MaxGeocodeTimeout = 30 * time.Second
)

// AddressCallback receives a resolved address detail.
type AddressCallback func(detail AddressDetail)

// GetAddressDetail acquires the current location and reverse geocodes it.
// When no coordinate is known the detail is returned empty without geocoding.
// When geocoding fails only the coordinates are filled in.
func (m *Manager) GetAddressDetail(timeout time.Duration, completion AddressCallback) {
	m.GetCurrentLocation(timeout, func(latitude, longitude string) {
		detail := AddressDetail{Latitude: latitude, Longitude: longitude}
		if latitude == "" || longitude == "" {
			m.completeAddress(detail, false, completion)
			return
		}

		coordinate, err := ParseCoordinate(latitude, longitude)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping reverse geocoding")
			m.completeAddress(detail, false, completion)
			return
		}

		// the callback may run on the provider's goroutine, keep it free for other requests
		go m.reverseGeocode(coordinate, detail, completion)
	})
}

// CurrentAddress blocks until the address request is resolved.
func (m *Manager) CurrentAddress(timeout time.Duration) AddressDetail {
	done := make(chan AddressDetail, 1)
	m.GetAddressDetail(timeout, func(detail AddressDetail) {
		done <- detail
	})
	return <-done
}

// CachedAddressDetail returns the last known location with the cached place fields.
func (m *Manager) CachedAddressDetail() AddressDetail {
	detail, err := m.cache.Address()
	if err != nil {
		log.Debug().Err(err).Msg("No cached address")
		detail = AddressDetail{}
	}
	detail.Latitude, detail.Longitude = m.LastLocation()
	return detail
}

func (m *Manager) reverseGeocode(coordinate Coordinate, detail AddressDetail, completion AddressCallback) {
	placemark, err := m.lookup(coordinate)
	if err != nil {
		log.Warn().Err(err).Msgf("Reverse geocoding of %v,%v failed", coordinate.Latitude, coordinate.Longitude)
		m.completeAddress(detail, false, completion)
		return
	}

	placemark.apply(&detail)
	if err := m.cache.SaveAddress(detail); err != nil {
		log.Warn().Err(err).Msg("Failed to cache address detail")
	}
	m.completeAddress(detail, true, completion)
}

func (m *Manager) lookup(coordinate Coordinate) (Placemark, error) {
	if m.geocoder == nil {
		return Placemark{}, errors.New("no geocoder configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.geocodeTimeout)
	defer cancel()
	return m.geocoder.Reverse(ctx, coordinate)
}

func (m *Manager) completeAddress(detail AddressDetail, geocoded bool, completion AddressCallback) {
	if completion != nil {
		completion(detail)
	}
	m.publisher.Publish(AppTopicAddressResolved, AddressEvent{Detail: detail, Geocoded: geocoded})
}
