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

import "context"

// Handler receives events of a location session.
type Handler interface {
	HandleFix(fix Fix)
	HandleError(err error)
	HandleAuthorization(status Authorization)
}

// Provider is a location session shared by all pending requests.
// Implementations must not call the Handler from inside StartUpdates.
type Provider interface {
	SetHandler(handler Handler)
	Authorization() Authorization
	RequestAuthorization()
	ServicesEnabled() bool
	StartUpdates()
	StopUpdates()
}

// Cache keeps the last known coordinate and address between runs.
type Cache interface {
	SaveCoordinate(coordinate CachedCoordinate) error
	Coordinate() (CachedCoordinate, error)
	SaveAddress(detail AddressDetail) error
	Address() (AddressDetail, error)
}

// Geocoder resolves a coordinate to a place.
type Geocoder interface {
	Reverse(ctx context.Context, coordinate Coordinate) (Placemark, error)
}

// Publisher publishes location events to subscribers.
type Publisher interface {
	Publish(topic string, data interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}
