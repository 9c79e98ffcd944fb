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

import "time"

const (
	// AppTopicLocationFix is published for every valid fix received from the provider.
	AppTopicLocationFix = "location-fix"
	// AppTopicLocationResolved is published once per resolved location request.
	AppTopicLocationResolved = "location-resolved"
	// AppTopicAddressResolved is published once per resolved address request.
	AppTopicAddressResolved = "address-resolved"
)

// Source tells where the coordinates handed to a caller came from.
type Source string

const (
	// SourceFix means a fresh fix from the provider.
	SourceFix Source = "fix"
	// SourceCache means the last known coordinate.
	SourceCache Source = "cache"
	// SourceNone means nothing was known and empty strings were returned.
	SourceNone Source = "none"
)

// ResolvedEvent describes how a single location request was resolved.
type ResolvedEvent struct {
	RequestID string
	Latitude  string
	Longitude string
	Source    Source
	Waited    time.Duration
}

// AddressEvent describes a resolved address request.
type AddressEvent struct {
	Detail   AddressDetail
	Geocoded bool
}
