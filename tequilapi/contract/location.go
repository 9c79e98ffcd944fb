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

package contract

import (
	"fmt"
	"net/url"
	"time"

	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/tequilapi/validation"
)

// MaxLocationTimeout is the longest wait a single API request may ask for.
const MaxLocationTimeout = 2 * time.Minute

// LocationRequest holds the query of a location or address request.
type LocationRequest struct {
	Timeout time.Duration
}

// NewLocationRequest parses the "timeout" query parameter, falling back to defaultTimeout.
func NewLocationRequest(query url.Values, defaultTimeout time.Duration) (LocationRequest, *validation.FieldErrorMap) {
	errs := validation.NewErrorMap()
	req := LocationRequest{Timeout: defaultTimeout}

	timeoutErrs := errs.ForField("timeout")
	if timeout := parseDurationOptional(query.Get("timeout"), timeoutErrs); timeout != nil {
		switch {
		case *timeout <= 0:
			timeoutErrs.AddError("invalid", "Timeout must be positive")
		case *timeout > MaxLocationTimeout:
			timeoutErrs.AddError("invalid", fmt.Sprintf("Timeout must not exceed %s", MaxLocationTimeout))
		default:
			req.Timeout = *timeout
		}
	}
	return req, errs
}

// LocationDTO is a resolved coordinate. Empty strings mean no location is known.
// swagger:model LocationDTO
type LocationDTO struct {
	// example: 54.687157
	Latitude string `json:"latitude"`
	// example: 25.279652
	Longitude string `json:"longitude"`
}

// AddressDTO is a coordinate with its reverse geocoded place fields.
// swagger:model AddressDTO
type AddressDTO struct {
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	Street      string `json:"street"`
	District    string `json:"district"`
	City        string `json:"city"`
	Province    string `json:"province"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// NewAddressDTO maps address detail to DTO.
func NewAddressDTO(detail location.AddressDetail) AddressDTO {
	return AddressDTO{
		Latitude:    detail.Latitude,
		Longitude:   detail.Longitude,
		Street:      detail.Street,
		District:    detail.District,
		City:        detail.City,
		Province:    detail.Province,
		Country:     detail.Country,
		CountryCode: detail.CountryCode,
	}
}

// LocationStatsDTO counts location events since the daemon started.
// swagger:model LocationStatsDTO
type LocationStatsDTO struct {
	Fixes int `json:"fixes"`
	// example: 2024-03-01T12:00:00Z
	LastFixAt         *time.Time `json:"last_fix_at,omitempty"`
	ResolvedFromFix   int        `json:"resolved_from_fix"`
	ResolvedFromCache int        `json:"resolved_from_cache"`
	ResolvedEmpty     int        `json:"resolved_empty"`
	Addresses         int        `json:"addresses"`
	Geocoded          int        `json:"geocoded"`
}

// NewLocationStatsDTO maps statistics snapshot to DTO.
func NewLocationStatsDTO(snapshot location.StatsSnapshot) LocationStatsDTO {
	dto := LocationStatsDTO{
		Fixes:             snapshot.Fixes,
		ResolvedFromFix:   snapshot.ResolvedFromFix,
		ResolvedFromCache: snapshot.ResolvedFromCache,
		ResolvedEmpty:     snapshot.ResolvedEmpty,
		Addresses:         snapshot.Addresses,
		Geocoded:          snapshot.Geocoded,
	}
	if !snapshot.LastFixAt.IsZero() {
		lastFixAt := snapshot.LastFixAt
		dto.LastFixAt = &lastFixAt
	}
	return dto
}
