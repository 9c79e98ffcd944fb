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
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Fix is a single resolved coordinate reading delivered by a Provider.
type Fix struct {
	Latitude  float64
	Longitude float64
	// HorizontalAccuracy is the radius of uncertainty in metres. Negative means invalid.
	HorizontalAccuracy float64
	Timestamp          time.Time
	Source             string
}

// Valid reports whether the fix can be handed out to callers.
func (f Fix) Valid() bool {
	if math.IsNaN(f.HorizontalAccuracy) || math.IsInf(f.HorizontalAccuracy, 0) || f.HorizontalAccuracy < 0 {
		return false
	}
	return validDegrees(f.Latitude, 90) && validDegrees(f.Longitude, 180)
}

func validDegrees(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}

// Strings returns latitude and longitude formatted the way callers receive them.
func (f Fix) Strings() (latitude, longitude string) {
	return FormatDegrees(f.Latitude), FormatDegrees(f.Longitude)
}

// FormatDegrees formats a coordinate component using the shortest exact decimal form.
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Coordinate is a parsed latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ParseCoordinate parses string coordinates as handed out to callers.
func ParseCoordinate(latitude, longitude string) (Coordinate, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latitude), 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "invalid latitude %q", latitude)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(longitude), 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "invalid longitude %q", longitude)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinate{}, errors.Errorf("coordinate out of range: %v,%v", lat, lon)
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// CachedCoordinate is the last known coordinate persisted between runs.
type CachedCoordinate struct {
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Empty reports whether the cached coordinate can not be used as a fallback.
func (c CachedCoordinate) Empty() bool {
	return c.Latitude == "" || c.Longitude == ""
}

// AddressDetail is a coordinate together with its reverse geocoded place.
type AddressDetail struct {
	Province    string `json:"province"`
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
	Street      string `json:"street"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	City        string `json:"city"`
	District    string `json:"district"`
}

// Placemark is the reverse geocoding result for a coordinate.
type Placemark struct {
	Name               string
	Thoroughfare       string
	SubThoroughfare    string
	Locality           string
	SubLocality        string
	AdministrativeArea string
	Country            string
	ISOCountryCode     string
}

// Street joins thoroughfare and house number, falling back to the place name.
func (p Placemark) Street() string {
	if p.Thoroughfare != "" {
		if p.SubThoroughfare != "" {
			return p.Thoroughfare + " " + p.SubThoroughfare
		}
		return p.Thoroughfare
	}
	return p.Name
}

// apply copies the place fields into the detail, keeping its coordinates.
func (p Placemark) apply(detail *AddressDetail) {
	detail.Province = p.AdministrativeArea
	detail.CountryCode = p.ISOCountryCode
	detail.Country = p.Country
	detail.Street = p.Street()
	detail.City = p.Locality
	detail.District = p.SubLocality
}

// Authorization is the user's permission state for location access.
type Authorization int

// Authorization states
const (
	AuthorizationNotDetermined Authorization = iota
	AuthorizationRestricted
	AuthorizationDenied
	AuthorizationWhenInUse
	AuthorizationAlways
)

// Granted reports whether updates may be started.
func (a Authorization) Granted() bool {
	return a == AuthorizationWhenInUse || a == AuthorizationAlways
}

func (a Authorization) String() string {
	switch a {
	case AuthorizationNotDetermined:
		return "not-determined"
	case AuthorizationRestricted:
		return "restricted"
	case AuthorizationDenied:
		return "denied"
	case AuthorizationWhenInUse:
		return "when-in-use"
	case AuthorizationAlways:
		return "always"
	}
	return "unknown"
}

// ParseAuthorization parses the textual form produced by Authorization.String.
func ParseAuthorization(s string) (Authorization, error) {
	for a := AuthorizationNotDetermined; a <= AuthorizationAlways; a++ {
		if a.String() == strings.ToLower(strings.TrimSpace(s)) {
			return a, nil
		}
	}
	return AuthorizationNotDetermined, errors.Errorf("unknown authorization %q", s)
}
