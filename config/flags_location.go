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

package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	// FlagLocationTimeout default time to wait for a fix before falling back to cache.
	FlagLocationTimeout = cli.DurationFlag{
		Name:  "location.timeout",
		Usage: "Time to wait for a location fix before answering with the cached location",
		Value: 5 * time.Second,
	}
	// FlagLocationConsent answer to location access.
	FlagLocationConsent = cli.StringFlag{
		Name:  "location.consent",
		Usage: "Location access consent (granted|denied|undetermined)",
		Value: "granted",
	}
	// FlagLocationInterval interval between detections while updates run.
	FlagLocationInterval = cli.DurationFlag{
		Name:  "location.interval",
		Usage: "Interval between location detections",
		Value: 30 * time.Second,
	}
	// FlagLocationStatic fixed coordinate reported by the static detector.
	FlagLocationStatic = cli.StringFlag{
		Name:  "location.static",
		Usage: `Fixed "latitude,longitude" to report, e.g. "54.687157,25.279652"`,
	}
	// FlagLocationOracleAddress location oracle URL.
	FlagLocationOracleAddress = cli.StringFlag{
		Name:  "location.oracle-address",
		Usage: "URL of a location oracle answering with {latitude, longitude, accuracy}",
	}
	// FlagLocationGeoIPDatabase path to a GeoIP2 City database.
	FlagLocationGeoIPDatabase = cli.StringFlag{
		Name:  "location.geoip-db",
		Usage: "Path to a GeoIP2/GeoLite2 City database used to locate the public IP",
	}
	// FlagLocationGeocoder reverse geocoder.
	FlagLocationGeocoder = cli.StringFlag{
		Name:  "location.geocoder",
		Usage: "Reverse geocoder (nominatim|none)",
		Value: "nominatim",
	}
	// FlagLocationNominatimAddress Nominatim server address.
	FlagLocationNominatimAddress = cli.StringFlag{
		Name:  "location.nominatim.address",
		Usage: "Address of the Nominatim server",
		Value: "https://nominatim.openstreetmap.org",
	}
	// FlagLocationNominatimRate requests per second sent to Nominatim.
	FlagLocationNominatimRate = cli.Float64Flag{
		Name:  "location.nominatim.rate",
		Usage: "Maximum requests per second sent to the Nominatim server",
		Value: 1,
	}
	// FlagLocationGeocodeTimeout bounds a single reverse geocoding call.
	FlagLocationGeocodeTimeout = cli.DurationFlag{
		Name:  "location.geocode-timeout",
		Usage: "Timeout of a single reverse geocoding call, at most 30s",
		Value: 10 * time.Second,
	}
)

// RegisterFlagsLocation function registers location flags to flag list
func RegisterFlagsLocation(flags *[]cli.Flag) {
	*flags = append(*flags,
		&FlagLocationTimeout,
		&FlagLocationConsent,
		&FlagLocationInterval,
		&FlagLocationStatic,
		&FlagLocationOracleAddress,
		&FlagLocationGeoIPDatabase,
		&FlagLocationGeocoder,
		&FlagLocationNominatimAddress,
		&FlagLocationNominatimRate,
		&FlagLocationGeocodeTimeout,
	)
}

// ParseFlagsLocation function fills in location options from CLI context
func ParseFlagsLocation(ctx *cli.Context) {
	Current.ParseDurationFlag(ctx, FlagLocationTimeout)
	Current.ParseStringFlag(ctx, FlagLocationConsent)
	Current.ParseDurationFlag(ctx, FlagLocationInterval)
	Current.ParseStringFlag(ctx, FlagLocationStatic)
	Current.ParseStringFlag(ctx, FlagLocationOracleAddress)
	Current.ParseStringFlag(ctx, FlagLocationGeoIPDatabase)
	Current.ParseStringFlag(ctx, FlagLocationGeocoder)
	Current.ParseStringFlag(ctx, FlagLocationNominatimAddress)
	Current.ParseFloat64Flag(ctx, FlagLocationNominatimRate)
	Current.ParseDurationFlag(ctx, FlagLocationGeocodeTimeout)
}
