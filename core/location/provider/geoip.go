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

package provider

import (
	"context"
	"net"
	"time"

	"github.com/oschwald/geoip2-golang"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/peraking/locator/core/ip"
	"github.com/peraking/locator/core/location"
)

type cityReader interface {
	City(ipAddress net.IP) (*geoip2.City, error)
}

// GeoIPDetector locates the public IP of this host in a GeoIP2 City database.
type GeoIPDetector struct {
	ipResolver ip.Resolver
	dbReader   cityReader
}

// NewGeoIPDetector opens the database file and returns a detector using it.
func NewGeoIPDetector(databasePath string, ipResolver ip.Resolver) (*GeoIPDetector, error) {
	db, err := geoip2.Open(databasePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open GeoIP database %s", databasePath)
	}
	return newGeoIPDetector(db, ipResolver), nil
}

func newGeoIPDetector(dbReader cityReader, ipResolver ip.Resolver) *GeoIPDetector {
	return &GeoIPDetector{
		ipResolver: ipResolver,
		dbReader:   dbReader,
	}
}

// DetectFix maps current public IP to a coordinate.
// The accuracy radius of the record becomes the horizontal accuracy in metres.
func (d *GeoIPDetector) DetectFix(_ context.Context) (location.Fix, error) {
	log.Debug().Msg("Detecting with GeoIP detector")

	ipAddress, err := d.ipResolver.GetPublicIP()
	if err != nil {
		return location.Fix{}, errors.Wrap(err, "failed to resolve public IP")
	}

	parsed := net.ParseIP(ipAddress)
	if parsed == nil {
		return location.Fix{}, errors.Errorf("failed to parse IP %q", ipAddress)
	}

	record, err := d.dbReader.City(parsed)
	if err != nil {
		return location.Fix{}, errors.Wrapf(err, "failed to look up %s", ipAddress)
	}
	if record.Location.Latitude == 0 && record.Location.Longitude == 0 {
		return location.Fix{}, errors.Errorf("no coordinate for %s", ipAddress)
	}

	return location.Fix{
		Latitude:           record.Location.Latitude,
		Longitude:          record.Location.Longitude,
		HorizontalAccuracy: float64(record.Location.AccuracyRadius) * 1000,
		Timestamp:          time.Now(),
		Source:             SourceGeoIP,
	}, nil
}
