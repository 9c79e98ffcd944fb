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

package cmd

import (
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/peraking/locator/config"
	"github.com/peraking/locator/core/ip"
	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/core/location/geocode"
	"github.com/peraking/locator/core/location/locationstore"
	"github.com/peraking/locator/core/location/provider"
	"github.com/peraking/locator/core/storage/boltdb"
	"github.com/peraking/locator/eventbus"
	"github.com/peraking/locator/requests"
	"github.com/peraking/locator/tequilapi"
)

const (
	staticAccuracy    = 10.0
	publicIPCacheTime = 5 * time.Minute
)

// Dependencies is DI container for top level components which is reused in several places
type Dependencies struct {
	Storage    *boltdb.Bolt
	EventBus   eventbus.EventBus
	HTTPClient *requests.HTTPClient
	IPResolver ip.Resolver

	LocationStore   *locationstore.Store
	LocationSession *provider.Session
	Geocoder        location.Geocoder
	LocationManager *location.Manager
	LocationStats   *location.Stats

	Server tequilapi.APIServer

	shutdownOnce sync.Once
	shutdownErr  error
}

// Bootstrap initiates the location stack from the current configuration.
func (di *Dependencies) Bootstrap() error {
	log.Info().Msg("Starting locator")

	di.EventBus = eventbus.New()
	di.HTTPClient = requests.NewHTTPClient(requests.DefaultTimeout)
	di.IPResolver = ip.NewCachedResolver(ip.NewResolver(di.HTTPClient), publicIPCacheTime)

	if err := di.bootstrapStorage(config.GetString(config.FlagDataDir)); err != nil {
		return err
	}
	if err := di.bootstrapLocation(); err != nil {
		return err
	}

	log.Info().Msg("Locator bootstrap complete")
	return nil
}

func (di *Dependencies) bootstrapStorage(path string) error {
	storage, err := boltdb.NewStorage(path)
	if err != nil {
		return err
	}
	di.Storage = storage
	di.LocationStore = locationstore.NewStore(storage)
	return nil
}

func (di *Dependencies) bootstrapLocation() error {
	consent, err := provider.ParseConsent(config.GetString(config.FlagLocationConsent))
	if err != nil {
		return err
	}

	detector, err := di.bootstrapDetector()
	if err != nil {
		return err
	}
	di.LocationSession = provider.NewSession(detector, config.GetDuration(config.FlagLocationInterval), consent)

	if di.Geocoder, err = di.bootstrapGeocoder(config.GetString(config.FlagLocationGeocoder)); err != nil {
		return err
	}

	di.LocationStats = location.NewStats()
	if err := di.LocationStats.Subscribe(di.EventBus); err != nil {
		return errors.Wrap(err, "failed to subscribe location stats")
	}

	di.LocationManager = location.NewManager(location.ManagerDeps{
		Provider:  di.LocationSession,
		Cache:     di.LocationStore,
		Geocoder:  di.Geocoder,
		Publisher: di.EventBus,
	}, config.GetDuration(config.FlagLocationGeocodeTimeout))
	return nil
}

// bootstrapDetector chains the configured detectors: static, oracle and GeoIP.
// It returns nil when nothing is configured, which disables location services.
func (di *Dependencies) bootstrapDetector() (provider.Detector, error) {
	var detectors []provider.Detector

	if static := config.GetString(config.FlagLocationStatic); static != "" {
		coordinate, err := parseStaticCoordinate(static)
		if err != nil {
			return nil, err
		}
		log.Info().Msgf("Using static location %v,%v", coordinate.Latitude, coordinate.Longitude)
		detectors = append(detectors, provider.NewStaticDetector(coordinate.Latitude, coordinate.Longitude, staticAccuracy))
	}

	if address := config.GetString(config.FlagLocationOracleAddress); address != "" {
		log.Info().Msg("Using location oracle: " + address)
		detectors = append(detectors, provider.NewOracleDetector(di.HTTPClient, address))
	}

	if database := config.GetString(config.FlagLocationGeoIPDatabase); database != "" {
		geoIP, err := provider.NewGeoIPDetector(database, di.IPResolver)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("Using GeoIP database: " + database)
		detectors = append(detectors, geoIP)
	}

	switch len(detectors) {
	case 0:
		log.Warn().Msg("No location detectors configured, location services are disabled")
		return nil, nil
	case 1:
		return detectors[0], nil
	default:
		return provider.NewFallbackDetector(detectors...), nil
	}
}

func (di *Dependencies) bootstrapGeocoder(name string) (location.Geocoder, error) {
	switch strings.ToLower(name) {
	case "nominatim":
		return geocode.NewNominatim(
			di.HTTPClient,
			config.GetString(config.FlagLocationNominatimAddress),
			config.GetFloat64(config.FlagLocationNominatimRate),
		), nil
	case "", "none":
		log.Info().Msg("Reverse geocoding is disabled")
		return nil, nil
	default:
		return nil, errors.Errorf("unknown geocoder %q", name)
	}
}

// BootstrapTequilapi binds the local API to the configured address.
func (di *Dependencies) BootstrapTequilapi() error {
	address := net.JoinHostPort(
		config.GetString(config.FlagTequilapiAddress),
		strconv.Itoa(config.GetInt(config.FlagTequilapiPort)),
	)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return errors.Wrap(err, "failed to bind API to "+address)
	}

	router := tequilapi.NewAPIRouter(di.LocationManager, di.LocationStats, config.GetDuration(config.FlagLocationTimeout))
	di.Server = tequilapi.NewServer(listener, router)
	return nil
}

// Shutdown stops container. Subsequent calls return the result of the first one.
func (di *Dependencies) Shutdown() error {
	di.shutdownOnce.Do(func() {
		log.Info().Msg("Shutting down locator")
		if di.Server != nil {
			di.Server.Stop()
		}
		if di.LocationSession != nil {
			di.LocationSession.StopUpdates()
		}
		if di.Storage != nil {
			if err := di.Storage.Close(); err != nil {
				di.shutdownErr = errors.Wrap(err, "failed to close storage")
			}
		}
	})
	return di.shutdownErr
}

// parseStaticCoordinate parses "latitude,longitude".
func parseStaticCoordinate(value string) (location.Coordinate, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return location.Coordinate{}, errors.Errorf("static location must be \"latitude,longitude\", got %q", value)
	}
	return location.ParseCoordinate(parts[0], parts[1])
}
