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

package endpoints

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/tequilapi/contract"
	"github.com/peraking/locator/tequilapi/utils"
)

type locationManager interface {
	CurrentLocation(timeout time.Duration) (latitude, longitude string)
	LastLocation() (latitude, longitude string)
	CurrentAddress(timeout time.Duration) location.AddressDetail
	CachedAddressDetail() location.AddressDetail
}

// LocationEndpoint serves location and address requests.
type LocationEndpoint struct {
	manager        locationManager
	defaultTimeout time.Duration
}

// NewLocationEndpoint creates and returns location endpoint
func NewLocationEndpoint(manager locationManager, defaultTimeout time.Duration) *LocationEndpoint {
	return &LocationEndpoint{
		manager:        manager,
		defaultTimeout: defaultTimeout,
	}
}

// swagger:operation GET /location Location getLocation
//
//	---
//	summary: Returns current location
//	description: Waits for a location fix up to the given timeout, then answers with the last known location. Empty strings mean no location is known.
//	parameters:
//	  - in: query
//	    name: timeout
//	    type: string
//	    description: Maximum wait, e.g. "5s"
//	responses:
//	  200:
//	    description: Location
//	    schema:
//	      "$ref": "#/definitions/LocationDTO"
//	  422:
//	    description: Parameters validation error
//	    schema:
//	      "$ref": "#/definitions/ValidationErrorDTO"
func (le *LocationEndpoint) GetLocation(writer http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	req, errs := contract.NewLocationRequest(request.URL.Query(), le.defaultTimeout)
	if errs.HasErrors() {
		utils.SendValidationErrorMessage(writer, errs)
		return
	}

	latitude, longitude := le.manager.CurrentLocation(req.Timeout)
	utils.WriteAsJSON(contract.LocationDTO{Latitude: latitude, Longitude: longitude}, writer)
}

// swagger:operation GET /location/last Location getLastLocation
//
//	---
//	summary: Returns last known location without waiting
//	responses:
//	  200:
//	    description: Location
//	    schema:
//	      "$ref": "#/definitions/LocationDTO"
func (le *LocationEndpoint) GetLastLocation(writer http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	latitude, longitude := le.manager.LastLocation()
	utils.WriteAsJSON(contract.LocationDTO{Latitude: latitude, Longitude: longitude}, writer)
}

// swagger:operation GET /location/address Location getAddress
//
//	---
//	summary: Returns current address
//	description: Resolves current location and reverse geocodes it. Place fields stay empty when geocoding fails.
//	parameters:
//	  - in: query
//	    name: timeout
//	    type: string
//	    description: Maximum wait for the location fix, e.g. "5s"
//	responses:
//	  200:
//	    description: Address
//	    schema:
//	      "$ref": "#/definitions/AddressDTO"
//	  422:
//	    description: Parameters validation error
//	    schema:
//	      "$ref": "#/definitions/ValidationErrorDTO"
func (le *LocationEndpoint) GetAddress(writer http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	req, errs := contract.NewLocationRequest(request.URL.Query(), le.defaultTimeout)
	if errs.HasErrors() {
		utils.SendValidationErrorMessage(writer, errs)
		return
	}

	detail := le.manager.CurrentAddress(req.Timeout)
	utils.WriteAsJSON(contract.NewAddressDTO(detail), writer)
}

// swagger:operation GET /location/address/cached Location getCachedAddress
//
//	---
//	summary: Returns last known location with the cached address
//	responses:
//	  200:
//	    description: Address
//	    schema:
//	      "$ref": "#/definitions/AddressDTO"
func (le *LocationEndpoint) GetCachedAddress(writer http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.WriteAsJSON(contract.NewAddressDTO(le.manager.CachedAddressDetail()), writer)
}

type statsSource interface {
	Snapshot() location.StatsSnapshot
}

type locationStatsEndpoint struct {
	stats statsSource
}

// swagger:operation GET /location/stats Location getLocationStats
//
//	---
//	summary: Returns location statistics
//	description: Counts fixes and resolved requests since the daemon started
//	responses:
//	  200:
//	    description: Location statistics
//	    schema:
//	      "$ref": "#/definitions/LocationStatsDTO"
func (lse *locationStatsEndpoint) GetStats(writer http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.WriteAsJSON(contract.NewLocationStatsDTO(lse.stats.Snapshot()), writer)
}

// AddRoutesForLocationStats adds the location statistics route to given router
func AddRoutesForLocationStats(router *httprouter.Router, stats statsSource) {
	router.GET("/location/stats", (&locationStatsEndpoint{stats: stats}).GetStats)
}

// AddRoutesForLocation adds location routes to given router
func AddRoutesForLocation(router *httprouter.Router, manager locationManager, defaultTimeout time.Duration) {
	locationEndpoint := NewLocationEndpoint(manager, defaultTimeout)
	router.GET("/location", locationEndpoint.GetLocation)
	router.GET("/location/last", locationEndpoint.GetLastLocation)
	router.GET("/location/address", locationEndpoint.GetAddress)
	router.GET("/location/address/cached", locationEndpoint.GetCachedAddress)
}
