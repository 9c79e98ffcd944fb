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
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"

	"github.com/peraking/locator/core/location"
)

type locationManagerMock struct {
	latitude, longitude string
	detail              location.AddressDetail
	requestedTimeout    time.Duration
}

func (m *locationManagerMock) CurrentLocation(timeout time.Duration) (string, string) {
	m.requestedTimeout = timeout
	return m.latitude, m.longitude
}

func (m *locationManagerMock) LastLocation() (string, string) {
	return m.latitude, m.longitude
}

func (m *locationManagerMock) CurrentAddress(timeout time.Duration) location.AddressDetail {
	m.requestedTimeout = timeout
	return m.detail
}

func (m *locationManagerMock) CachedAddressDetail() location.AddressDetail {
	return m.detail
}

func newTestRouter(manager locationManager) *httprouter.Router {
	router := httprouter.New()
	AddRoutesForLocation(router, manager, 5*time.Second)
	return router
}

func TestGetLocation(t *testing.T) {
	manager := &locationManagerMock{latitude: "54.687157", longitude: "25.279652"}
	resp := httptest.NewRecorder()

	newTestRouter(manager).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/location?timeout=2s", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"latitude": "54.687157", "longitude": "25.279652"}`, resp.Body.String())
	assert.Equal(t, 2*time.Second, manager.requestedTimeout)
}

func TestGetLocationUsesDefaultTimeout(t *testing.T) {
	manager := &locationManagerMock{}
	resp := httptest.NewRecorder()

	newTestRouter(manager).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/location", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"latitude": "", "longitude": ""}`, resp.Body.String())
	assert.Equal(t, 5*time.Second, manager.requestedTimeout)
}

func TestGetLocationRejectsInvalidTimeout(t *testing.T) {
	manager := &locationManagerMock{}
	resp := httptest.NewRecorder()

	newTestRouter(manager).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/location?timeout=-1s", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.JSONEq(
		t,
		`{
			"message": "validation_error",
			"errors": {
				"timeout": [ { "code": "invalid", "message": "Timeout must be positive" } ]
			}
		}`,
		resp.Body.String())
	assert.Zero(t, manager.requestedTimeout)
}

func TestGetLastLocation(t *testing.T) {
	manager := &locationManagerMock{latitude: "1.5", longitude: "2.5"}
	resp := httptest.NewRecorder()

	newTestRouter(manager).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/location/last", nil))

	assert.JSONEq(t, `{"latitude": "1.5", "longitude": "2.5"}`, resp.Body.String())
}

func TestGetAddress(t *testing.T) {
	manager := &locationManagerMock{detail: location.AddressDetail{
		Province:    "Vilnius County",
		CountryCode: "LT",
		Country:     "Lithuania",
		Street:      "Gedimino pr. 9",
		Latitude:    "54.687157",
		Longitude:   "25.279652",
		City:        "Vilnius",
		District:    "Senamiestis",
	}}
	resp := httptest.NewRecorder()

	newTestRouter(manager).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/location/address?timeout=10s", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(
		t,
		`{
			"latitude": "54.687157",
			"longitude": "25.279652",
			"street": "Gedimino pr. 9",
			"district": "Senamiestis",
			"city": "Vilnius",
			"province": "Vilnius County",
			"country": "Lithuania",
			"country_code": "LT"
		}`,
		resp.Body.String())
	assert.Equal(t, 10*time.Second, manager.requestedTimeout)
}

func TestGetAddressRejectsInvalidTimeout(t *testing.T) {
	resp := httptest.NewRecorder()

	newTestRouter(&locationManagerMock{}).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/location/address?timeout=later", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetCachedAddress(t *testing.T) {
	manager := &locationManagerMock{detail: location.AddressDetail{City: "Kaunas", Latitude: "54.9", Longitude: "23.9"}}
	resp := httptest.NewRecorder()

	newTestRouter(manager).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/location/address/cached", nil))

	assert.JSONEq(
		t,
		`{
			"latitude": "54.9",
			"longitude": "23.9",
			"street": "",
			"district": "",
			"city": "Kaunas",
			"province": "",
			"country": "",
			"country_code": ""
		}`,
		resp.Body.String())
}

type statsMock struct {
	snapshot location.StatsSnapshot
}

func (m statsMock) Snapshot() location.StatsSnapshot {
	return m.snapshot
}

func TestGetLocationStats(t *testing.T) {
	router := httprouter.New()
	AddRoutesForLocationStats(router, statsMock{snapshot: location.StatsSnapshot{
		Fixes:             3,
		LastFixAt:         time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		ResolvedFromFix:   2,
		ResolvedFromCache: 1,
		Addresses:         1,
		Geocoded:          1,
	}})
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/location/stats", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{
		"fixes": 3,
		"last_fix_at": "2024-03-01T12:00:00Z",
		"resolved_from_fix": 2,
		"resolved_from_cache": 1,
		"resolved_empty": 0,
		"addresses": 1,
		"geocoded": 1
	}`, resp.Body.String())
}

func TestGetLocationStatsOmitsMissingFixTime(t *testing.T) {
	router := httprouter.New()
	AddRoutesForLocationStats(router, statsMock{})
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/location/stats", nil))

	assert.NotContains(t, resp.Body.String(), "last_fix_at")
}
