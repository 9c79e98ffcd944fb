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

// Package client talks to a running locator daemon over its HTTP API.
package client

import (
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/requests"
	"github.com/peraking/locator/tequilapi/contract"
)

// requestMargin is added on top of the longest daemon side wait so the daemon gets to answer first.
const requestMargin = 5 * time.Second

// requestTimeout covers the longest address request: a full location wait
// followed by a full reverse geocoding call.
func requestTimeout() time.Duration {
	return contract.MaxLocationTimeout + location.MaxGeocodeTimeout + requestMargin
}

// NewClient returns a new instance of Client
func NewClient(ip string, port int) *Client {
	return &Client{
		http:   requests.NewHTTPClient(requestTimeout()),
		apiURL: fmt.Sprintf("http://%s:%d", ip, port),
	}
}

// Client is able perform remote requests to Tequilapi server
type Client struct {
	http   *requests.HTTPClient
	apiURL string
}

// Location asks the daemon for the current location.
func (client *Client) Location(timeout time.Duration) (dto contract.LocationDTO, err error) {
	err = client.get("location", timeoutQuery(timeout), &dto)
	return dto, err
}

// LastLocation returns the last location known to the daemon.
func (client *Client) LastLocation() (dto contract.LocationDTO, err error) {
	err = client.get("location/last", nil, &dto)
	return dto, err
}

// Address asks the daemon for the current location and its address.
func (client *Client) Address(timeout time.Duration) (dto contract.AddressDTO, err error) {
	err = client.get("location/address", timeoutQuery(timeout), &dto)
	return dto, err
}

// CachedAddress returns the address cached by the daemon without geocoding.
func (client *Client) CachedAddress() (dto contract.AddressDTO, err error) {
	err = client.get("location/address/cached", nil, &dto)
	return dto, err
}

// LocationStats returns location statistics collected by the daemon.
func (client *Client) LocationStats() (dto contract.LocationStatsDTO, err error) {
	err = client.get("location/stats", nil, &dto)
	return dto, err
}

// Healthcheck returns a healthcheck info
func (client *Client) Healthcheck() (dto contract.HealthCheckDTO, err error) {
	err = client.get("healthcheck", nil, &dto)
	return dto, err
}

func (client *Client) get(path string, params url.Values, dto interface{}) error {
	req, err := requests.NewGetRequest(client.apiURL, path, params)
	if err != nil {
		return err
	}
	if err := client.http.DoRequestAndParseResponse(req, dto); err != nil {
		return errors.Wrapf(err, "request to %s failed", path)
	}
	return nil
}

func timeoutQuery(timeout time.Duration) url.Values {
	if timeout <= 0 {
		return nil
	}
	return url.Values{"timeout": []string{timeout.String()}}
}
