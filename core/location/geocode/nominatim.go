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

package geocode

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/requests"
)

// DefaultNominatimAddress is the public OpenStreetMap Nominatim instance.
const DefaultNominatimAddress = "https://nominatim.openstreetmap.org"

// DefaultRequestsPerSecond follows the usage policy of the public instance.
const DefaultRequestsPerSecond = 1.0

type nominatimAddress struct {
	HouseNumber   string `json:"house_number"`
	Road          string `json:"road"`
	Pedestrian    string `json:"pedestrian"`
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	CityDistrict  string `json:"city_district"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	Municipality  string `json:"municipality"`
	County        string `json:"county"`
	State         string `json:"state"`
	Region        string `json:"region"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
}

type nominatimResponse struct {
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Address     nominatimAddress `json:"address"`
	Error       string           `json:"error"`
}

// Nominatim reverse geocodes coordinates with an OpenStreetMap Nominatim server.
type Nominatim struct {
	httpClient *requests.HTTPClient
	address    string
	limiter    *rate.Limiter

	initialInterval time.Duration
	maxRetries      uint64
}

// NewNominatim returns a geocoder sending at most requestsPerSecond requests to the given server.
func NewNominatim(httpClient *requests.HTTPClient, address string, requestsPerSecond float64) *Nominatim {
	if address == "" {
		address = DefaultNominatimAddress
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRequestsPerSecond
	}
	return &Nominatim{
		httpClient:      httpClient,
		address:         address,
		limiter:         rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		initialInterval: time.Second,
		maxRetries:      3,
	}
}

// Reverse returns the place at the given coordinate.
func (n *Nominatim) Reverse(ctx context.Context, coordinate location.Coordinate) (location.Placemark, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", location.FormatDegrees(coordinate.Latitude))
	params.Set("lon", location.FormatDegrees(coordinate.Longitude))
	params.Set("addressdetails", "1")

	eback := backoff.NewExponentialBackOff()
	eback.InitialInterval = n.initialInterval
	boff := backoff.WithContext(backoff.WithMaxRetries(eback, n.maxRetries), ctx)

	var resp nominatimResponse
	retry := func() error {
		if err := n.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		request, err := requests.NewGetRequestWithContext(ctx, n.address, "reverse", params)
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "failed to create request"))
		}
		resp = nominatimResponse{}
		if err := n.httpClient.DoRequestAndParseResponse(request, &resp); err != nil {
			var responseErr *requests.ResponseError
			if errors.As(err, &responseErr) && responseErr.ClientError() {
				return backoff.Permanent(err)
			}
			log.Debug().Err(err).Msg("Reverse geocoding request failed, will try again")
			return err
		}
		if resp.Error != "" {
			return backoff.Permanent(errors.New(resp.Error))
		}
		return nil
	}

	if err := backoff.Retry(retry, boff); err != nil {
		return location.Placemark{}, errors.Wrap(err, "nominatim reverse geocoding failed")
	}
	return resp.placemark(), nil
}

func (r nominatimResponse) placemark() location.Placemark {
	a := r.Address
	name := r.Name
	if name == "" {
		name = strings.TrimSpace(strings.SplitN(r.DisplayName, ",", 2)[0])
	}
	return location.Placemark{
		Name:               name,
		Thoroughfare:       firstOf(a.Road, a.Pedestrian),
		SubThoroughfare:    a.HouseNumber,
		Locality:           firstOf(a.City, a.Town, a.Village, a.Municipality),
		SubLocality:        firstOf(a.Suburb, a.CityDistrict, a.Neighbourhood),
		AdministrativeArea: firstOf(a.State, a.Region, a.County),
		Country:            a.Country,
		ISOCountryCode:     strings.ToUpper(a.CountryCode),
	}
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
