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
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/requests"
)

type oracleResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// OracleDetector asks a location oracle service for the coordinate of this host.
type OracleDetector struct {
	httpClient *requests.HTTPClient
	address    string

	initialInterval time.Duration
	maxRetries      uint64
}

// NewOracleDetector returns a detector querying the oracle at the given address.
func NewOracleDetector(httpClient *requests.HTTPClient, address string) *OracleDetector {
	return &OracleDetector{
		httpClient:      httpClient,
		address:         address,
		initialInterval: 2 * time.Second,
		maxRetries:      5,
	}
}

// DetectFix retries the oracle with exponential backoff until it answers or ctx is done.
func (o *OracleDetector) DetectFix(ctx context.Context) (location.Fix, error) {
	log.Debug().Msg("Detecting with oracle detector")

	eback := backoff.NewExponentialBackOff()
	eback.InitialInterval = o.initialInterval
	eback.MaxElapsedTime = 20 * time.Second
	boff := backoff.WithContext(backoff.WithMaxRetries(eback, o.maxRetries), ctx)

	var resp oracleResponse
	retry := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		request, err := requests.NewGetRequestWithContext(reqCtx, o.address, "", nil)
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "failed to create request"))
		}
		if err := o.httpClient.DoRequestAndParseResponse(request, &resp); err != nil {
			log.Err(err).Msg("Location detection failed, will try again")
			return err
		}
		return nil
	}

	if err := backoff.Retry(retry, boff); err != nil {
		return location.Fix{}, errors.Wrap(err, "could not detect location")
	}

	return location.Fix{
		Latitude:           resp.Latitude,
		Longitude:          resp.Longitude,
		HorizontalAccuracy: resp.Accuracy,
		Timestamp:          time.Now(),
		Source:             SourceOracle,
	}, nil
}
