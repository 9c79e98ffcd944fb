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

package ip

import (
	"context"
	"io"
	"net"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/peraking/locator/requests"
)

// DefaultAddresses are plain text "what is my IP" services queried in order.
var DefaultAddresses = []string{
	"https://api.ipify.org",
	"https://ipinfo.io/ip",
	"https://checkip.amazonaws.com/",
	"https://icanhazip.com",
}

// Resolver allows resolving current public IP
type Resolver interface {
	GetPublicIP() (string, error)
}

// ResolverImpl represents data required to operate resolving
type ResolverImpl struct {
	addresses  []string
	httpClient *requests.HTTPClient
	maxElapsed time.Duration
}

// NewResolver creates new ip-detector resolver querying given addresses in order
func NewResolver(httpClient *requests.HTTPClient, addresses ...string) *ResolverImpl {
	if len(addresses) == 0 {
		addresses = DefaultAddresses
	}
	return &ResolverImpl{
		addresses:  addresses,
		httpClient: httpClient,
		maxElapsed: 20 * time.Second,
	}
}

// GetPublicIP returns current public IP
func (r *ResolverImpl) GetPublicIP() (string, error) {
	eback := backoff.NewExponentialBackOff()
	eback.MaxElapsedTime = r.maxElapsed
	eback.InitialInterval = 500 * time.Millisecond
	boff := backoff.WithMaxRetries(eback, 3)

	var publicIP string
	retry := func() error {
		var lastErr error
		for _, address := range r.addresses {
			ip, err := r.requestPlainIP(address)
			if err != nil {
				log.Debug().Err(err).Msgf("IP detection via %s failed", address)
				lastErr = err
				continue
			}
			publicIP = ip
			return nil
		}
		return lastErr
	}

	if err := backoff.Retry(retry, boff); err != nil {
		return "", errors.Wrap(err, "failed to detect public IP")
	}

	log.Debug().Msg("IP detected: " + publicIP)
	return publicIP, nil
}

func (r *ResolverImpl) requestPlainIP(address string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := requests.NewGetRequestWithContext(ctx, address, "", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/plain")

	res, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if err := requests.ParseResponseError(res); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 256))
	if err != nil {
		return "", err
	}

	parsed := net.ParseIP(strings.TrimSpace(string(body)))
	if parsed == nil {
		return "", errors.New("could not parse ip response")
	}
	return parsed.String(), nil
}
