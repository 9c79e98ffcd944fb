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

package requests

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// UserAgent is sent with every request built by this package.
const UserAgent = "locator-goclient/v0.1"

// NewGetRequest generates http Get request
func NewGetRequest(apiURI, path string, params url.Values) (*http.Request, error) {
	return NewGetRequestWithContext(context.Background(), apiURI, path, params)
}

// NewGetRequestWithContext generates http Get request bound to the given context.
func NewGetRequestWithContext(ctx context.Context, apiURI, path string, params url.Values) (*http.Request, error) {
	fullURL := joinURL(apiURI, path)
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func joinURL(apiURI, path string) string {
	if path == "" {
		return apiURI
	}
	return strings.TrimSuffix(apiURI, "/") + "/" + strings.TrimPrefix(path, "/")
}
