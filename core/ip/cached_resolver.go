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
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog/log"
)

// CachedResolver remembers the public IP for a while so that repeated GeoIP
// detections do not query the IP services every time.
type CachedResolver struct {
	resolver Resolver
	ttl      time.Duration
	clock    clock.Clock

	mu        sync.Mutex
	publicIP  string
	expiresAt time.Time
}

// NewCachedResolver creates ip resolver which keeps a resolved IP for ttl.
func NewCachedResolver(resolver Resolver, ttl time.Duration) *CachedResolver {
	return newCachedResolver(resolver, ttl, clock.New())
}

func newCachedResolver(resolver Resolver, ttl time.Duration, clock clock.Clock) *CachedResolver {
	return &CachedResolver{
		resolver: resolver,
		ttl:      ttl,
		clock:    clock,
	}
}

// GetPublicIP returns the cached public IP, resolving it again once it expired.
// Failures are not cached.
func (r *CachedResolver) GetPublicIP() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if r.publicIP != "" && now.Before(r.expiresAt) {
		return r.publicIP, nil
	}

	publicIP, err := r.resolver.GetPublicIP()
	if err != nil {
		return "", err
	}
	log.Debug().Msgf("Public IP cached until %s", now.Add(r.ttl).Format(time.RFC3339))
	r.publicIP = publicIP
	r.expiresAt = now.Add(r.ttl)
	return publicIP, nil
}

// ClearCache forgets the cached IP, the next call resolves it again.
func (r *CachedResolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.publicIP = ""
	r.expiresAt = time.Time{}
}
