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
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

type countingResolver struct {
	ips   []string
	calls int
}

func (r *countingResolver) GetPublicIP() (string, error) {
	ip := r.ips[r.calls%len(r.ips)]
	r.calls++
	return ip, nil
}

func TestCachedResolver_KeepsIPUntilExpired(t *testing.T) {
	mockClock := clock.NewMock()
	resolver := &countingResolver{ips: []string{"88.119.0.1", "88.119.0.2"}}
	cached := newCachedResolver(resolver, time.Minute, mockClock)

	for i := 0; i < 3; i++ {
		ip, err := cached.GetPublicIP()
		assert.NoError(t, err)
		assert.Equal(t, "88.119.0.1", ip)
	}
	assert.Equal(t, 1, resolver.calls)

	mockClock.Add(time.Minute)
	ip, err := cached.GetPublicIP()

	assert.NoError(t, err)
	assert.Equal(t, "88.119.0.2", ip)
	assert.Equal(t, 2, resolver.calls)
}

func TestCachedResolver_ClearCache(t *testing.T) {
	resolver := &countingResolver{ips: []string{"1.1.1.1"}}
	cached := newCachedResolver(resolver, time.Hour, clock.NewMock())

	_, err := cached.GetPublicIP()
	assert.NoError(t, err)
	cached.ClearCache()
	_, err = cached.GetPublicIP()
	assert.NoError(t, err)

	assert.Equal(t, 2, resolver.calls)
}

func TestCachedResolver_DoesNotCacheErrors(t *testing.T) {
	cached := NewCachedResolver(NewResolverMockFailing(errors.New("offline")), time.Hour)

	_, err := cached.GetPublicIP()

	assert.EqualError(t, err, "offline")
	assert.Empty(t, cached.publicIP)
}
