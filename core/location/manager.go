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

package location

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout is used for requests which do not specify a positive timeout.
const DefaultTimeout = 5 * time.Second

// Callback receives the coordinates of a resolved request.
// Empty strings mean that no location is known.
type Callback func(latitude, longitude string)

type requestState int

const (
	requestWaiting requestState = iota
	requestCompleted
	requestTimedOut
)

type request struct {
	id        string
	callback  Callback
	timeout   time.Duration
	createdAt time.Time
	timer     *clock.Timer
	state     requestState
}

// ManagerDeps to construct the location Manager.
type ManagerDeps struct {
	Provider Provider
	Cache    Cache
	Geocoder Geocoder
	// Publisher receives location events, they are dropped when nil.
	Publisher Publisher
	// Clock drives request timeouts, real time is used when nil.
	Clock clock.Clock
}

// Manager serves any number of concurrent location requests from a single
// provider session. The first fix resolves every request waiting at that moment.
type Manager struct {
	provider       Provider
	cache          Cache
	geocoder       Geocoder
	publisher      Publisher
	clock          clock.Clock
	geocodeTimeout time.Duration

	mu       sync.Mutex
	requests []*request
	updating bool
	lastFix  *Fix
}

// NewManager returns a new Manager and registers it as the provider's handler.
func NewManager(deps ManagerDeps, geocodeTimeout time.Duration) *Manager {
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.Publisher == nil {
		deps.Publisher = noopPublisher{}
	}
	if geocodeTimeout <= 0 {
		geocodeTimeout = DefaultGeocodeTimeout
	}
	if geocodeTimeout > MaxGeocodeTimeout {
		log.Warn().Msgf("Geocode timeout %s capped to %s", geocodeTimeout, MaxGeocodeTimeout)
		geocodeTimeout = MaxGeocodeTimeout
	}

	m := &Manager{
		provider:       deps.Provider,
		cache:          deps.Cache,
		geocoder:       deps.Geocoder,
		publisher:      deps.Publisher,
		clock:          deps.Clock,
		geocodeTimeout: geocodeTimeout,
	}
	m.provider.SetHandler(m)
	return m
}

// GetCurrentLocation registers a request which is resolved exactly once: with the
// first fix, with the cached coordinate when the timeout passes or location is
// unavailable, or with empty strings when nothing is cached.
func (m *Manager) GetCurrentLocation(timeout time.Duration, callback Callback) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	req := &request{
		id:        uuid.Must(uuid.NewV4()).String(),
		callback:  callback,
		timeout:   timeout,
		createdAt: m.clock.Now(),
		state:     requestWaiting,
	}

	m.mu.Lock()
	req.timer = m.clock.AfterFunc(timeout, func() {
		m.expire(req)
	})
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	log.Debug().Msgf("Location request %s registered with timeout %s", req.id, timeout)
	m.startUpdates(m.provider.Authorization())
}

// CurrentLocation blocks until the location request is resolved.
func (m *Manager) CurrentLocation(timeout time.Duration) (latitude, longitude string) {
	type result struct{ latitude, longitude string }

	done := make(chan result, 1)
	m.GetCurrentLocation(timeout, func(latitude, longitude string) {
		done <- result{latitude, longitude}
	})
	r := <-done
	return r.latitude, r.longitude
}

// LastLocation returns the last fix seen by this manager, the cached coordinate
// when there was none, or empty strings.
func (m *Manager) LastLocation() (latitude, longitude string) {
	m.mu.Lock()
	fix := m.lastFix
	m.mu.Unlock()

	if fix != nil {
		return fix.Strings()
	}
	latitude, longitude, _ = m.cachedLocation()
	return latitude, longitude
}

// Pending returns the number of requests waiting for resolution.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// HandleFix resolves every waiting request with the given fix.
func (m *Manager) HandleFix(fix Fix) {
	if !fix.Valid() {
		log.Debug().Msgf("Ignoring invalid fix %v,%v with accuracy %v", fix.Latitude, fix.Longitude, fix.HorizontalAccuracy)
		return
	}
	if fix.Timestamp.IsZero() {
		fix.Timestamp = m.clock.Now()
	}

	latitude, longitude := fix.Strings()
	err := m.cache.SaveCoordinate(CachedCoordinate{
		Latitude:  latitude,
		Longitude: longitude,
		Timestamp: fix.Timestamp,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to cache location fix")
	}
	m.publisher.Publish(AppTopicLocationFix, fix)

	m.mu.Lock()
	m.lastFix = &fix
	resolved := m.takeWaiting(requestCompleted)
	m.stopIfIdle()
	m.mu.Unlock()

	m.deliver(resolved, latitude, longitude, SourceFix)
}

// HandleError resolves every waiting request from cache. The error itself is not
// propagated to callers.
func (m *Manager) HandleError(err error) {
	log.Warn().Err(err).Msg("Location provider failed, falling back to cached location")
	m.resolvePendingFromCache()
}

// HandleAuthorization starts updates once access is granted and resolves waiting
// requests from cache once it is refused.
func (m *Manager) HandleAuthorization(status Authorization) {
	log.Info().Msgf("Location authorization changed: %s", status)

	switch status {
	case AuthorizationWhenInUse, AuthorizationAlways:
		if m.Pending() > 0 {
			m.startUpdates(status)
		}
	case AuthorizationDenied, AuthorizationRestricted:
		m.resolvePendingFromCache()
	}
}

func (m *Manager) startUpdates(status Authorization) {
	switch {
	case status == AuthorizationNotDetermined:
		log.Debug().Msg("Location authorization not determined, requesting it")
		m.provider.RequestAuthorization()
	case status.Granted():
		if !m.provider.ServicesEnabled() {
			log.Warn().Msg("Location services are disabled, falling back to cached location")
			m.resolvePendingFromCache()
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.updating || len(m.requests) == 0 {
			return
		}
		m.updating = true
		m.provider.StartUpdates()
	default:
		log.Warn().Msgf("Location authorization is %s, falling back to cached location", status)
		m.resolvePendingFromCache()
	}
}

func (m *Manager) expire(req *request) {
	m.mu.Lock()
	if !m.remove(req) {
		m.mu.Unlock()
		return
	}
	req.state = requestTimedOut
	m.stopIfIdle()
	m.mu.Unlock()

	log.Debug().Msgf("Location request %s timed out after %s", req.id, req.timeout)
	latitude, longitude, source := m.cachedLocation()
	m.deliver([]*request{req}, latitude, longitude, source)
}

func (m *Manager) resolvePendingFromCache() {
	m.mu.Lock()
	resolved := m.takeWaiting(requestCompleted)
	m.stopIfIdle()
	m.mu.Unlock()

	if len(resolved) == 0 {
		return
	}
	latitude, longitude, source := m.cachedLocation()
	m.deliver(resolved, latitude, longitude, source)
}

// takeWaiting removes every waiting request from the registry. Must be called with mu held.
func (m *Manager) takeWaiting(state requestState) []*request {
	var taken, kept []*request
	for _, req := range m.requests {
		if req.state != requestWaiting {
			kept = append(kept, req)
			continue
		}
		req.state = state
		req.timer.Stop()
		taken = append(taken, req)
	}
	m.requests = kept
	return taken
}

// remove reports whether the request was still registered. Must be called with mu held.
func (m *Manager) remove(req *request) bool {
	for i := range m.requests {
		if m.requests[i] == req {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			return true
		}
	}
	return false
}

// stopIfIdle stops the provider session once nothing waits for it. Must be called with mu held.
func (m *Manager) stopIfIdle() {
	if m.updating && len(m.requests) == 0 {
		m.updating = false
		m.provider.StopUpdates()
	}
}

func (m *Manager) cachedLocation() (latitude, longitude string, source Source) {
	cached, err := m.cache.Coordinate()
	if err != nil || cached.Empty() {
		return "", "", SourceNone
	}
	return cached.Latitude, cached.Longitude, SourceCache
}

func (m *Manager) deliver(resolved []*request, latitude, longitude string, source Source) {
	now := m.clock.Now()
	for _, req := range resolved {
		log.Debug().Msgf("Location request %s resolved from %s", req.id, source)
		if req.callback != nil {
			req.callback(latitude, longitude)
		}
		m.publisher.Publish(AppTopicLocationResolved, ResolvedEvent{
			RequestID: req.id,
			Latitude:  latitude,
			Longitude: longitude,
			Source:    source,
			Waited:    now.Sub(req.createdAt),
		})
	}
}
