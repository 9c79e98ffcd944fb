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
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/peraking/locator/core/location"
)

// Fix sources reported by the detectors of this package.
const (
	SourceGeoIP  = "geoip"
	SourceOracle = "oracle"
	SourceStatic = "static"
)

// DefaultInterval between two detections of a running session.
const DefaultInterval = 30 * time.Second

// Consent is the configured answer of the user to location access.
type Consent string

// Consent values
const (
	ConsentGranted      Consent = "granted"
	ConsentDenied       Consent = "denied"
	ConsentUndetermined Consent = "undetermined"
)

// ParseConsent validates a configured consent value.
func ParseConsent(s string) (Consent, error) {
	switch c := Consent(strings.ToLower(strings.TrimSpace(s))); c {
	case ConsentGranted, ConsentDenied, ConsentUndetermined:
		return c, nil
	}
	return "", errors.Errorf("unknown location consent %q", s)
}

// Session is a location.Provider which runs a Detector periodically while started.
// Until asked, an undetermined consent is reported as not determined; once
// authorization is requested it becomes granted.
type Session struct {
	detector Detector
	interval time.Duration

	mu            sync.Mutex
	handler       location.Handler
	authorization location.Authorization
	prompting     bool
	stop          chan struct{}
}

// NewSession returns a stopped session.
func NewSession(detector Detector, interval time.Duration, consent Consent) *Session {
	if interval <= 0 {
		interval = DefaultInterval
	}

	authorization := location.AuthorizationNotDetermined
	switch consent {
	case ConsentGranted:
		authorization = location.AuthorizationWhenInUse
	case ConsentDenied:
		authorization = location.AuthorizationDenied
	}

	return &Session{
		detector:      detector,
		interval:      interval,
		authorization: authorization,
	}
}

// SetHandler registers the receiver of fixes, errors and authorization changes.
func (s *Session) SetHandler(handler location.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

// Authorization returns the current authorization status.
func (s *Session) Authorization() location.Authorization {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authorization
}

// RequestAuthorization answers an undetermined authorization asynchronously.
func (s *Session) RequestAuthorization() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authorization != location.AuthorizationNotDetermined || s.prompting {
		return
	}
	s.prompting = true

	go func() {
		s.mu.Lock()
		s.authorization = location.AuthorizationWhenInUse
		s.prompting = false
		handler := s.handler
		s.mu.Unlock()

		log.Info().Msg("Location access granted")
		if handler != nil {
			handler.HandleAuthorization(location.AuthorizationWhenInUse)
		}
	}()
}

// ServicesEnabled reports whether a detector is configured.
func (s *Session) ServicesEnabled() bool {
	return s.detector != nil
}

// StartUpdates starts periodic detection. Calling it on a running session does nothing.
func (s *Session) StartUpdates() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil || s.detector == nil {
		return
	}

	log.Debug().Msgf("Starting location updates every %s", s.interval)
	s.stop = make(chan struct{})
	go s.run(s.stop)
}

// StopUpdates stops periodic detection without waiting for a running detection to finish.
func (s *Session) StopUpdates() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return
	}

	log.Debug().Msg("Stopping location updates")
	close(s.stop)
	s.stop = nil
}

// Running reports whether updates are started.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *Session) run(stop chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		s.detect(ctx, stop)

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func (s *Session) detect(ctx context.Context, stop chan struct{}) {
	fix, err := s.detector.DetectFix(ctx)

	select {
	case <-stop:
		return
	default:
	}

	s.mu.Lock()
	handler := s.handler
	s.mu.Unlock()
	if handler == nil {
		return
	}

	if err != nil {
		handler.HandleError(err)
		return
	}
	handler.HandleFix(fix)
}
