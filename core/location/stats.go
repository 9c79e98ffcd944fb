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
)

type subscriber interface {
	Subscribe(topic string, fn interface{}) error
}

// Stats counts location events seen on the event bus since start.
type Stats struct {
	mu       sync.Mutex
	snapshot StatsSnapshot
}

// StatsSnapshot is a point in time copy of Stats.
type StatsSnapshot struct {
	Fixes             int
	LastFixAt         time.Time
	ResolvedFromFix   int
	ResolvedFromCache int
	ResolvedEmpty     int
	Addresses         int
	Geocoded          int
}

// NewStats returns empty location statistics.
func NewStats() *Stats {
	return &Stats{}
}

// Subscribe starts counting location events published on the bus.
func (s *Stats) Subscribe(bus subscriber) error {
	if err := bus.Subscribe(AppTopicLocationFix, s.consumeFix); err != nil {
		return err
	}
	if err := bus.Subscribe(AppTopicLocationResolved, s.consumeResolved); err != nil {
		return err
	}
	return bus.Subscribe(AppTopicAddressResolved, s.consumeAddress)
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *Stats) consumeFix(fix Fix) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Fixes++
	if fix.Timestamp.After(s.snapshot.LastFixAt) {
		s.snapshot.LastFixAt = fix.Timestamp
	}
}

func (s *Stats) consumeResolved(event ResolvedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Source {
	case SourceFix:
		s.snapshot.ResolvedFromFix++
	case SourceCache:
		s.snapshot.ResolvedFromCache++
	default:
		s.snapshot.ResolvedEmpty++
	}
}

func (s *Stats) consumeAddress(event AddressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Addresses++
	if event.Geocoded {
		s.snapshot.Geocoded++
	}
}
