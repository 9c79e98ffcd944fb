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

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/peraking/locator/core/location"
)

// Detector produces a single location fix.
type Detector interface {
	DetectFix(ctx context.Context) (location.Fix, error)
}

// StaticDetector always returns the same fix.
type StaticDetector struct {
	latitude  float64
	longitude float64
	accuracy  float64
	err       error
}

// NewStaticDetector returns a detector reporting the given coordinate.
func NewStaticDetector(latitude, longitude, accuracy float64) *StaticDetector {
	return &StaticDetector{
		latitude:  latitude,
		longitude: longitude,
		accuracy:  accuracy,
	}
}

// NewFailingDetector returns StaticDetector with entered error
func NewFailingDetector(err error) *StaticDetector {
	return &StaticDetector{err: err}
}

// DetectFix returns the configured coordinate.
func (d *StaticDetector) DetectFix(_ context.Context) (location.Fix, error) {
	if d.err != nil {
		return location.Fix{}, d.err
	}
	return location.Fix{
		Latitude:           d.latitude,
		Longitude:          d.longitude,
		HorizontalAccuracy: d.accuracy,
		Timestamp:          time.Now(),
		Source:             SourceStatic,
	}, nil
}

// FallbackDetector tries detectors in order until one of them succeeds.
type FallbackDetector struct {
	detectors []Detector
}

// NewFallbackDetector returns a detector chain.
func NewFallbackDetector(detectors ...Detector) *FallbackDetector {
	return &FallbackDetector{detectors: detectors}
}

// DetectFix returns the first successful fix.
func (d *FallbackDetector) DetectFix(ctx context.Context) (location.Fix, error) {
	err := errors.New("no location detectors configured")
	for i, detector := range d.detectors {
		var fix location.Fix
		fix, err = detector.DetectFix(ctx)
		if err == nil {
			return fix, nil
		}
		if ctx.Err() != nil {
			return location.Fix{}, ctx.Err()
		}
		log.Debug().Err(err).Msgf("Location detector %d failed, trying next", i)
	}
	return location.Fix{}, errors.Wrap(err, "all location detectors failed")
}
