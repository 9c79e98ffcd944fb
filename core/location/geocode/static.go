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

	"github.com/peraking/locator/core/location"
)

// Static geocoder answers every coordinate with the same placemark.
type Static struct {
	placemark location.Placemark
	err       error
}

// NewStatic returns a geocoder answering with the given placemark.
func NewStatic(placemark location.Placemark) *Static {
	return &Static{placemark: placemark}
}

// NewFailing returns a geocoder failing with the given error.
func NewFailing(err error) *Static {
	return &Static{err: err}
}

// Reverse returns the configured placemark.
func (s *Static) Reverse(ctx context.Context, _ location.Coordinate) (location.Placemark, error) {
	if err := ctx.Err(); err != nil {
		return location.Placemark{}, err
	}
	return s.placemark, s.err
}
