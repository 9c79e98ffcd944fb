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

package tequilapi

import (
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/tequilapi/endpoints"
)

// NewAPIRouter returns the router serving every locator endpoint.
func NewAPIRouter(manager *location.Manager, stats *location.Stats, defaultTimeout time.Duration) *httprouter.Router {
	router := httprouter.New()
	router.HandleMethodNotAllowed = true

	endpoints.AddRoutesForHealthCheck(router, time.Now, os.Getpid)
	endpoints.AddRoutesForLocation(router, manager, defaultTimeout)
	endpoints.AddRoutesForLocationStats(router, stats)

	return router
}
