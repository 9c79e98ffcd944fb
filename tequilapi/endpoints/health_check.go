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

package endpoints

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/peraking/locator/metadata"
	"github.com/peraking/locator/tequilapi/contract"
	"github.com/peraking/locator/tequilapi/utils"
)

type healthCheckEndpoint struct {
	startTime       time.Time
	currentTimeFunc func() time.Time
	processNumber   int
}

// HealthCheckEndpointFactory creates a structure with single HealthCheck method for healthcheck serving as http,
// currentTimeFunc is injected for easier testing
func HealthCheckEndpointFactory(currentTimeFunc func() time.Time, procID func() int) *healthCheckEndpoint {
	return &healthCheckEndpoint{
		startTime:       currentTimeFunc(),
		currentTimeFunc: currentTimeFunc,
		processNumber:   procID(),
	}
}

// swagger:operation GET /healthcheck Monitoring healthCheck
//
//	---
//	summary: Returns health check information
//	description: Returns health check information about the locator and its build
//	responses:
//	  200:
//	    description: Health check information
//	    schema:
//	      "$ref": "#/definitions/HealthCheckDTO"
func (hce *healthCheckEndpoint) HealthCheck(writer http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	status := contract.HealthCheckDTO{
		Uptime:  hce.currentTimeFunc().Sub(hce.startTime).String(),
		Process: hce.processNumber,
		Version: metadata.Version,
		BuildInfo: contract.BuildInfoDTO{
			Commit:      metadata.BuildCommit,
			Branch:      metadata.BuildBranch,
			BuildNumber: metadata.BuildNumber,
		},
	}
	utils.WriteAsJSON(status, writer)
}

// AddRoutesForHealthCheck attaches the healthcheck route to the router.
func AddRoutesForHealthCheck(router *httprouter.Router, currentTimeFunc func() time.Time, procID func() int) {
	router.GET("/healthcheck", HealthCheckEndpointFactory(currentTimeFunc, procID).HealthCheck)
}
