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

package locate

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/peraking/locator/cmd"
	"github.com/peraking/locator/config"
	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/tequilapi/client"
	"github.com/peraking/locator/tequilapi/contract"
)

// flagRemote sends the request to a running daemon instead of detecting in-process.
var flagRemote = cli.BoolFlag{
	Name:  "remote",
	Usage: "Ask a running locator daemon over its local API",
}

type backend interface {
	Location(timeout time.Duration) (contract.LocationDTO, error)
	LastLocation() (contract.LocationDTO, error)
	Address(timeout time.Duration) (contract.AddressDTO, error)
	CachedAddress() (contract.AddressDTO, error)
}

// openBackend returns the daemon API client with --remote, an in-process manager otherwise.
// The returned function releases the backend.
func openBackend(ctx *cli.Context) (backend, func() error, error) {
	if ctx.Bool(flagRemote.Name) {
		remote := client.NewClient(
			config.GetString(config.FlagTequilapiAddress),
			config.GetInt(config.FlagTequilapiPort),
		)
		return remote, func() error { return nil }, nil
	}

	di := &cmd.Dependencies{}
	if err := bootstrap(di); err != nil {
		return nil, nil, err
	}
	return &localBackend{manager: di.LocationManager}, di.Shutdown, nil
}

type container interface {
	Bootstrap() error
	Shutdown() error
}

// bootstrap releases whatever was opened before a failed bootstrap.
func bootstrap(di container) error {
	err := di.Bootstrap()
	if err == nil {
		return nil
	}
	if closeErr := di.Shutdown(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("Failed to release partially bootstrapped dependencies")
	}
	return err
}

type localBackend struct {
	manager *location.Manager
}

func (b *localBackend) Location(timeout time.Duration) (contract.LocationDTO, error) {
	latitude, longitude := b.manager.CurrentLocation(timeout)
	return contract.LocationDTO{Latitude: latitude, Longitude: longitude}, nil
}

func (b *localBackend) LastLocation() (contract.LocationDTO, error) {
	latitude, longitude := b.manager.LastLocation()
	return contract.LocationDTO{Latitude: latitude, Longitude: longitude}, nil
}

func (b *localBackend) Address(timeout time.Duration) (contract.AddressDTO, error) {
	return contract.NewAddressDTO(b.manager.CurrentAddress(timeout)), nil
}

func (b *localBackend) CachedAddress() (contract.AddressDTO, error) {
	return contract.NewAddressDTO(b.manager.CachedAddressDetail()), nil
}
