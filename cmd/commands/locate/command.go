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
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/peraking/locator/config"
)

// CommandName for the locate command.
const CommandName = "locate"

var (
	flagAddress = cli.BoolFlag{
		Name:  "address",
		Usage: "Reverse geocode the location into an address",
	}
	flagTimeout = cli.DurationFlag{
		Name:  "timeout",
		Usage: "How long to wait for a fix before falling back to the cached location",
	}
	flagJSON = cli.BoolFlag{
		Name:  "json",
		Usage: "Print the result as JSON",
	}
)

// NewCommand creates locate command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Detects the current location once and prints it",
		ArgsUsage: " ",
		Flags:     []cli.Flag{&flagAddress, &flagTimeout, &flagJSON, &flagRemote},
		Action: func(ctx *cli.Context) error {
			source, release, err := openBackend(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := release(); err != nil {
					log.Warn().Err(err).Msg("Failed to release location backend")
				}
			}()

			return newLocateAction(ctx.App.Writer, source).Run(ctx)
		},
	}
}

type locateAction struct {
	writer io.Writer
	source backend
}

func newLocateAction(writer io.Writer, source backend) *locateAction {
	return &locateAction{writer: writer, source: source}
}

// Run runs action tasks.
func (a *locateAction) Run(ctx *cli.Context) error {
	timeout := config.GetDuration(config.FlagLocationTimeout)
	if ctx.IsSet(flagTimeout.Name) {
		timeout = ctx.Duration(flagTimeout.Name)
	}
	out := newPrinter(a.writer, ctx.Bool(flagJSON.Name))

	if ctx.Bool(flagAddress.Name) {
		address, err := a.source.Address(timeout)
		if err != nil {
			return err
		}
		return out.address(address)
	}

	location, err := a.source.Location(timeout)
	if err != nil {
		return err
	}
	return out.location(location)
}
