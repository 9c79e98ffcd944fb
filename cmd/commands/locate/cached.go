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
)

// CachedCommandName for the cached command.
const CachedCommandName = "cached"

// NewCachedCommand creates cached command.
func NewCachedCommand() *cli.Command {
	return &cli.Command{
		Name:      CachedCommandName,
		Usage:     "Prints the last known location and cached address without detecting",
		ArgsUsage: " ",
		Flags:     []cli.Flag{&flagJSON, &flagRemote},
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

			return newCachedAction(ctx.App.Writer, source).Run(ctx)
		},
	}
}

type cachedAction struct {
	writer io.Writer
	source backend
}

func newCachedAction(writer io.Writer, source backend) *cachedAction {
	return &cachedAction{writer: writer, source: source}
}

// Run runs action tasks.
func (a *cachedAction) Run(ctx *cli.Context) error {
	address, err := a.source.CachedAddress()
	if err != nil {
		return err
	}
	return newPrinter(a.writer, ctx.Bool(flagJSON.Name)).address(address)
}
