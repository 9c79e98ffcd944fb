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

package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/peraking/locator/cmd/commands/daemon"
	"github.com/peraking/locator/cmd/commands/locate"
	"github.com/peraking/locator/cmd/commands/logs"
	"github.com/peraking/locator/cmd/commands/version"
	"github.com/peraking/locator/config"
	"github.com/peraking/locator/logconfig"
	"github.com/peraking/locator/metadata"
)

var versionCommand = version.NewCommand(metadata.VersionAsSummary())

func main() {
	logconfig.Bootstrap()
	app, err := NewCommand()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create command: ")
		os.Exit(1)
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Failed to execute command: ")
		os.Exit(1)
	}
}

// NewCommand function creates application master command
func NewCommand() (*cli.App, error) {
	cli.VersionPrinter = func(ctx *cli.Context) {
		_ = versionCommand.Action(ctx)
	}

	app := cli.NewApp()
	app.Name = "locator"
	app.Usage = "Location requests served from a single provider session"
	app.Version = metadata.Version
	if err := config.RegisterFlagsNode(&app.Flags); err != nil {
		return nil, err
	}
	app.Before = func(ctx *cli.Context) error {
		if err := config.ParseFlagsNode(ctx); err != nil {
			return err
		}
		logOptions := logconfig.NewLogOptions(config.GetString(config.FlagLogLevel), "")
		logconfig.Configure(&logOptions)
		return nil
	}
	app.Commands = []*cli.Command{
		versionCommand,
		daemon.NewCommand(),
		locate.NewCommand(),
		locate.NewCachedCommand(),
		logs.NewCommand(),
	}

	return app, nil
}
