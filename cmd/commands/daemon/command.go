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

package daemon

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/peraking/locator/cmd"
	"github.com/peraking/locator/config"
	"github.com/peraking/locator/logconfig"
)

// interruptedShutdown fails on purpose so the hard killer exits with status 1.
func interruptedShutdown() error {
	return errors.New("shutdown interrupted")
}

// NewCommand function creates daemon command
func NewCommand() *cli.Command {
	var di cmd.Dependencies
	var logFile io.Closer

	return &cli.Command{
		Name:      "daemon",
		Usage:     "Starts locator daemon serving the local API",
		ArgsUsage: " ",
		Action: func(ctx *cli.Context) error {
			logOptions := logconfig.NewLogOptions(
				config.GetString(config.FlagLogLevel),
				config.GetString(config.FlagLogDir),
			)
			logFile = logconfig.Configure(&logOptions)

			if err := di.Bootstrap(); err != nil {
				return err
			}
			if err := di.BootstrapTequilapi(); err != nil {
				return err
			}

			cmd.StopOnInterrupts(cmd.SoftKiller(di.Shutdown), cmd.HardKiller(interruptedShutdown))

			di.Server.StartServing()
			return di.Server.Wait()
		},
		After: func(ctx *cli.Context) error {
			err := di.Shutdown()
			if logFile != nil {
				if closeErr := logFile.Close(); closeErr != nil {
					log.Warn().Err(closeErr).Msg("Failed to close log file")
				}
			}
			return err
		},
	}
}
