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

package logs

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/peraking/locator/config"
	"github.com/peraking/locator/logconfig"
)

// NewCommand function creates logs command
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "logs",
		Usage:     "Packs daemon log files into a ZIP archive",
		ArgsUsage: " ",
		Action: func(ctx *cli.Context) error {
			options := logconfig.NewLogOptions(
				config.GetString(config.FlagLogLevel),
				config.GetString(config.FlagLogDir),
			)

			archive, err := logconfig.NewCollector(&options).Archive()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(ctx.App.Writer, "Logs archived to "+archive)
			return err
		},
	}
}
