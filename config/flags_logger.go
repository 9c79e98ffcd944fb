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

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// FlagLogLevel sets the minimal level of logged messages.
var FlagLogLevel = cli.StringFlag{
	Name: "log-level",
	Usage: func() string {
		allLevels := []string{
			zerolog.TraceLevel.String(),
			zerolog.DebugLevel.String(),
			zerolog.InfoLevel.String(),
			zerolog.WarnLevel.String(),
			zerolog.ErrorLevel.String(),
			zerolog.FatalLevel.String(),
			zerolog.PanicLevel.String(),
			zerolog.Disabled.String(),
		}
		return fmt.Sprintf("Set the logging level (%s)", strings.Join(allLevels, "|"))
	}(),
	Value: zerolog.InfoLevel.String(),
}

// RegisterFlagsLogger registers logger CLI flags.
func RegisterFlagsLogger(flags *[]cli.Flag) {
	*flags = append(*flags, &FlagLogLevel)
}

// ParseFlagsLogger parses logger CLI flags from context.
func ParseFlagsLogger(ctx *cli.Context) {
	Current.ParseStringFlag(ctx, FlagLogLevel)
}
