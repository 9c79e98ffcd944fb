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

import "github.com/urfave/cli/v2"

// RegisterFlagsNode registers every flag of the locator.
func RegisterFlagsNode(flags *[]cli.Flag) error {
	if err := RegisterFlagsDirectory(flags); err != nil {
		return err
	}
	RegisterFlagsLogger(flags)
	RegisterFlagsTequilapi(flags)
	RegisterFlagsLocation(flags)
	return nil
}

// ParseFlagsNode fills in the current configuration from CLI context and
// loads the user configuration file.
func ParseFlagsNode(ctx *cli.Context) error {
	ParseFlagsDirectory(ctx)
	ParseFlagsLogger(ctx)
	ParseFlagsTequilapi(ctx)
	ParseFlagsLocation(ctx)
	return Current.LoadUserConfig(UserConfigFile())
}
