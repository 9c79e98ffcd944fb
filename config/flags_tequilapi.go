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

var (
	// FlagTequilapiAddress IP address of interface to listen for incoming connections.
	FlagTequilapiAddress = cli.StringFlag{
		Name:  "tequilapi.address",
		Usage: "IP address to bind API to",
		Value: "127.0.0.1",
	}
	// FlagTequilapiPort port for listening for incoming API requests.
	FlagTequilapiPort = cli.IntFlag{
		Name:  "tequilapi.port",
		Usage: "Port for listening incoming API requests",
		Value: 4060,
	}
)

// RegisterFlagsTequilapi registers local API flags.
func RegisterFlagsTequilapi(flags *[]cli.Flag) {
	*flags = append(*flags, &FlagTequilapiAddress, &FlagTequilapiPort)
}

// ParseFlagsTequilapi fills in local API options from CLI context.
func ParseFlagsTequilapi(ctx *cli.Context) {
	Current.ParseStringFlag(ctx, FlagTequilapiAddress)
	Current.ParseIntFlag(ctx, FlagTequilapiPort)
}
