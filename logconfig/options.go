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

package logconfig

import (
	"path"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the base name of log files inside the log directory.
const LogFileName = "locator"

// LogOptions log options
type LogOptions struct {
	LogLevel zerolog.Level
	Filepath string
}

// CurrentLogOptions current log options
var CurrentLogOptions = LogOptions{
	LogLevel: zerolog.DebugLevel,
}

// NewLogOptions parses the configured level and places log files in logDir.
// File logging is disabled when logDir is empty.
func NewLogOptions(level, logDir string) LogOptions {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Error().Err(err).Msg("Failed to parse logging level")
		logLevel = zerolog.DebugLevel
	}

	opts := LogOptions{LogLevel: logLevel}
	if logDir != "" {
		opts.Filepath = path.Join(logDir, LogFileName)
	}
	return opts
}
