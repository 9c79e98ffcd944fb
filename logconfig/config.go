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
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/peraking/locator/logconfig/rollingwriter"
)

const (
	timestampFmt = "2006-01-02T15:04:05.000"
)

// Bootstrap configures logger defaults (console)
func Bootstrap() {
	var trimPrefixes = []string{
		"/peraking/locator",
		"/go/pkg/mod",
	}
	cwd, _ := os.Getwd()
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		relFile := strings.TrimPrefix(file, cwd)
		for i := range trimPrefixes {
			relFile = trimLeftInclusive(relFile, trimPrefixes[i])
		}
		return fmt.Sprintf("%-41v", relFile+":"+strconv.Itoa(line))
	}

	logger := makeLogger(consoleWriter())
	setGlobalLogger(&logger)
}

// Configure configures logger using app config (console + file, level).
// The returned closer releases the log file, it is a no-op without file logging.
func Configure(opts *LogOptions) io.Closer {
	CurrentLogOptions = *opts
	zerolog.SetGlobalLevel(opts.LogLevel)
	log.Info().Msgf("Log level: %s", opts.LogLevel)

	if opts.Filepath == "" {
		return nopCloser{}
	}

	log.Info().Msg("Log file path: " + opts.Filepath)
	writer, err := fileWriter(opts)
	if err != nil {
		log.Error().Err(err).Msg("Failed to configure file logger")
		return nopCloser{}
	}
	logger := makeLogger(io.MultiWriter(consoleWriter(), writer.zeroLogger()))
	setGlobalLogger(&logger)
	return writer
}

type fileLog struct {
	*rollingwriter.RollingWriter
}

func fileWriter(opts *LogOptions) (*fileLog, error) {
	if err := os.MkdirAll(path.Dir(opts.Filepath), 0700); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}
	writer, err := rollingwriter.NewRollingWriter(opts.Filepath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rolling writer")
	}
	if err := writer.CleanObsoleteLogs(); err != nil {
		log.Warn().Err(err).Msg("Failed to clean obsolete logs")
	}
	return &fileLog{RollingWriter: writer}, nil
}

func (w *fileLog) zeroLogger() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        w.RollingWriter,
		NoColor:    true,
		TimeFormat: timestampFmt,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timestampFmt,
	}
}

func makeLogger(w io.Writer) zerolog.Logger {
	return log.Output(w).
		Level(zerolog.TraceLevel).
		With().
		Caller().
		Timestamp().
		Logger()
}

func setGlobalLogger(logger *zerolog.Logger) {
	log.Logger = *logger
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)
}

// trimLeftInclusive trims left pat of the string up to and including the prefix
func trimLeftInclusive(s string, prefix string) string {
	start := strings.Index(s, prefix)
	if start != -1 {
		return s[start+len(prefix):]
	}
	return s
}
