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

package rollingwriter

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/arthurkiller/rollingwriter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// MaxRemain is the number of rolled log files kept next to the active one.
const MaxRemain = 5

// RollingWriter writes logs to a file rolled by volume, compressing rolled files.
type RollingWriter struct {
	config rollingwriter.Config
	writer rollingwriter.RollingWriter
}

// NewRollingWriter creates new rolling writer writing to <filepath>.log.
func NewRollingWriter(filepath string) (*RollingWriter, error) {
	w := &RollingWriter{
		config: rollingwriter.Config{
			TimeTagFormat:     "20060102T150405",
			LogPath:           path.Dir(filepath),
			FileName:          path.Base(filepath),
			RollingPolicy:     rollingwriter.VolumeRolling,
			RollingVolumeSize: "50MB",
			Compress:          true,
			WriterMode:        "lock",
			MaxRemain:         MaxRemain,
		},
	}

	var err error
	w.writer, err = rollingwriter.NewWriterFromConfig(&w.config)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Write writes to underlying rolling writer.
func (w *RollingWriter) Write(b []byte) (int, error) {
	return w.writer.Write(b)
}

// Close closes the active log file.
func (w *RollingWriter) Close() error {
	return w.writer.Close()
}

// CleanObsoleteLogs removes the oldest rolled files above MaxRemain.
// The rolling writer only counts files it rolled itself, leftovers of previous runs are removed here.
func (w *RollingWriter) CleanObsoleteLogs() error {
	entries, err := os.ReadDir(w.config.LogPath)
	if err != nil {
		return errors.Wrap(err, "failed to read log directory")
	}

	active := w.config.FileName + ".log"
	var rolled []os.FileInfo
	for _, entry := range entries {
		if entry.Name() == active || !strings.HasPrefix(entry.Name(), active) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return errors.Wrap(err, "failed to get file info")
		}
		rolled = append(rolled, info)
	}
	if len(rolled) <= w.config.MaxRemain {
		return nil
	}

	log.Debug().Msgf("Found %d rolled log files, removing %d", len(rolled), len(rolled)-w.config.MaxRemain)
	sort.Slice(rolled, func(i, j int) bool {
		return rolled[i].ModTime().After(rolled[j].ModTime())
	})
	for _, info := range rolled[w.config.MaxRemain:] {
		fp := path.Join(w.config.LogPath, info.Name())
		if err := os.Remove(fp); err != nil {
			log.Warn().Err(err).Msg("Failed to remove log file: " + fp)
		}
	}
	return nil
}
