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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peraking/locator/metadata"
)

func TestNewCommandRegistersCommands(t *testing.T) {
	app, err := NewCommand()
	require.NoError(t, err)

	for _, name := range []string{"version", "daemon", "locate", "cached", "logs"} {
		assert.NotNil(t, app.Command(name), name)
	}
}

func TestVersionCommand(t *testing.T) {
	app, err := NewCommand()
	require.NoError(t, err)
	output := bytes.NewBufferString("")
	app.Writer = output

	err = app.Run([]string{"locator", "--config-dir", t.TempDir(), "version"})

	assert.NoError(t, err)
	assert.Equal(t, metadata.VersionAsSummary()+"\n", output.String())
}
