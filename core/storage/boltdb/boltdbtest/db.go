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

// Package boltdbtest contains the utilities needed for boltdb testing
package boltdbtest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peraking/locator/core/storage/boltdb"
)

// CreateDB opens a fresh database in a temp directory and closes it when the test ends.
func CreateDB(t *testing.T) *boltdb.Bolt {
	dir := CreateTempDir(t)
	db, err := boltdb.NewStorage(dir)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Could not close db %v\n", err)
		}
		RemoveTempDir(t, dir)
	})
	return db
}

// CreateTempDir creates a temporary directory
func CreateTempDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "locator")
	require.NoError(t, err)
	return dir
}

// RemoveTempDir removes a temporary directory
func RemoveTempDir(t *testing.T, dir string) {
	err := os.RemoveAll(dir)
	if err != nil {
		t.Logf("Could not remove temp dir: %v. Err: %v\n", dir, err)
	}
}
