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
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type publisherMock struct {
	published map[string]interface{}
}

func (p *publisherMock) Publish(topic string, data interface{}) {
	p.published[topic] = data
}

// This only tests user configuration, not the merging between multiple option sources
func TestUserConfig_Load(t *testing.T) {
	// given
	configFileName := NewTempFileName(t)
	toml := `
		[location]
		timeout = "3s"
		consent = "denied"

		[location.nominatim]
		rate = 0.5
	`
	err := os.WriteFile(configFileName, []byte(toml), 0600)
	assert.NoError(t, err)

	// when
	cfg := NewConfig()
	// then
	assert.Nil(t, cfg.Get("location.consent"))

	// when
	err = cfg.LoadUserConfig(configFileName)
	// then
	assert.NoError(t, err)
	assert.Equal(t, "denied", cfg.GetString("location.consent"))
	assert.Equal(t, 3*time.Second, cfg.GetDuration("location.timeout"))
	assert.Equal(t, 0.5, cfg.GetFloat64("location.nominatim.rate"))
}

func TestUserConfig_LoadMissingFile(t *testing.T) {
	cfg := NewConfig()

	err := cfg.LoadUserConfig(filepath.Join(t.TempDir(), "config.toml"))

	assert.NoError(t, err)
	assert.Empty(t, cfg.GetUserConfig())
}

func TestUserConfig_LoadInvalidFile(t *testing.T) {
	configFileName := NewTempFileName(t)
	require.NoError(t, os.WriteFile(configFileName, []byte("[location"), 0600))

	err := NewConfig().LoadUserConfig(configFileName)

	assert.Error(t, err)
}

func TestUserConfig_Save(t *testing.T) {
	// given
	configFileName := NewTempFileName(t)
	cfg := NewConfig()
	err := cfg.LoadUserConfig(configFileName)
	assert.NoError(t, err)

	// when: app is configured with defaults + user + CLI values
	cfg.SetDefault("location.geocoder", "nominatim")
	cfg.SetDefault("tequilapi.port", 55)
	cfg.SetUser("tequilapi.port", 22822)
	cfg.SetCLI("tequilapi.port", 40000)
	// then: CLI values are prioritized over user over defaults
	assert.Equal(t, "nominatim", cfg.GetString("location.geocoder"))
	assert.Equal(t, 40000, cfg.GetInt("tequilapi.port"))

	// when: CLI value is removed
	cfg.RemoveCLI("tequilapi.port")
	// then: user value is used
	assert.Equal(t, 22822, cfg.GetInt("tequilapi.port"))

	// when: user configuration is saved
	err = cfg.SaveUserConfig()
	// then: only user configuration values are stored
	assert.NoError(t, err)
	tomlContent, err := os.ReadFile(configFileName)
	assert.NoError(t, err)
	assert.Contains(t, string(tomlContent), "port = 22822")
	assert.NotContains(t, string(tomlContent), `geocoder = "nominatim"`)
}

func TestUserConfig_SaveWithoutLoad(t *testing.T) {
	assert.Error(t, NewConfig().SaveUserConfig())
}

func TestConfig_SetUserPublishesChange(t *testing.T) {
	publisher := &publisherMock{published: make(map[string]interface{})}
	cfg := NewConfig()
	cfg.EnableEventPublishing(publisher)

	cfg.SetUser("location.consent", "denied")

	assert.Equal(t, "denied", publisher.published[Topic("location.consent")])
	assert.Equal(t, "config:location.consent", Topic("location.consent"))
}

func TestConfig_KeysAreCaseInsensitive(t *testing.T) {
	cfg := NewConfig()

	cfg.SetCLI("Location.Static", "1,2")

	assert.Equal(t, "1,2", cfg.GetString("location.static"))
	cfg.RemoveUser("location.static")
	assert.Equal(t, "1,2", cfg.GetString("LOCATION.STATIC"))
}

func TestConfig_ParseFlags(t *testing.T) {
	set := flag.NewFlagSet("test", 0)
	for _, f := range []cli.Flag{&FlagLocationTimeout, &FlagLocationConsent, &FlagLocationNominatimRate, &FlagTequilapiPort} {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse([]string{"--location.timeout=2s", "--tequilapi.port=4444"}))
	ctx := cli.NewContext(&cli.App{}, set, nil)

	cfg := NewConfig()
	cfg.ParseDurationFlag(ctx, FlagLocationTimeout)
	cfg.ParseStringFlag(ctx, FlagLocationConsent)
	cfg.ParseFloat64Flag(ctx, FlagLocationNominatimRate)
	cfg.ParseIntFlag(ctx, FlagTequilapiPort)

	assert.Equal(t, 2*time.Second, cfg.GetDuration(FlagLocationTimeout.Name))
	assert.Equal(t, "granted", cfg.GetString(FlagLocationConsent.Name))
	assert.Equal(t, 1.0, cfg.GetFloat64(FlagLocationNominatimRate.Name))
	assert.Equal(t, 4444, cfg.GetInt(FlagTequilapiPort.Name))
}

func NewTempFileName(t *testing.T) string {
	file, err := os.CreateTemp("", "*")
	assert.NoError(t, err)
	assert.NoError(t, file.Close())
	t.Cleanup(func() {
		_ = os.Remove(file.Name())
	})
	return file.Name()
}
