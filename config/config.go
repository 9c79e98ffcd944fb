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
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v2"

	"github.com/peraking/locator/eventbus"
)

// Topic returns event bus topic for the given config key to listen for its updates
func Topic(configKey string) string {
	return "config:" + configKey
}

// Config stores app configuration: default values + user configuration + CLI flags
type Config struct {
	userConfigLocation string
	defaults           map[string]interface{}
	user               map[string]interface{}
	cli                map[string]interface{}
	eventBus           eventbus.Publisher
}

// Current global configuration instance
var Current *Config

func init() {
	Current = NewConfig()
}

// NewConfig creates a new configuration instance
func NewConfig() *Config {
	return &Config{
		userConfigLocation: "",
		defaults:           make(map[string]interface{}),
		user:               make(map[string]interface{}),
		cli:                make(map[string]interface{}),
	}
}

func (cfg *Config) userConfigLoaded() bool {
	return cfg.userConfigLocation != ""
}

// EnableEventPublishing enables config event publishing to the event bus
func (cfg *Config) EnableEventPublishing(eb eventbus.Publisher) {
	cfg.eventBus = eb
}

// LoadUserConfig loads and remembers user config location.
// A missing file is not an error, it is created on first save.
func (cfg *Config) LoadUserConfig(location string) error {
	log.Debug().Msg("Loading user configuration: " + location)
	cfg.userConfigLocation = location
	if _, err := os.Stat(location); os.IsNotExist(err) {
		log.Info().Msg("User configuration file not found, using defaults")
		return nil
	}
	_, err := toml.DecodeFile(cfg.userConfigLocation, &cfg.user)
	if err != nil {
		return errors.Wrap(err, "failed to decode configuration file")
	}
	log.Info().Interface("config", cfg.user).Msg("User configuration loaded")
	return nil
}

// SaveUserConfig saves user configuration to the file from which it was loaded
func (cfg *Config) SaveUserConfig() error {
	log.Info().Msg("Saving user configuration")
	if !cfg.userConfigLoaded() {
		return errors.New("user configuration cannot be saved, because it must be loaded first")
	}
	var out strings.Builder
	err := toml.NewEncoder(&out).Encode(cfg.user)
	if err != nil {
		return errors.Wrap(err, "failed to write configuration as toml")
	}
	err = os.WriteFile(cfg.userConfigLocation, []byte(out.String()), 0600)
	if err != nil {
		return errors.Wrap(err, "failed to write configuration to file")
	}
	log.Info().Interface("config", cfg.user).Msg("User configuration written")
	return nil
}

// GetUserConfig returns user configuration
func (cfg *Config) GetUserConfig() map[string]interface{} {
	return cfg.user
}

// SetDefault sets default value for key
func (cfg *Config) SetDefault(key string, value interface{}) {
	cfg.set(&cfg.defaults, key, value)
}

// SetUser sets user configuration value for key
func (cfg *Config) SetUser(key string, value interface{}) {
	if cfg.eventBus != nil {
		cfg.eventBus.Publish(Topic(key), value)
	}
	cfg.set(&cfg.user, key, value)
}

// SetCLI sets value passed via CLI flag for key
func (cfg *Config) SetCLI(key string, value interface{}) {
	cfg.set(&cfg.cli, key, value)
}

// RemoveUser removes user configuration value for key
func (cfg *Config) RemoveUser(key string) {
	cfg.remove(&cfg.user, key)
}

// RemoveCLI removes configured CLI flag value by key
func (cfg *Config) RemoveCLI(key string) {
	cfg.remove(&cfg.cli, key)
}

// set internal method for setting value in a certain configuration value map
func (cfg *Config) set(configMap *map[string]interface{}, key string, value interface{}) {
	segments := strings.Split(strings.ToLower(key), ".")
	deepestMap := deepSearch(*configMap, segments[0:len(segments)-1])
	deepestMap[segments[len(segments)-1]] = value
}

// remove internal method for removing a configured value in a certain configuration map
func (cfg *Config) remove(configMap *map[string]interface{}, key string) {
	segments := strings.Split(strings.ToLower(key), ".")
	deepestMap := deepSearch(*configMap, segments[0:len(segments)-1])
	delete(deepestMap, segments[len(segments)-1])
}

// Get gets stored config value as-is
func (cfg *Config) Get(key string) interface{} {
	segments := strings.Split(strings.ToLower(key), ".")
	cliValue := searchMap(cfg.cli, segments)
	if cliValue != nil {
		log.Trace().Msgf("Returning CLI value %v:%v", key, cliValue)
		return cliValue
	}
	userValue := searchMap(cfg.user, segments)
	if userValue != nil {
		log.Trace().Msgf("Returning user config value %v:%v", key, userValue)
		return userValue
	}
	defaultValue := searchMap(cfg.defaults, segments)
	log.Trace().Msgf("Returning default value %v:%v", key, defaultValue)
	return defaultValue
}

// GetInt gets config value as int
func (cfg *Config) GetInt(key string) int {
	return cast.ToInt(cfg.Get(key))
}

// GetFloat64 gets config value as float64
func (cfg *Config) GetFloat64(key string) float64 {
	return cast.ToFloat64(cfg.Get(key))
}

// GetString gets config value as string
func (cfg *Config) GetString(key string) string {
	return cast.ToString(cfg.Get(key))
}

// GetBool gets config value as bool
func (cfg *Config) GetBool(key string) bool {
	return cast.ToBool(cfg.Get(key))
}

// GetDuration gets config value as time.Duration
func (cfg *Config) GetDuration(key string) time.Duration {
	return cast.ToDuration(cfg.Get(key))
}

// ParseStringFlag parses a cli.StringFlag from command's context and
// sets default and CLI values to the application configuration.
func (cfg *Config) ParseStringFlag(ctx *cli.Context, flag cli.StringFlag) {
	cfg.SetDefault(flag.Name, flag.Value)
	if ctx.IsSet(flag.Name) {
		cfg.SetCLI(flag.Name, ctx.String(flag.Name))
	} else {
		cfg.RemoveCLI(flag.Name)
	}
}

// ParseIntFlag parses a cli.IntFlag from command's context and
// sets default and CLI values to the application configuration.
func (cfg *Config) ParseIntFlag(ctx *cli.Context, flag cli.IntFlag) {
	cfg.SetDefault(flag.Name, flag.Value)
	if ctx.IsSet(flag.Name) {
		cfg.SetCLI(flag.Name, ctx.Int(flag.Name))
	} else {
		cfg.RemoveCLI(flag.Name)
	}
}

// ParseFloat64Flag parses a cli.Float64Flag from command's context and
// sets default and CLI values to the application configuration.
func (cfg *Config) ParseFloat64Flag(ctx *cli.Context, flag cli.Float64Flag) {
	cfg.SetDefault(flag.Name, flag.Value)
	if ctx.IsSet(flag.Name) {
		cfg.SetCLI(flag.Name, ctx.Float64(flag.Name))
	} else {
		cfg.RemoveCLI(flag.Name)
	}
}

// ParseBoolFlag parses a cli.BoolFlag from command's context and
// sets default and CLI values to the application configuration.
func (cfg *Config) ParseBoolFlag(ctx *cli.Context, flag cli.BoolFlag) {
	cfg.SetDefault(flag.Name, flag.Value)
	if ctx.IsSet(flag.Name) {
		cfg.SetCLI(flag.Name, ctx.Bool(flag.Name))
	} else {
		cfg.RemoveCLI(flag.Name)
	}
}

// ParseDurationFlag parses a cli.DurationFlag from command's context and
// sets default and CLI values to the application configuration.
func (cfg *Config) ParseDurationFlag(ctx *cli.Context, flag cli.DurationFlag) {
	cfg.SetDefault(flag.Name, flag.Value)
	if ctx.IsSet(flag.Name) {
		cfg.SetCLI(flag.Name, ctx.Duration(flag.Name))
	} else {
		cfg.RemoveCLI(flag.Name)
	}
}

// GetString returns the string value of the flag from the current configuration.
func GetString(flag cli.StringFlag) string {
	return Current.GetString(flag.Name)
}

// GetInt returns the int value of the flag from the current configuration.
func GetInt(flag cli.IntFlag) int {
	return Current.GetInt(flag.Name)
}

// GetFloat64 returns the float64 value of the flag from the current configuration.
func GetFloat64(flag cli.Float64Flag) float64 {
	return Current.GetFloat64(flag.Name)
}

// GetBool returns the bool value of the flag from the current configuration.
func GetBool(flag cli.BoolFlag) bool {
	return Current.GetBool(flag.Name)
}

// GetDuration returns the duration value of the flag from the current configuration.
func GetDuration(flag cli.DurationFlag) time.Duration {
	return Current.GetDuration(flag.Name)
}

// deepSearch walks nested maps, creating the missing levels.
func deepSearch(m map[string]interface{}, path []string) map[string]interface{} {
	for _, k := range path {
		m2, ok := m[k]
		if !ok {
			m3 := make(map[string]interface{})
			m[k] = m3
			m = m3
			continue
		}
		m3, ok := m2.(map[string]interface{})
		if !ok {
			m3 = make(map[string]interface{})
			m[k] = m3
		}
		m = m3
	}
	return m
}

func searchMap(source map[string]interface{}, path []string) interface{} {
	if len(path) == 0 {
		return source
	}
	next, ok := source[path[0]]
	if !ok {
		return nil
	}
	if len(path) == 1 {
		return next
	}
	switch next := next.(type) {
	case map[string]interface{}:
		return searchMap(next, path[1:])
	case map[interface{}]interface{}:
		return searchMap(cast.ToStringMap(next), path[1:])
	}
	return nil
}
