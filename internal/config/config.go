/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads dxcal command line settings from defaults, an
// optional YAML file, a .env file and DXCAL_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"dirpx.dev/dxcal/dxcore/model/moment"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, so diff.unit is read
// from DXCAL_DIFF_UNIT.
const EnvPrefix = "DXCAL"

// Config holds all settings of the dxcal command.
type Config struct {
	Timezone string     `mapstructure:"timezone" validate:"required,timezone"`
	Output   string     `mapstructure:"output" validate:"required,output_format"`
	Diff     DiffConfig `mapstructure:"diff"`
	Holidays string     `mapstructure:"holidays"`
	Log      LogConfig  `mapstructure:"log"`
}

// DiffConfig holds the defaults of the diff command.
type DiffConfig struct {
	Unit   string `mapstructure:"unit" validate:"required,diff_unit"`
	Format string `mapstructure:"format" validate:"required,diff_format"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

// Load reads the configuration. A non-empty path names a YAML config file
// that must exist. A .env file in the working directory is loaded when
// present; variables already set in the environment win over it.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timezone", "Asia/Tehran")
	v.SetDefault("output", moment.OutputISOStr)
	v.SetDefault("diff.unit", moment.UnitAutoStr)
	v.SetDefault("diff.format", moment.DiffNumberStr)
	v.SetDefault("holidays", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	return newValidator().Struct(c)
}

// Location returns the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// OutputFormat returns the configured default output format.
func (c *Config) OutputFormat() (moment.OutputFormat, error) {
	return moment.ParseOutputFormat(c.Output)
}

// DiffUnit returns the configured default diff unit.
func (c *Config) DiffUnit() (moment.Unit, error) {
	return moment.ParseUnit(c.Diff.Unit)
}

// DiffFormat returns the configured default diff format.
func (c *Config) DiffFormat() (moment.DiffFormat, error) {
	return moment.ParseDiffFormat(c.Diff.Format)
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or a nil function.
	_ = v.RegisterValidation("output_format", parses(moment.ParseOutputFormat))
	_ = v.RegisterValidation("diff_unit", parses(moment.ParseUnit))
	_ = v.RegisterValidation("diff_format", parses(moment.ParseDiffFormat))
	return v
}

func parses[T any](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := parse(fl.Field().String())
		return err == nil
	}
}
