/*
 * Copyright 2025 The x10mon Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads and validates service configuration from JSON files.
package config

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/eufydev/x10mon/pkg/logger"
)

// ConfigLoader loads configuration from a source into a destination struct.
type ConfigLoader interface {
	Load(ctx context.Context, path string, dst interface{}) error
}

// Validator is implemented by config structs that validate themselves and
// apply defaults after loading.
type Validator interface {
	Validate() error
}

// Config holds the configuration loading dependencies.
type Config struct {
	loader ConfigLoader
	logger logger.Logger
}

// NewConfig initializes a Config with a file loader. If log is nil, a
// warn-level stderr logger is used so config loading can run before the
// service logger exists.
func NewConfig(log logger.Logger) *Config {
	if log == nil {
		zlog := zerolog.New(os.Stderr).
			Level(zerolog.WarnLevel).
			With().
			Timestamp().
			Logger()

		log = logger.NewWithLogger(zlog)
	}

	return &Config{
		loader: &FileConfigLoader{},
		logger: log,
	}
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// LoadAndValidate loads a configuration and validates it.
func (c *Config) LoadAndValidate(ctx context.Context, path string, cfg interface{}) error {
	if err := c.loader.Load(ctx, path, cfg); err != nil {
		return err
	}

	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	c.logger.Debug().Str("path", path).Msg("Loaded configuration")

	return nil
}
