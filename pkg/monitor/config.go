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

package monitor

import (
	"fmt"
	"time"

	"github.com/eufydev/x10mon/pkg/logger"
	"github.com/eufydev/x10mon/pkg/models"
)

var (
	errDeviceIDRequired = fmt.Errorf("device id is required")
)

const (
	defaultPollInterval = 10 * time.Second
)

// defaultExpectedKeys are the telemetry keys known from protocol research
// on the X10 Pro Omni; the coverage monitor checks them every cycle unless
// the config overrides the list.
var defaultExpectedKeys = []string{
	"163", // battery percentage (new Android app source)
	"167", // water tank blob, byte 4
	"177", // alternative water tank source
	"178", // real-time data
	"168", // accessories status
	"153", // work status/mode
	"152", // play/pause state
	"158", // clean speed setting
	"154", // cleaning parameters
	"155", // direction controls
	"160", // find robot
	"173", // go home commands
}

// Config represents monitor configuration.
type Config struct {
	DeviceID     string          `json:"device_id"`
	Endpoint     string          `json:"endpoint,omitempty"` // telemetry HTTP endpoint; empty selects the simulated fetcher
	ExpectedKeys []string        `json:"expected_keys,omitempty"`
	PollInterval models.Duration `json:"poll_interval"`
	DebugMode    bool            `json:"debug_mode,omitempty"` // per-key raw value logging each cycle
	Logging      *logger.Config  `json:"logging,omitempty"`
}

// DefaultExpectedKeys returns a copy of the built-in monitored key list.
func DefaultExpectedKeys() []string {
	keys := make([]string, len(defaultExpectedKeys))
	copy(keys, defaultExpectedKeys)

	return keys
}

// Validate implements config.Validator interface.
func (c *Config) Validate() error {
	if c.DeviceID == "" {
		return errDeviceIDRequired
	}

	if len(c.ExpectedKeys) == 0 {
		c.ExpectedKeys = DefaultExpectedKeys()
	}

	if time.Duration(c.PollInterval) == 0 {
		c.PollInterval = models.Duration(defaultPollInterval)
	}

	return nil
}
