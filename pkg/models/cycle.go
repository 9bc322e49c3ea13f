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

package models

import (
	"fmt"
	"time"
)

// CycleResult is the output of one successful fetch-decode-monitor pass.
// CycleNumber starts at 1 and increases by exactly one per successful cycle;
// failed fetches never consume a cycle number. The result is assembled in
// full by the coordinator and handed to consumers by value semantics: no
// field is mutated after handoff.
type CycleResult struct {
	CycleNumber uint64                   `json:"cycle_number"`
	RunID       string                   `json:"run_id"`
	DeviceID    string                   `json:"device_id,omitempty"`
	Timestamp   time.Time                `json:"timestamp"`
	Snapshot    RawSnapshot              `json:"snapshot"`
	Readings    map[string]DecoderResult `json:"readings"`
	Coverage    CoverageReport           `json:"coverage"`
}

// FetchFailure reports a failed poll cycle: the external fetch produced no
// snapshot at all (network, auth, timeout). Distinct from a snapshot with
// missing keys. Carries the running count of consecutive failed fetches so
// consumers can apply alerting thresholds.
type FetchFailure struct {
	Cause               error     `json:"-"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	Timestamp           time.Time `json:"timestamp"`
}

func (f *FetchFailure) Error() string {
	return fmt.Sprintf("telemetry fetch failed (%d consecutive): %v", f.ConsecutiveFailures, f.Cause)
}

func (f *FetchFailure) Unwrap() error {
	return f.Cause
}
