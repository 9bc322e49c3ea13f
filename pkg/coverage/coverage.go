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

// Package coverage reports which expected telemetry keys were actually
// present in a raw snapshot.
package coverage

import "github.com/eufydev/x10mon/pkg/models"

// Compute classifies every expected key as present or absent in the
// snapshot and computes the aggregate coverage ratio. The caller-supplied
// key order is preserved so report output is stable. Presence is key
// existence: a present-but-empty value still counts. Pure and idempotent;
// cross-cycle history belongs to the coordinator.
func Compute(snapshot models.RawSnapshot, expectedKeys []string) models.CoverageReport {
	statuses := make([]models.KeyStatus, 0, len(expectedKeys))
	found := 0

	for _, key := range expectedKeys {
		present := snapshot.Has(key)
		if present {
			found++
		}

		statuses = append(statuses, models.KeyStatus{
			Key:      key,
			Expected: true,
			Present:  present,
		})
	}

	ratio := 0.0
	if len(expectedKeys) > 0 {
		ratio = float64(found) / float64(len(expectedKeys))
	}

	return models.CoverageReport{
		Statuses:      statuses,
		FoundCount:    found,
		TotalExpected: len(expectedKeys),
		Ratio:         ratio,
	}
}
