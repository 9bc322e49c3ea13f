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

package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eufydev/x10mon/pkg/models"
)

func TestCompute(t *testing.T) {
	snapshot := models.RawSnapshot{"163": 87, "158": 2}
	expected := []string{"163", "167", "158"}

	report := Compute(snapshot, expected)

	assert.Equal(t, 2, report.FoundCount)
	assert.Equal(t, 3, report.TotalExpected)
	assert.InDelta(t, 2.0/3.0, report.Ratio, 0.001)

	require.Len(t, report.Statuses, 3)
	assert.Equal(t, models.KeyStatus{Key: "163", Expected: true, Present: true}, report.Statuses[0])
	assert.Equal(t, models.KeyStatus{Key: "167", Expected: true, Present: false}, report.Statuses[1])
	assert.Equal(t, models.KeyStatus{Key: "158", Expected: true, Present: true}, report.Statuses[2])

	assert.Equal(t, []string{"163", "158"}, report.FoundKeys())
	assert.Equal(t, []string{"167"}, report.MissingKeys())
}

func TestComputePresenceIsKeyExistence(t *testing.T) {
	// Present-but-empty values still count as present.
	snapshot := models.RawSnapshot{"167": "", "153": nil}

	report := Compute(snapshot, []string{"167", "153", "158"})

	assert.Equal(t, 2, report.FoundCount)
	assert.True(t, report.Statuses[0].Present)
	assert.True(t, report.Statuses[1].Present)
	assert.False(t, report.Statuses[2].Present)
}

func TestComputeNoExpectedKeys(t *testing.T) {
	report := Compute(models.RawSnapshot{"163": 87}, nil)

	assert.Zero(t, report.FoundCount)
	assert.Zero(t, report.TotalExpected)
	assert.Zero(t, report.Ratio)
	assert.Empty(t, report.Statuses)
}

func TestComputeIsIdempotent(t *testing.T) {
	snapshot := models.RawSnapshot{"163": 87, "158": 2, "152": true}
	expected := []string{"163", "167", "158", "152"}

	first := Compute(snapshot, expected)
	second := Compute(snapshot, expected)

	assert.Equal(t, first, second)
}

func TestComputeRatioInvariants(t *testing.T) {
	tests := []struct {
		name     string
		snapshot models.RawSnapshot
		expected []string
	}{
		{name: "all present", snapshot: models.RawSnapshot{"1": 1, "2": 2}, expected: []string{"1", "2"}},
		{name: "none present", snapshot: models.RawSnapshot{}, expected: []string{"1", "2"}},
		{name: "extra snapshot keys", snapshot: models.RawSnapshot{"1": 1, "9": 9}, expected: []string{"1"}},
		{name: "empty both", snapshot: models.RawSnapshot{}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Compute(tt.snapshot, tt.expected)

			assert.GreaterOrEqual(t, report.Ratio, 0.0)
			assert.LessOrEqual(t, report.Ratio, 1.0)
			assert.LessOrEqual(t, report.FoundCount, report.TotalExpected)

			if report.TotalExpected > 0 {
				assert.InDelta(t, float64(report.FoundCount)/float64(report.TotalExpected), report.Ratio, 0.0001)
			} else {
				assert.Zero(t, report.Ratio)
			}
		})
	}
}
