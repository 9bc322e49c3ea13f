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

package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eufydev/x10mon/pkg/dps"
	"github.com/eufydev/x10mon/pkg/models"
)

func TestWaterTankDecode(t *testing.T) {
	waterTank := NewWaterTank()

	tests := []struct {
		name     string
		encoded  string // base64 payload at key 167
		expected int
	}{
		{
			name:     "byte 4 is 50",
			encoded:  "ChQeKDI=", // [10 20 30 40 50]
			expected: 19,         // 50 * 100 / 255
		},
		{
			name:     "byte 4 is 210, field calibration reference",
			encoded:  "AAAAANI=", // [0 0 0 0 210]
			expected: 82,
		},
		{
			name:     "device capture",
			encoded:  "PAo6CgUIABC4AhgEGFRKJw==",
			expected: 1, // byte 4 is 5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, failure := waterTank.Decode(models.RawSnapshot{"167": tt.encoded})
			require.Nil(t, failure)
			require.NotNil(t, reading)

			assert.Equal(t, tt.expected, reading.Value)
			assert.Equal(t, 82, reading.Confidence)
			assert.Equal(t, "%", reading.Unit)

			pct, ok := reading.Value.(int)
			require.True(t, ok)
			assert.GreaterOrEqual(t, pct, 0)
			assert.LessOrEqual(t, pct, 100)
		})
	}
}

func TestWaterTankDecodeShortBlob(t *testing.T) {
	waterTank := NewWaterTank()

	// [1 2 3] has no byte 4; the offset error is wrapped as a blob failure.
	reading, failure := waterTank.Decode(models.RawSnapshot{"167": "AQID"})
	assert.Nil(t, reading)
	require.NotNil(t, failure)

	assert.Equal(t, models.FailureBlobError, failure.Kind)

	var offsetErr *dps.OffsetError

	require.ErrorAs(t, failure, &offsetErr)
	assert.Equal(t, 4, offsetErr.Offset)
	assert.Equal(t, 3, offsetErr.Length)
}

func TestWaterTankDecodeMalformedPayload(t *testing.T) {
	waterTank := NewWaterTank()

	reading, failure := waterTank.Decode(models.RawSnapshot{"167": "!!!not-base64!!!"})
	assert.Nil(t, reading)
	require.NotNil(t, failure)

	assert.Equal(t, models.FailureBlobError, failure.Kind)

	var decodeErr *dps.DecodeError

	assert.ErrorAs(t, failure, &decodeErr)
}

func TestWaterTankDecodeMissingKey(t *testing.T) {
	waterTank := NewWaterTank()

	reading, failure := waterTank.Decode(models.RawSnapshot{"163": 87})
	assert.Nil(t, reading)
	require.NotNil(t, failure)
	assert.Equal(t, models.FailureMissingKey, failure.Kind)
	assert.Equal(t, "167", failure.Key)
}

func TestWaterTankDecodeNonStringValue(t *testing.T) {
	waterTank := NewWaterTank()

	reading, failure := waterTank.Decode(models.RawSnapshot{"167": 42})
	assert.Nil(t, reading)
	require.NotNil(t, failure)
	assert.Equal(t, models.FailureTypeMismatch, failure.Kind)
}

func TestWaterTankCustomScale(t *testing.T) {
	// A 1:1 scale reports the raw byte, capped at 100.
	waterTank := NewWaterTankWithScale(1.0)

	reading, failure := waterTank.Decode(models.RawSnapshot{"167": "ChQeKDI="})
	require.Nil(t, failure)
	assert.Equal(t, 50, reading.Value)

	reading, failure = waterTank.Decode(models.RawSnapshot{"167": "AAAAANI="})
	require.Nil(t, failure)
	assert.Equal(t, 100, reading.Value)
}
