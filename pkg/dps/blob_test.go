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

package dps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBlob(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Blob
		wantErr  bool
	}{
		{
			name:     "valid payload",
			raw:      "ChQeKDI=",
			expected: Blob{10, 20, 30, 40, 50},
		},
		{
			name:     "empty input yields empty blob",
			raw:      "",
			expected: Blob{},
		},
		{
			name:    "wrong alphabet",
			raw:     "!!!not-base64!!!",
			wantErr: true,
		},
		{
			name:    "bad padding",
			raw:     "ChQeKDI",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := DecodeBlob(tt.raw)

			if tt.wantErr {
				require.Error(t, err)

				var decodeErr *DecodeError

				require.ErrorAs(t, err, &decodeErr)
				assert.Error(t, decodeErr.Unwrap())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, blob)
		})
	}
}

func TestByteAt(t *testing.T) {
	blob := Blob{10, 20, 30, 40, 50}

	b, err := blob.ByteAt(4)
	require.NoError(t, err)
	assert.Equal(t, byte(50), b)

	b, err = blob.ByteAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte(10), b)

	_, err = blob.ByteAt(5)
	require.Error(t, err)

	var offsetErr *OffsetError

	require.ErrorAs(t, err, &offsetErr)
	assert.Equal(t, 5, offsetErr.Offset)
	assert.Equal(t, 5, offsetErr.Length)

	_, err = blob.ByteAt(-1)
	assert.Error(t, err)
}

func TestByteAtEmptyBlob(t *testing.T) {
	blob, err := DecodeBlob("")
	require.NoError(t, err)

	_, err = blob.ByteAt(0)

	var offsetErr *OffsetError

	require.ErrorAs(t, err, &offsetErr)
	assert.Equal(t, 0, offsetErr.Length)
}

func TestBlobHex(t *testing.T) {
	assert.Equal(t, "0a141e2832", Blob{10, 20, 30, 40, 50}.Hex())
	assert.Equal(t, "", Blob{}.Hex())
}
