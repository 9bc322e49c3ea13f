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

// Package dps handles the device's binary data-point payloads: base64
// encoded byte blobs carried as string values inside the raw telemetry map.
// All functions are pure and side-effect free.
package dps

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Blob is a decoded byte sequence extracted from one raw telemetry value.
type Blob []byte

// DecodeError reports a raw value that is not valid base64 text.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed base64 payload: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// OffsetError reports a byte read past the end of a blob. Reads are never
// clamped or wrapped.
type OffsetError struct {
	Offset int
	Length int
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("byte offset %d out of range for %d-byte blob", e.Offset, e.Length)
}

// DecodeBlob decodes a base64-encoded raw value into a Blob. An empty input
// yields an empty blob, not an error; the device legitimately sends empty
// payloads for some keys.
func DecodeBlob(raw string) (Blob, error) {
	if raw == "" {
		return Blob{}, nil
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}

	return Blob(data), nil
}

// ByteAt returns the byte at offset, or an OffsetError if the offset falls
// outside the blob.
func (b Blob) ByteAt(offset int) (byte, error) {
	if offset < 0 || offset >= len(b) {
		return 0, &OffsetError{Offset: offset, Length: len(b)}
	}

	return b[offset], nil
}

// Hex renders the blob as lowercase hex for logging.
func (b Blob) Hex() string {
	return hex.EncodeToString(b)
}
