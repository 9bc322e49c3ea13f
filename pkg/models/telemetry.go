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

// Package models defines the shared telemetry data types exchanged between
// the fetcher, the decoders, the coverage monitor, and the coordinator.
package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// displayValueLimit caps how many runes of a raw string value are shown in
// logs and external displays. Raw values are never truncated internally.
const displayValueLimit = 50

// RawSnapshot is one untyped telemetry payload from the device: a flat map
// of numeric-string keys ("163", "167", ...) to heterogeneous raw values.
// Values are integers, booleans, strings, or base64-encoded byte blobs.
// A snapshot is immutable by convention; decoders and the coverage monitor
// only read it. Absence of a key is distinct from a present nil/empty value.
type RawSnapshot map[string]any

// Has reports whether the key exists in the snapshot. Presence is key
// existence, not value validity: a nil or empty value still counts.
func (s RawSnapshot) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the snapshot's keys in sorted order.
func (s RawSnapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Clone returns a shallow copy of the snapshot. Raw values are not deep
// copied; they are never mutated after fetch.
func (s RawSnapshot) Clone() RawSnapshot {
	if s == nil {
		return nil
	}

	out := make(RawSnapshot, len(s))
	for k, v := range s {
		out[k] = v
	}

	return out
}

// Int extracts the value at key as an integer. It accepts native integer
// types, integral floats (JSON numbers decode as float64), json.Number,
// and numeric strings. Booleans are not numeric.
func (s RawSnapshot) Int(key string) (int, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}

	switch value := v.(type) {
	case int:
		return value, true
	case int32:
		return int(value), true
	case int64:
		return int(value), true
	case uint:
		return int(value), true
	case float64:
		if value != float64(int(value)) {
			return 0, false
		}

		return int(value), true
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, false
		}

		return int(n), true
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

// Str extracts the value at key as a string.
func (s RawSnapshot) Str(key string) (string, bool) {
	v, ok := s[key]
	if !ok {
		return "", false
	}

	str, ok := v.(string)

	return str, ok
}

// Bool extracts the value at key as a boolean, accepting native booleans
// and 0/1 integer codes.
func (s RawSnapshot) Bool(key string) (bool, bool) {
	v, ok := s[key]
	if !ok {
		return false, false
	}

	if b, ok := v.(bool); ok {
		return b, true
	}

	if n, ok := s.Int(key); ok && (n == 0 || n == 1) {
		return n == 1, true
	}

	return false, false
}

// DisplayValue renders the value at key for logging, truncating long string
// values. Display-only; never used as decoder input.
func (s RawSnapshot) DisplayValue(key string) string {
	v, ok := s[key]
	if !ok {
		return "<absent>"
	}

	str, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}

	runes := []rune(str)
	if len(runes) <= displayValueLimit {
		return str
	}

	return string(runes[:displayValueLimit]) + "... (truncated)"
}

// Reading is one decoded, typed, provenance-tagged value derived from one or
// more snapshot keys. Readings are created fresh each cycle and never
// mutated after construction.
type Reading struct {
	SourceKeys []string       `json:"source_keys"`
	Value      any            `json:"value"`
	Unit       string         `json:"unit,omitempty"`
	Confidence int            `json:"confidence"` // static empirical accuracy, 0-100
	Method     string         `json:"method"`
	RawInputs  map[string]any `json:"raw_inputs,omitempty"`
}

// FailureKind classifies why a decoder could not produce a reading.
type FailureKind string

const (
	FailureMissingKey       FailureKind = "missing_key"
	FailureTypeMismatch     FailureKind = "type_mismatch"
	FailureUnknownEnumValue FailureKind = "unknown_enum_value"
	FailureBlobError        FailureKind = "blob_error"
)

// DecoderFailure describes one decoder's failed outcome for one cycle.
// Failures are data carried in the cycle result, not control flow: a failing
// decoder never prevents sibling decoders or the coverage computation from
// running.
type DecoderFailure struct {
	Kind    FailureKind `json:"kind"`
	Decoder string      `json:"decoder"`
	Key     string      `json:"key,omitempty"`
	Code    *int        `json:"code,omitempty"` // set for unknown_enum_value
	Cause   error       `json:"-"`
}

func (f *DecoderFailure) Error() string {
	switch {
	case f.Cause != nil:
		return fmt.Sprintf("decoder %s: %s (key %s): %v", f.Decoder, f.Kind, f.Key, f.Cause)
	case f.Code != nil:
		return fmt.Sprintf("decoder %s: %s (key %s, code %d)", f.Decoder, f.Kind, f.Key, *f.Code)
	default:
		return fmt.Sprintf("decoder %s: %s (key %s)", f.Decoder, f.Kind, f.Key)
	}
}

func (f *DecoderFailure) Unwrap() error {
	return f.Cause
}

// DecoderResult holds one decoder's outcome for one cycle: exactly one of
// Reading or Failure is set.
type DecoderResult struct {
	Reading *Reading        `json:"reading,omitempty"`
	Failure *DecoderFailure `json:"failure,omitempty"`
}

// OK reports whether the decoder produced a reading.
func (r DecoderResult) OK() bool {
	return r.Reading != nil
}

// KeyStatus records presence of one monitored key in one cycle.
type KeyStatus struct {
	Key      string `json:"key"`
	Expected bool   `json:"expected"`
	Present  bool   `json:"present"`
}

// CoverageReport summarizes which expected telemetry keys were present in a
// snapshot. Ratio is FoundCount/TotalExpected, or 0 when nothing was
// expected.
type CoverageReport struct {
	Statuses      []KeyStatus `json:"statuses"`
	FoundCount    int         `json:"found_count"`
	TotalExpected int         `json:"total_expected"`
	Ratio         float64     `json:"ratio"`
}

// FoundKeys returns the expected keys that were present, in report order.
func (c CoverageReport) FoundKeys() []string {
	return c.keysWhere(true)
}

// MissingKeys returns the expected keys that were absent, in report order.
func (c CoverageReport) MissingKeys() []string {
	return c.keysWhere(false)
}

func (c CoverageReport) keysWhere(present bool) []string {
	keys := make([]string, 0, len(c.Statuses))

	for _, st := range c.Statuses {
		if st.Present == present {
			keys = append(keys, st.Key)
		}
	}

	return keys
}
