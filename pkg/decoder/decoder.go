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

// Package decoder maps raw telemetry keys to typed, provenance-tagged
// readings. Each decoder is independent and individually failable: a
// failure is returned as data and never prevents sibling decoders from
// running against the same snapshot.
package decoder

import "github.com/eufydev/x10mon/pkg/models"

// Decoder extracts one typed reading from a raw snapshot. Implementations
// declare their source keys, unit, method description, and confidence
// statically; confidence encodes known empirical accuracy and is never
// recomputed per call. Decode must be a pure function of the snapshot.
type Decoder interface {
	Name() string
	SourceKeys() []string
	Confidence() int
	Unit() string
	Method() string
	Decode(snapshot models.RawSnapshot) (*models.Reading, *models.DecoderFailure)
}

// missingKey builds the failure for an absent source key.
func missingKey(decoder, key string) *models.DecoderFailure {
	return &models.DecoderFailure{
		Kind:    models.FailureMissingKey,
		Decoder: decoder,
		Key:     key,
	}
}

// typeMismatch builds the failure for a present value of the wrong type.
func typeMismatch(decoder, key string) *models.DecoderFailure {
	return &models.DecoderFailure{
		Kind:    models.FailureTypeMismatch,
		Decoder: decoder,
		Key:     key,
	}
}

// unknownEnum builds the failure for an unmapped enumeration code.
func unknownEnum(decoder, key string, code int) *models.DecoderFailure {
	return &models.DecoderFailure{
		Kind:    models.FailureUnknownEnumValue,
		Decoder: decoder,
		Key:     key,
		Code:    &code,
	}
}

// blobError wraps a byte-extractor failure. Extractor errors never escape
// to callers unclassified.
func blobError(decoder, key string, cause error) *models.DecoderFailure {
	return &models.DecoderFailure{
		Kind:    models.FailureBlobError,
		Decoder: decoder,
		Key:     key,
		Cause:   cause,
	}
}
