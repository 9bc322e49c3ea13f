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

import "github.com/eufydev/x10mon/pkg/models"

const (
	cleanSpeedName       = "clean_speed"
	cleanSpeedKey        = "158"
	cleanSpeedConfidence = 90
)

// cleanSpeedNames maps the raw suction code at key 158 to its setting name.
var cleanSpeedNames = []string{"quiet", "standard", "turbo", "max"}

// CleanSpeed decodes the suction power setting from key 158.
type CleanSpeed struct{}

// NewCleanSpeed creates the clean speed decoder.
func NewCleanSpeed() *CleanSpeed {
	return &CleanSpeed{}
}

func (*CleanSpeed) Name() string { return cleanSpeedName }

func (*CleanSpeed) SourceKeys() []string { return []string{cleanSpeedKey} }

func (*CleanSpeed) Confidence() int { return cleanSpeedConfidence }

func (*CleanSpeed) Unit() string { return "" }

func (*CleanSpeed) Method() string {
	return "key 158 integer code mapped to [quiet standard turbo max]"
}

// Decode maps the raw integer code through the fixed speed enumeration.
// Codes outside the enumeration fail with the offending code attached.
func (c *CleanSpeed) Decode(snapshot models.RawSnapshot) (*models.Reading, *models.DecoderFailure) {
	raw, ok := snapshot[cleanSpeedKey]
	if !ok {
		return nil, missingKey(cleanSpeedName, cleanSpeedKey)
	}

	code, ok := snapshot.Int(cleanSpeedKey)
	if !ok {
		return nil, typeMismatch(cleanSpeedName, cleanSpeedKey)
	}

	if code < 0 || code >= len(cleanSpeedNames) {
		return nil, unknownEnum(cleanSpeedName, cleanSpeedKey, code)
	}

	return &models.Reading{
		SourceKeys: c.SourceKeys(),
		Value:      cleanSpeedNames[code],
		Confidence: c.Confidence(),
		Method:     c.Method(),
		RawInputs:  map[string]any{cleanSpeedKey: raw},
	}, nil
}
