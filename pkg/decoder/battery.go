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
	batteryName       = "battery"
	batteryKey        = "163"
	batteryConfidence = 100
)

// Battery decodes the battery percentage from key 163, the direct integer
// source used by the new Android app (100% observed accuracy).
type Battery struct{}

// NewBattery creates the battery decoder.
func NewBattery() *Battery {
	return &Battery{}
}

func (*Battery) Name() string { return batteryName }

func (*Battery) SourceKeys() []string { return []string{batteryKey} }

func (*Battery) Confidence() int { return batteryConfidence }

func (*Battery) Unit() string { return "%" }

func (*Battery) Method() string {
	return "key 163 raw integer percentage (new Android app source)"
}

// Decode reads the raw numeric value at key 163. The reading value is
// clamped to [0,100] for display; RawInputs preserves the unclamped raw.
func (b *Battery) Decode(snapshot models.RawSnapshot) (*models.Reading, *models.DecoderFailure) {
	raw, ok := snapshot[batteryKey]
	if !ok {
		return nil, missingKey(batteryName, batteryKey)
	}

	pct, ok := snapshot.Int(batteryKey)
	if !ok {
		return nil, typeMismatch(batteryName, batteryKey)
	}

	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}

	return &models.Reading{
		SourceKeys: b.SourceKeys(),
		Value:      pct,
		Unit:       b.Unit(),
		Confidence: b.Confidence(),
		Method:     b.Method(),
		RawInputs:  map[string]any{batteryKey: raw},
	}, nil
}
