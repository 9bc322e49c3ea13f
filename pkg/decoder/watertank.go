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
	"github.com/eufydev/x10mon/pkg/dps"
	"github.com/eufydev/x10mon/pkg/models"
)

const (
	waterTankName       = "water_tank"
	waterTankKey        = "167"
	waterTankByteOffset = 4
	waterTankConfidence = 82
	waterTankMaxPct     = 100

	// DefaultWaterTankScale maps the raw byte at offset 4 onto a 0-100
	// percentage (255 -> 100). Matches field calibration against the new
	// Android app; adjust via NewWaterTankWithScale when recalibrated.
	DefaultWaterTankScale = 100.0 / 255.0
)

// WaterTank decodes the clean water tank level from the base64 blob at
// key 167, byte 4 (82% observed accuracy).
type WaterTank struct {
	scale float64
}

// NewWaterTank creates the water tank decoder with the default byte scale.
func NewWaterTank() *WaterTank {
	return NewWaterTankWithScale(DefaultWaterTankScale)
}

// NewWaterTankWithScale creates the water tank decoder with a calibrated
// byte-to-percentage scale.
func NewWaterTankWithScale(scale float64) *WaterTank {
	return &WaterTank{scale: scale}
}

func (*WaterTank) Name() string { return waterTankName }

func (*WaterTank) SourceKeys() []string { return []string{waterTankKey} }

func (*WaterTank) Confidence() int { return waterTankConfidence }

func (*WaterTank) Unit() string { return "%" }

func (*WaterTank) Method() string {
	return "key 167 base64 blob, byte 4, linear 255->100 scale (new Android app source)"
}

// Decode extracts byte 4 of the decoded blob and maps it onto [0,100].
// Blob decode and offset errors are wrapped as blob failures; they never
// escape unclassified.
func (w *WaterTank) Decode(snapshot models.RawSnapshot) (*models.Reading, *models.DecoderFailure) {
	raw, ok := snapshot[waterTankKey]
	if !ok {
		return nil, missingKey(waterTankName, waterTankKey)
	}

	encoded, ok := snapshot.Str(waterTankKey)
	if !ok {
		return nil, typeMismatch(waterTankName, waterTankKey)
	}

	blob, err := dps.DecodeBlob(encoded)
	if err != nil {
		return nil, blobError(waterTankName, waterTankKey, err)
	}

	level, err := blob.ByteAt(waterTankByteOffset)
	if err != nil {
		return nil, blobError(waterTankName, waterTankKey, err)
	}

	pct := int(float64(level) * w.scale)
	if pct > waterTankMaxPct {
		pct = waterTankMaxPct
	}

	return &models.Reading{
		SourceKeys: w.SourceKeys(),
		Value:      pct,
		Unit:       w.Unit(),
		Confidence: w.Confidence(),
		Method:     w.Method(),
		RawInputs:  map[string]any{waterTankKey: raw},
	}, nil
}
