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
	workStatusName       = "work_status"
	workStatusKey        = "153"
	playPauseKey         = "152"
	workStatusConfidence = 95

	playingName = "playing"
	pausedName  = "paused"

	statusField    = "status"
	playPauseField = "play_pause"
)

// workStatusNames maps the raw mode code at key 153 to its state name.
var workStatusNames = map[int]string{
	0: "standby",
	1: "sleep",
	2: "fault",
	3: "charging",
	4: "fast_mapping",
	5: "cleaning",
	6: "remote_ctrl",
	7: "go_home",
	8: "cruising",
}

// WorkState is the composite value produced by the work status decoder.
// A sub-field that could not be decoded is left empty and listed in
// MissingFields; presence of one signal is still actionable.
type WorkState struct {
	Status        string   `json:"status,omitempty"`
	PlayPause     string   `json:"play_pause,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// WorkStatus decodes the robot's activity state from key 153 and the
// play/pause flag from key 152 into one composite reading. Unlike the
// single-key decoders it degrades gracefully: one missing or unmappable
// sub-field flags that field rather than failing the decoder.
type WorkStatus struct{}

// NewWorkStatus creates the work status decoder.
func NewWorkStatus() *WorkStatus {
	return &WorkStatus{}
}

func (*WorkStatus) Name() string { return workStatusName }

func (*WorkStatus) SourceKeys() []string { return []string{workStatusKey, playPauseKey} }

func (*WorkStatus) Confidence() int { return workStatusConfidence }

func (*WorkStatus) Unit() string { return "" }

func (*WorkStatus) Method() string {
	return "key 153 mode enumeration combined with key 152 play/pause flag"
}

// Decode assembles the composite work state. Both keys absent fails with
// a missing-key failure; both present but unmappable fails with the status
// code attached. Anything in between is a partial success.
func (w *WorkStatus) Decode(snapshot models.RawSnapshot) (*models.Reading, *models.DecoderFailure) {
	statusPresent := snapshot.Has(workStatusKey)
	playPresent := snapshot.Has(playPauseKey)

	if !statusPresent && !playPresent {
		return nil, missingKey(workStatusName, workStatusKey)
	}

	state := WorkState{}
	rawInputs := make(map[string]any, 2)

	statusCode, statusKnown := -1, false

	if statusPresent {
		rawInputs[workStatusKey] = snapshot[workStatusKey]

		if code, ok := snapshot.Int(workStatusKey); ok {
			statusCode = code
			state.Status, statusKnown = workStatusNames[code]
		}
	}

	if !statusKnown {
		state.MissingFields = append(state.MissingFields, statusField)
	}

	playKnown := false

	if playPresent {
		rawInputs[playPauseKey] = snapshot[playPauseKey]

		if playing, ok := snapshot.Bool(playPauseKey); ok {
			playKnown = true

			if playing {
				state.PlayPause = playingName
			} else {
				state.PlayPause = pausedName
			}
		}
	}

	if !playKnown {
		state.MissingFields = append(state.MissingFields, playPauseField)
	}

	if !statusKnown && !playKnown {
		return nil, unknownEnum(workStatusName, workStatusKey, statusCode)
	}

	return &models.Reading{
		SourceKeys: w.SourceKeys(),
		Value:      state,
		Confidence: w.Confidence(),
		Method:     w.Method(),
		RawInputs:  rawInputs,
	}, nil
}
