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

package fetcher

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/eufydev/x10mon/pkg/models"
)

// Simulated produces payloads shaped like the device's REST responses,
// with battery and clean speed jitter between polls. Useful for exercising
// the full decode pipeline without a live device or vendor session.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSimulated creates a simulated fetcher. Seed 0 derives a seed from the
// current time; any other seed makes the payload sequence deterministic.
func NewSimulated(seed int64) *Simulated {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Simulated{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// Fetch implements monitor.Fetcher.
func (s *Simulated) Fetch(_ context.Context) (models.RawSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.RawSnapshot{
		"163":       80 + s.rng.Intn(16),          // battery 80-95
		"167":       "PAo6CgUIABC4AhgEGFRKJw==",   // water tank blob
		"177":       "MgowCAEQABgEGlVKFw==",       // alternative water tank source
		"178":       "OAo2CAEQABgEGlVlIw==",       // real-time data
		"168":       "QWNjZXNzb3JpZXMgZGF0YSBoZXJl",
		"153":       5, // cleaning
		"152":       true,
		"158":       s.rng.Intn(4), // clean speed 0-3
		"154":       "Q2xlYW5pbmcgcGFyYW1ldGVycw==",
		"155":       "RGlyZWN0aW9uIGRhdGE=",
		"160":       false,
		"173":       "R28gaG9tZSBkYXRh",
		"timestamp": s.now().Unix(),
	}, nil
}
