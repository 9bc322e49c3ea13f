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
	"fmt"
)

var (
	errNoDecoder = fmt.Errorf("no decoder found")
)

// Registry defines how decoders are stored and retrieved. Registration
// order is preserved so that cycle output is stable. New decoders register
// by implementing Decoder; the coordinator never changes.
type Registry interface {
	Register(d Decoder)
	Get(name string) (Decoder, error)
	Decoders() []Decoder
}

// decoderRegistry is a simple in-memory implementation of Registry.
// It is populated at setup time and not safe for concurrent mutation.
type decoderRegistry struct {
	order []Decoder
	index map[string]int
}

// NewRegistry creates an empty decoder registry.
func NewRegistry() Registry {
	return &decoderRegistry{
		index: make(map[string]int),
	}
}

// NewDefaultRegistry creates a registry populated with the built-in
// decoders in their canonical order.
func NewDefaultRegistry() Registry {
	r := NewRegistry()

	r.Register(NewBattery())
	r.Register(NewWaterTank())
	r.Register(NewCleanSpeed())
	r.Register(NewWorkStatus())

	return r
}

// Register adds a decoder to the registry. Registering a name twice
// replaces the earlier decoder in place, keeping its position.
func (r *decoderRegistry) Register(d Decoder) {
	if i, ok := r.index[d.Name()]; ok {
		r.order[i] = d
		return
	}

	r.index[d.Name()] = len(r.order)
	r.order = append(r.order, d)
}

// Get retrieves a decoder by name.
func (r *decoderRegistry) Get(name string) (Decoder, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errNoDecoder, name)
	}

	return r.order[i], nil
}

// Decoders returns the registered decoders in registration order.
func (r *decoderRegistry) Decoders() []Decoder {
	out := make([]Decoder, len(r.order))
	copy(out, r.order)

	return out
}
