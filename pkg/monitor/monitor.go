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

// Package monitor coordinates the telemetry poll cycle: fetch a raw
// snapshot, run every registered decoder against it, compute key coverage,
// and hand the assembled result to the consumer. One bad or missing key
// degrades one reading, never the whole cycle.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eufydev/x10mon/pkg/coverage"
	"github.com/eufydev/x10mon/pkg/decoder"
	"github.com/eufydev/x10mon/pkg/logger"
	"github.com/eufydev/x10mon/pkg/models"
)

// Monitor drives the fetch-decode-monitor cycle for one device. Cycles are
// serialized: RunCycle holds the monitor mutex for the duration of a cycle,
// so at most one snapshot is in flight. Retained state is bounded to the
// latest result and the rolling counters regardless of how long the
// monitor polls.
type Monitor struct {
	config   Config
	fetcher  Fetcher
	registry decoder.Registry
	handler  ResultHandler
	clock    Clock
	logger   logger.Logger
	runID    string

	mu                  sync.Mutex
	cycleNumber         uint64
	consecutiveFailures int
	lastResult          *models.CycleResult

	ticker    Ticker
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a monitor for the configured device. A nil clock defaults to
// the real clock, a nil registry to the built-in decoders, and a nil logger
// to one built from the config's logging section.
func New(config *Config, fetcher Fetcher, registry decoder.Registry, clock Clock, log logger.Logger) (*Monitor, error) {
	if fetcher == nil {
		return nil, errFetcherRequired
	}

	if clock == nil {
		clock = realClock{}
	}

	if registry == nil {
		registry = decoder.NewDefaultRegistry()
	}

	if log == nil {
		var err error

		log, err = logger.New(config.Logging)
		if err != nil {
			return nil, err
		}
	}

	return &Monitor{
		config:   *config,
		fetcher:  fetcher,
		registry: registry,
		clock:    clock,
		logger:   log,
		runID:    uuid.NewString(),
		done:     make(chan struct{}),
	}, nil
}

// SetResultHandler registers the outbound collaborator that receives each
// cycle's outcome. Must be called before Start.
func (m *Monitor) SetResultHandler(h ResultHandler) {
	m.handler = h
}

// RunCycle executes one poll cycle. On a fetch error it returns a
// FetchFailure carrying the consecutive-failure count; decoders and
// coverage are not run and the cycle number does not advance. On success
// it returns a fully assembled CycleResult; individual decoder failures
// are recorded inside the result, not returned as errors.
func (m *Monitor) RunCycle(ctx context.Context) (*models.CycleResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug().
		Str("device_id", m.config.DeviceID).
		Msg("Fetching telemetry snapshot")

	snapshot, err := m.fetcher.Fetch(ctx)
	if err != nil {
		m.consecutiveFailures++

		failure := &models.FetchFailure{
			Cause:               err,
			ConsecutiveFailures: m.consecutiveFailures,
			Timestamp:           m.clock.Now(),
		}

		m.logger.Error().
			Err(err).
			Int("consecutive_failures", m.consecutiveFailures).
			Msg("Telemetry fetch failed")

		return nil, failure
	}

	m.consecutiveFailures = 0
	m.cycleNumber++

	if m.config.DebugMode {
		m.logRawSnapshot(snapshot)
	}

	result := &models.CycleResult{
		CycleNumber: m.cycleNumber,
		RunID:       m.runID,
		DeviceID:    m.config.DeviceID,
		Timestamp:   m.clock.Now(),
		Snapshot:    snapshot.Clone(),
		Readings:    make(map[string]models.DecoderResult, len(m.registry.Decoders())),
	}

	for _, d := range m.registry.Decoders() {
		reading, failure := d.Decode(snapshot)
		if failure != nil {
			result.Readings[d.Name()] = models.DecoderResult{Failure: failure}

			m.logger.Warn().
				Uint64("cycle", m.cycleNumber).
				Str("decoder", d.Name()).
				Str("kind", string(failure.Kind)).
				Str("key", failure.Key).
				Msg("Decoder failed")

			continue
		}

		result.Readings[d.Name()] = models.DecoderResult{Reading: reading}

		m.logger.Debug().
			Uint64("cycle", m.cycleNumber).
			Str("decoder", d.Name()).
			Interface("value", reading.Value).
			Int("confidence", reading.Confidence).
			Msg("Decoder produced reading")
	}

	result.Coverage = coverage.Compute(snapshot, m.config.ExpectedKeys)
	m.lastResult = result

	m.logger.Info().
		Uint64("cycle", m.cycleNumber).
		Int("keys_found", result.Coverage.FoundCount).
		Int("keys_expected", result.Coverage.TotalExpected).
		Float64("coverage", result.Coverage.Ratio).
		Strs("missing_keys", result.Coverage.MissingKeys()).
		Msg("Telemetry cycle complete")

	return result, nil
}

// logRawSnapshot logs every raw key with a display-truncated value, the
// way the debugging workflow inspects unknown keys. Raw values are never
// truncated internally.
func (m *Monitor) logRawSnapshot(snapshot models.RawSnapshot) {
	event := m.logger.Debug().
		Str("device_id", m.config.DeviceID).
		Int("total_keys", len(snapshot))

	for _, key := range snapshot.Keys() {
		event = event.Str("key_"+key, snapshot.DisplayValue(key))
	}

	event.Msg("Raw telemetry snapshot")
}

// Start runs the poll loop at the configured interval until the context is
// canceled or Stop is called. The first poll runs immediately.
func (m *Monitor) Start(ctx context.Context) error {
	interval := time.Duration(m.config.PollInterval)
	m.ticker = m.clock.Ticker(interval)

	defer m.ticker.Stop()

	m.logger.Info().
		Dur("interval", interval).
		Str("device_id", m.config.DeviceID).
		Str("run_id", m.runID).
		Msg("Starting telemetry monitor")

	m.wg.Add(1)
	defer m.wg.Done()

	m.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.done:
			return nil
		case <-m.ticker.Chan():
			m.poll(ctx)
		}
	}
}

// poll runs one cycle and hands the outcome to the result handler.
func (m *Monitor) poll(ctx context.Context) {
	result, err := m.RunCycle(ctx)
	if err != nil {
		var failure *models.FetchFailure
		if errors.As(err, &failure) && m.handler != nil {
			m.handler.HandleFetchFailure(ctx, failure)
		}

		return
	}

	if m.handler != nil {
		m.handler.HandleResult(ctx, result)
	}
}

// Stop ends the poll loop and waits for an in-flight cycle to finish.
func (m *Monitor) Stop(_ context.Context) error {
	m.closeOnce.Do(func() {
		close(m.done)
	})

	m.wg.Wait()

	m.logger.Info().
		Uint64("cycles", m.CycleCount()).
		Str("device_id", m.config.DeviceID).
		Msg("Telemetry monitor stopped")

	return nil
}

// LastResult returns the most recent cycle result, or nil before the first
// successful cycle. Results are never mutated after assembly, so sharing
// the pointer is safe.
func (m *Monitor) LastResult() *models.CycleResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastResult
}

// CycleCount returns the number of successful cycles run.
func (m *Monitor) CycleCount() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cycleNumber
}

// ConsecutiveFailures returns the current run of failed fetches.
func (m *Monitor) ConsecutiveFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.consecutiveFailures
}
