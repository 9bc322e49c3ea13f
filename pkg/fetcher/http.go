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

// Package fetcher provides concrete snapshot sources behind the monitor's
// Fetcher interface: a JSON HTTP endpoint and a simulated device payload.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/eufydev/x10mon/pkg/models"
)

const defaultHTTPTimeout = 30 * time.Second

var errUnexpectedStatus = fmt.Errorf("unexpected response status")

// HTTP fetches raw telemetry snapshots from a JSON endpoint returning the
// device's flat key map. Transport errors and bad responses surface as
// fetch errors, never as snapshots with missing keys.
type HTTP struct {
	client   *http.Client
	endpoint string
}

// NewHTTP creates an HTTP fetcher for the given endpoint. A nil client
// gets a default with a 30s timeout; retry and backoff policy belong to
// the caller-supplied client.
func NewHTTP(endpoint string, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &HTTP{
		client:   client,
		endpoint: endpoint,
	}
}

// Fetch implements monitor.Fetcher.
func (h *HTTP) Fetch(ctx context.Context) (models.RawSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telemetry request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", errUnexpectedStatus, resp.Status)
	}

	var payload map[string]any

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode telemetry payload: %w", err)
	}

	return models.RawSnapshot(payload), nil
}
