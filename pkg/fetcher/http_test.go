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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"163": 87, "158": 2, "167": "ChQeKDI=", "152": true}`))
	}))
	defer server.Close()

	fetch := NewHTTP(server.URL, nil)

	snapshot, err := fetch.Fetch(context.Background())
	require.NoError(t, err)

	assert.True(t, snapshot.Has("163"))
	assert.True(t, snapshot.Has("152"))

	// JSON numbers arrive as float64; the snapshot helpers normalize them.
	n, ok := snapshot.Int("163")
	assert.True(t, ok)
	assert.Equal(t, 87, n)

	s, ok := snapshot.Str("167")
	assert.True(t, ok)
	assert.Equal(t, "ChQeKDI=", s)
}

func TestHTTPFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	fetch := NewHTTP(server.URL, nil)

	snapshot, err := fetch.Fetch(context.Background())
	assert.Nil(t, snapshot)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnexpectedStatus)
}

func TestHTTPFetchBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	fetch := NewHTTP(server.URL, nil)

	_, err := fetch.Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPFetchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // immediately, so the address refuses connections

	fetch := NewHTTP(server.URL, nil)

	_, err := fetch.Fetch(context.Background())
	assert.Error(t, err)
}
