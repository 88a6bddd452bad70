// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/idolboard/cache"
	"github.com/danielhkuo/idolboard/cliparse"
	"github.com/danielhkuo/idolboard/locale"
)

// SetupTestCache opens a private in-memory sqlite cache
func SetupTestCache(t *testing.T) *cache.Store {
	t.Helper()

	store, err := cache.Open(cache.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test cache: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration pointed at apiURL.
// Carousel timings are short; tests drive them with a manual scheduler anyway.
func GetTestConfig(apiURL string) cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		APIBaseURL:       apiURL,
		CacheType:        cache.DriverSQLite,
		CacheURL:         ":memory:",
		CacheTTL:         time.Minute,
		DefaultLocale:    locale.Korean,
		CarouselPageSize: 2,
		CarouselInterval: 4 * time.Second,
		CarouselFade:     350 * time.Millisecond,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
