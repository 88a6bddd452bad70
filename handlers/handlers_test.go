// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/idolboard/testutil"
	"github.com/danielhkuo/idolboard/upstream"
	"github.com/danielhkuo/idolboard/views"
)

// fixedNow is two days after the newest fixture article
var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func testRenderer() *views.Renderer {
	return views.NewRenderer(func() time.Time { return fixedNow })
}

// setupUpstream starts a fake content API and a client for it
func setupUpstream(t *testing.T) (*testutil.FakeUpstream, *upstream.Client) {
	t.Helper()
	fake := testutil.NewFakeUpstream(t)
	return fake, testutil.NewTestClient(t, fake)
}

// serve routes req through a mux holding only pattern, so path values resolve
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}
