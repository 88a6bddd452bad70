// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/danielhkuo/idolboard/cache"
)

// DefaultTTL matches the revalidation window of the upstream API's consumers
const DefaultTTL = 60 * time.Second

// maxBodySize caps how much of an upstream response is read
const maxBodySize = 16 << 20

var ErrNoBaseURL = errors.New("upstream base URL required")

// StatusError is returned for non-2xx upstream responses
type StatusError struct {
	Code int
	Path string
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
}

// IsNotFound reports whether err is an upstream 404
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client talks to the upstream content API. GET responses go through the
// cache when one is configured; writes bypass it and purge it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Store
	ttl        time.Duration
	flight     singleflight.Group
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache serves GETs younger than ttl from store
func WithCache(store *cache.Store, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = store
		c.ttl = ttl
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		ttl: DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// get fetches path and decodes the JSON body into T
func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	body, err := c.fetch(ctx, path)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return out, nil
}

// getUncached is get without the cache
func getUncached[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return out, nil
}

// send performs a write and decodes the JSON response into T
func send[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var out T
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return out, err
	}

	if c.cache != nil {
		if _, err := c.cache.Purge(ctx); err != nil {
			slog.Warn("cache purge failed", "path", path, "error", err)
		}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	if c.cache == nil {
		return c.do(ctx, http.MethodGet, path, nil)
	}

	key := cache.Key(http.MethodGet, path)
	entry, cacheErr := c.cache.Get(ctx, key, c.ttl)
	if cacheErr == nil && entry.Fresh {
		return entry.Body, nil
	}
	if cacheErr != nil && !errors.Is(cacheErr, cache.ErrMiss) {
		slog.Warn("cache read failed", "path", path, "error", cacheErr)
	}

	// Concurrent misses for one key share a single upstream request. The
	// shared request outlives any one caller's cancellation.
	ch := c.flight.DoChan(key, func() (any, error) {
		return c.revalidate(context.WithoutCancel(ctx), key, path, entry, cacheErr)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// revalidate refetches path and stores the result. entry is the stale copy
// when cacheErr is nil.
func (c *Client) revalidate(ctx context.Context, key, path string, entry cache.Entry, cacheErr error) ([]byte, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		// A stale copy beats an error when upstream itself is failing
		var se *StatusError
		transient := !errors.As(err, &se) || se.Code >= 500
		if cacheErr == nil && transient {
			slog.Warn("serving stale response", "path", path, "age", time.Since(entry.FetchedAt).String(), "error", err)
			return entry.Body, nil
		}
		return nil, err
	}

	if err := c.cache.Put(ctx, key, path, body); err != nil {
		slog.Warn("cache write failed", "path", path, "error", err)
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach upstream: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Code: resp.StatusCode,
			Path: path,
			Body: strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

// params builds a query string, skipping zero values. Keys are sorted so
// equal queries share a cache entry.
type params url.Values

func (p params) str(key, v string) params {
	if v != "" {
		url.Values(p).Set(key, v)
	}
	return p
}

func (p params) num(key string, v int64) params {
	if v != 0 {
		url.Values(p).Set(key, strconv.FormatInt(v, 10))
	}
	return p
}

func (p params) flag(key string, v bool) params {
	if v {
		url.Values(p).Set(key, "true")
	}
	return p
}

func (p params) encode() string {
	s := url.Values(p).Encode()
	if s == "" {
		return ""
	}
	return "?" + s
}

func orDefault(v, def int) int64 {
	if v <= 0 {
		return int64(def)
	}
	return int64(v)
}
