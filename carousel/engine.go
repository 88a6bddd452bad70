// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package carousel

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"sync"
	"time"
)

// Default rotation settings
const (
	DefaultPageSize = 20
	DefaultInterval = 4000 * time.Millisecond
	DefaultFade     = 350 * time.Millisecond
)

var ErrUnknownKind = errors.New("unknown display item kind")

// Kind distinguishes solo artists from groups
type Kind int

const (
	Primary Kind = iota
	Secondary
)

func (k Kind) String() string {
	if k == Secondary {
		return "secondary"
	}
	return "primary"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "primary":
		*k = Primary
	case "secondary":
		*k = Secondary
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, b)
	}
	return nil
}

// DisplayItem is one tile in the carousel
type DisplayItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
	Kind     Kind   `json:"kind"`
	Href     string `json:"href"`
}

// State is a copy of the engine's observable state
type State struct {
	Page          []DisplayItem `json:"page"`
	Cursor        int           `json:"cursor"`
	PoolSize      int           `json:"pool_size"`
	Transitioning bool          `json:"transitioning"`
	Rotating      bool          `json:"rotating"`
}

type Config struct {
	PageSize int
	Interval time.Duration
	Fade     time.Duration
}

func DefaultConfig() Config {
	return Config{
		PageSize: DefaultPageSize,
		Interval: DefaultInterval,
		Fade:     DefaultFade,
	}
}

type Option func(*Engine)

// WithScheduler replaces the wall-clock scheduler
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithRand sets the random source used for shuffling
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// Engine rotates a fixed-size page through a shuffled pool.
//
// The pool is shuffled once per Initialize and then paged through in order,
// so every item is shown once before any item repeats. Rotation only runs
// when the pool is larger than a page.
type Engine struct {
	cfg   Config
	sched Scheduler
	rng   *rand.Rand

	// notifyMu serializes listener delivery and is always taken after mu
	notifyMu sync.Mutex

	mu            sync.Mutex
	pool          []DisplayItem
	cursor        int
	page          []DisplayItem
	transitioning bool
	generation    uint64
	stopTick      Cancel
	stopFade      Cancel
	disposed      bool
	listeners     map[int]func(State)
	nextListener  int
}

func New(cfg Config, opts ...Option) *Engine {
	def := DefaultConfig()
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Fade <= 0 {
		cfg.Fade = def.Fade
	}

	e := &Engine{
		cfg:       cfg,
		sched:     TimeScheduler{},
		page:      []DisplayItem{},
		listeners: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

// Initialize discards all state, reshuffles items into a new pool and shows
// its first page. The rotation timer starts only if the pool exceeds a page.
func (e *Engine) Initialize(items []DisplayItem) {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}

	e.cancelTimersLocked()
	e.generation++
	e.pool = Shuffle(e.rng, items)
	e.cursor = 0
	e.transitioning = false
	e.page = e.windowLocked()

	if len(e.pool) > e.cfg.PageSize {
		gen := e.generation
		e.stopTick = e.sched.Every(e.cfg.Interval, func() { e.tick(gen) })
	}

	e.publishLocked()
}

// Tick starts a transition to the next page. It is what the interval timer
// calls; it does nothing for static pools or while a transition is running.
func (e *Engine) Tick() {
	e.mu.Lock()
	gen := e.generation
	e.mu.Unlock()
	e.tick(gen)
}

func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	if e.disposed || gen != e.generation || e.transitioning || len(e.pool) <= e.cfg.PageSize {
		e.mu.Unlock()
		return
	}

	e.transitioning = true
	e.stopFade = e.sched.After(e.cfg.Fade, func() { e.completeTransition(gen) })

	e.publishLocked()
}

func (e *Engine) completeTransition(gen uint64) {
	e.mu.Lock()
	if e.disposed || gen != e.generation || !e.transitioning {
		e.mu.Unlock()
		return
	}

	e.cursor = (e.cursor + e.cfg.PageSize) % len(e.pool)
	e.page = e.windowLocked()
	e.transitioning = false
	e.stopFade = nil

	e.publishLocked()
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Pool returns a copy of the shuffled pool
func (e *Engine) Pool() []DisplayItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.pool)
}

// Subscribe registers fn to receive every state change. Deliveries are
// serialized; fn must not call back into the engine. The returned func
// removes the subscription.
func (e *Engine) Subscribe(fn func(State)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return func() {}
	}

	id := e.nextListener
	e.nextListener++
	e.listeners[id] = fn

	return func() {
		e.mu.Lock()
		delete(e.listeners, id)
		e.mu.Unlock()
	}
}

// Dispose stops all timers and waits for any in-flight delivery to finish.
// No callback changes state or reaches a listener after it returns.
func (e *Engine) Dispose() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	e.disposed = true
	e.cancelTimersLocked()
	clear(e.listeners)
	e.mu.Unlock()

	e.notifyMu.Lock()
	e.notifyMu.Unlock()
}

func (e *Engine) cancelTimersLocked() {
	if e.stopTick != nil {
		e.stopTick()
		e.stopTick = nil
	}
	if e.stopFade != nil {
		e.stopFade()
		e.stopFade = nil
	}
}

// windowLocked returns PageSize items starting at cursor, wrapping around the pool
func (e *Engine) windowLocked() []DisplayItem {
	n := min(e.cfg.PageSize, len(e.pool))
	page := make([]DisplayItem, n)
	for i := range n {
		page[i] = e.pool[(e.cursor+i)%len(e.pool)]
	}
	return page
}

func (e *Engine) snapshotLocked() State {
	return State{
		Page:          slices.Clone(e.page),
		Cursor:        e.cursor,
		PoolSize:      len(e.pool),
		Transitioning: e.transitioning,
		Rotating:      len(e.pool) > e.cfg.PageSize,
	}
}

// publishLocked snapshots the state, releases mu and delivers the snapshot
// to every listener in order of subscription.
func (e *Engine) publishLocked() {
	if len(e.listeners) == 0 {
		e.mu.Unlock()
		return
	}

	st := e.snapshotLocked()
	ids := slices.Sorted(maps.Keys(e.listeners))
	fns := make([]func(State), len(ids))
	for i, id := range ids {
		fns[i] = e.listeners[id]
	}

	e.notifyMu.Lock()
	e.mu.Unlock()
	defer e.notifyMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// Shuffle returns a Fisher-Yates permutation of a copy of items
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
