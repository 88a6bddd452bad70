// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package carousel implements the rotating idol carousel.

# Rotation

An Engine owns a shuffled pool of DisplayItems and exposes a fixed-size page
of it:

	eng := carousel.New(carousel.DefaultConfig())
	defer eng.Dispose()
	eng.Initialize(items)
	state := eng.Snapshot()

Every Interval the engine starts a transition (Transitioning = true); after
Fade it advances the cursor by PageSize, wrapping around the pool, and ends
the transition. Pools no larger than a page are shown statically and never
schedule a timer.

Call Initialize again whenever the item set changes; it reshuffles and drops
any transition that was in flight.

# Scheduling

Timers come from a Scheduler. TimeScheduler uses the wall clock;
ManualScheduler is a virtual clock driven by Advance:

	sched := carousel.NewManualScheduler()
	eng := carousel.New(cfg, carousel.WithScheduler(sched))
	eng.Initialize(items)
	sched.Advance(cfg.Interval + cfg.Fade) // one full rotation step

# Observing

Subscribe delivers a State after every initialize, transition start and
transition end. The HTTP layer uses it to stream pages to clients.
*/
package carousel
