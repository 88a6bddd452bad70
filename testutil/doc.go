// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides helpers for handler, router and command tests.

NewFakeUpstream starts an httptest server that speaks the content API over a
small fixture set (FixtureArticles, FixtureArtists, FixtureGroups). It records
every request and can be switched into a failing mode:

	fake := testutil.NewFakeUpstream(t)
	api := testutil.NewTestClient(t, fake)
	fake.SetFailing(true) // every request now answers 503

The upstream and cache packages test with their own servers; importing
testutil from them would create a cycle.
*/
package testutil
