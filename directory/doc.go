// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package directory filters the artist and group directory.

Upstream gender values are free-form; Classify accepts English and Korean
spellings (MALE, M, 남성, 남 / FEMALE, F, 여성, 여 / MIXED, 혼성) in any case.

# Filters

	all           every group and solo artist
	boy_group     male groups
	girl_group    female groups
	mixed_group   mixed groups
	male_solo     male solo artists
	female_solo   female solo artists
	label:<name>  groups whose Korean label is <name>

Labels orders agencies by how many groups they have, ties in first-seen
order.
*/
package directory
