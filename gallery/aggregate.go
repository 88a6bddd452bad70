// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gallery

import (
	"net/url"
	"slices"
	"strings"
)

// ContentItem is one candidate photo. Empty strings mean the field is absent.
type ContentItem struct {
	ID          int64  `json:"id" yaml:"id"`
	SubjectName string `json:"subject_name" yaml:"subject"`
	ImageURL    string `json:"image_url" yaml:"image_url"`
	Title       string `json:"title" yaml:"title"`
	SourceURL   string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}

// SubjectGroup holds the de-duplicated photos of one subject in first-seen order
type SubjectGroup struct {
	SubjectName string        `json:"subject_name" yaml:"subject"`
	Photos      []ContentItem `json:"photos" yaml:"photos"`
}

// Aggregate groups items by subject name, drops repeated images within a
// subject and orders subjects by photo count, most first. Subjects with equal
// counts keep the order in which they were first seen.
//
// Items without an image or without a subject are discarded; there is no
// catch-all group.
func Aggregate(items []ContentItem) []SubjectGroup {
	type accumulator struct {
		group SubjectGroup
		seen  map[string]struct{}
	}

	// order preserves first sighting; the stable sort relies on it for ties
	var order []*accumulator
	index := make(map[string]*accumulator)

	for _, item := range items {
		if item.ImageURL == "" || item.SubjectName == "" {
			continue
		}

		acc, ok := index[item.SubjectName]
		if !ok {
			acc = &accumulator{
				group: SubjectGroup{SubjectName: item.SubjectName, Photos: []ContentItem{}},
				seen:  make(map[string]struct{}),
			}
			index[item.SubjectName] = acc
			order = append(order, acc)
		}

		key := NormalizeURL(item.ImageURL)
		if _, dup := acc.seen[key]; dup {
			continue
		}
		acc.seen[key] = struct{}{}
		acc.group.Photos = append(acc.group.Photos, item)
	}

	groups := make([]SubjectGroup, len(order))
	for i, acc := range order {
		groups[i] = acc.group
	}
	slices.SortStableFunc(groups, func(a, b SubjectGroup) int {
		return len(b.Photos) - len(a.Photos)
	})
	return groups
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// NormalizeURL reduces an image URL to its origin and path for duplicate
// detection. Query, fragment and userinfo are dropped, a port equal to the
// scheme default is dropped, and dot segments in the path are resolved.
// Strings that are not absolute URLs are cut at the first '?' and then at
// the first '#'.
//
// The result is only a comparison key; it is never shown or linked.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" && u.Host != "" {
		u = u.ResolveReference(&url.URL{})
		scheme := strings.ToLower(u.Scheme)
		host := strings.ToLower(u.Host)
		if port := u.Port(); port == "" || port == defaultPorts[scheme] {
			host = strings.TrimSuffix(host, ":"+port)
		}
		path := u.EscapedPath()
		if path == "" {
			path = "/"
		}
		return scheme + "://" + host + path
	}

	s, _, _ := strings.Cut(raw, "?")
	s, _, _ = strings.Cut(s, "#")
	return s
}
