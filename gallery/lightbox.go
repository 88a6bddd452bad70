// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gallery

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("photo index out of range")

// Photo is an entry in the flattened lightbox sequence
type Photo struct {
	Index       int         `json:"index"`
	SubjectName string      `json:"subject_name"`
	Item        ContentItem `json:"item"`
}

// Flatten lays the groups out in display order, numbering photos globally
func Flatten(groups []SubjectGroup) []Photo {
	var photos []Photo
	for _, g := range groups {
		for _, item := range g.Photos {
			photos = append(photos, Photo{
				Index:       len(photos),
				SubjectName: g.SubjectName,
				Item:        item,
			})
		}
	}
	return photos
}

// Offsets returns the global index of each group's first photo
func Offsets(groups []SubjectGroup) []int {
	offsets := make([]int, len(groups))
	total := 0
	for i, g := range groups {
		offsets[i] = total
		total += len(g.Photos)
	}
	return offsets
}

// Navigator tracks which photo the lightbox shows, if any.
// Next and Prev wrap around at either end.
type Navigator struct {
	total int
	index int
	open  bool
}

func NewNavigator(total int) *Navigator {
	return &Navigator{total: total}
}

// Open shows the photo at index i
func (n *Navigator) Open(i int) error {
	if i < 0 || i >= n.total {
		return fmt.Errorf("open %d of %d: %w", i, n.total, ErrIndexOutOfRange)
	}
	n.index = i
	n.open = true
	return nil
}

func (n *Navigator) Close() {
	n.open = false
}

// Current returns the shown index and whether the lightbox is open
func (n *Navigator) Current() (int, bool) {
	return n.index, n.open
}

// Next moves forward, wrapping to the first photo. On a closed lightbox it opens the first photo.
func (n *Navigator) Next() {
	if n.total == 0 {
		return
	}
	if n.open && n.index < n.total-1 {
		n.index++
	} else {
		n.index = 0
	}
	n.open = true
}

// Prev moves back, wrapping to the last photo. On a closed lightbox it opens the last photo.
func (n *Navigator) Prev() {
	if n.total == 0 {
		return
	}
	if n.open && n.index > 0 {
		n.index--
	} else {
		n.index = n.total - 1
	}
	n.open = true
}

// HandleKey applies a keyboard key name while the lightbox is open.
// It reports whether the key was handled.
func (n *Navigator) HandleKey(key string) bool {
	if !n.open {
		return false
	}
	switch key {
	case "Escape":
		n.Close()
	case "ArrowLeft":
		n.Prev()
	case "ArrowRight":
		n.Next()
	default:
		return false
	}
	return true
}

// Neighbors returns the indexes Prev and Next would move to from i
func Neighbors(i, total int) (prev, next int) {
	n := Navigator{total: total}
	if err := n.Open(i); err != nil {
		return -1, -1
	}
	n.Prev()
	prev, _ = n.Current()
	n.index = i
	n.Next()
	next, _ = n.Current()
	return prev, next
}
