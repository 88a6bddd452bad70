// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package directory

import (
	"cmp"
	"slices"
	"strings"

	"github.com/danielhkuo/idolboard/models"
)

// Filter keys
const (
	All        = "all"
	BoyGroup   = "boy_group"
	GirlGroup  = "girl_group"
	MixedGroup = "mixed_group"
	MaleSolo   = "male_solo"
	FemaleSolo = "female_solo"

	LabelPrefix = "label:"
)

type Gender int

const (
	Unknown Gender = iota
	Male
	Female
	Mixed
)

// Classify reads the free-form gender values the upstream data uses
func Classify(gender *string) Gender {
	if gender == nil {
		return Unknown
	}
	switch strings.ToUpper(strings.TrimSpace(*gender)) {
	case "MALE", "M", "남성", "남":
		return Male
	case "FEMALE", "F", "여성", "여":
		return Female
	case "MIXED", "혼성":
		return Mixed
	}
	return Unknown
}

// Result is the filtered directory
type Result struct {
	Filter  string
	Artists []models.Artist
	Groups  []models.Group
}

// Apply filters the directory. Group filters hide solo artists and solo
// filters hide groups; label filters match groups by Korean label name.
// Unknown keys behave like All.
func Apply(filter string, artists []models.Artist, groups []models.Group) Result {
	res := Result{Filter: filter, Artists: []models.Artist{}, Groups: []models.Group{}}

	if label, ok := strings.CutPrefix(filter, LabelPrefix); ok {
		res.Groups = groupsWhere(groups, func(g models.Group) bool {
			return models.Deref(g.LabelKo) == label
		})
		return res
	}

	switch filter {
	case BoyGroup:
		res.Groups = groupsOf(groups, Male)
	case GirlGroup:
		res.Groups = groupsOf(groups, Female)
	case MixedGroup:
		res.Groups = groupsOf(groups, Mixed)
	case MaleSolo:
		res.Artists = artistsOf(artists, Male)
	case FemaleSolo:
		res.Artists = artistsOf(artists, Female)
	default:
		res.Filter = All
		res.Artists = append(res.Artists, artists...)
		res.Groups = append(res.Groups, groups...)
	}
	return res
}

type Counts struct {
	All        int `json:"all"`
	BoyGroup   int `json:"boy_group"`
	GirlGroup  int `json:"girl_group"`
	MixedGroup int `json:"mixed_group"`
	MaleSolo   int `json:"male_solo"`
	FemaleSolo int `json:"female_solo"`
}

func Count(artists []models.Artist, groups []models.Group) Counts {
	c := Counts{All: len(artists) + len(groups)}
	for _, g := range groups {
		switch Classify(g.Gender) {
		case Male:
			c.BoyGroup++
		case Female:
			c.GirlGroup++
		case Mixed:
			c.MixedGroup++
		}
	}
	for _, a := range artists {
		switch Classify(a.Gender) {
		case Male:
			c.MaleSolo++
		case Female:
			c.FemaleSolo++
		}
	}
	return c
}

// LabelCount is an agency with the number of its groups
type LabelCount struct {
	Name   string `json:"name"`
	Groups int    `json:"groups"`
}

// Labels lists agencies by group count, most first. Ties keep first-seen
// order. Groups without a label are skipped.
func Labels(groups []models.Group) []LabelCount {
	labels := []LabelCount{}
	index := make(map[string]int)
	for _, g := range groups {
		name := models.Deref(g.LabelKo)
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(labels)
			index[name] = i
			labels = append(labels, LabelCount{Name: name})
		}
		labels[i].Groups++
	}
	slices.SortStableFunc(labels, func(a, b LabelCount) int {
		return cmp.Compare(b.Groups, a.Groups)
	})
	return labels
}

func groupsOf(groups []models.Group, want Gender) []models.Group {
	return groupsWhere(groups, func(g models.Group) bool { return Classify(g.Gender) == want })
}

func groupsWhere(groups []models.Group, keep func(models.Group) bool) []models.Group {
	out := []models.Group{}
	for _, g := range groups {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

func artistsOf(artists []models.Artist, want Gender) []models.Artist {
	out := []models.Artist{}
	for _, a := range artists {
		if Classify(a.Gender) == want {
			out = append(out, a)
		}
	}
	return out
}
