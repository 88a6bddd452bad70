// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"fmt"

	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/models"
)

type ArtistCard struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StageName string `json:"stage_name,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	Initial   string `json:"initial"`
	Verified  bool   `json:"verified"`
	Href      string `json:"href"`
}

type Membership struct {
	GroupID int64    `json:"group_id"`
	Name    string   `json:"name"`
	Roles   []string `json:"roles"`
	Current bool     `json:"current"`
	Href    string   `json:"href"`
}

type ArtistDetail struct {
	ArtistCard
	Gender      string        `json:"gender,omitempty"`
	BirthDate   string        `json:"birth_date,omitempty"`
	Nationality string        `json:"nationality,omitempty"`
	MBTI        string        `json:"mbti,omitempty"`
	BloodType   string        `json:"blood_type,omitempty"`
	HeightCm    *float64      `json:"height_cm,omitempty"`
	WeightKg    *float64      `json:"weight_kg,omitempty"`
	Bio         string        `json:"bio,omitempty"`
	Groups      []Membership  `json:"groups"`
	Articles    []ArticleCard `json:"articles"`
}

type GroupCard struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
	Initial  string `json:"initial"`
	Label    string `json:"label,omitempty"`
	Verified bool   `json:"verified"`
	Href     string `json:"href"`
}

type Member struct {
	ArtistID  int64    `json:"artist_id"`
	Name      string   `json:"name"`
	StageName string   `json:"stage_name,omitempty"`
	Roles     []string `json:"roles"`
	SubUnit   bool     `json:"sub_unit"`
	Current   bool     `json:"current"`
	Href      string   `json:"href"`
}

type GroupDetail struct {
	GroupCard
	DebutDate string `json:"debut_date,omitempty"`
	Fandom    string `json:"fandom,omitempty"`
	Bio       string `json:"bio,omitempty"`
	// Status is the raw upstream value; StatusKey is set only for known values
	Status    string        `json:"status,omitempty"`
	StatusKey string        `json:"status_key,omitempty"`
	Members   []Member      `json:"members"`
	Articles  []ArticleCard `json:"articles"`
}

var statusKeys = map[string]string{
	models.StatusActive:    "active",
	models.StatusHiatus:    "hiatus",
	models.StatusDisbanded: "disbanded",
	models.StatusSoloOnly:  "solo_only",
}

// StatusKey maps an activity status to its translation key, or "" if unknown
func StatusKey(status *string) string {
	if status == nil {
		return ""
	}
	return statusKeys[*status]
}

func ArtistHref(loc locale.Locale, id int64) string {
	return fmt.Sprintf("/%s/artists/%d", loc, id)
}

func GroupHref(loc locale.Locale, id int64) string {
	return fmt.Sprintf("/%s/groups/%d", loc, id)
}

func ArtistCardOf(loc locale.Locale, a models.Artist) ArtistCard {
	name := locale.Resolve(loc, &a.NameKo, a.NameEn)
	stage := locale.Resolve(loc, a.StageNameKo, a.StageNameEn)
	if stage == name {
		stage = ""
	}
	return ArtistCard{
		ID:        a.ID,
		Name:      name,
		StageName: stage,
		PhotoURL:  models.Deref(a.PhotoURL),
		Initial:   initial(name),
		Verified:  a.IsVerified,
		Href:      ArtistHref(loc, a.ID),
	}
}

func ArtistCards(loc locale.Locale, artists []models.Artist) []ArtistCard {
	cards := make([]ArtistCard, 0, len(artists))
	for _, a := range artists {
		cards = append(cards, ArtistCardOf(loc, a))
	}
	return cards
}

func (r *Renderer) ArtistDetail(loc locale.Locale, a models.Artist, articles []models.Article) ArtistDetail {
	d := ArtistDetail{
		ArtistCard:  ArtistCardOf(loc, a),
		Gender:      models.Deref(a.Gender),
		BirthDate:   models.Deref(a.BirthDate),
		Nationality: locale.Resolve(loc, a.NationalityKo, a.NationalityEn),
		MBTI:        models.Deref(a.MBTI),
		BloodType:   models.Deref(a.BloodType),
		HeightCm:    a.HeightCm,
		WeightKg:    a.WeightKg,
		Bio:         locale.Resolve(loc, a.BioKo, a.BioEn),
		Groups:      make([]Membership, 0, len(a.Groups)),
		Articles:    r.ArticleCards(loc, articles),
	}
	for _, g := range a.Groups {
		d.Groups = append(d.Groups, Membership{
			GroupID: g.GroupID,
			Name:    locale.Resolve(loc, g.NameKo, g.NameEn),
			Roles:   orNil(g.Roles),
			Current: g.EndedOn == nil,
			Href:    GroupHref(loc, g.GroupID),
		})
	}
	return d
}

func GroupCardOf(loc locale.Locale, g models.Group) GroupCard {
	name := locale.Resolve(loc, &g.NameKo, g.NameEn)
	return GroupCard{
		ID:       g.ID,
		Name:     name,
		PhotoURL: models.Deref(g.PhotoURL),
		Initial:  initial(name),
		Label:    locale.Resolve(loc, g.LabelKo, g.LabelEn),
		Verified: g.IsVerified,
		Href:     GroupHref(loc, g.ID),
	}
}

func GroupCards(loc locale.Locale, groups []models.Group) []GroupCard {
	cards := make([]GroupCard, 0, len(groups))
	for _, g := range groups {
		cards = append(cards, GroupCardOf(loc, g))
	}
	return cards
}

func (r *Renderer) GroupDetail(loc locale.Locale, g models.Group, articles []models.Article) GroupDetail {
	d := GroupDetail{
		GroupCard: GroupCardOf(loc, g),
		DebutDate: models.Deref(g.DebutDate),
		Fandom:    locale.Resolve(loc, g.FandomNameKo, g.FandomNameEn),
		Bio:       locale.Resolve(loc, g.BioKo, g.BioEn),
		Status:    models.Deref(g.ActivityStatus),
		StatusKey: StatusKey(g.ActivityStatus),
		Members:   make([]Member, 0, len(g.Members)),
		Articles:  r.ArticleCards(loc, articles),
	}
	for _, m := range g.Members {
		name := locale.Resolve(loc, m.NameKo, m.NameEn)
		stage := locale.Resolve(loc, m.StageNameKo, m.StageNameEn)
		if stage == name {
			stage = ""
		}
		d.Members = append(d.Members, Member{
			ArtistID:  m.ArtistID,
			Name:      name,
			StageName: stage,
			Roles:     orNil(m.Roles),
			SubUnit:   m.IsSubUnit,
			Current:   m.EndedOn == nil,
			Href:      ArtistHref(loc, m.ArtistID),
		})
	}
	return d
}
