// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Group activity status constants
const (
	StatusActive    = "ACTIVE"
	StatusHiatus    = "HIATUS"
	StatusDisbanded = "DISBANDED"
	StatusSoloOnly  = "SOLO_ONLY"
)

// Entity types on article mappings
const (
	EntityArtist = "ARTIST"
	EntityGroup  = "GROUP"
)

// Upstream records. Nullable columns are pointers; the upstream API sends
// null for them rather than omitting the key.

type ExtraImage struct {
	URL string `json:"url"`
}

type Article struct {
	ID           int64        `json:"id"`
	TitleKo      *string      `json:"title_ko"`
	TitleEn      *string      `json:"title_en"`
	SummaryKo    *string      `json:"summary_ko"`
	SummaryEn    *string      `json:"summary_en"`
	ContentKo    *string      `json:"content_ko,omitempty"`
	Author       *string      `json:"author"`
	PublishedAt  *string      `json:"published_at"`
	ArtistNameKo *string      `json:"artist_name_ko"`
	ArtistNameEn *string      `json:"artist_name_en"`
	HashtagsKo   []string     `json:"hashtags_ko"`
	HashtagsEn   []string     `json:"hashtags_en"`
	ThumbnailURL *string      `json:"thumbnail_url"`
	SourceURL    *string      `json:"source_url"`
	Language     *string      `json:"language"`
	Sentiment    *string      `json:"sentiment,omitempty"`
	ExtraImages  []ExtraImage `json:"extra_images,omitempty"`
}

type ArtistGroup struct {
	GroupID   int64    `json:"group_id"`
	NameKo    *string  `json:"name_ko"`
	NameEn    *string  `json:"name_en"`
	Roles     []string `json:"roles"`
	StartedOn *string  `json:"started_on"`
	EndedOn   *string  `json:"ended_on"`
}

type Artist struct {
	ID             int64         `json:"id"`
	NameKo         string        `json:"name_ko"`
	NameEn         *string       `json:"name_en"`
	StageNameKo    *string       `json:"stage_name_ko"`
	StageNameEn    *string       `json:"stage_name_en"`
	Gender         *string       `json:"gender"`
	BirthDate      *string       `json:"birth_date"`
	NationalityKo  *string       `json:"nationality_ko"`
	NationalityEn  *string       `json:"nationality_en"`
	MBTI           *string       `json:"mbti"`
	BloodType      *string       `json:"blood_type"`
	HeightCm       *float64      `json:"height_cm"`
	WeightKg       *float64      `json:"weight_kg"`
	BioKo          *string       `json:"bio_ko"`
	BioEn          *string       `json:"bio_en"`
	IsVerified     bool          `json:"is_verified"`
	GlobalPriority *int          `json:"global_priority"`
	PhotoURL       *string       `json:"photo_url,omitempty"`
	Groups         []ArtistGroup `json:"groups,omitempty"`
}

type GroupMember struct {
	ArtistID    int64    `json:"artist_id"`
	NameKo      *string  `json:"name_ko"`
	NameEn      *string  `json:"name_en"`
	StageNameKo *string  `json:"stage_name_ko"`
	StageNameEn *string  `json:"stage_name_en"`
	Roles       []string `json:"roles"`
	StartedOn   *string  `json:"started_on"`
	EndedOn     *string  `json:"ended_on"`
	IsSubUnit   bool     `json:"is_sub_unit"`
}

type Group struct {
	ID             int64         `json:"id"`
	NameKo         string        `json:"name_ko"`
	NameEn         *string       `json:"name_en"`
	Gender         *string       `json:"gender"`
	DebutDate      *string       `json:"debut_date"`
	LabelKo        *string       `json:"label_ko"`
	LabelEn        *string       `json:"label_en"`
	FandomNameKo   *string       `json:"fandom_name_ko"`
	FandomNameEn   *string       `json:"fandom_name_en"`
	ActivityStatus *string       `json:"activity_status"`
	BioKo          *string       `json:"bio_ko"`
	BioEn          *string       `json:"bio_en"`
	IsVerified     bool          `json:"is_verified"`
	GlobalPriority *int          `json:"global_priority"`
	PhotoURL       *string       `json:"photo_url,omitempty"`
	Members        []GroupMember `json:"members,omitempty"`
}

type SearchResult struct {
	Query    string    `json:"query"`
	Articles []Article `json:"articles"`
	Artists  []Artist  `json:"artists"`
	Groups   []Group   `json:"groups"`
}

type EntityMapping struct {
	ID              int64    `json:"id"`
	ArticleID       int64    `json:"article_id"`
	ArticleTitleKo  *string  `json:"article_title_ko"`
	ArticleURL      *string  `json:"article_url"`
	EntityType      *string  `json:"entity_type"`
	ArtistID        *int64   `json:"artist_id"`
	ArtistNameKo    *string  `json:"artist_name_ko"`
	GroupID         *int64   `json:"group_id"`
	GroupNameKo     *string  `json:"group_name_ko"`
	ConfidenceScore *float64 `json:"confidence_score"`
}

// Request types

type GroupUpdate struct {
	ActivityStatus *string `json:"activity_status,omitempty"`
	BioKo          *string `json:"bio_ko,omitempty"`
	BioEn          *string `json:"bio_en,omitempty"`
}

type ArtistUpdate struct {
	BioKo *string `json:"bio_ko,omitempty"`
	BioEn *string `json:"bio_en,omitempty"`
}

type MappingCreate struct {
	ArticleID       int64    `json:"article_id"`
	ArtistID        *int64   `json:"artist_id,omitempty"`
	GroupID         *int64   `json:"group_id,omitempty"`
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
}

// Response types

type MappingCreated struct {
	Created int64 `json:"created"`
}

type MappingDeleted struct {
	Deleted int64 `json:"deleted"`
}

type LocaleResponse struct {
	Locale    string   `json:"locale"`
	Supported []string `json:"supported"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// Deref returns the value of p, or "" when p is nil
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
