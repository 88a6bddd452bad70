// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"fmt"
	"time"

	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/models"
)

// CardTagLimit is how many hashtags a card shows
const CardTagLimit = 3

type ArticleCard struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary,omitempty"`
	Subject      string     `json:"subject,omitempty"`
	Tags         []string   `json:"tags"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	SourceURL    string     `json:"source_url,omitempty"`
	Author       string     `json:"author,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	Age          string     `json:"age,omitempty"`
	Href         string     `json:"href"`
}

type ArticleDetail struct {
	ArticleCard
	Hashtags      []string `json:"hashtags"`
	PublishedDate string   `json:"published_date,omitempty"`
	// KoreanSummary is always the original; English readers see it next to
	// the translation.
	KoreanSummary      string        `json:"korean_summary,omitempty"`
	MissingTranslation bool          `json:"missing_translation"`
	Paragraphs         []string      `json:"paragraphs"`
	BodyHTML           string        `json:"body_html,omitempty"`
	BodyMarkdown       string        `json:"body_markdown,omitempty"`
	Sentiment          string        `json:"sentiment,omitempty"`
	ExtraImages        []string      `json:"extra_images"`
	Related            []ArticleCard `json:"related"`
}

func ArticleHref(loc locale.Locale, id int64) string {
	return fmt.Sprintf("/%s/articles/%d", loc, id)
}

func (r *Renderer) ArticleCard(loc locale.Locale, a models.Article) ArticleCard {
	tags := locale.Tags(loc, a.HashtagsKo, a.HashtagsEn)
	if len(tags) > CardTagLimit {
		tags = tags[:CardTagLimit]
	}

	card := ArticleCard{
		ID:           a.ID,
		Title:        locale.Resolve(loc, a.TitleKo, a.TitleEn),
		Summary:      locale.Resolve(loc, a.SummaryKo, a.SummaryEn),
		Subject:      locale.Resolve(loc, a.ArtistNameKo, a.ArtistNameEn),
		Tags:         orNil(tags),
		ThumbnailURL: models.Deref(a.ThumbnailURL),
		SourceURL:    models.Deref(a.SourceURL),
		Author:       models.Deref(a.Author),
		Href:         ArticleHref(loc, a.ID),
	}
	if t, ok := parseTime(a.PublishedAt); ok {
		card.PublishedAt = &t
		card.Age = r.age(loc, t)
	}
	return card
}

// ArticleCards projects a list; the result is never nil
func (r *Renderer) ArticleCards(loc locale.Locale, articles []models.Article) []ArticleCard {
	cards := make([]ArticleCard, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, r.ArticleCard(loc, a))
	}
	return cards
}

// ArticleDetail renders the full article. The body is sanitized before it is
// converted to Markdown; when there is no body the Korean summary stands in.
func (r *Renderer) ArticleDetail(loc locale.Locale, a models.Article, related []models.Article) ArticleDetail {
	d := ArticleDetail{
		ArticleCard:   r.ArticleCard(loc, a),
		Hashtags:      orNil(locale.Tags(loc, a.HashtagsKo, a.HashtagsEn)),
		KoreanSummary: models.Deref(a.SummaryKo),
		Sentiment:     models.Deref(a.Sentiment),
		ExtraImages:   []string{},
		Related:       r.ArticleCards(loc, related),
	}

	if !loc.IsKorean() {
		// Translations never fall back on the detail page
		d.Summary = models.Deref(a.SummaryEn)
		d.MissingTranslation = d.Summary == ""
	}
	if d.PublishedAt != nil {
		d.PublishedDate = longDate(loc, *d.PublishedAt)
	}

	if body := models.Deref(a.ContentKo); body != "" {
		d.BodyHTML = r.sanitize(body)
		d.Paragraphs = r.paragraphs(body)
		d.BodyMarkdown = r.markdown(d.BodyHTML, d.SourceURL, d.BodyHTML)
	} else if d.KoreanSummary != "" {
		d.Paragraphs = []string{d.KoreanSummary}
	}
	d.Paragraphs = orNil(d.Paragraphs)

	for _, img := range a.ExtraImages {
		if img.URL != "" {
			d.ExtraImages = append(d.ExtraImages, img.URL)
		}
	}
	return d
}

// Related picks up to n candidates other than the article itself, in order
func Related(selfID int64, candidates []models.Article, n int) []models.Article {
	if n <= 0 {
		return []models.Article{}
	}
	out := make([]models.Article, 0, n)
	for _, c := range candidates {
		if len(out) == n {
			break
		}
		if c.ID != selfID {
			out = append(out, c)
		}
	}
	return out
}
