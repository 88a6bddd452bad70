// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"html"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"

	"github.com/danielhkuo/idolboard/locale"
)

// Renderer projects upstream records into locale-resolved view models.
// It is safe for concurrent use.
type Renderer struct {
	now    func() time.Time
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
	md     *converter.Converter
}

// NewRenderer returns a Renderer. A nil now uses time.Now.
func NewRenderer(now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{
		now:    now,
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
		md: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

var koMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "방금 전", DivBy: 1},
	{D: time.Hour, Format: "%d분 %s", DivBy: time.Minute},
	{D: humanize.Day, Format: "%d시간 %s", DivBy: time.Hour},
	{D: humanize.Week, Format: "%d일 %s", DivBy: humanize.Day},
	{D: humanize.Month, Format: "%d주 %s", DivBy: humanize.Week},
	{D: humanize.Year, Format: "%d개월 %s", DivBy: humanize.Month},
	{D: math.MaxInt64, Format: "%d년 %s", DivBy: humanize.Year},
}

// age renders t relative to the renderer's clock, e.g. "3 days ago" or "3일 전"
func (r *Renderer) age(loc locale.Locale, t time.Time) string {
	now := r.now()
	if loc.IsKorean() {
		return humanize.CustomRelTime(t, now, "전", "후", koMagnitudes)
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// sanitize keeps user-generated-content markup and strips everything else
func (r *Renderer) sanitize(s string) string {
	return strings.TrimSpace(r.ugc.Sanitize(s))
}

// markdown converts sanitized HTML, falling back to plain text
func (r *Renderer) markdown(safeHTML, sourceURL, fallback string) string {
	if safeHTML == "" {
		return fallback
	}
	out, err := r.md.ConvertString(safeHTML, converter.WithDomain(sourceURL))
	if err != nil || strings.TrimSpace(out) == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}

// paragraphs strips markup and splits on blank lines
func (r *Renderer) paragraphs(s string) []string {
	text := html.UnescapeString(r.strict.Sanitize(s))
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// parseTime reads upstream timestamps. Values without a zone are UTC.
func parseTime(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func longDate(loc locale.Locale, t time.Time) string {
	if loc.IsKorean() {
		return t.Format("2006년 1월 2일")
	}
	return t.Format("January 2, 2006")
}

// initial is the avatar placeholder letter
func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(r)
}

func orNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
