// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Locale is a supported display language
type Locale string

const (
	Korean  Locale = "ko"
	English Locale = "en"
)

var ErrUnsupported = errors.New("unsupported locale")

// Supported lists locales in matcher preference order
var Supported = []Locale{Korean, English}

var matcher = language.NewMatcher([]language.Tag{language.Korean, language.English})

// Parse validates a locale path segment
func Parse(s string) (Locale, error) {
	switch Locale(s) {
	case Korean, English:
		return Locale(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// Negotiate picks the best supported locale for an Accept-Language header.
// fallback is returned when nothing in the header matches.
func Negotiate(acceptLanguage string, fallback Locale) Locale {
	if acceptLanguage == "" {
		return fallback
	}
	_, idx, conf := matcher.Match(parseAccept(acceptLanguage)...)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}

func parseAccept(header string) []language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}

func (l Locale) IsKorean() bool {
	return l == Korean
}

func (l Locale) String() string {
	return string(l)
}

// Resolve picks the display text of a bilingual pair. Korean shows the
// Korean value as-is. English falls back to Korean only when the English
// value is absent; an empty English string is kept.
func Resolve(l Locale, ko, en *string) string {
	if l.IsKorean() || en == nil {
		return deref(ko)
	}
	return *en
}

// Tags picks the hashtag list for l. There is no cross-language fallback.
func Tags(l Locale, ko, en []string) []string {
	if l.IsKorean() {
		return ko
	}
	return en
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
