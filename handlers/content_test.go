// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/idolboard/models"
	"github.com/danielhkuo/idolboard/testutil"
	"github.com/danielhkuo/idolboard/views"
)

func setupContent(t *testing.T) (*testutil.FakeUpstream, *ContentHandler) {
	t.Helper()
	fake, api := setupUpstream(t)
	cfg := testutil.GetTestConfig(fake.Server.URL)
	return fake, NewContentHandler(api, testRenderer(), cfg)
}

func articleIDs(cards []views.ArticleCard) []int64 {
	ids := make([]int64, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestGetLocale(t *testing.T) {
	_, h := setupContent(t)

	tests := []struct {
		name           string
		acceptLanguage string
		want           string
	}{
		{"no header uses default", "", "ko"},
		{"english browser", "en-US,en;q=0.9", "en"},
		{"korean browser", "ko-KR,ko;q=0.9,en;q=0.8", "ko"},
		{"unsupported language uses default", "fr-FR", "ko"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.acceptLanguage != "" {
				headers["Accept-Language"] = tt.acceptLanguage
			}
			req := testutil.MakeRequest("GET", "/api/locale", nil, headers)
			w := serve("GET /api/locale", h.GetLocale, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.LocaleResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.Locale != tt.want {
				t.Errorf("Expected locale %q, got %q", tt.want, resp.Locale)
			}
			if diff := cmp.Diff([]string{"ko", "en"}, resp.Supported); diff != "" {
				t.Errorf("Supported mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHome(t *testing.T) {
	fake, h := setupContent(t)

	req := testutil.MakeRequest("GET", "/api/ko/home", nil, nil)
	w := serve("GET /api/{locale}/home", h.Home, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp HomeResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Locale != "ko" {
		t.Errorf("Expected locale ko, got %s", resp.Locale)
	}
	if len(resp.Articles) != 6 {
		t.Fatalf("Expected 6 articles, got %d", len(resp.Articles))
	}
	if resp.Articles[0].Title != "민지 화보 공개" {
		t.Errorf("Expected Korean title, got %q", resp.Articles[0].Title)
	}
	if resp.Articles[0].Age != "2일 전" {
		t.Errorf("Expected age '2일 전', got %q", resp.Articles[0].Age)
	}
	if len(resp.Artists) != 2 {
		t.Errorf("Expected 2 priority artists, got %d", len(resp.Artists))
	}

	if fake.CountRequests("GET /public/artists?global_priority=1&limit=12") != 1 {
		t.Errorf("Expected one priority artist request, got %v", fake.Requests())
	}
}

func TestHomeEnglish(t *testing.T) {
	_, h := setupContent(t)

	req := testutil.MakeRequest("GET", "/api/en/home", nil, nil)
	w := serve("GET /api/{locale}/home", h.Home, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp HomeResponse
	testutil.AssertJSON(t, w, &resp)

	first := resp.Articles[0]
	if first.Title != "Minji reveals pictorial" {
		t.Errorf("Expected English title, got %q", first.Title)
	}
	if first.Age != "2 days ago" {
		t.Errorf("Expected age '2 days ago', got %q", first.Age)
	}
	if first.Href != "/en/articles/100" {
		t.Errorf("Expected href /en/articles/100, got %q", first.Href)
	}

	// Article 105 has no English title and falls back to Korean
	last := resp.Articles[len(resp.Articles)-1]
	if last.Title != "가요계 소식" {
		t.Errorf("Expected Korean fallback title, got %q", last.Title)
	}
}

func TestHomeUpstreamDown(t *testing.T) {
	fake, h := setupContent(t)
	fake.SetFailing(true)

	req := testutil.MakeRequest("GET", "/api/ko/home", nil, nil)
	w := serve("GET /api/{locale}/home", h.Home, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"articles":[]`) || !strings.Contains(w.Body.String(), `"artists":[]`) {
		t.Errorf("Expected empty lists, got %s", w.Body.String())
	}
}

func TestUnknownLocale(t *testing.T) {
	_, h := setupContent(t)

	req := testutil.MakeRequest("GET", "/api/fr/home", nil, nil)
	w := serve("GET /api/{locale}/home", h.Home, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListArticles(t *testing.T) {
	_, h := setupContent(t)

	tests := []struct {
		name       string
		path       string
		wantIDs    []int64
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/api/ko/articles", []int64{100, 101, 102, 103, 104, 105}, 20, 0},
		{"paged", "/api/ko/articles?limit=2&offset=1", []int64{101, 102}, 2, 1},
		{"limit clamped", "/api/ko/articles?limit=5000", []int64{100, 101, 102, 103, 104, 105}, 100, 0},
		{"zero limit uses default", "/api/ko/articles?limit=0", []int64{100, 101, 102, 103, 104, 105}, 20, 0},
		{"garbage ignored", "/api/ko/articles?limit=abc&offset=-3", []int64{100, 101, 102, 103, 104, 105}, 20, 0},
		{"offset past end", "/api/ko/articles?offset=50", []int64{}, 20, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", tt.path, nil, nil)
			w := serve("GET /api/{locale}/articles", h.ListArticles, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp ArticleListResponse
			testutil.AssertJSON(t, w, &resp)

			if diff := cmp.Diff(tt.wantIDs, articleIDs(resp.Articles)); diff != "" {
				t.Errorf("Article IDs mismatch (-want +got):\n%s", diff)
			}
			if resp.Limit != tt.wantLimit || resp.Offset != tt.wantOffset {
				t.Errorf("Expected limit %d offset %d, got %d %d", tt.wantLimit, tt.wantOffset, resp.Limit, resp.Offset)
			}
		})
	}
}

func TestGetArticle(t *testing.T) {
	_, h := setupContent(t)

	req := testutil.MakeRequest("GET", "/api/ko/articles/100", nil, nil)
	w := serve("GET /api/{locale}/articles/{id}", h.GetArticle, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp views.ArticleDetail
	testutil.AssertJSON(t, w, &resp)

	if resp.Title != "민지 화보 공개" {
		t.Errorf("Expected Korean title, got %q", resp.Title)
	}
	if resp.PublishedDate != "2025년 2월 27일" {
		t.Errorf("Expected Korean long date, got %q", resp.PublishedDate)
	}
	if len(resp.Paragraphs) != 2 || resp.Paragraphs[0] != "첫 문단" {
		t.Errorf("Expected two plain paragraphs, got %q", resp.Paragraphs)
	}
	if strings.Contains(resp.BodyHTML, "<script") {
		t.Errorf("Body was not sanitized: %s", resp.BodyHTML)
	}
	if diff := cmp.Diff([]string{"https://img.example.com/a2.jpg"}, resp.ExtraImages); diff != "" {
		t.Errorf("Extra images mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{101, 102}, articleIDs(resp.Related)); diff != "" {
		t.Errorf("Related mismatch (-want +got):\n%s", diff)
	}
	if resp.MissingTranslation {
		t.Error("Korean page never reports a missing translation")
	}
}

func TestGetArticleEnglish(t *testing.T) {
	_, h := setupContent(t)

	t.Run("translated", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/en/articles/100", nil, nil)
		w := serve("GET /api/{locale}/articles/{id}", h.GetArticle, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp views.ArticleDetail
		testutil.AssertJSON(t, w, &resp)

		if resp.Summary != "Minji released a new pictorial." {
			t.Errorf("Expected English summary, got %q", resp.Summary)
		}
		if resp.KoreanSummary != "민지가 새 화보를 공개했다." {
			t.Errorf("Expected Korean original alongside, got %q", resp.KoreanSummary)
		}
		if resp.PublishedDate != "February 27, 2025" {
			t.Errorf("Expected English long date, got %q", resp.PublishedDate)
		}
	})

	t.Run("missing translation", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/en/articles/103", nil, nil)
		w := serve("GET /api/{locale}/articles/{id}", h.GetArticle, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp views.ArticleDetail
		testutil.AssertJSON(t, w, &resp)

		if resp.Summary != "" || !resp.MissingTranslation {
			t.Errorf("Expected no summary and a missing translation flag, got %q %v", resp.Summary, resp.MissingTranslation)
		}
		if diff := cmp.Diff([]string{"하니 인터뷰 요약"}, resp.Paragraphs); diff != "" {
			t.Errorf("Summary should stand in for the body (-want +got):\n%s", diff)
		}
	})
}

func TestGetArticleErrors(t *testing.T) {
	fake, h := setupContent(t)

	tests := []struct {
		name    string
		path    string
		failing bool
		want    int
	}{
		{"not found", "/api/ko/articles/999", false, http.StatusNotFound},
		{"invalid id", "/api/ko/articles/abc", false, http.StatusBadRequest},
		{"negative id", "/api/ko/articles/-1", false, http.StatusBadRequest},
		{"upstream down", "/api/ko/articles/100", true, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake.SetFailing(tt.failing)
			req := testutil.MakeRequest("GET", tt.path, nil, nil)
			w := serve("GET /api/{locale}/articles/{id}", h.GetArticle, req)
			testutil.AssertStatus(t, w, tt.want)
		})
	}
}

func TestSearch(t *testing.T) {
	fake, h := setupContent(t)

	t.Run("matches", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/ko/search?q=%EB%AF%BC%EC%A7%80", nil, nil)
		w := serve("GET /api/{locale}/search", h.Search, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp SearchResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.Query != "민지" {
			t.Errorf("Expected query 민지, got %q", resp.Query)
		}
		if diff := cmp.Diff([]int64{100, 101, 102}, articleIDs(resp.Articles)); diff != "" {
			t.Errorf("Articles mismatch (-want +got):\n%s", diff)
		}
		if len(resp.Artists) != 1 || resp.Artists[0].ID != 1 {
			t.Errorf("Expected artist 1, got %+v", resp.Artists)
		}
		if resp.Groups == nil || len(resp.Groups) != 0 {
			t.Errorf("Expected empty groups, got %+v", resp.Groups)
		}
	})

	t.Run("blank query skips upstream", func(t *testing.T) {
		before := fake.CountRequests("GET /public/search")

		req := testutil.MakeRequest("GET", "/api/ko/search?q=++", nil, nil)
		w := serve("GET /api/{locale}/search", h.Search, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if got := fake.CountRequests("GET /public/search"); got != before {
			t.Errorf("Expected no search request, got %d", got-before)
		}
		if !strings.Contains(w.Body.String(), `"articles":[]`) {
			t.Errorf("Expected empty articles, got %s", w.Body.String())
		}
	})
}
