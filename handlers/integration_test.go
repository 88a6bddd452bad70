// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/idolboard/models"
	"github.com/danielhkuo/idolboard/testutil"
	"github.com/danielhkuo/idolboard/upstream"
	"github.com/danielhkuo/idolboard/views"
)

// TestEditorWorkflow tests an editor session end to end through a cached
// client, so every step also checks that writes purge stale reads:
// 1. View a group with no articles
// 2. Link an article to the group
// 3. View the group again
// 4. Change the group's activity status
// 5. Find and remove the link
// 6. Verify the group is empty again
func TestEditorWorkflow(t *testing.T) {
	fake := testutil.NewFakeUpstream(t)
	api, err := upstream.New(fake.Server.URL, upstream.WithCache(testutil.SetupTestCache(t), time.Hour))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	directory := NewDirectoryHandler(api, testRenderer())
	admin := NewAdminHandler(api)

	viewGroup := func(step string) views.GroupDetail {
		t.Helper()
		req := testutil.MakeRequest("GET", "/api/en/groups/11", nil, nil)
		w := serve("GET /api/{locale}/groups/{id}", directory.GetGroup, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s - View group failed: %d - %s", step, w.Code, w.Body.String())
		}
		var detail views.GroupDetail
		json.NewDecoder(w.Body).Decode(&detail)
		return detail
	}

	// Step 1: The group starts with no linked articles
	detail := viewGroup("Step 1")
	if len(detail.Articles) != 0 {
		t.Fatalf("Step 1 - Expected no articles, got %d", len(detail.Articles))
	}
	if detail.StatusKey != "hiatus" {
		t.Fatalf("Step 1 - Expected hiatus, got %q", detail.StatusKey)
	}
	t.Logf("Step 1 - Viewed group %d", detail.ID)

	// Step 2: Link article 104 to the group
	groupID := int64(11)
	req := testutil.MakeRequest("POST", "/api/admin/mappings", models.MappingCreate{
		ArticleID: 104,
		GroupID:   &groupID,
	}, nil)
	w := serve("POST /api/admin/mappings", admin.CreateMapping, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 2 - Create mapping failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 3: The cached view must show the new article
	detail = viewGroup("Step 3")
	if len(detail.Articles) != 1 || detail.Articles[0].ID != 104 {
		t.Fatalf("Step 3 - Expected article 104, got %+v", detail.Articles)
	}

	// Step 4: Bring the group back from hiatus
	status := models.StatusActive
	req = testutil.MakeRequest("PATCH", "/api/admin/groups/11", models.GroupUpdate{
		ActivityStatus: &status,
	}, nil)
	w = serve("PATCH /api/admin/groups/{id}", admin.UpdateGroup, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Update group failed: %d - %s", w.Code, w.Body.String())
	}
	if detail = viewGroup("Step 4"); detail.StatusKey != "active" {
		t.Fatalf("Step 4 - Expected active, got %q", detail.StatusKey)
	}

	// Step 5: Find the mapping by article and delete it
	req = testutil.MakeRequest("GET", "/api/admin/mappings?article_id=104", nil, nil)
	w = serve("GET /api/admin/mappings", admin.ListMappings, req)
	var mappings []models.EntityMapping
	json.NewDecoder(w.Body).Decode(&mappings)
	if len(mappings) != 1 {
		t.Fatalf("Step 5 - Expected 1 mapping for article 104, got %d", len(mappings))
	}

	req = testutil.MakeRequest("DELETE", "/api/admin/mappings/"+strconv.FormatInt(mappings[0].ID, 10), nil, nil)
	w = serve("DELETE /api/admin/mappings/{id}", admin.DeleteMapping, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Delete mapping failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 6: The group is empty again
	if detail = viewGroup("Step 6"); len(detail.Articles) != 0 {
		t.Errorf("Step 6 - Expected no articles, got %d", len(detail.Articles))
	}
}

// TestDegradedBrowsing verifies which pages survive an upstream outage:
// lists render empty, details fail with 502
func TestDegradedBrowsing(t *testing.T) {
	fake, api := setupUpstream(t)
	render := testRenderer()
	content := NewContentHandler(api, render, testutil.GetTestConfig(fake.Server.URL))
	directory := NewDirectoryHandler(api, render)
	gallery := NewGalleryHandler(api)

	fake.SetFailing(true)

	tests := []struct {
		name    string
		pattern string
		path    string
		handler http.HandlerFunc
		status  int
	}{
		{"home", "GET /api/{locale}/home", "/api/ko/home", content.Home, http.StatusOK},
		{"articles", "GET /api/{locale}/articles", "/api/ko/articles", content.ListArticles, http.StatusOK},
		{"directory", "GET /api/{locale}/artists", "/api/en/artists", directory.ListDirectory, http.StatusOK},
		{"gallery", "GET /api/{locale}/gallery", "/api/en/gallery", gallery.GetGallery, http.StatusOK},
		{"article detail", "GET /api/{locale}/articles/{id}", "/api/ko/articles/100", content.GetArticle, http.StatusBadGateway},
		{"artist detail", "GET /api/{locale}/artists/{id}", "/api/ko/artists/1", directory.GetArtist, http.StatusBadGateway},
		{"group detail", "GET /api/{locale}/groups/{id}", "/api/ko/groups/10", directory.GetGroup, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", tt.path, nil, nil)
			w := serve(tt.pattern, tt.handler, req)
			testutil.AssertStatus(t, w, tt.status)
		})
	}
}
