// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/idolboard/directory"
	"github.com/danielhkuo/idolboard/testutil"
	"github.com/danielhkuo/idolboard/views"
)

func setupDirectory(t *testing.T) (*testutil.FakeUpstream, *DirectoryHandler) {
	t.Helper()
	fake, api := setupUpstream(t)
	return fake, NewDirectoryHandler(api, testRenderer())
}

func getDirectory(t *testing.T, h *DirectoryHandler, path string) DirectoryResponse {
	t.Helper()
	req := testutil.MakeRequest("GET", path, nil, nil)
	w := serve("GET /api/{locale}/artists", h.ListDirectory, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp DirectoryResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func groupNames(cards []views.GroupCard) []string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Name)
	}
	return names
}

func TestListDirectory(t *testing.T) {
	_, h := setupDirectory(t)

	resp := getDirectory(t, h, "/api/ko/artists")

	if resp.Filter != directory.All {
		t.Errorf("Expected filter all, got %q", resp.Filter)
	}
	wantCounts := directory.Counts{All: 6, BoyGroup: 2, GirlGroup: 1, MaleSolo: 1, FemaleSolo: 2}
	if diff := cmp.Diff(wantCounts, resp.Counts); diff != "" {
		t.Errorf("Counts mismatch (-want +got):\n%s", diff)
	}
	wantLabels := []directory.LabelCount{
		{Name: "어도어", Groups: 1},
		{Name: "빅히트 뮤직", Groups: 1},
		{Name: "플레디스", Groups: 1},
	}
	if diff := cmp.Diff(wantLabels, resp.Labels); diff != "" {
		t.Errorf("Labels mismatch (-want +got):\n%s", diff)
	}
	if len(resp.Artists) != 3 || len(resp.Groups) != 3 {
		t.Errorf("Expected 3 artists and 3 groups, got %d and %d", len(resp.Artists), len(resp.Groups))
	}
}

func TestListDirectoryFilters(t *testing.T) {
	_, h := setupDirectory(t)

	tests := []struct {
		name        string
		filter      string
		wantFilter  string
		wantGroups  []string
		wantArtists int
	}{
		{"girl groups", directory.GirlGroup, directory.GirlGroup, []string{"뉴진스"}, 0},
		{"boy groups", directory.BoyGroup, directory.BoyGroup, []string{"방탄소년단", "세븐틴"}, 0},
		{"female soloists", directory.FemaleSolo, directory.FemaleSolo, []string{}, 2},
		{"label", directory.LabelPrefix + "빅히트 뮤직", directory.LabelPrefix + "빅히트 뮤직", []string{"방탄소년단"}, 0},
		{"unknown filter", "k-indie", directory.All, []string{"뉴진스", "방탄소년단", "세븐틴"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := getDirectory(t, h, "/api/ko/artists?filter="+url.QueryEscape(tt.filter))

			if resp.Filter != tt.wantFilter {
				t.Errorf("Expected filter %q, got %q", tt.wantFilter, resp.Filter)
			}
			if diff := cmp.Diff(tt.wantGroups, groupNames(resp.Groups)); diff != "" {
				t.Errorf("Groups mismatch (-want +got):\n%s", diff)
			}
			if len(resp.Artists) != tt.wantArtists {
				t.Errorf("Expected %d artists, got %d", tt.wantArtists, len(resp.Artists))
			}
			// Counts always describe the unfiltered directory
			if resp.Counts.All != 6 {
				t.Errorf("Expected total count 6, got %d", resp.Counts.All)
			}
		})
	}
}

func TestListDirectoryUpstreamDown(t *testing.T) {
	fake, h := setupDirectory(t)
	fake.SetFailing(true)

	resp := getDirectory(t, h, "/api/en/artists")

	if resp.Counts.All != 0 || len(resp.Artists) != 0 || len(resp.Groups) != 0 {
		t.Errorf("Expected an empty directory, got %+v", resp)
	}
	if resp.Labels == nil {
		t.Error("Expected labels to be an empty list, not null")
	}
}

func TestGetArtist(t *testing.T) {
	_, h := setupDirectory(t)

	req := testutil.MakeRequest("GET", "/api/en/artists/1", nil, nil)
	w := serve("GET /api/{locale}/artists/{id}", h.GetArtist, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp views.ArtistDetail
	testutil.AssertJSON(t, w, &resp)

	if resp.Name != "Minji" {
		t.Errorf("Expected name Minji, got %q", resp.Name)
	}
	if resp.StageName != "" {
		t.Errorf("Stage name equal to the name should be hidden, got %q", resp.StageName)
	}
	if resp.Bio != "Leader of NewJeans" {
		t.Errorf("Expected English bio, got %q", resp.Bio)
	}
	want := []views.Membership{{
		GroupID: 10,
		Name:    "NewJeans",
		Roles:   []string{"Leader", "Vocal"},
		Current: true,
		Href:    "/en/groups/10",
	}}
	if diff := cmp.Diff(want, resp.Groups); diff != "" {
		t.Errorf("Memberships mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{100, 101, 102}, articleIDs(resp.Articles)); diff != "" {
		t.Errorf("Articles mismatch (-want +got):\n%s", diff)
	}
}

func TestGetGroup(t *testing.T) {
	_, h := setupDirectory(t)

	req := testutil.MakeRequest("GET", "/api/ko/groups/10", nil, nil)
	w := serve("GET /api/{locale}/groups/{id}", h.GetGroup, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp views.GroupDetail
	testutil.AssertJSON(t, w, &resp)

	if resp.Name != "뉴진스" || resp.Label != "어도어" || resp.Fandom != "버니즈" {
		t.Errorf("Expected Korean names, got %q %q %q", resp.Name, resp.Label, resp.Fandom)
	}
	if resp.StatusKey != "active" {
		t.Errorf("Expected status key active, got %q", resp.StatusKey)
	}
	if len(resp.Members) != 1 || resp.Members[0].StageName != "민지" {
		t.Errorf("Expected member with stage name 민지, got %+v", resp.Members)
	}
	if resp.Articles == nil || len(resp.Articles) != 0 {
		t.Errorf("Expected no mapped articles, got %+v", resp.Articles)
	}
}

func TestDetailErrors(t *testing.T) {
	fake, h := setupDirectory(t)

	tests := []struct {
		name    string
		pattern string
		handler http.HandlerFunc
		path    string
		failing bool
		want    int
	}{
		{"artist not found", "GET /api/{locale}/artists/{id}", h.GetArtist, "/api/ko/artists/999", false, http.StatusNotFound},
		{"group not found", "GET /api/{locale}/groups/{id}", h.GetGroup, "/api/ko/groups/999", false, http.StatusNotFound},
		{"artist invalid id", "GET /api/{locale}/artists/{id}", h.GetArtist, "/api/ko/artists/x", false, http.StatusBadRequest},
		{"group bad locale", "GET /api/{locale}/groups/{id}", h.GetGroup, "/api/jp/groups/10", false, http.StatusNotFound},
		{"artist upstream down", "GET /api/{locale}/artists/{id}", h.GetArtist, "/api/ko/artists/1", true, http.StatusBadGateway},
		{"group upstream down", "GET /api/{locale}/groups/{id}", h.GetGroup, "/api/ko/groups/10", true, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake.SetFailing(tt.failing)
			req := testutil.MakeRequest("GET", tt.path, nil, nil)
			w := serve(tt.pattern, tt.handler, req)
			testutil.AssertStatus(t, w, tt.want)
		})
	}
}
