// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/danielhkuo/idolboard/models"
	"github.com/danielhkuo/idolboard/upstream"
)

// FakeUpstream is an in-memory stand-in for the content API. It serves the
// fixture records and can be switched into a failing mode where every
// request answers 503.
type FakeUpstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	articles []models.Article
	artists  []models.Artist
	groups   []models.Group
	mappings []models.EntityMapping
	nextID   int64
	failing  bool
	requests []string
}

// NewFakeUpstream starts a fake content API loaded with the fixtures
func NewFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{
		articles: FixtureArticles(),
		artists:  FixtureArtists(),
		groups:   FixtureGroups(),
		nextID:   1,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /public/articles", f.listArticles)
	mux.HandleFunc("GET /public/articles/{id}", f.getArticle)
	mux.HandleFunc("GET /public/artists", f.listArtists)
	mux.HandleFunc("GET /public/artists/{id}", f.getArtist)
	mux.HandleFunc("PATCH /public/artists/{id}", f.updateArtist)
	mux.HandleFunc("GET /public/artists/{id}/articles", f.artistArticles)
	mux.HandleFunc("GET /public/groups", f.listGroups)
	mux.HandleFunc("GET /public/groups/{id}", f.getGroup)
	mux.HandleFunc("PATCH /public/groups/{id}", f.updateGroup)
	mux.HandleFunc("GET /public/groups/{id}/articles", f.groupArticles)
	mux.HandleFunc("GET /public/search", f.search)
	mux.HandleFunc("GET /public/entity-mappings", f.listMappings)
	mux.HandleFunc("POST /public/entity-mappings", f.createMapping)
	mux.HandleFunc("DELETE /public/entity-mappings/{id}", f.deleteMapping)

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.RequestURI())
		failing := f.failing
		f.mu.Unlock()

		if failing {
			http.Error(w, "upstream down", http.StatusServiceUnavailable)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Server.Close)

	return f
}

// NewTestClient returns an uncached client for f
func NewTestClient(t *testing.T, f *FakeUpstream) *upstream.Client {
	t.Helper()

	client, err := upstream.New(f.Server.URL)
	if err != nil {
		t.Fatalf("Failed to create upstream client: %v", err)
	}
	return client
}

// SetFailing makes every following request answer 503
func (f *FakeUpstream) SetFailing(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

// SetArtists replaces the artist records
func (f *FakeUpstream) SetArtists(artists []models.Artist) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.artists = artists
}

// SetGroups replaces the group records
func (f *FakeUpstream) SetGroups(groups []models.Group) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups = groups
}

// Requests returns "METHOD /path?query" for every request received so far
func (f *FakeUpstream) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.requests)
}

// CountRequests counts requests that start with prefix
func (f *FakeUpstream) CountRequests(prefix string) int {
	n := 0
	for _, r := range f.Requests() {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

// Mappings returns the stored entity mappings
func (f *FakeUpstream) Mappings() []models.EntityMapping {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.mappings)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func limitOf(r *http.Request, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func idOf(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return slices.Clone(items)
}

func (f *FakeUpstream) listArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset, _ := strconv.Atoi(q.Get("offset"))
	text := q.Get("q")

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Article
	for _, a := range f.articles {
		if q.Get("has_thumbnail") == "true" && a.ThumbnailURL == nil {
			continue
		}
		if text != "" && !strings.Contains(models.Deref(a.TitleKo), text) && models.Deref(a.ArtistNameKo) != text {
			continue
		}
		out = append(out, a)
	}
	writeJSON(w, http.StatusOK, page(out, limitOf(r, upstream.DefaultArticleLimit), offset))
}

func (f *FakeUpstream) getArticle(w http.ResponseWriter, r *http.Request) {
	id, _ := idOf(r)

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.articles {
		if a.ID == id {
			writeJSON(w, http.StatusOK, a)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Article not found"})
}

func (f *FakeUpstream) listArtists(w http.ResponseWriter, r *http.Request) {
	priority, _ := strconv.Atoi(r.URL.Query().Get("global_priority"))

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Artist
	for _, a := range f.artists {
		if priority != 0 && (a.GlobalPriority == nil || *a.GlobalPriority != priority) {
			continue
		}
		out = append(out, a)
	}
	writeJSON(w, http.StatusOK, page(out, limitOf(r, upstream.DefaultDirectoryLimit), 0))
}

func (f *FakeUpstream) getArtist(w http.ResponseWriter, r *http.Request) {
	id, _ := idOf(r)

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.artists {
		if a.ID == id {
			writeJSON(w, http.StatusOK, a)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Artist not found"})
}

func (f *FakeUpstream) updateArtist(w http.ResponseWriter, r *http.Request) {
	id, _ := idOf(r)
	var u models.ArtistUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.artists {
		if f.artists[i].ID != id {
			continue
		}
		if u.BioKo != nil {
			f.artists[i].BioKo = u.BioKo
		}
		if u.BioEn != nil {
			f.artists[i].BioEn = u.BioEn
		}
		writeJSON(w, http.StatusOK, f.artists[i])
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Artist not found"})
}

// artistArticles matches articles by the artist's Korean name
func (f *FakeUpstream) artistArticles(w http.ResponseWriter, r *http.Request) {
	id, _ := idOf(r)

	f.mu.Lock()
	defer f.mu.Unlock()

	var name string
	for _, a := range f.artists {
		if a.ID == id {
			name = a.NameKo
		}
	}
	var out []models.Article
	for _, a := range f.articles {
		if name != "" && models.Deref(a.ArtistNameKo) == name {
			out = append(out, a)
		}
	}
	writeJSON(w, http.StatusOK, page(out, limitOf(r, upstream.DefaultArticleLimit), 0))
}

func (f *FakeUpstream) listGroups(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, page(f.groups, limitOf(r, upstream.DefaultDirectoryLimit), 0))
}

func (f *FakeUpstream) getGroup(w http.ResponseWriter, r *http.Request) {
	id, _ := idOf(r)

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, g := range f.groups {
		if g.ID == id {
			writeJSON(w, http.StatusOK, g)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Group not found"})
}

func (f *FakeUpstream) updateGroup(w http.ResponseWriter, r *http.Request) {
	id, _ := idOf(r)
	var u models.GroupUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.groups {
		if f.groups[i].ID != id {
			continue
		}
		if u.ActivityStatus != nil {
			f.groups[i].ActivityStatus = u.ActivityStatus
		}
		if u.BioKo != nil {
			f.groups[i].BioKo = u.BioKo
		}
		if u.BioEn != nil {
			f.groups[i].BioEn = u.BioEn
		}
		writeJSON(w, http.StatusOK, f.groups[i])
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Group not found"})
}

// groupArticles returns every article mapped to the group
func (f *FakeUpstream) groupArticles(w http.ResponseWriter, r *http.Request) {
	id, _ := idOf(r)

	f.mu.Lock()
	defer f.mu.Unlock()

	mapped := make(map[int64]bool)
	for _, m := range f.mappings {
		if m.GroupID != nil && *m.GroupID == id {
			mapped[m.ArticleID] = true
		}
	}
	var out []models.Article
	for _, a := range f.articles {
		if mapped[a.ID] {
			out = append(out, a)
		}
	}
	writeJSON(w, http.StatusOK, page(out, limitOf(r, upstream.DefaultArticleLimit), 0))
}

func (f *FakeUpstream) search(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")

	f.mu.Lock()
	defer f.mu.Unlock()

	res := models.SearchResult{
		Query:    text,
		Articles: []models.Article{},
		Artists:  []models.Artist{},
		Groups:   []models.Group{},
	}
	for _, a := range f.articles {
		if strings.Contains(models.Deref(a.TitleKo), text) || strings.Contains(models.Deref(a.TitleEn), text) {
			res.Articles = append(res.Articles, a)
		}
	}
	for _, a := range f.artists {
		if strings.Contains(a.NameKo, text) || strings.Contains(models.Deref(a.NameEn), text) {
			res.Artists = append(res.Artists, a)
		}
	}
	for _, g := range f.groups {
		if strings.Contains(g.NameKo, text) || strings.Contains(models.Deref(g.NameEn), text) {
			res.Groups = append(res.Groups, g)
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func (f *FakeUpstream) listMappings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	articleID, _ := strconv.ParseInt(q.Get("article_id"), 10, 64)

	f.mu.Lock()
	defer f.mu.Unlock()

	out := []models.EntityMapping{}
	for _, m := range f.mappings {
		if articleID != 0 && m.ArticleID != articleID {
			continue
		}
		out = append(out, m)
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeUpstream) createMapping(w http.ResponseWriter, r *http.Request) {
	var req models.MappingCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !slices.ContainsFunc(f.articles, func(a models.Article) bool { return a.ID == req.ArticleID }) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Article not found"})
		return
	}

	var created int64
	add := func(entity string, artistID, groupID *int64) {
		f.mappings = append(f.mappings, models.EntityMapping{
			ID:              f.nextID,
			ArticleID:       req.ArticleID,
			EntityType:      models.StringPtr(entity),
			ArtistID:        artistID,
			GroupID:         groupID,
			ConfidenceScore: req.ConfidenceScore,
		})
		f.nextID++
		created++
	}
	if req.ArtistID != nil {
		add(models.EntityArtist, req.ArtistID, nil)
	}
	if req.GroupID != nil {
		add(models.EntityGroup, nil, req.GroupID)
	}
	writeJSON(w, http.StatusOK, models.MappingCreated{Created: created})
}

func (f *FakeUpstream) deleteMapping(w http.ResponseWriter, r *http.Request) {
	id, _ := idOf(r)

	f.mu.Lock()
	defer f.mu.Unlock()

	i := slices.IndexFunc(f.mappings, func(m models.EntityMapping) bool { return m.ID == id })
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Mapping not found"})
		return
	}
	f.mappings = slices.Delete(f.mappings, i, i+1)
	writeJSON(w, http.StatusOK, models.MappingDeleted{Deleted: id})
}
