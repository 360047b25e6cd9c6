package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davidi18/wordpress-mcp/internal/tenant"
	"github.com/Davidi18/wordpress-mcp/internal/wordpress"
)

// fakeSite is an httptest stand-in for the WordPress REST API.
type fakeSite struct {
	posts    map[int]map[string]any
	pages    map[int]map[string]any
	settings map[string]any
	requests []string
}

func newFakeSite() *fakeSite {
	return &fakeSite{
		posts:    map[int]map[string]any{},
		pages:    map[int]map[string]any{},
		settings: map[string]any{"show_on_front": "posts"},
	}
}

func contentDoc(id int, slug, title string) map[string]any {
	return map[string]any{
		"id":      id,
		"slug":    slug,
		"status":  "publish",
		"date":    "2025-06-01T10:00:00",
		"link":    fmt.Sprintf("https://example.com/%s/", slug),
		"title":   map[string]any{"rendered": title},
		"content": map[string]any{"rendered": "<p>" + title + "</p>"},
		"excerpt": map[string]any{"rendered": ""},
	}
}

func (f *fakeSite) handler() http.Handler {
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}
	notFound := func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"rest_not_found"}`))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r.URL.Path)
		path := strings.TrimPrefix(r.URL.Path, "/wp-json")
		switch {
		case path == "/wp/v2/settings":
			writeJSON(w, f.settings)
		case strings.HasPrefix(path, "/wp/v2/posts/"):
			var id int
			fmt.Sscanf(path, "/wp/v2/posts/%d", &id)
			if doc, ok := f.posts[id]; ok {
				writeJSON(w, doc)
				return
			}
			notFound(w)
		case strings.HasPrefix(path, "/wp/v2/pages/"):
			var id int
			fmt.Sscanf(path, "/wp/v2/pages/%d", &id)
			if doc, ok := f.pages[id]; ok {
				writeJSON(w, doc)
				return
			}
			notFound(w)
		case path == "/wp/v2/posts":
			writeJSON(w, f.matchQuery(f.posts, r.URL.Query().Get("slug"), r.URL.Query().Get("search")))
		case path == "/wp/v2/pages":
			writeJSON(w, f.matchQuery(f.pages, r.URL.Query().Get("slug"), r.URL.Query().Get("search")))
		default:
			notFound(w)
		}
	})
}

func (f *fakeSite) matchQuery(docs map[int]map[string]any, slug, search string) []map[string]any {
	results := []map[string]any{}
	for _, doc := range docs {
		s, _ := doc["slug"].(string)
		title := doc["title"].(map[string]any)["rendered"].(string)
		if slug != "" && s == slug {
			results = append(results, doc)
		} else if slug == "" && search != "" && strings.Contains(strings.ToLower(title), strings.ToLower(search)) {
			results = append(results, doc)
		}
	}
	return results
}

func newResolver(t *testing.T, site *fakeSite) (*Resolver, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(site.handler())
	t.Cleanup(srv.Close)

	wp, err := wordpress.New(&tenant.Record{
		ID: "test", BaseURL: srv.URL, Username: "u", AppPassword: "p",
	})
	require.NoError(t, err)
	return NewResolver(wp, slog.New(slog.DiscardHandler)), srv
}

func TestFindByID(t *testing.T) {
	site := newFakeSite()
	site.posts[42] = contentDoc(42, "hello-world", "Hello World")
	r, _ := newResolver(t, site)

	res := r.Find(context.Background(), Locator{ID: 42})
	require.True(t, res.Found)
	assert.Equal(t, "post", res.Type)
	assert.Equal(t, 42, res.ID)
	assert.Equal(t, "Hello World", res.Title)

	for _, path := range site.requests {
		assert.NotContains(t, path, "settings", "an ID hit must not reach the special-page step")
	}
}

func TestFindByIDFallsToPage(t *testing.T) {
	site := newFakeSite()
	site.pages[7] = contentDoc(7, "about", "About Us")
	r, _ := newResolver(t, site)

	res := r.Find(context.Background(), Locator{ID: 7})
	require.True(t, res.Found)
	assert.Equal(t, "page", res.Type)
}

func TestFindSpecialHomepage(t *testing.T) {
	site := newFakeSite()
	site.settings = map[string]any{"show_on_front": "page", "page_on_front": 2}
	site.pages[2] = contentDoc(2, "front", "Welcome")
	r, _ := newResolver(t, site)

	res := r.Find(context.Background(), Locator{Slug: "home"})
	require.True(t, res.Found)
	assert.True(t, res.IsSpecialPage)
	assert.Equal(t, SpecialHomepage, res.SpecialType)
	assert.Equal(t, 2, res.ID)
}

func TestFindSpecialPrivacyPolicy(t *testing.T) {
	site := newFakeSite()
	site.settings = map[string]any{"wp_page_for_privacy_policy": 9}
	site.pages[9] = contentDoc(9, "privacy-policy", "Privacy Policy")
	r, _ := newResolver(t, site)

	res := r.Find(context.Background(), Locator{Slug: "privacy"})
	require.True(t, res.Found)
	assert.Equal(t, SpecialPrivacyPolicy, res.SpecialType)
}

func TestFindSearchSkipsSpecialPages(t *testing.T) {
	site := newFakeSite()
	site.settings = map[string]any{"show_on_front": "page", "page_on_front": 2}
	site.pages[2] = contentDoc(2, "front", "Welcome")
	site.posts[3] = contentDoc(3, "welcome-post", "Welcome Post")
	r, _ := newResolver(t, site)

	res := r.Find(context.Background(), Locator{Search: "welcome"})
	require.True(t, res.Found)
	assert.Equal(t, "post", res.Type)
	for _, path := range site.requests {
		assert.NotContains(t, path, "settings", "free-text search must skip the special-page step")
	}
}

func TestFindBySlugPostsBeforePages(t *testing.T) {
	site := newFakeSite()
	site.posts[5] = contentDoc(5, "shared-slug", "Post Version")
	site.pages[6] = contentDoc(6, "shared-slug", "Page Version")
	r, _ := newResolver(t, site)

	res := r.Find(context.Background(), Locator{Slug: "shared-slug"})
	require.True(t, res.Found)
	assert.Equal(t, "post", res.Type, "posts are queried before pages")
}

func TestFindSlugFromURL(t *testing.T) {
	site := newFakeSite()
	site.pages[8] = contentDoc(8, "contact", "Contact")
	r, _ := newResolver(t, site)

	res := r.Find(context.Background(), Locator{URL: "https://example.com/company/contact/"})
	require.True(t, res.Found)
	assert.Equal(t, "contact", res.Slug)
}

func TestFindMissEchoesParams(t *testing.T) {
	site := newFakeSite()
	r, _ := newResolver(t, site)

	res := r.Find(context.Background(), Locator{Slug: "nonexistent-xyz"})
	require.False(t, res.Found)
	require.NotNil(t, res.SearchParams)
	assert.Equal(t, "nonexistent-xyz", res.SearchParams.Slug)
	assert.Empty(t, res.SearchParams.Search)
	assert.Zero(t, res.SearchParams.ID)
}

func TestSlugFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/a/b/c", "c"},
		{"https://example.com/a/b/", "b"},
		{"/just-a-path/", "just-a-path"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := slugFromURL(tt.in); got != tt.want {
			t.Errorf("slugFromURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
