package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davidi18/wordpress-mcp/internal/tenant"
)

func testRecord(baseURL string) *tenant.Record {
	return &tenant.Record{
		ID:          "test",
		BaseURL:     baseURL,
		Username:    "admin",
		AppPassword: "app-pass",
	}
}

func TestRestBase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com", "https://example.com/wp-json"},
		{"https://example.com/", "https://example.com/wp-json"},
		{"https://example.com/wp-json", "https://example.com/wp-json"},
		{"https://example.com/wp-json/", "https://example.com/wp-json"},
	}
	for _, tt := range tests {
		if got := restBase(tt.in); got != tt.want {
			t.Errorf("restBase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDoBasicAuth(t *testing.T) {
	var gotUser, gotPass string
	var gotAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotAuth = r.BasicAuth()
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := New(testRecord(srv.URL))
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodGet, "/wp/v2/posts", nil, nil)
	require.NoError(t, err)
	require.True(t, gotAuth)
	assert.Equal(t, "admin", gotUser)
	assert.Equal(t, "app-pass", gotPass)
}

func TestDoUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"rest_post_invalid_id"}`))
	}))
	defer srv.Close()

	c, err := New(testRecord(srv.URL))
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodGet, "/wp/v2/posts/999", nil, nil)
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusNotFound, ue.StatusCode)
	assert.Contains(t, ue.Body, "rest_post_invalid_id")
}

func TestDoUnparseableSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c, err := New(testRecord(srv.URL))
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodGet, "/wp/v2/posts", nil, nil)
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue, "a 2xx with unparseable JSON is an upstream contract violation")
}

func TestWooCommerceWithoutCredentials(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer srv.Close()

	c, err := New(testRecord(srv.URL))
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodGet, "/wc/v3/products", nil, nil)
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Body, "WooCommerce")
	assert.False(t, called, "the request must fail before any network call")
}

func TestWooCommerceQueryCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ck_1", r.URL.Query().Get("consumer_key"))
		assert.Equal(t, "cs_2", r.URL.Query().Get("consumer_secret"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rec := testRecord(srv.URL)
	rec.WCKey = "ck_1"
	rec.WCSecret = "cs_2"
	c, err := New(rec)
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodGet, "/wc/v3/products", nil, nil)
	require.NoError(t, err)
}

func TestNewRejectsUnusableRecord(t *testing.T) {
	_, err := New(&tenant.Record{ID: "broken", BaseURL: "https://x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestGetDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(Content{ID: 42, Slug: "hello", Title: Rendered{Rendered: "Hello"}})
	}))
	defer srv.Close()

	c, err := New(testRecord(srv.URL))
	require.NoError(t, err)

	post, err := c.GetPost(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, post.ID)
	assert.Equal(t, "Hello", post.Title.Rendered)
}
