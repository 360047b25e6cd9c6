package mcpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davidi18/wordpress-mcp/internal/tenant"
)

func callReq(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func envResolver(siteURL string) *tenant.Resolver {
	env := map[string]string{
		"WP_API_URL":      siteURL,
		"WP_API_USERNAME": "admin",
		"WP_API_PASSWORD": "pass",
	}
	return tenant.NewResolver(nil, func(k string) string { return env[k] },
		slog.New(slog.DiscardHandler))
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok, "first content block should be text")
	return tc.Text
}

func TestListHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		assert.Equal(t, "draft", r.URL.Query().Get("status"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[{"id":1}]`))
	}))
	defer srv.Close()

	h := NewHandler(envResolver(srv.URL), slog.New(slog.DiscardHandler))
	res, err := h.listHandler("/wp/v2/posts", "search", "status")(context.Background(),
		callReq("list_posts", map[string]any{"status": "draft", "per_page": float64(5)}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.JSONEq(t, `[{"id":1}]`, textOf(t, res))
}

func TestGetHandlerRequiresID(t *testing.T) {
	h := NewHandler(envResolver("https://example.com"), slog.New(slog.DiscardHandler))
	res, err := h.getHandler("/wp/v2/posts")(context.Background(), callReq("get_post", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestCreateHandlerPicksDeclaredFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":10}`))
	}))
	defer srv.Close()

	h := NewHandler(envResolver(srv.URL), slog.New(slog.DiscardHandler))
	res, err := h.createHandler("/wp/v2/posts", "title", "status")(context.Background(),
		callReq("create_post", map[string]any{
			"title":      "Hello",
			"status":     "draft",
			"client":     "default",
			"irrelevant": "dropped",
		}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, map[string]any{"title": "Hello", "status": "draft"}, gotBody)
}

func TestUnknownClientSurfacesKnownList(t *testing.T) {
	h := NewHandler(envResolver("https://main.example.com"), slog.New(slog.DiscardHandler))
	res, err := h.listHandler("/wp/v2/posts")(context.Background(),
		callReq("list_posts", map[string]any{"client": "nosuch"}))
	require.NoError(t, err)
	require.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "main.example.com")
}

func TestFindContentRequiresLocator(t *testing.T) {
	h := NewHandler(envResolver("https://example.com"), slog.New(slog.DiscardHandler))
	res, err := h.findContent(context.Background(), callReq("find_content", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestListClients(t *testing.T) {
	h := NewHandler(envResolver("https://main.example.com"), slog.New(slog.DiscardHandler))
	res, err := h.listClients(context.Background(), callReq("list_clients", nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var summaries []ClientSummary
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "default", summaries[0].ID)
	assert.Equal(t, "env", summaries[0].Source)
	assert.Equal(t, "https://main.example.com", summaries[0].URL)
	assert.NotContains(t, textOf(t, res), "pass", "summaries must not leak credentials")
}
