// Package mcpserver exposes the gateway's tool catalog over the Model
// Context Protocol. Every tool is a thin parameter-mapping wrapper around a
// single upstream WordPress or WooCommerce REST call.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Davidi18/wordpress-mcp/internal/content"
	"github.com/Davidi18/wordpress-mcp/internal/tenant"
	"github.com/Davidi18/wordpress-mcp/internal/wordpress"
)

// Handler carries the dependencies the tool handlers share.
type Handler struct {
	resolver *tenant.Resolver
	logger   *slog.Logger
}

// NewHandler builds the tool handler set.
func NewHandler(resolver *tenant.Resolver, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{resolver: resolver, logger: logger}
}

// client resolves the request's "client" argument into an upstream client.
func (h *Handler) client(ctx context.Context, req mcp.CallToolRequest) (*wordpress.Client, error) {
	rec, err := h.resolver.Resolve(ctx, req.GetString("client", ""))
	if err != nil {
		return nil, err
	}
	return wordpress.New(rec)
}

// rawResult wraps an upstream response as a tool result: a text block with
// the JSON plus the raw document as structured content.
func rawResult(raw json.RawMessage) *mcp.CallToolResult {
	return mcp.NewToolResultStructured(raw, string(raw))
}

// jsonResult serializes v as both text and structured content.
func jsonResult(v any) *mcp.CallToolResult {
	text, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultStructured(v, string(text))
}

// listHandler builds a handler that GETs a collection path, forwarding the
// named string filters plus per_page/page pagination.
func (h *Handler) listHandler(path string, filters ...string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wp, err := h.client(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		query := url.Values{}
		for _, f := range filters {
			if v := req.GetString(f, ""); v != "" {
				query.Set(f, v)
			}
		}
		query.Set("per_page", strconv.Itoa(req.GetInt("per_page", 10)))
		query.Set("page", strconv.Itoa(req.GetInt("page", 1)))

		raw, err := wp.Do(ctx, http.MethodGet, path, query, nil)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return rawResult(raw), nil
	}
}

// getHandler builds a handler that GETs a single entity by required id.
func (h *Handler) getHandler(path string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		wp, err := h.client(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		raw, err := wp.Do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", path, id), nil, nil)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return rawResult(raw), nil
	}
}

// createHandler builds a handler that POSTs the named fields as the body.
func (h *Handler) createHandler(path string, fields ...string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wp, err := h.client(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		raw, err := wp.Do(ctx, http.MethodPost, path, nil, pickFields(req, fields))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return rawResult(raw), nil
	}
}

// updateHandler builds a handler that POSTs the named fields to <path>/<id>.
// WordPress accepts POST for partial updates.
func (h *Handler) updateHandler(path string, fields ...string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		wp, err := h.client(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		raw, err := wp.Do(ctx, http.MethodPost, fmt.Sprintf("%s/%d", path, id), nil, pickFields(req, fields))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return rawResult(raw), nil
	}
}

// deleteHandler builds a handler that DELETEs <path>/<id>, honoring an
// optional boolean force argument.
func (h *Handler) deleteHandler(path string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		wp, err := h.client(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		query := url.Values{}
		if req.GetBool("force", false) {
			query.Set("force", "true")
		}
		raw, err := wp.Do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", path, id), query, nil)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return rawResult(raw), nil
	}
}

// pickFields collects the named arguments that were actually supplied.
func pickFields(req mcp.CallToolRequest, fields []string) map[string]any {
	args := req.GetArguments()
	body := make(map[string]any)
	for _, f := range fields {
		if v, ok := args[f]; ok {
			body[f] = v
		}
	}
	return body
}

// findContent runs the content resolution cascade.
func (h *Handler) findContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	loc := content.Locator{
		ID:     req.GetInt("id", 0),
		Slug:   req.GetString("slug", ""),
		URL:    req.GetString("url", ""),
		Search: req.GetString("search", ""),
	}
	if loc.Empty() {
		return mcp.NewToolResultError("at least one of id, slug, url, or search is required"), nil
	}
	wp, err := h.client(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resolver := content.NewResolver(wp, h.logger)
	return jsonResult(resolver.Find(ctx, loc)), nil
}

// getSettings returns the raw site settings document.
func (h *Handler) getSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	wp, err := h.client(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := wp.Do(ctx, http.MethodGet, "/wp/v2/settings", nil, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return rawResult(raw), nil
}

// siteData returns site settings plus the three special pages in one call.
func (h *Handler) siteData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	wp, err := h.client(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := CollectSiteData(ctx, wp)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(data), nil
}

// listClients lists the configured clients without credentials.
func (h *Handler) listClients(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(ClientSummaries(h.resolver.Known(ctx))), nil
}

// refreshClients invalidates the cached client list.
func (h *Handler) refreshClients(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.resolver.Invalidate()
	return mcp.NewToolResultText("client cache invalidated; next lookup will reload from the database"), nil
}

// ClientSummary is the credential-free projection of a tenant record.
type ClientSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	WooCommerce bool   `json:"woocommerce"`
}

// ClientSummaries projects records for listing surfaces.
func ClientSummaries(records []tenant.Record) []ClientSummary {
	summaries := make([]ClientSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, ClientSummary{
			ID:          r.ID,
			Name:        r.Name,
			URL:         r.BaseURL,
			Source:      r.Source,
			WooCommerce: r.HasWooCommerce(),
		})
	}
	return summaries
}

// SiteData bundles settings with the designated special pages.
type SiteData struct {
	Settings     *wordpress.Settings `json:"settings"`
	SpecialPages map[string]any      `json:"specialPages"`
}

// CollectSiteData fetches settings and resolves each configured special
// page. Individual page failures are skipped, not fatal.
func CollectSiteData(ctx context.Context, wp *wordpress.Client) (*SiteData, error) {
	settings, err := wp.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	pages := map[string]any{}
	add := func(key string, id int) {
		if id <= 0 {
			return
		}
		if page, err := wp.GetPage(ctx, id); err == nil {
			pages[key] = page
		}
	}
	if settings.ShowOnFront == "page" {
		add("homepage", settings.PageOnFront)
	}
	add("blog_page", settings.PageForPosts)
	add("privacy_policy", settings.PagePrivacyPolicy)

	return &SiteData{Settings: settings, SpecialPages: pages}, nil
}
