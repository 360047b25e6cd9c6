// Package content locates WordPress content from sparse, user-supplied
// locators. End users reference content ambiguously — a "page" might be the
// configured front page, an ordinary page, or a post — so a single ordered
// cascade of lookups spares callers from WordPress's content-type taxonomy.
package content

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/Davidi18/wordpress-mcp/internal/wordpress"
)

// Special page tags on a Resolved match.
const (
	SpecialHomepage      = "homepage"
	SpecialBlogPage      = "blog_page"
	SpecialPrivacyPolicy = "privacy_policy"
)

// Locator is one content search request. Exactly the supplied fields are
// used; the cascade defines precedence when several are present.
type Locator struct {
	ID     int    `json:"id,omitempty"`
	Slug   string `json:"slug,omitempty"`
	URL    string `json:"url,omitempty"`
	Search string `json:"search,omitempty"`
}

// Empty reports whether no locator field was supplied.
func (l Locator) Empty() bool {
	return l.ID == 0 && l.Slug == "" && l.URL == "" && l.Search == ""
}

// effectiveSlug returns the slug, deriving it from the URL's last non-empty
// path segment when no explicit slug was given.
func (l Locator) effectiveSlug() string {
	if l.Slug != "" {
		return l.Slug
	}
	return slugFromURL(l.URL)
}

func slugFromURL(rawURL string) string {
	trimmed := strings.Trim(rawURL, "/")
	if trimmed == "" {
		return ""
	}
	parts := strings.Split(trimmed, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// SearchParams echoes the normalized locator back on a miss, for diagnostics.
type SearchParams struct {
	ID     int    `json:"id,omitempty"`
	Slug   string `json:"slug,omitempty"`
	Search string `json:"search,omitempty"`
}

// Resolved is the cascade result.
type Resolved struct {
	Found         bool          `json:"found"`
	Type          string        `json:"type,omitempty"`
	ID            int           `json:"id,omitempty"`
	Title         string        `json:"title,omitempty"`
	Slug          string        `json:"slug,omitempty"`
	Content       string        `json:"content,omitempty"`
	URL           string        `json:"url,omitempty"`
	Date          string        `json:"date,omitempty"`
	Status        string        `json:"status,omitempty"`
	SpecialType   string        `json:"specialType,omitempty"`
	IsSpecialPage bool          `json:"isSpecialPage,omitempty"`
	SearchParams  *SearchParams `json:"searchParams,omitempty"`
}

// Resolver runs the cascade against one tenant's WordPress API.
type Resolver struct {
	wp     *wordpress.Client
	logger *slog.Logger
}

// NewResolver builds a resolver for one tenant.
func NewResolver(wp *wordpress.Client, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{wp: wp, logger: logger}
}

// probe is one lookup strategy. A nil result means "no match, try the next";
// upstream failures are swallowed inside the probe, since only total
// exhaustion is a reportable miss.
type probe func(ctx context.Context) *Resolved

// first evaluates probes in order and returns the first hit.
func first(ctx context.Context, probes []probe) *Resolved {
	for _, p := range probes {
		if r := p(ctx); r != nil {
			return r
		}
	}
	return nil
}

// Find runs the cascade: direct ID lookup (post, then page), special-page
// match, slug/search query (posts, then pages). The first hit wins.
func (r *Resolver) Find(ctx context.Context, loc Locator) *Resolved {
	slug := loc.effectiveSlug()

	var probes []probe
	if loc.ID > 0 {
		probes = append(probes, r.postByID(loc.ID), r.pageByID(loc.ID))
	}
	// Special pages are only checked when the caller gave a slug-like
	// locator and no free-text search.
	if slug != "" && loc.Search == "" {
		probes = append(probes, r.specialPage(slug))
	}
	if slug != "" || loc.Search != "" {
		probes = append(probes,
			r.query("post", slug, loc.Search),
			r.query("page", slug, loc.Search),
		)
	}

	if res := first(ctx, probes); res != nil {
		return res
	}
	return &Resolved{
		Found:        false,
		SearchParams: &SearchParams{ID: loc.ID, Slug: slug, Search: loc.Search},
	}
}

func (r *Resolver) postByID(id int) probe {
	return func(ctx context.Context) *Resolved {
		post, err := r.wp.GetPost(ctx, id)
		if err != nil {
			return nil
		}
		return fromContent("post", post)
	}
}

func (r *Resolver) pageByID(id int) probe {
	return func(ctx context.Context) *Resolved {
		page, err := r.wp.GetPage(ctx, id)
		if err != nil {
			return nil
		}
		return fromContent("page", page)
	}
}

// specialPage checks the site-settings-designated pages: static homepage,
// posts-listing page, privacy-policy page. Settings or page fetch failures
// are a miss, not an error.
func (r *Resolver) specialPage(slug string) probe {
	return func(ctx context.Context) *Resolved {
		settings, err := r.wp.GetSettings(ctx)
		if err != nil {
			r.logger.Debug("site settings unavailable for special-page check",
				slog.String("error", err.Error()))
			return nil
		}

		checks := []struct {
			pageID      int
			specialType string
			literals    []string
			enabled     bool
		}{
			{settings.PageOnFront, SpecialHomepage, []string{"home", "homepage"},
				settings.ShowOnFront == "page" && settings.PageOnFront > 0},
			{settings.PageForPosts, SpecialBlogPage, []string{"blog"},
				settings.PageForPosts > 0},
			{settings.PagePrivacyPolicy, SpecialPrivacyPolicy, []string{"privacy", "privacy-policy"},
				settings.PagePrivacyPolicy > 0},
		}

		for _, check := range checks {
			if !check.enabled {
				continue
			}
			page, err := r.wp.GetPage(ctx, check.pageID)
			if err != nil {
				continue
			}
			if page.Slug == slug || slices.Contains(check.literals, slug) {
				res := fromContent("page", page)
				res.SpecialType = check.specialType
				res.IsSpecialPage = true
				return res
			}
		}
		return nil
	}
}

func (r *Resolver) query(contentType, slug, search string) probe {
	return func(ctx context.Context) *Resolved {
		var (
			results []wordpress.Content
			err     error
		)
		if contentType == "post" {
			results, err = r.wp.QueryPosts(ctx, slug, search)
		} else {
			results, err = r.wp.QueryPages(ctx, slug, search)
		}
		if err != nil || len(results) == 0 {
			return nil
		}
		return fromContent(contentType, &results[0])
	}
}

func fromContent(contentType string, c *wordpress.Content) *Resolved {
	return &Resolved{
		Found:   true,
		Type:    contentType,
		ID:      c.ID,
		Title:   c.Title.Rendered,
		Slug:    c.Slug,
		Content: c.Content.Rendered,
		URL:     c.Link,
		Date:    c.Date,
		Status:  c.Status,
	}
}
