package wordpress

import (
	"context"
	"fmt"
	"net/url"
)

// GetPost fetches a single post by ID.
func (c *Client) GetPost(ctx context.Context, id int) (*Content, error) {
	var post Content
	if err := c.Get(ctx, fmt.Sprintf("/wp/v2/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPage fetches a single page by ID.
func (c *Client) GetPage(ctx context.Context, id int) (*Content, error) {
	var page Content
	if err := c.Get(ctx, fmt.Sprintf("/wp/v2/pages/%d", id), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// QueryPosts lists posts filtered by slug or free-text search.
func (c *Client) QueryPosts(ctx context.Context, slug, search string) ([]Content, error) {
	return c.queryContent(ctx, "/wp/v2/posts", slug, search)
}

// QueryPages lists pages filtered by slug or free-text search.
func (c *Client) QueryPages(ctx context.Context, slug, search string) ([]Content, error) {
	return c.queryContent(ctx, "/wp/v2/pages", slug, search)
}

func (c *Client) queryContent(ctx context.Context, path, slug, search string) ([]Content, error) {
	query := url.Values{}
	if slug != "" {
		query.Set("slug", slug)
	} else if search != "" {
		query.Set("search", search)
	}
	var results []Content
	if err := c.Get(ctx, path, query, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetSettings fetches the site settings document.
func (c *Client) GetSettings(ctx context.Context) (*Settings, error) {
	var settings Settings
	if err := c.Get(ctx, "/wp/v2/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
