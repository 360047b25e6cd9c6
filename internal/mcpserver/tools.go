package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Shared argument declarations. Every tool accepts "client"; the pagination
// pair rides along on every list tool.
func clientArg() mcp.ToolOption {
	return mcp.WithString("client",
		mcp.Description("Client ID, name, or site domain. Defaults to the first configured client."))
}

func idArg(desc string) mcp.ToolOption {
	return mcp.WithNumber("id", mcp.Required(), mcp.Description(desc))
}

func pagingArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("per_page", mcp.Description("Results per page (default 10)")),
		mcp.WithNumber("page", mcp.Description("Page of results (default 1)")),
	}
}

func listTool(name, desc string, extra ...mcp.ToolOption) mcp.Tool {
	opts := append([]mcp.ToolOption{mcp.WithDescription(desc), clientArg()}, pagingArgs()...)
	opts = append(opts, extra...)
	return mcp.NewTool(name, opts...)
}

func registerTools(s *server.MCPServer, h *Handler) {
	registerContentTools(s, h)
	registerMediaTools(s, h)
	registerCommentTools(s, h)
	registerUserTools(s, h)
	registerTaxonomyTools(s, h)
	registerSiteTools(s, h)
	registerCommerceTools(s, h)
}

func registerContentTools(s *server.MCPServer, h *Handler) {
	postFields := []string{"title", "content", "excerpt", "status", "slug", "categories", "tags"}
	pageFields := []string{"title", "content", "excerpt", "status", "slug", "parent"}

	s.AddTool(listTool("list_posts", "List posts, optionally filtered by search text or status",
		mcp.WithString("search", mcp.Description("Free-text search")),
		mcp.WithString("status", mcp.Description("Post status filter (publish, draft, ...)")),
	), h.listHandler("/wp/v2/posts", "search", "status"))

	s.AddTool(mcp.NewTool("get_post",
		mcp.WithDescription("Get a single post by ID"),
		clientArg(), idArg("Post ID"),
	), h.getHandler("/wp/v2/posts"))

	s.AddTool(mcp.NewTool("create_post",
		mcp.WithDescription("Create a post"),
		clientArg(),
		mcp.WithString("title", mcp.Required(), mcp.Description("Post title")),
		mcp.WithString("content", mcp.Description("Post body (HTML)")),
		mcp.WithString("excerpt", mcp.Description("Post excerpt")),
		mcp.WithString("status", mcp.Description("publish, draft, or pending (default draft)")),
		mcp.WithString("slug", mcp.Description("URL slug")),
	), h.createHandler("/wp/v2/posts", postFields...))

	s.AddTool(mcp.NewTool("update_post",
		mcp.WithDescription("Update fields of an existing post"),
		clientArg(), idArg("Post ID"),
		mcp.WithString("title", mcp.Description("Post title")),
		mcp.WithString("content", mcp.Description("Post body (HTML)")),
		mcp.WithString("excerpt", mcp.Description("Post excerpt")),
		mcp.WithString("status", mcp.Description("publish, draft, or pending")),
		mcp.WithString("slug", mcp.Description("URL slug")),
	), h.updateHandler("/wp/v2/posts", postFields...))

	s.AddTool(mcp.NewTool("delete_post",
		mcp.WithDescription("Delete a post (trash by default; force for permanent)"),
		clientArg(), idArg("Post ID"),
		mcp.WithBoolean("force", mcp.Description("Skip trash and delete permanently")),
	), h.deleteHandler("/wp/v2/posts"))

	s.AddTool(listTool("list_pages", "List pages, optionally filtered by search text or status",
		mcp.WithString("search", mcp.Description("Free-text search")),
		mcp.WithString("status", mcp.Description("Page status filter")),
	), h.listHandler("/wp/v2/pages", "search", "status"))

	s.AddTool(mcp.NewTool("get_page",
		mcp.WithDescription("Get a single page by ID"),
		clientArg(), idArg("Page ID"),
	), h.getHandler("/wp/v2/pages"))

	s.AddTool(mcp.NewTool("create_page",
		mcp.WithDescription("Create a page"),
		clientArg(),
		mcp.WithString("title", mcp.Required(), mcp.Description("Page title")),
		mcp.WithString("content", mcp.Description("Page body (HTML)")),
		mcp.WithString("status", mcp.Description("publish, draft, or pending (default draft)")),
		mcp.WithString("slug", mcp.Description("URL slug")),
		mcp.WithNumber("parent", mcp.Description("Parent page ID")),
	), h.createHandler("/wp/v2/pages", pageFields...))

	s.AddTool(mcp.NewTool("update_page",
		mcp.WithDescription("Update fields of an existing page"),
		clientArg(), idArg("Page ID"),
		mcp.WithString("title", mcp.Description("Page title")),
		mcp.WithString("content", mcp.Description("Page body (HTML)")),
		mcp.WithString("status", mcp.Description("publish, draft, or pending")),
		mcp.WithString("slug", mcp.Description("URL slug")),
	), h.updateHandler("/wp/v2/pages", pageFields...))

	s.AddTool(mcp.NewTool("delete_page",
		mcp.WithDescription("Delete a page"),
		clientArg(), idArg("Page ID"),
		mcp.WithBoolean("force", mcp.Description("Skip trash and delete permanently")),
	), h.deleteHandler("/wp/v2/pages"))

	s.AddTool(mcp.NewTool("find_content",
		mcp.WithDescription("Locate content by ID, slug, URL, or free text. Tries direct ID lookup, the site's special pages (homepage, blog page, privacy policy), then a slug/text search across posts and pages."),
		clientArg(),
		mcp.WithNumber("id", mcp.Description("Numeric content ID")),
		mcp.WithString("slug", mcp.Description("URL slug")),
		mcp.WithString("url", mcp.Description("Full URL; the slug is derived from its last path segment")),
		mcp.WithString("search", mcp.Description("Free-text search")),
	), h.findContent)
}

func registerMediaTools(s *server.MCPServer, h *Handler) {
	s.AddTool(listTool("list_media", "List media library items",
		mcp.WithString("search", mcp.Description("Free-text search")),
		mcp.WithString("media_type", mcp.Description("image, video, audio, or application")),
	), h.listHandler("/wp/v2/media", "search", "media_type"))

	s.AddTool(mcp.NewTool("get_media",
		mcp.WithDescription("Get a media item by ID"),
		clientArg(), idArg("Media ID"),
	), h.getHandler("/wp/v2/media"))

	s.AddTool(mcp.NewTool("delete_media",
		mcp.WithDescription("Delete a media item"),
		clientArg(), idArg("Media ID"),
		mcp.WithBoolean("force", mcp.Description("Media deletion always requires force in WordPress")),
	), h.deleteHandler("/wp/v2/media"))
}

func registerCommentTools(s *server.MCPServer, h *Handler) {
	s.AddTool(listTool("list_comments", "List comments",
		mcp.WithString("search", mcp.Description("Free-text search")),
		mcp.WithString("status", mcp.Description("approve, hold, spam, or trash")),
		mcp.WithString("post", mcp.Description("Limit to a post ID")),
	), h.listHandler("/wp/v2/comments", "search", "status", "post"))

	s.AddTool(mcp.NewTool("get_comment",
		mcp.WithDescription("Get a comment by ID"),
		clientArg(), idArg("Comment ID"),
	), h.getHandler("/wp/v2/comments"))

	s.AddTool(mcp.NewTool("create_comment",
		mcp.WithDescription("Create a comment on a post"),
		clientArg(),
		mcp.WithNumber("post", mcp.Required(), mcp.Description("Post ID to comment on")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Comment text")),
		mcp.WithString("author_name", mcp.Description("Display name for the comment author")),
		mcp.WithString("author_email", mcp.Description("Email for the comment author")),
	), h.createHandler("/wp/v2/comments", "post", "content", "author_name", "author_email"))

	s.AddTool(mcp.NewTool("delete_comment",
		mcp.WithDescription("Delete a comment"),
		clientArg(), idArg("Comment ID"),
		mcp.WithBoolean("force", mcp.Description("Skip trash and delete permanently")),
	), h.deleteHandler("/wp/v2/comments"))
}

func registerUserTools(s *server.MCPServer, h *Handler) {
	s.AddTool(listTool("list_users", "List site users",
		mcp.WithString("search", mcp.Description("Free-text search")),
		mcp.WithString("roles", mcp.Description("Comma-separated role filter")),
	), h.listHandler("/wp/v2/users", "search", "roles"))

	s.AddTool(mcp.NewTool("get_user",
		mcp.WithDescription("Get a user by ID"),
		clientArg(), idArg("User ID"),
	), h.getHandler("/wp/v2/users"))
}

func registerTaxonomyTools(s *server.MCPServer, h *Handler) {
	s.AddTool(listTool("list_categories", "List categories",
		mcp.WithString("search", mcp.Description("Free-text search")),
	), h.listHandler("/wp/v2/categories", "search"))

	s.AddTool(mcp.NewTool("create_category",
		mcp.WithDescription("Create a category"),
		clientArg(),
		mcp.WithString("name", mcp.Required(), mcp.Description("Category name")),
		mcp.WithString("description", mcp.Description("Category description")),
		mcp.WithNumber("parent", mcp.Description("Parent category ID")),
	), h.createHandler("/wp/v2/categories", "name", "description", "parent"))

	s.AddTool(listTool("list_tags", "List tags",
		mcp.WithString("search", mcp.Description("Free-text search")),
	), h.listHandler("/wp/v2/tags", "search"))

	s.AddTool(mcp.NewTool("create_tag",
		mcp.WithDescription("Create a tag"),
		clientArg(),
		mcp.WithString("name", mcp.Required(), mcp.Description("Tag name")),
		mcp.WithString("description", mcp.Description("Tag description")),
	), h.createHandler("/wp/v2/tags", "name", "description"))
}

func registerSiteTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("get_site_settings",
		mcp.WithDescription("Get the site settings document"),
		clientArg(),
	), h.getSettings)

	s.AddTool(mcp.NewTool("get_site_data",
		mcp.WithDescription("Get site settings plus the special pages (homepage, blog page, privacy policy) in one call"),
		clientArg(),
	), h.siteData)

	s.AddTool(listTool("list_plugins", "List installed plugins",
		mcp.WithString("status", mcp.Description("active or inactive")),
	), h.listHandler("/wp/v2/plugins", "status"))

	s.AddTool(mcp.NewTool("list_clients",
		mcp.WithDescription("List the WordPress sites this gateway is configured for"),
	), h.listClients)

	s.AddTool(mcp.NewTool("refresh_clients",
		mcp.WithDescription("Invalidate the cached client list so the next lookup reloads from the database"),
	), h.refreshClients)
}

func registerCommerceTools(s *server.MCPServer, h *Handler) {
	productFields := []string{"name", "type", "regular_price", "sale_price", "description",
		"short_description", "sku", "stock_quantity", "status"}

	s.AddTool(listTool("list_products", "List WooCommerce products",
		mcp.WithString("search", mcp.Description("Free-text search")),
		mcp.WithString("status", mcp.Description("publish, draft, or pending")),
		mcp.WithString("sku", mcp.Description("Exact SKU filter")),
	), h.listHandler("/wc/v3/products", "search", "status", "sku"))

	s.AddTool(mcp.NewTool("get_product",
		mcp.WithDescription("Get a WooCommerce product by ID"),
		clientArg(), idArg("Product ID"),
	), h.getHandler("/wc/v3/products"))

	s.AddTool(mcp.NewTool("create_product",
		mcp.WithDescription("Create a WooCommerce product"),
		clientArg(),
		mcp.WithString("name", mcp.Required(), mcp.Description("Product name")),
		mcp.WithString("regular_price", mcp.Description("Regular price, as a string per the WooCommerce API")),
		mcp.WithString("description", mcp.Description("Product description (HTML)")),
		mcp.WithString("sku", mcp.Description("Stock keeping unit")),
	), h.createHandler("/wc/v3/products", productFields...))

	s.AddTool(mcp.NewTool("update_product",
		mcp.WithDescription("Update a WooCommerce product"),
		clientArg(), idArg("Product ID"),
		mcp.WithString("name", mcp.Description("Product name")),
		mcp.WithString("regular_price", mcp.Description("Regular price")),
		mcp.WithString("sale_price", mcp.Description("Sale price")),
		mcp.WithNumber("stock_quantity", mcp.Description("Stock on hand")),
	), h.updateHandler("/wc/v3/products", productFields...))

	s.AddTool(listTool("list_orders", "List WooCommerce orders",
		mcp.WithString("status", mcp.Description("Order status filter (processing, completed, ...)")),
		mcp.WithString("customer", mcp.Description("Customer ID filter")),
	), h.listHandler("/wc/v3/orders", "status", "customer"))

	s.AddTool(mcp.NewTool("get_order",
		mcp.WithDescription("Get a WooCommerce order by ID"),
		clientArg(), idArg("Order ID"),
	), h.getHandler("/wc/v3/orders"))

	s.AddTool(mcp.NewTool("update_order",
		mcp.WithDescription("Update a WooCommerce order (typically its status)"),
		clientArg(), idArg("Order ID"),
		mcp.WithString("status", mcp.Description("New order status")),
		mcp.WithString("customer_note", mcp.Description("Note shown to the customer")),
	), h.updateHandler("/wc/v3/orders", "status", "customer_note"))
}
