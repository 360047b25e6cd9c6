package wordpress

// Rendered is WordPress's {rendered: "..."} wrapper on title/content/excerpt
// fields.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Content is a post or page as returned by /wp/v2/posts and /wp/v2/pages.
type Content struct {
	ID      int      `json:"id"`
	Date    string   `json:"date"`
	Slug    string   `json:"slug"`
	Status  string   `json:"status"`
	Link    string   `json:"link"`
	Title   Rendered `json:"title"`
	Content Rendered `json:"content"`
	Excerpt Rendered `json:"excerpt"`
}

// Settings is the site-settings document from /wp/v2/settings. The three
// page references designate the "special pages" that ordinary content
// listings never surface.
type Settings struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	URL               string `json:"url"`
	ShowOnFront       string `json:"show_on_front"`
	PageOnFront       int    `json:"page_on_front"`
	PageForPosts      int    `json:"page_for_posts"`
	PagePrivacyPolicy int    `json:"wp_page_for_privacy_policy"`
}
