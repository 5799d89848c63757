package dto

// BlogPostDTO exposes the fields the site renders for a blog post.
// We intentionally hide the workflow fields (status, statusColor); the
// published filter has already been applied by the service.
type BlogPostDTO struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	FeaturedImage string    `json:"featuredImage"`
	Category      string    `json:"category"`
	Author        AuthorDTO `json:"author"`
	PublishedDate string    `json:"publishedDate"`
	ReadingTime   string    `json:"readingTime"`
	URL           string    `json:"url,omitempty"`
}

type AuthorDTO struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// CaseStudyDTO exposes the fields the site renders for a case study. Icon is
// always one of the fixed presentational icon keys.
type CaseStudyDTO struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Icon          string   `json:"icon"`
	Industry      string   `json:"industry"`
	Company       string   `json:"company"`
	Title         string   `json:"title"`
	Context       string   `json:"context"`
	Challenge     []string `json:"challenge"`
	Approach      string   `json:"approach"`
	Actions       []string `json:"actions"`
	Outcomes      []string `json:"outcomes"`
	Proves        string   `json:"proves"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
}
