package content

// Type identifies one of the two supported record kinds.
type Type int

const (
	TypeBlogPosts Type = iota
	TypeCaseStudies
)

// ParseType resolves the gateway's type selector. "case-studies" and
// "casestudies" select case studies; anything else, including the empty
// string, defaults to blog posts.
func ParseType(selector string) Type {
	switch selector {
	case "case-studies", "casestudies":
		return TypeCaseStudies
	default:
		return TypeBlogPosts
	}
}

func (t Type) String() string {
	if t == TypeCaseStudies {
		return "case-studies"
	}
	return "blog-posts"
}

// CacheKey is the stable cache key distinguishing the two list entries.
func (t Type) CacheKey() string {
	return t.String()
}

// Author is the nested author shape of a blog post.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// BlogPost is the flat blog record served over the wire. Content equals
// Excerpt on the live path; only the bundled fallback posts carry a full
// body. Field names match the upstream JSON shape consumed by the site.
type BlogPost struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featuredImage"`
	Category      string `json:"category"`
	Author        Author `json:"author"`
	PublishedDate string `json:"publishedDate"`
	ReadingTime   string `json:"readingTime"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	StatusColor   string `json:"statusColor"`
}

// CaseStudy is the flat case-study record. Challenge, Actions and Outcomes
// are always sequences, never null; an absent source field maps to an empty
// sequence.
type CaseStudy struct {
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
	FeaturedImage string   `json:"featuredImage"`
	Status        string   `json:"status"`
	StatusColor   string   `json:"statusColor"`
}

// DefaultIcon is the presentational icon used for unrecognized icon keys.
const DefaultIcon = "Building2"

var knownIcons = map[string]struct{}{
	"Building2":     {},
	"GraduationCap": {},
	"Globe":         {},
}

// NormalizeIcon maps an icon key onto the fixed presentational set, falling
// back to DefaultIcon for anything unknown. Applied at the consumption
// point, not during fetch.
func NormalizeIcon(icon string) string {
	if _, ok := knownIcons[icon]; ok {
		return icon
	}
	return DefaultIcon
}
