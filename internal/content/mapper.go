package content

import (
	"strings"

	"github.com/adichatupes-source/Portfolio/internal/notion"
)

// Mapping from Notion pages to the two record shapes. Every record is mapped
// independently; a missing or partially-empty property bag degrades to the
// field's zero value (empty string, empty sequence) and never fails the
// batch.

// MapBlogPost maps one Notion page onto the flat blog record.
func MapBlogPost(p notion.Page) BlogPost {
	props := p.Properties
	excerpt := firstPlainText(props["Excerpt"].RichText)
	return BlogPost{
		ID:            p.ID,
		Slug:          firstPlainText(props["Slug"].RichText),
		Title:         firstPlainText(props["Blog Title"].Title),
		Excerpt:       excerpt,
		Content:       excerpt, // no separate rich body is fetched
		FeaturedImage: fileURL(props["Featured Image"].Files),
		Category:      selectName(props["Category"].Select),
		Author: Author{
			Name:   firstPlainText(props["Author Name"].RichText),
			Avatar: props["Author Avatar"].URL,
		},
		PublishedDate: dateStart(props["Published Date"].Date),
		ReadingTime:   firstPlainText(props["Reading Time"].RichText),
		URL:           p.URL,
		Status:        selectName(props["Status"].Status),
		StatusColor:   selectColor(props["Status"].Status),
	}
}

// MapCaseStudy maps one Notion page onto the flat case-study record.
func MapCaseStudy(p notion.Page) CaseStudy {
	props := p.Properties
	return CaseStudy{
		ID:            p.ID,
		Slug:          firstPlainText(props["Slug"].RichText),
		Icon:          firstPlainText(props["Icon"].RichText),
		Industry:      selectName(props["Industry"].Select),
		Company:       firstPlainText(props["Company"].RichText),
		Title:         firstPlainText(props["Title"].Title),
		Context:       firstPlainText(props["Context"].RichText),
		Challenge:     splitLines(props["Challenge"].RichText),
		Approach:      firstPlainText(props["Approach"].RichText),
		Actions:       splitLines(props["Actions"].RichText),
		Outcomes:      splitLines(props["Outcomes"].RichText),
		Proves:        firstPlainText(props["Proves"].RichText),
		FeaturedImage: fileURL(props["Featured Image"].Files),
		Status:        selectName(props["Status"].Status),
		StatusColor:   selectColor(props["Status"].Status),
	}
}

// firstPlainText returns the first span's plain text, or "" without spans.
func firstPlainText(spans []notion.RichText) string {
	if len(spans) == 0 {
		return ""
	}
	return spans[0].PlainText
}

// splitLines joins all spans with newlines, splits on newline and drops
// empty lines, preserving order. The result is never nil.
func splitLines(spans []notion.RichText) []string {
	parts := make([]string, 0, len(spans))
	for _, s := range spans {
		parts = append(parts, s.PlainText)
	}
	lines := strings.Split(strings.Join(parts, "\n"), "\n")

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// fileURL inspects the file descriptors and returns the first one's URL:
// the external URL for kind "external", the hosted URL for kind "file",
// and "" otherwise.
func fileURL(files []notion.File) string {
	if len(files) == 0 {
		return ""
	}
	switch f := files[0]; f.Type {
	case "external":
		if f.External != nil {
			return f.External.URL
		}
	case "file":
		if f.File != nil {
			return f.File.URL
		}
	}
	return ""
}

func selectName(opt *notion.SelectOption) string {
	if opt == nil {
		return ""
	}
	return opt.Name
}

func selectColor(opt *notion.SelectOption) string {
	if opt == nil {
		return ""
	}
	return opt.Color
}

func dateStart(d *notion.DateValue) string {
	if d == nil {
		return ""
	}
	return d.Start
}
