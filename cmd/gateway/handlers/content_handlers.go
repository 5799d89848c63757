package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adichatupes-source/Portfolio/config"
	"github.com/adichatupes-source/Portfolio/internal/content"
	"github.com/adichatupes-source/Portfolio/internal/notion"
)

// ContentHandler serves GET /api/content. The `type` query parameter selects
// the data source: "case-studies"/"casestudies" for case studies, anything
// else for blog posts. Missing secrets fail the request before any upstream
// call; upstream failures are forwarded with their message.
func ContentHandler(secrets config.NotionSecrets, client *notion.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !secrets.Complete() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing Notion environment variables."})
			return
		}

		contentType := content.ParseType(c.Query("type"))
		dataSourceID := secrets.BlogPostsDataSrcID
		if contentType == content.TypeCaseStudies {
			dataSourceID = secrets.CaseStudyDataSrcID
		}

		pages, err := client.QueryDataSource(c.Request.Context(), dataSourceID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		switch contentType {
		case content.TypeCaseStudies:
			out := make([]content.CaseStudy, 0, len(pages))
			for _, p := range pages {
				out = append(out, content.MapCaseStudy(p))
			}
			c.JSON(http.StatusOK, out)
		default:
			out := make([]content.BlogPost, 0, len(pages))
			for _, p := range pages {
				out = append(out, content.MapBlogPost(p))
			}
			c.JSON(http.StatusOK, out)
		}
	}
}
