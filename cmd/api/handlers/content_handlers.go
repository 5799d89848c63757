package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adichatupes-source/Portfolio/cmd/api/services"
)

// ListBlogPostsHandler serves GET /api/v1/blog-posts with pagination.
func ListBlogPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "6"))

		items, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetBlogPostHandler serves GET /api/v1/blog-posts/:slug.
func GetBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		post, err := svc.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// ListCaseStudiesHandler serves GET /api/v1/case-studies with pagination.
func ListCaseStudiesHandler(svc *services.CaseStudyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "6"))

		items, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetCaseStudyHandler serves GET /api/v1/case-studies/:slug.
func GetCaseStudyHandler(svc *services.CaseStudyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		study, err := svc.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, study)
	}
}
