package services

import (
	"context"
	"errors"

	"github.com/adichatupes-source/Portfolio/cmd/api/dto"
	"github.com/adichatupes-source/Portfolio/internal/content"
	"github.com/adichatupes-source/Portfolio/internal/contentstore"
)

// ErrNotFound marks a per-item lookup that settled without a match.
var ErrNotFound = errors.New("resource not found")

const (
	defaultPageSize = 6
	maxPageSize     = 100
)

// ListInput is shared pagination input for the content list operations.
type ListInput struct {
	Page     int
	PageSize int
}

// BlogService encapsulates display policy for blog posts: filtering to
// valid published records and pagination. The fetch layers stay policy-free
// so this is the only place that knows the published-status literal.
type BlogService struct {
	store           *contentstore.Store
	publishedStatus string
}

func NewBlogService(store *contentstore.Store, publishedStatus string) *BlogService {
	return &BlogService{store: store, publishedStatus: publishedStatus}
}

// List returns the published blog posts, newest-first as delivered by the
// store, paginated.
func (s *BlogService) List(ctx context.Context, in ListInput) (dto.Pagination[dto.BlogPostDTO], error) {
	posts, _, err := s.store.BlogPosts(ctx)
	if err != nil {
		return dto.Pagination[dto.BlogPostDTO]{}, err
	}

	valid := make([]content.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Title != "" && p.Slug != "" && p.Status == s.publishedStatus {
			valid = append(valid, p)
		}
	}

	page, pageSize := normalizePage(in.Page, in.PageSize)
	window := paginate(valid, page, pageSize)
	out := make([]dto.BlogPostDTO, 0, len(window))
	for _, p := range window {
		out = append(out, mapBlogPost(p))
	}
	return dto.Pagination[dto.BlogPostDTO]{
		Data:     out,
		Page:     page,
		PageSize: pageSize,
		Total:    int64(len(valid)),
	}, nil
}

// GetBySlug returns the first post with the given slug, unfiltered by
// status; detail lookups follow the cached list, not the display policy.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*dto.BlogPostDTO, error) {
	post, _, err := s.store.BlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	d := mapBlogPost(*post)
	return &d, nil
}

func mapBlogPost(p content.BlogPost) dto.BlogPostDTO {
	return dto.BlogPostDTO{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		FeaturedImage: p.FeaturedImage,
		Category:      p.Category,
		Author:        dto.AuthorDTO{Name: p.Author.Name, Avatar: p.Author.Avatar},
		PublishedDate: p.PublishedDate,
		ReadingTime:   p.ReadingTime,
		URL:           p.URL,
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// paginate slices one 1-based page out of items.
func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
