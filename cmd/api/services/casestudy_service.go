package services

import (
	"context"

	"github.com/adichatupes-source/Portfolio/cmd/api/dto"
	"github.com/adichatupes-source/Portfolio/internal/content"
	"github.com/adichatupes-source/Portfolio/internal/contentstore"
)

// CaseStudyService mirrors BlogService for case studies and additionally
// normalizes the icon key onto the fixed presentational set.
type CaseStudyService struct {
	store           *contentstore.Store
	publishedStatus string
}

func NewCaseStudyService(store *contentstore.Store, publishedStatus string) *CaseStudyService {
	return &CaseStudyService{store: store, publishedStatus: publishedStatus}
}

func (s *CaseStudyService) List(ctx context.Context, in ListInput) (dto.Pagination[dto.CaseStudyDTO], error) {
	studies, _, err := s.store.CaseStudies(ctx)
	if err != nil {
		return dto.Pagination[dto.CaseStudyDTO]{}, err
	}

	valid := make([]content.CaseStudy, 0, len(studies))
	for _, cs := range studies {
		if cs.Title != "" && cs.Slug != "" && cs.Status == s.publishedStatus {
			valid = append(valid, cs)
		}
	}

	page, pageSize := normalizePage(in.Page, in.PageSize)
	window := paginate(valid, page, pageSize)
	out := make([]dto.CaseStudyDTO, 0, len(window))
	for _, cs := range window {
		out = append(out, mapCaseStudy(cs))
	}
	return dto.Pagination[dto.CaseStudyDTO]{
		Data:     out,
		Page:     page,
		PageSize: pageSize,
		Total:    int64(len(valid)),
	}, nil
}

func (s *CaseStudyService) GetBySlug(ctx context.Context, slug string) (*dto.CaseStudyDTO, error) {
	study, _, err := s.store.CaseStudyBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if study == nil {
		return nil, ErrNotFound
	}
	d := mapCaseStudy(*study)
	return &d, nil
}

func mapCaseStudy(cs content.CaseStudy) dto.CaseStudyDTO {
	return dto.CaseStudyDTO{
		ID:            cs.ID,
		Slug:          cs.Slug,
		Icon:          content.NormalizeIcon(cs.Icon),
		Industry:      cs.Industry,
		Company:       cs.Company,
		Title:         cs.Title,
		Context:       cs.Context,
		Challenge:     cs.Challenge,
		Approach:      cs.Approach,
		Actions:       cs.Actions,
		Outcomes:      cs.Outcomes,
		Proves:        cs.Proves,
		FeaturedImage: cs.FeaturedImage,
	}
}
