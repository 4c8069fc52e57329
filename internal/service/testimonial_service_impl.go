package service

import (
	"context"
	"time"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/repository"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// testimonialServiceImpl is the production implementation of
// TestimonialService.
type testimonialServiceImpl struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService creates a TestimonialService backed by the given
// repository.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialServiceImpl{repo: repo}
}

// Submit validates the submission and persists it with status pending.
func (s *testimonialServiceImpl) Submit(ctx context.Context, input SubmitTestimonialInput) (*model.Testimonial, error) {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Rating == 0 {
		missing = append(missing, "rating")
	}
	if input.Comment == "" {
		missing = append(missing, "comment")
	}
	if len(missing) > 0 {
		return nil, missingFields("Required fields are missing", missing)
	}

	if !validEmail(input.Email) {
		return nil, invalid("Invalid email format")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, invalid("Rating must be between 1 and 5")
	}

	t := &model.Testimonial{
		Name:        input.Name,
		Email:       input.Email,
		Rating:      input.Rating,
		Comment:     input.Comment,
		ServiceType: input.ServiceType,
		Status:      model.TestimonialPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List pages through testimonials using the store's skip/limit rather than
// slicing a full-collection fetch.
func (s *testimonialServiceImpl) List(ctx context.Context, opts model.TestimonialListOptions) (*model.TestimonialPage, error) {
	if opts.PageNumber < 1 {
		opts.PageNumber = defaultPageNumber
	}
	if opts.PageSize < 1 {
		opts.PageSize = defaultPageSize
	}

	testimonials, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	pageSize := int64(opts.PageSize)
	totalPages := (total + pageSize - 1) / pageSize

	return &model.TestimonialPage{
		Testimonials: testimonials,
		Pagination: model.Pagination{
			TotalRecords:      total,
			TotalPages:        totalPages,
			CurrentPageNumber: opts.PageNumber,
			PageSize:          opts.PageSize,
		},
	}, nil
}

// SetStatus validates the target status before touching the store, so an
// invalid value never reaches it.
func (s *testimonialServiceImpl) SetStatus(ctx context.Context, id, status string) error {
	if !model.ValidTestimonialStatus(status) {
		return invalid("Invalid status")
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes the testimonial; repository.ErrNotFound passes through.
func (s *testimonialServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
