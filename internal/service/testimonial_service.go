package service

import (
	"context"

	"github.com/detailersedge/backend/internal/model"
)

// SubmitTestimonialInput carries the fields of a public testimonial
// submission. Any caller-supplied status is ignored; new testimonials always
// start as pending.
type SubmitTestimonialInput struct {
	Name        string
	Email       string
	Rating      int
	Comment     string
	ServiceType string
}

// TestimonialService defines the business logic for the testimonial
// submission-and-moderation workflow. Validation lives here, not in the
// handlers; the route layer only decodes request shape.
type TestimonialService interface {
	// Submit validates the input and stores a new testimonial with status
	// pending and a server-assigned creation timestamp. Returns the stored
	// testimonial including its generated id.
	Submit(ctx context.Context, input SubmitTestimonialInput) (*model.Testimonial, error)

	// List returns one page of testimonials ordered by creation time
	// descending, plus the pagination envelope. Zero page number and page
	// size default to 1 and 10.
	List(ctx context.Context, opts model.TestimonialListOptions) (*model.TestimonialPage, error)

	// SetStatus moves a testimonial to one of pending/approved/rejected.
	SetStatus(ctx context.Context, id, status string) error

	// Delete removes a testimonial permanently.
	Delete(ctx context.Context, id string) error
}
