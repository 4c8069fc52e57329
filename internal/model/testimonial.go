package model

import "time"

// Testimonial statuses. Every submission starts as pending and is moved by a
// moderator; transitions are unrestricted.
const (
	TestimonialPending  = "pending"
	TestimonialApproved = "approved"
	TestimonialRejected = "rejected"
)

// Testimonial represents a customer-submitted review awaiting moderation.
type Testimonial struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Rating      int       `json:"rating" bson:"rating"`
	Comment     string    `json:"comment" bson:"comment"`
	ServiceType string    `json:"serviceType,omitempty" bson:"serviceType,omitempty"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ValidTestimonialStatus reports whether s is one of the three moderation
// statuses.
func ValidTestimonialStatus(s string) bool {
	switch s {
	case TestimonialPending, TestimonialApproved, TestimonialRejected:
		return true
	}
	return false
}

// TestimonialListOptions carries filter and pagination parameters for listing
// testimonials. A zero PageNumber/PageSize is replaced with defaults by the
// service layer; an empty Status returns all records.
type TestimonialListOptions struct {
	Status     string
	PageNumber int
	PageSize   int
}

// Pagination is the envelope returned alongside a testimonial page.
type Pagination struct {
	TotalRecords      int64 `json:"total_records"`
	TotalPages        int64 `json:"total_pages"`
	CurrentPageNumber int   `json:"current_page_number"`
	PageSize          int   `json:"page_size"`
}

// TestimonialPage is a single page of testimonials plus its pagination
// envelope.
type TestimonialPage struct {
	Testimonials []*Testimonial `json:"testimonials"`
	Pagination   Pagination     `json:"pagination"`
}
