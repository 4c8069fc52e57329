package service

import (
	"context"

	"github.com/detailersedge/backend/internal/model"
)

// SubmitContactInput carries the fields of a contact form submission.
type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates the input and stores a new submission with status
	// unread and a server-assigned timestamp. Returns the stored submission
	// including its generated id.
	Submit(ctx context.Context, input SubmitContactInput) (*model.ContactSubmission, error)
}
