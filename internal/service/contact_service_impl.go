package service

import (
	"context"
	"time"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit validates the submission and persists it with status unread.
func (s *contactServiceImpl) Submit(ctx context.Context, input SubmitContactInput) (*model.ContactSubmission, error) {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Subject == "" {
		missing = append(missing, "subject")
	}
	if input.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, missingFields("All fields are required", missing)
	}

	if !validEmail(input.Email) {
		return nil, invalid("Invalid email format")
	}

	msg := &model.ContactSubmission{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    "unread",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
