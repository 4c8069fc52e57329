package service

import (
	"context"
	"time"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/repository"
)

// CreateBookingInput carries the fields of a public booking request.
type CreateBookingInput struct {
	Name        string
	Email       string
	ServiceType string
	ScheduledAt time.Time
	Notes       string
}

// BookingService defines the business logic for appointment bookings.
type BookingService interface {
	// Create validates the request and stores a new booking with status
	// pending.
	Create(ctx context.Context, input CreateBookingInput) (*model.Booking, error)

	// List returns bookings matching the admin filters, newest first.
	List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error)

	// SetStatus moves a booking to one of pending/confirmed/cancelled.
	SetStatus(ctx context.Context, id, status string) error
}

// bookingServiceImpl is the production implementation of BookingService.
type bookingServiceImpl struct {
	repo repository.BookingRepository
}

// NewBookingService creates a BookingService backed by the given repository.
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingServiceImpl{repo: repo}
}

func (s *bookingServiceImpl) Create(ctx context.Context, input CreateBookingInput) (*model.Booking, error) {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.ServiceType == "" {
		missing = append(missing, "serviceType")
	}
	if input.ScheduledAt.IsZero() {
		missing = append(missing, "scheduledAt")
	}
	if len(missing) > 0 {
		return nil, missingFields("Required fields are missing", missing)
	}

	if !validEmail(input.Email) {
		return nil, invalid("Invalid email format")
	}

	b := &model.Booking{
		Name:        input.Name,
		Email:       input.Email,
		ServiceType: input.ServiceType,
		ScheduledAt: input.ScheduledAt,
		Notes:       input.Notes,
		Status:      model.BookingPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingServiceImpl) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	return s.repo.List(ctx, opts)
}

func (s *bookingServiceImpl) SetStatus(ctx context.Context, id, status string) error {
	if !model.ValidBookingStatus(status) {
		return invalid("Invalid status")
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
