package model

import "time"

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is an appointment request for a detailing service.
type Booking struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	ServiceType string    `json:"serviceType" bson:"serviceType"`
	ScheduledAt time.Time `json:"scheduledAt" bson:"scheduledAt"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// BookingListOptions carries admin-side filters for listing bookings.
type BookingListOptions struct {
	Status      string
	ClientEmail string
}
