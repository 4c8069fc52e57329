package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/service"
)

// BookingHandler handles public booking requests and the admin booking
// management routes.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a BookingHandler with the given service.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// createBookingRequest is the expected JSON body for POST /api/bookings.
// scheduledAt is RFC 3339.
type createBookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ServiceType string `json:"serviceType"`
	ScheduledAt string `json:"scheduledAt"`
	Notes       string `json:"notes"`
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var scheduledAt time.Time
	if raw := strings.TrimSpace(req.ScheduledAt); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid scheduledAt format")
			return
		}
		scheduledAt = parsed
	}

	booking, err := h.bookingService.Create(r.Context(), service.CreateBookingInput{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		ServiceType: strings.TrimSpace(req.ServiceType),
		ScheduledAt: scheduledAt,
		Notes:       strings.TrimSpace(req.Notes),
	})
	if err != nil {
		writeServiceError(w, err, "Booking not found", "Failed to create booking")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// List handles GET /api/bookings (admin only).
// Query params: status (all/pending/confirmed/cancelled), client_email.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.BookingListOptions{
		Status:      r.URL.Query().Get("status"),
		ClientEmail: r.URL.Query().Get("client_email"),
	}

	bookings, err := h.bookingService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err, "Booking not found", "Failed to fetch bookings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// PatchStatus handles PATCH /api/bookings/{id}/status (admin only).
func (h *BookingHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req patchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.bookingService.SetStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, err, "Booking not found", "Failed to update booking status")
		return
	}

	writeMessage(w, http.StatusOK, "Booking status updated successfully")
}
