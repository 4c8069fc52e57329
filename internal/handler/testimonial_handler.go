package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/service"
)

// TestimonialHandler handles public testimonial submission/listing and the
// admin moderation routes.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

// NewTestimonialHandler creates a TestimonialHandler with the given service.
func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// submitTestimonialRequest is the expected JSON body for
// POST /api/testimonials. A caller-supplied status field is ignored.
type submitTestimonialRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	ServiceType string `json:"serviceType"`
}

// Submit handles POST /api/testimonials.
func (h *TestimonialHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	testimonial, err := h.testimonialService.Submit(r.Context(), service.SubmitTestimonialInput{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Rating:      req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
		ServiceType: strings.TrimSpace(req.ServiceType),
	})
	if err != nil {
		writeServiceError(w, err, "Testimonial not found", "Failed to submit testimonial")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Testimonial submitted successfully",
		"testimonial": testimonial,
	})
}

// List handles GET /api/testimonials.
// Query params: page_number, page_size, status. An absent status returns all
// records.
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.TestimonialListOptions{
		Status: r.URL.Query().Get("status"),
	}
	if v := r.URL.Query().Get("page_number"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.PageNumber = n
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.PageSize = n
		}
	}

	page, err := h.testimonialService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err, "Testimonial not found", "Failed to fetch testimonials")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// patchStatusRequest is the expected JSON body for
// PATCH /api/testimonials/{id}/status.
type patchStatusRequest struct {
	Status string `json:"status"`
}

// PatchStatus handles PATCH /api/testimonials/{id}/status (admin only).
func (h *TestimonialHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req patchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.testimonialService.SetStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, err, "Testimonial not found", "Failed to update testimonial status")
		return
	}

	writeMessage(w, http.StatusOK, "Testimonial status updated successfully")
}

// Delete handles DELETE /api/testimonials/{id} (admin only).
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.testimonialService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Testimonial not found", "Failed to delete testimonial")
		return
	}

	writeMessage(w, http.StatusOK, "Testimonial deleted successfully")
}
