package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/detailersedge/backend/internal/service"
)

// PortfolioHandler handles the public portfolio listing and the admin
// upload/delete routes.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a PortfolioHandler with the given service.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// List handles GET /api/portfolio.
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.portfolioService.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Image not found", "Error fetching portfolio images")
		return
	}
	writeJSON(w, http.StatusOK, images)
}

// Upload handles POST /api/portfolio/upload (admin only). Multipart form
// with an image file and an optional title; the title falls back to the
// uploaded filename with dashes replaced by spaces.
func (h *PortfolioHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	image, errMsg := imageFromRequest(r, "image")
	if errMsg != "" {
		writeMessage(w, http.StatusBadRequest, errMsg)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		if _, header, err := r.FormFile("image"); err == nil {
			title = titleFromFilename(header.Filename)
		}
	}

	uploaded, err := h.portfolioService.Upload(r.Context(), title, image)
	if err != nil {
		writeServiceError(w, err, "Image not found", "Error uploading image")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Image uploaded successfully",
		"image":   uploaded,
	})
}

// Delete handles DELETE /api/portfolio/{id} (admin only).
func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.portfolioService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Image not found", "Error deleting image")
		return
	}

	writeMessage(w, http.StatusOK, "Image deleted successfully")
}

// titleFromFilename turns "two-stage-polish.jpg" into "two stage polish".
func titleFromFilename(filename string) string {
	name := filename
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "-", " ")
}
