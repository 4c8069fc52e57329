package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/detailersedge/backend/internal/service"
)

// ServiceHandler handles the public services catalog listing and the admin
// CRUD routes. Create/Update take multipart forms so an image can ride
// along with the fields.
type ServiceHandler struct {
	catalogService service.CatalogService
}

// NewServiceHandler creates a ServiceHandler with the given service.
func NewServiceHandler(catalogService service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// List handles GET /api/services.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Service not found", "Error fetching services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// catalogInputFromForm reads the catalog fields out of a parsed multipart
// form. features arrives as a JSON array string, matching the frontend's
// FormData encoding.
func catalogInputFromForm(r *http.Request) (service.CatalogInput, string) {
	input := service.CatalogInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Price:       strings.TrimSpace(r.FormValue("price")),
	}

	if raw := r.FormValue("features"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Features); err != nil {
			return input, "Invalid features format"
		}
	}
	return input, ""
}

// Create handles POST /api/services (admin only).
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	input, errMsg := catalogInputFromForm(r)
	if errMsg != "" {
		writeMessage(w, http.StatusBadRequest, errMsg)
		return
	}

	image, errMsg := imageFromRequest(r, "image")
	if errMsg != "" {
		writeMessage(w, http.StatusBadRequest, errMsg)
		return
	}

	created, err := h.catalogService.Create(r.Context(), input, image)
	if err != nil {
		writeServiceError(w, err, "Service not found", "Error creating service")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/services/{id} (admin only). A new image replaces
// the stored one; omitting the file keeps it.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	input, errMsg := catalogInputFromForm(r)
	if errMsg != "" {
		writeMessage(w, http.StatusBadRequest, errMsg)
		return
	}

	image, errMsg := imageFromRequest(r, "image")
	if errMsg != "" {
		writeMessage(w, http.StatusBadRequest, errMsg)
		return
	}

	updated, err := h.catalogService.Update(r.Context(), id, input, image)
	if err != nil {
		writeServiceError(w, err, "Service not found", "Error updating service")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/services/{id} (admin only).
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Service not found", "Error deleting service")
		return
	}

	writeMessage(w, http.StatusOK, "Service and associated image deleted successfully")
}
