package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/service"
	"github.com/detailersedge/backend/pkg/auth"
)

// ProfileHandler handles the authenticated customer profile routes.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a ProfileHandler with the given service.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles GET /api/auth/profile. The profile document is created from
// the verified identity on first access.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusInternalServerError, "Error fetching user profile")
		return
	}

	profile, err := h.profileService.GetOrCreate(r.Context(), identity.ID, identity.Email, identity.Name)
	if err != nil {
		writeServiceError(w, err, "Profile not found", "Error fetching user profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// updateProfileRequest is the expected JSON body for PUT /api/auth/profile.
type updateProfileRequest struct {
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber"`
}

// Update handles PUT /api/auth/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusInternalServerError, "Error updating user profile")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profileService.Update(r.Context(), identity.ID, model.ProfileUpdate{
		DisplayName: strings.TrimSpace(req.DisplayName),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	})
	if err != nil {
		writeServiceError(w, err, "Profile not found", "Error updating user profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
