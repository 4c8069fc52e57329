package handler

import (
	"net/http"

	"github.com/detailersedge/backend/internal/service"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

// imageFromRequest extracts an optional image file from a multipart form.
// Returns (nil, "") when the field is absent; a non-empty message means the
// request must be rejected with 400. The caller must have parsed the form.
func imageFromRequest(r *http.Request, field string) (*service.ImageUpload, string) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, ""
		}
		return nil, "Invalid image upload"
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		file.Close()
		return nil, "Invalid file type. Only JPEG, PNG, and JPG are allowed."
	}

	return &service.ImageUpload{
		Data:        file,
		ContentType: contentType,
		Ext:         ext,
	}, ""
}
