package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/repository"
	"github.com/detailersedge/backend/internal/service"
)

// ---------------------------------------------------------------------------
// mockCatalogService — stub for testing
// ---------------------------------------------------------------------------

type mockCatalogService struct {
	listFunc   func(ctx context.Context) ([]*model.Service, error)
	createFunc func(ctx context.Context, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error)
	updateFunc func(ctx context.Context, id string, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockCatalogService) List(ctx context.Context) ([]*model.Service, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogService) Create(ctx context.Context, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input, image)
	}
	return &model.Service{}, nil
}

func (m *mockCatalogService) Update(ctx context.Context, id string, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, input, image)
	}
	return &model.Service{}, nil
}

func (m *mockCatalogService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func serviceRouter(svc service.CatalogService) http.Handler {
	h := NewServiceHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/services", h.List)
	r.Post("/api/services", h.Create)
	r.Put("/api/services/{id}", h.Update)
	r.Delete("/api/services/{id}", h.Delete)
	return r
}

// multipartBody builds a multipart form with the given fields and an
// optional file part named "image".
func multipartBody(t *testing.T, fields map[string]string, filename, contentType string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field %s: %v", key, err)
		}
	}
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatalf("failed to write file data: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestServiceHandler_List_Success(t *testing.T) {
	mock := &mockCatalogService{
		listFunc: func(ctx context.Context) ([]*model.Service, error) {
			return []*model.Service{{ID: "svc-1", Title: "Full Detail"}}, nil
		},
	}
	router := serviceRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var services []*model.Service
	if err := json.NewDecoder(rec.Body).Decode(&services); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(services) != 1 || services[0].Title != "Full Detail" {
		t.Errorf("unexpected response: %+v", services)
	}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestServiceHandler_Create_ParsesFormAndImage(t *testing.T) {
	var gotInput service.CatalogInput
	var gotImage *service.ImageUpload
	mock := &mockCatalogService{
		createFunc: func(ctx context.Context, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error) {
			gotInput, gotImage = input, image
			return &model.Service{ID: "svc-1"}, nil
		},
	}
	router := serviceRouter(mock)

	fields := map[string]string{
		"title":       "Full Detail",
		"description": "Inside and out",
		"price":       "199",
		"features":    `["Clay bar","Wax"]`,
	}
	body, contentType := multipartBody(t, fields, "shine.jpg", "image/jpeg", []byte("fake image"))
	req := httptest.NewRequest(http.MethodPost, "/api/services", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotInput.Title != "Full Detail" || gotInput.Price != "199" {
		t.Errorf("form fields not parsed: %+v", gotInput)
	}
	if len(gotInput.Features) != 2 || gotInput.Features[0] != "Clay bar" {
		t.Errorf("features not decoded: %v", gotInput.Features)
	}
	if gotImage == nil || gotImage.Ext != ".jpg" || gotImage.ContentType != "image/jpeg" {
		t.Errorf("image not extracted: %+v", gotImage)
	}
}

func TestServiceHandler_Create_NoImageIsAllowed(t *testing.T) {
	var gotImage *service.ImageUpload = &service.ImageUpload{}
	mock := &mockCatalogService{
		createFunc: func(ctx context.Context, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error) {
			gotImage = image
			return &model.Service{}, nil
		},
	}
	router := serviceRouter(mock)

	fields := map[string]string{"title": "T", "description": "D", "price": "99"}
	body, contentType := multipartBody(t, fields, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/services", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotImage != nil {
		t.Errorf("expected nil image, got %+v", gotImage)
	}
}

func TestServiceHandler_Create_RejectsBadFileType(t *testing.T) {
	mock := &mockCatalogService{
		createFunc: func(ctx context.Context, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error) {
			t.Fatal("Create must not be called for a rejected file type")
			return nil, nil
		},
	}
	router := serviceRouter(mock)

	fields := map[string]string{"title": "T", "description": "D", "price": "99"}
	body, contentType := multipartBody(t, fields, "anim.gif", "image/gif", []byte("gif data"))
	req := httptest.NewRequest(http.MethodPost, "/api/services", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Invalid file type. Only JPEG, PNG, and JPG are allowed.")) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestServiceHandler_Create_RejectsBadFeaturesJSON(t *testing.T) {
	router := serviceRouter(&mockCatalogService{
		createFunc: func(ctx context.Context, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error) {
			t.Fatal("Create must not be called for malformed features")
			return nil, nil
		},
	})

	fields := map[string]string{"title": "T", "description": "D", "price": "99", "features": "not json"}
	body, contentType := multipartBody(t, fields, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/services", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Invalid features format")) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestServiceHandler_Update_Success(t *testing.T) {
	var gotID string
	mock := &mockCatalogService{
		updateFunc: func(ctx context.Context, id string, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error) {
			gotID = id
			return &model.Service{ID: id, Title: input.Title}, nil
		},
	}
	router := serviceRouter(mock)

	fields := map[string]string{"title": "Renamed", "description": "D", "price": "249"}
	body, contentType := multipartBody(t, fields, "", "", nil)
	req := httptest.NewRequest(http.MethodPut, "/api/services/svc-1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotID != "svc-1" {
		t.Errorf("expected id=svc-1, got %q", gotID)
	}
}

func TestServiceHandler_Update_NotFound(t *testing.T) {
	mock := &mockCatalogService{
		updateFunc: func(ctx context.Context, id string, input service.CatalogInput, image *service.ImageUpload) (*model.Service, error) {
			return nil, repository.ErrNotFound
		},
	}
	router := serviceRouter(mock)

	fields := map[string]string{"title": "T", "description": "D", "price": "99"}
	body, contentType := multipartBody(t, fields, "", "", nil)
	req := httptest.NewRequest(http.MethodPut, "/api/services/missing", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestServiceHandler_Delete_Success(t *testing.T) {
	var deleted string
	mock := &mockCatalogService{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	router := serviceRouter(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/services/svc-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "svc-1" {
		t.Errorf("expected delete of svc-1, got %q", deleted)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Service and associated image deleted successfully")) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
