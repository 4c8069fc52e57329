package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/repository"
	"github.com/detailersedge/backend/internal/storage"
)

// ImageUpload is a decoded multipart image ready to be stored.
type ImageUpload struct {
	Data        io.Reader
	ContentType string
	Ext         string // file extension including the dot, e.g. ".jpg"
}

// CatalogInput carries the caller-supplied fields of a catalog entry.
type CatalogInput struct {
	Title       string
	Description string
	Price       string
	Features    []string
}

// CatalogService manages the detailing services catalog, including the
// lifecycle of each entry's image blob.
type CatalogService interface {
	List(ctx context.Context) ([]*model.Service, error)

	// Create stores a new entry. image may be nil.
	Create(ctx context.Context, input CatalogInput, image *ImageUpload) (*model.Service, error)

	// Update replaces an entry's fields. When image is non-nil the new blob
	// is stored and the previous one deleted best-effort.
	Update(ctx context.Context, id string, input CatalogInput, image *ImageUpload) (*model.Service, error)

	// Delete removes the entry and its image blob (best-effort).
	Delete(ctx context.Context, id string) error
}

// catalogServiceImpl is the production implementation of CatalogService.
type catalogServiceImpl struct {
	repo  repository.ServiceRepository
	store storage.Storage
}

// NewCatalogService creates a CatalogService backed by the given repository
// and blob storage.
func NewCatalogService(repo repository.ServiceRepository, store storage.Storage) CatalogService {
	return &catalogServiceImpl{repo: repo, store: store}
}

func (s *catalogServiceImpl) List(ctx context.Context) ([]*model.Service, error) {
	return s.repo.List(ctx)
}

func validateCatalogInput(input CatalogInput) error {
	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Description == "" {
		missing = append(missing, "description")
	}
	if input.Price == "" {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return missingFields("Required fields are missing", missing)
	}
	return nil
}

func (s *catalogServiceImpl) Create(ctx context.Context, input CatalogInput, image *ImageUpload) (*model.Service, error) {
	if err := validateCatalogInput(input); err != nil {
		return nil, err
	}

	svc := &model.Service{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Features:    input.Features,
		CreatedAt:   time.Now().UTC(),
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}

	if image != nil {
		key := "services/" + uuid.NewString() + image.Ext
		url, err := s.store.Save(ctx, key, image.Data, image.ContentType)
		if err != nil {
			return nil, err
		}
		svc.ImageURL = url
		svc.ImageKey = key
	}

	if err := s.repo.Insert(ctx, svc); err != nil {
		// The document write failed after the blob write; drop the orphan.
		if svc.ImageKey != "" {
			if derr := s.store.Delete(ctx, svc.ImageKey); derr != nil {
				slog.Warn("failed to remove orphaned image", "key", svc.ImageKey, "error", derr)
			}
		}
		return nil, err
	}
	return svc, nil
}

func (s *catalogServiceImpl) Update(ctx context.Context, id string, input CatalogInput, image *ImageUpload) (*model.Service, error) {
	if err := validateCatalogInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := model.ServiceInput{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Features:    input.Features,
	}
	if update.Features == nil {
		update.Features = []string{}
	}

	if image != nil {
		key := "services/" + uuid.NewString() + image.Ext
		url, serr := s.store.Save(ctx, key, image.Data, image.ContentType)
		if serr != nil {
			return nil, serr
		}
		update.ImageURL = url
		update.ImageKey = key
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	// Replaced image: remove the old blob. Failure here must not fail the
	// update itself.
	if image != nil && existing.ImageKey != "" {
		if derr := s.store.Delete(ctx, existing.ImageKey); derr != nil {
			slog.Warn("failed to delete replaced image", "key", existing.ImageKey, "error", derr)
		}
	}

	return s.repo.GetByID(ctx, id)
}

func (s *catalogServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.ImageKey != "" {
		if derr := s.store.Delete(ctx, existing.ImageKey); derr != nil {
			slog.Warn("failed to delete service image", "key", existing.ImageKey, "error", derr)
		}
	}

	return s.repo.Delete(ctx, id)
}
