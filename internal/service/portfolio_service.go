package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/repository"
	"github.com/detailersedge/backend/internal/storage"
)

// PortfolioService manages the portfolio gallery: image blobs in storage,
// metadata documents in the store.
type PortfolioService interface {
	List(ctx context.Context) ([]*model.PortfolioImage, error)

	// Upload stores the blob and its metadata. title defaults to the
	// original filename with dashes replaced by spaces when empty.
	Upload(ctx context.Context, title string, image *ImageUpload) (*model.PortfolioImage, error)

	// Delete removes the metadata document and the blob (best-effort).
	Delete(ctx context.Context, id string) error
}

// portfolioServiceImpl is the production implementation of PortfolioService.
type portfolioServiceImpl struct {
	repo  repository.PortfolioRepository
	store storage.Storage
}

// NewPortfolioService creates a PortfolioService backed by the given
// repository and blob storage.
func NewPortfolioService(repo repository.PortfolioRepository, store storage.Storage) PortfolioService {
	return &portfolioServiceImpl{repo: repo, store: store}
}

func (s *portfolioServiceImpl) List(ctx context.Context) ([]*model.PortfolioImage, error) {
	return s.repo.List(ctx)
}

func (s *portfolioServiceImpl) Upload(ctx context.Context, title string, image *ImageUpload) (*model.PortfolioImage, error) {
	if image == nil {
		return nil, missingFields("Required fields are missing", []string{"image"})
	}

	key := "portfolio/" + uuid.NewString() + image.Ext
	url, err := s.store.Save(ctx, key, image.Data, image.ContentType)
	if err != nil {
		return nil, err
	}

	img := &model.PortfolioImage{
		URL:        url,
		Title:      title,
		StorageKey: key,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, img); err != nil {
		if derr := s.store.Delete(ctx, key); derr != nil {
			slog.Warn("failed to remove orphaned image", "key", key, "error", derr)
		}
		return nil, err
	}
	return img, nil
}

func (s *portfolioServiceImpl) Delete(ctx context.Context, id string) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if img.StorageKey != "" {
		if derr := s.store.Delete(ctx, img.StorageKey); derr != nil {
			slog.Warn("failed to delete portfolio image blob", "key", img.StorageKey, "error", derr)
		}
	}

	return s.repo.Delete(ctx, id)
}
