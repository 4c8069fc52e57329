package service

import (
	"context"
	"errors"
	"time"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/repository"
)

// ProfileService manages customer profiles keyed by the identity provider's
// subject id.
type ProfileService interface {
	// GetOrCreate returns the profile for uid, creating it from the
	// verified identity's email and display name on first access.
	GetOrCreate(ctx context.Context, uid, email, displayName string) (*model.UserProfile, error)

	// Update applies the caller-editable fields and returns the updated
	// profile.
	Update(ctx context.Context, uid string, update model.ProfileUpdate) (*model.UserProfile, error)
}

// profileServiceImpl is the production implementation of ProfileService.
type profileServiceImpl struct {
	repo repository.UserRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo repository.UserRepository) ProfileService {
	return &profileServiceImpl{repo: repo}
}

func (s *profileServiceImpl) GetOrCreate(ctx context.Context, uid, email, displayName string) (*model.UserProfile, error) {
	profile, err := s.repo.Get(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	profile = &model.UserProfile{
		ID:          uid,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileServiceImpl) Update(ctx context.Context, uid string, update model.ProfileUpdate) (*model.UserProfile, error) {
	if err := s.repo.Update(ctx, uid, update); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, uid)
}
