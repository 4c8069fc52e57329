package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/detailersedge/backend/internal/model"
	"github.com/detailersedge/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockTestimonialRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockTestimonialRepository struct {
	insertFunc       func(ctx context.Context, t *model.Testimonial) error
	listFunc         func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, int64, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockTestimonialRepository) Insert(ctx context.Context, t *model.Testimonial) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, t)
	}
	return nil
}

func (m *mockTestimonialRepository) List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockTestimonialRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockTestimonialRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func validSubmitInput() SubmitTestimonialInput {
	return SubmitTestimonialInput{
		Name:        "Alice",
		Email:       "alice@example.com",
		Rating:      5,
		Comment:     "Spotless finish",
		ServiceType: "Full Detail",
	}
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestTestimonialService_Submit_ForcesPendingStatus(t *testing.T) {
	var saved *model.Testimonial
	mock := &mockTestimonialRepository{
		insertFunc: func(ctx context.Context, tt *model.Testimonial) error {
			saved = tt
			return nil
		},
	}
	svc := NewTestimonialService(mock)

	before := time.Now().UTC()
	created, err := svc.Submit(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now().UTC()

	if saved == nil {
		t.Fatal("expected Insert to be called")
	}
	if saved.Status != model.TestimonialPending {
		t.Errorf("expected status=pending, got %q", saved.Status)
	}
	if created.Status != model.TestimonialPending {
		t.Errorf("expected returned status=pending, got %q", created.Status)
	}
	if saved.CreatedAt.Before(before) || saved.CreatedAt.After(after) {
		t.Errorf("CreatedAt %v not in expected range [%v, %v]", saved.CreatedAt, before, after)
	}
}

func TestTestimonialService_Submit_EchoesFields(t *testing.T) {
	mock := &mockTestimonialRepository{
		insertFunc: func(ctx context.Context, tt *model.Testimonial) error {
			tt.ID = "generated-id"
			return nil
		},
	}
	svc := NewTestimonialService(mock)

	created, err := svc.Submit(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID != "generated-id" {
		t.Errorf("expected id=generated-id, got %q", created.ID)
	}
	if created.Name != "Alice" || created.Email != "alice@example.com" || created.Rating != 5 {
		t.Errorf("submitted fields not echoed: %+v", created)
	}
	if created.ServiceType != "Full Detail" {
		t.Errorf("expected serviceType to be kept, got %q", created.ServiceType)
	}
}

// TestTestimonialService_Submit_MissingFields verifies the missing-field list
// names every absent required field.
func TestTestimonialService_Submit_MissingFields(t *testing.T) {
	mock := &mockTestimonialRepository{
		insertFunc: func(ctx context.Context, tt *model.Testimonial) error {
			t.Fatal("Insert must not be called for invalid input")
			return nil
		},
	}
	svc := NewTestimonialService(mock)

	_, err := svc.Submit(context.Background(), SubmitTestimonialInput{Name: "A"})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	want := []string{"email", "rating", "comment"}
	if len(verr.Missing) != len(want) {
		t.Fatalf("expected missing=%v, got %v", want, verr.Missing)
	}
	for i, field := range want {
		if verr.Missing[i] != field {
			t.Errorf("missing[%d]: expected %q, got %q", i, field, verr.Missing[i])
		}
	}
}

// TestTestimonialService_Submit_RatingRange covers every out-of-range rating
// class: below 1 and above 5 are rejected with a rating-specific message.
func TestTestimonialService_Submit_RatingRange(t *testing.T) {
	for _, rating := range []int{-100, -1, 6, 7, 100} {
		mock := &mockTestimonialRepository{
			insertFunc: func(ctx context.Context, tt *model.Testimonial) error {
				t.Fatalf("Insert must not be called for rating=%d", rating)
				return nil
			},
		}
		svc := NewTestimonialService(mock)

		input := validSubmitInput()
		input.Rating = rating
		_, err := svc.Submit(context.Background(), input)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("rating=%d: expected *ValidationError, got %v", rating, err)
		}
		if verr.Message != "Rating must be between 1 and 5" {
			t.Errorf("rating=%d: unexpected message %q", rating, verr.Message)
		}
	}

	for _, rating := range []int{1, 2, 3, 4, 5} {
		svc := NewTestimonialService(&mockTestimonialRepository{})
		input := validSubmitInput()
		input.Rating = rating
		if _, err := svc.Submit(context.Background(), input); err != nil {
			t.Errorf("rating=%d: expected success, got %v", rating, err)
		}
	}
}

// TestTestimonialService_Submit_EmailFormat checks the lenient
// local@domain.tld pattern: no @ or no domain dot is rejected, any x@y.z
// passes regardless of TLD validity.
func TestTestimonialService_Submit_EmailFormat(t *testing.T) {
	rejected := []string{"plain", "missing-domain@", "no-dot@domain", "spaces in@local.part ", "@nodomain.com "}
	for _, email := range rejected {
		svc := NewTestimonialService(&mockTestimonialRepository{
			insertFunc: func(ctx context.Context, tt *model.Testimonial) error {
				t.Fatalf("Insert must not be called for email=%q", email)
				return nil
			},
		})
		input := validSubmitInput()
		input.Email = email
		_, err := svc.Submit(context.Background(), input)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("email=%q: expected *ValidationError, got %v", email, err)
		}
		if verr.Message != "Invalid email format" {
			t.Errorf("email=%q: unexpected message %q", email, verr.Message)
		}
	}

	accepted := []string{"x@y.z", "a@b.com", "weird+tag@sub.domain.notatld"}
	for _, email := range accepted {
		svc := NewTestimonialService(&mockTestimonialRepository{})
		input := validSubmitInput()
		input.Email = email
		if _, err := svc.Submit(context.Background(), input); err != nil {
			t.Errorf("email=%q: expected success, got %v", email, err)
		}
	}
}

func TestTestimonialService_Submit_RepositoryError(t *testing.T) {
	mock := &mockTestimonialRepository{
		insertFunc: func(ctx context.Context, tt *model.Testimonial) error {
			return errors.New("store write failed")
		},
	}
	svc := NewTestimonialService(mock)

	_, err := svc.Submit(context.Background(), validSubmitInput())
	if err == nil {
		t.Error("expected error from repository, got nil")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Error("store failure must not surface as a validation error")
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestTestimonialService_List_Defaults(t *testing.T) {
	var captured model.TestimonialListOptions
	mock := &mockTestimonialRepository{
		listFunc: func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, int64, error) {
			captured = opts
			return nil, 0, nil
		},
	}
	svc := NewTestimonialService(mock)

	if _, err := svc.List(context.Background(), model.TestimonialListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.PageNumber != 1 {
		t.Errorf("expected default page_number=1, got %d", captured.PageNumber)
	}
	if captured.PageSize != 10 {
		t.Errorf("expected default page_size=10, got %d", captured.PageSize)
	}
}

func TestTestimonialService_List_PaginationEnvelope(t *testing.T) {
	second := &model.Testimonial{ID: "2", Name: "B"}
	mock := &mockTestimonialRepository{
		listFunc: func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, int64, error) {
			return []*model.Testimonial{second}, 3, nil
		},
	}
	svc := NewTestimonialService(mock)

	page, err := svc.List(context.Background(), model.TestimonialListOptions{PageNumber: 2, PageSize: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Testimonials) != 1 || page.Testimonials[0].ID != "2" {
		t.Errorf("expected exactly the second record, got %+v", page.Testimonials)
	}
	if page.Pagination.TotalRecords != 3 {
		t.Errorf("expected total_records=3, got %d", page.Pagination.TotalRecords)
	}
	if page.Pagination.TotalPages != 3 {
		t.Errorf("expected total_pages=3, got %d", page.Pagination.TotalPages)
	}
	if page.Pagination.CurrentPageNumber != 2 || page.Pagination.PageSize != 1 {
		t.Errorf("unexpected envelope: %+v", page.Pagination)
	}
}

// TestTestimonialService_List_TotalPagesCeiling checks the ceil division for
// partial last pages.
func TestTestimonialService_List_TotalPagesCeiling(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 1, 3},
		{7, 3, 3},
	}
	for _, tc := range cases {
		mock := &mockTestimonialRepository{
			listFunc: func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, int64, error) {
				return nil, tc.total, nil
			},
		}
		svc := NewTestimonialService(mock)

		page, err := svc.List(context.Background(), model.TestimonialListOptions{PageNumber: 1, PageSize: tc.pageSize})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Pagination.TotalPages != tc.want {
			t.Errorf("total=%d size=%d: expected total_pages=%d, got %d",
				tc.total, tc.pageSize, tc.want, page.Pagination.TotalPages)
		}
	}
}

// ---------------------------------------------------------------------------
// SetStatus tests
// ---------------------------------------------------------------------------

func TestTestimonialService_SetStatus_InvalidStatus(t *testing.T) {
	mock := &mockTestimonialRepository{
		updateStatusFunc: func(ctx context.Context, id, status string) error {
			t.Fatal("UpdateStatus must not be called for an invalid status")
			return nil
		},
	}
	svc := NewTestimonialService(mock)

	err := svc.SetStatus(context.Background(), "some-id", "archived")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Message != "Invalid status" {
		t.Errorf("unexpected message %q", verr.Message)
	}
}

func TestTestimonialService_SetStatus_ValidTransitions(t *testing.T) {
	// Any of the three statuses is reachable from any other.
	for _, status := range []string{"pending", "approved", "rejected"} {
		var gotID, gotStatus string
		mock := &mockTestimonialRepository{
			updateStatusFunc: func(ctx context.Context, id, s string) error {
				gotID, gotStatus = id, s
				return nil
			},
		}
		svc := NewTestimonialService(mock)

		if err := svc.SetStatus(context.Background(), "some-id", status); err != nil {
			t.Fatalf("status=%q: unexpected error: %v", status, err)
		}
		if gotID != "some-id" || gotStatus != status {
			t.Errorf("expected (some-id, %s), got (%s, %s)", status, gotID, gotStatus)
		}
	}
}

func TestTestimonialService_SetStatus_NotFound(t *testing.T) {
	mock := &mockTestimonialRepository{
		updateStatusFunc: func(ctx context.Context, id, status string) error {
			return repository.ErrNotFound
		},
	}
	svc := NewTestimonialService(mock)

	err := svc.SetStatus(context.Background(), "missing", "approved")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestTestimonialService_Delete_PassesThrough(t *testing.T) {
	var deleted string
	mock := &mockTestimonialRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := NewTestimonialService(mock)

	if err := svc.Delete(context.Background(), "some-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "some-id" {
		t.Errorf("expected delete of some-id, got %q", deleted)
	}
}

func TestTestimonialService_Delete_NotFound(t *testing.T) {
	mock := &mockTestimonialRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	svc := NewTestimonialService(mock)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
