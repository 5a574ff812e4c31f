package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/account/repository"
	"github.com/profiled/accounts/internal/account/service"
)

func TestAccountService_UpdateField_Success(t *testing.T) {
	svc, repo, _, _, clk := setupAccountService(t)

	var saved domain.User
	repo.saveFunc = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user := domain.User{ID: "user-1", Email: "alice@example.com"}

	updated, err := svc.UpdateField(context.Background(), user, domain.FieldDescription, "gopher at large")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if updated.Description != "gopher at large" {
		t.Errorf("unexpected description %q", updated.Description)
	}

	if saved.Description != "gopher at large" {
		t.Error("expected new value to be persisted")
	}

	if !saved.UpdatedAt.Equal(clk.Now()) {
		t.Errorf("expected updated_at %v, got %v", clk.Now(), saved.UpdatedAt)
	}
}

func TestAccountService_UpdateField_NotOnAllowList(t *testing.T) {
	svc, repo, _, _, _ := setupAccountService(t)

	saveCalled := false
	repo.saveFunc = func(ctx context.Context, user domain.User) error {
		saveCalled = true
		return nil
	}

	user := domain.User{ID: "user-1"}

	for _, field := range []domain.ProfileField{"username", "password_hash", "tokens", "id"} {
		_, err := svc.UpdateField(context.Background(), user, field, "x")
		if !errors.Is(err, service.ErrFieldNotUpdatable) {
			t.Errorf("field %q: expected ErrFieldNotUpdatable, got %v", field, err)
		}
	}

	if saveCalled {
		t.Error("expected no write for rejected fields")
	}
}

func TestAccountService_UpdateField_EmailValidation(t *testing.T) {
	svc, _, _, _, _ := setupAccountService(t)

	user := domain.User{ID: "user-1", Email: "alice@example.com"}

	_, err := svc.UpdateField(context.Background(), user, domain.FieldEmail, "not-an-email")
	if !errors.Is(err, service.ErrValidationEmailFormat) {
		t.Fatalf("expected ErrValidationEmailFormat, got %v", err)
	}
}

func TestAccountService_UpdateField_EmailTaken(t *testing.T) {
	svc, repo, _, _, _ := setupAccountService(t)

	repo.saveFunc = func(ctx context.Context, user domain.User) error {
		return repository.ErrEmailAlreadyExists
	}

	user := domain.User{ID: "user-1", Email: "alice@example.com"}

	_, err := svc.UpdateField(context.Background(), user, domain.FieldEmail, "taken@example.com")
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountService_UpdateField_LinkMustBeURL(t *testing.T) {
	svc, repo, _, _, _ := setupAccountService(t)

	repo.saveFunc = func(ctx context.Context, user domain.User) error {
		return nil
	}

	user := domain.User{ID: "user-1"}

	if _, err := svc.UpdateField(context.Background(), user, domain.FieldLink, "https://example.com/alice"); err != nil {
		t.Fatalf("expected valid URL to pass, got %v", err)
	}

	if _, err := svc.UpdateField(context.Background(), user, domain.FieldLink, "not a url"); !errors.Is(err, service.ErrValidationLinkFormat) {
		t.Errorf("expected ErrValidationLinkFormat, got %v", err)
	}

	// Clearing the link is allowed.
	if _, err := svc.UpdateField(context.Background(), user, domain.FieldLink, ""); err != nil {
		t.Errorf("expected empty link to pass, got %v", err)
	}
}
