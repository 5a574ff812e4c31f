package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/account/service"
)

func TestAccountService_ChangePassword_Success(t *testing.T) {
	svc, repo, _, _, _ := setupAccountService(t)

	var saved domain.User
	repo.saveFunc = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user := domain.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: "hashed:oldsecret",
		Tokens:       []string{"token-a", "token-b"},
	}

	updated, err := svc.ChangePassword(context.Background(), user, "oldsecret", "newsecret99")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if updated.PasswordHash != "hashed:newsecret99" {
		t.Errorf("expected new hash, got %q", updated.PasswordHash)
	}

	if saved.PasswordHash != updated.PasswordHash {
		t.Error("expected new hash to be persisted")
	}

	if len(saved.Tokens) != 2 {
		t.Errorf("expected sessions to survive by default, got %d tokens", len(saved.Tokens))
	}
}

func TestAccountService_ChangePassword_WrongCurrent(t *testing.T) {
	svc, repo, _, _, _ := setupAccountService(t)

	saveCalled := false
	repo.saveFunc = func(ctx context.Context, user domain.User) error {
		saveCalled = true
		return nil
	}

	user := domain.User{
		ID:           "user-1",
		PasswordHash: "hashed:oldsecret",
	}

	_, err := svc.ChangePassword(context.Background(), user, "wrongpass", "newsecret99")
	if !errors.Is(err, service.ErrCurrentPasswordInvalid) {
		t.Fatalf("expected ErrCurrentPasswordInvalid, got %v", err)
	}

	if saveCalled {
		t.Error("expected no write on rejected password change")
	}
}

func TestAccountService_ChangePassword_NewPasswordTooShort(t *testing.T) {
	svc, _, _, _, _ := setupAccountService(t)

	user := domain.User{
		ID:           "user-1",
		PasswordHash: "hashed:oldsecret",
	}

	_, err := svc.ChangePassword(context.Background(), user, "oldsecret", "short")
	if !errors.Is(err, service.ErrValidationPasswordLength) {
		t.Fatalf("expected ErrValidationPasswordLength, got %v", err)
	}
}

func TestAccountService_ChangePassword_RevokeSessionsWhenConfigured(t *testing.T) {
	svc, repo, _, _, _ := setupAccountServiceWithConfig(t, service.AccountServiceConfig{
		PasswordMinLength:              8,
		RevokeSessionsOnPasswordChange: true,
	})

	var saved domain.User
	repo.saveFunc = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user := domain.User{
		ID:           "user-1",
		PasswordHash: "hashed:oldsecret",
		Tokens:       []string{"token-a", "token-b"},
	}

	if _, err := svc.ChangePassword(context.Background(), user, "oldsecret", "newsecret99"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(saved.Tokens) != 0 {
		t.Errorf("expected all sessions revoked, got %d tokens", len(saved.Tokens))
	}
}
