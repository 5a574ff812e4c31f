package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/account/repository"
	"github.com/profiled/accounts/internal/account/service"
	commonerrors "github.com/profiled/accounts/internal/common/errors"
)

func TestAccountService_Create_Success(t *testing.T) {
	svc, repo, _, _, clk := setupAccountService(t)

	var created domain.User
	repo.createFunc = func(ctx context.Context, user domain.User) error {
		created = user
		return nil
	}

	var saved domain.User
	repo.saveFunc = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user, token, err := svc.Create(context.Background(), service.CreateInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if token == "" {
		t.Error("expected a session token")
	}

	if created.PasswordHash == "secret123" || created.PasswordHash == "" {
		t.Errorf("expected password to be stored hashed, got %q", created.PasswordHash)
	}

	if !created.CreatedAt.Equal(clk.Now()) {
		t.Errorf("expected created_at %v, got %v", clk.Now(), created.CreatedAt)
	}

	if !user.HasToken(token) {
		t.Error("expected returned user to carry the issued token")
	}

	if !saved.HasToken(token) {
		t.Error("expected persisted user to carry the issued token")
	}
}

func TestAccountService_Create_ValidationErrors(t *testing.T) {
	svc, _, _, _, _ := setupAccountService(t)

	cases := []struct {
		name  string
		input service.CreateInput
		want  error
	}{
		{
			name:  "username too short",
			input: service.CreateInput{Username: "ab", Email: "a@x.com", Password: "secret123"},
			want:  service.ErrValidationUsernameLength,
		},
		{
			name:  "bad email",
			input: service.CreateInput{Username: "alice", Email: "not-an-email", Password: "secret123"},
			want:  service.ErrValidationEmailFormat,
		},
		{
			name:  "password too short",
			input: service.CreateInput{Username: "alice", Email: "a@x.com", Password: "short"},
			want:  service.ErrValidationPasswordLength,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Create(context.Background(), tc.input)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
			if !service.IsValidationError(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestAccountService_Create_EmailTaken(t *testing.T) {
	svc, repo, _, _, _ := setupAccountService(t)

	repo.createFunc = func(ctx context.Context, user domain.User) error {
		return repository.ErrEmailAlreadyExists
	}

	_, _, err := svc.Create(context.Background(), service.CreateInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	domainErr, ok := commonerrors.AsDomainError(err)
	if !ok || domainErr.HTTPStatus() != 400 {
		t.Errorf("expected status 400, got %v", err)
	}
}

func TestAccountService_Create_DatabaseError(t *testing.T) {
	svc, repo, _, _, _ := setupAccountService(t)

	repo.createFunc = func(ctx context.Context, user domain.User) error {
		return errors.New("connection refused")
	}

	_, _, err := svc.Create(context.Background(), service.CreateInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	domainErr, ok := commonerrors.AsDomainError(err)
	if !ok || domainErr.Code() != "DATABASE_ERROR" {
		t.Errorf("expected DATABASE_ERROR, got %v", err)
	}
}
