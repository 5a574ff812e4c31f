package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/account/repository"
	"github.com/profiled/accounts/internal/account/service"
	"github.com/profiled/accounts/internal/common/clock"
	"github.com/profiled/accounts/internal/common/logger"
)

type mockRepo struct {
	createFunc         func(ctx context.Context, user domain.User) error
	saveFunc           func(ctx context.Context, user domain.User) error
	findByIDFunc       func(ctx context.Context, id domain.ID) (domain.User, error)
	findByEmailFunc    func(ctx context.Context, email string) (domain.User, error)
	listWithTokensFunc func(ctx context.Context) ([]domain.User, error)
}

func (m *mockRepo) Create(ctx context.Context, user domain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockRepo) Save(ctx context.Context, user domain.User) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, user)
	}
	return nil
}

func (m *mockRepo) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (m *mockRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (m *mockRepo) ListWithTokens(ctx context.Context) ([]domain.User, error) {
	if m.listWithTokensFunc != nil {
		return m.listWithTokensFunc(ctx)
	}
	return nil, nil
}

type mockHasher struct {
	hashFunc    func(password string) (string, error)
	compareFunc func(hash string, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hash string, password string) error {
	if m.compareFunc != nil {
		return m.compareFunc(hash, password)
	}
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

type mockIDGenerator struct {
	mu      sync.Mutex
	counter int
	newFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newFunc != nil {
		return m.newFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter), nil
}

// mockCodec hands out distinct tokens and remembers which user each one
// was bound to.
type mockCodec struct {
	mu      sync.Mutex
	counter int
	issued  map[string]string

	encodeFunc func(userID string) (string, error)
	decodeFunc func(token string) (string, error)
}

func newMockCodec() *mockCodec {
	return &mockCodec{issued: make(map[string]string)}
}

func (m *mockCodec) Encode(userID string) (string, error) {
	if m.encodeFunc != nil {
		return m.encodeFunc(userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	token := fmt.Sprintf("token-%d", m.counter)
	m.issued[token] = userID
	return token, nil
}

func (m *mockCodec) Decode(token string) (string, error) {
	if m.decodeFunc != nil {
		return m.decodeFunc(token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.issued[token]
	if !ok {
		return "", errors.New("unknown token")
	}
	return userID, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("", "test", "ERROR")
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return log
}

func setupAccountService(t *testing.T) (*service.AccountService, *mockRepo, *mockHasher, *mockCodec, *clock.MockClock) {
	t.Helper()
	return setupAccountServiceWithConfig(t, service.AccountServiceConfig{
		PasswordMinLength: 8,
	})
}

func setupAccountServiceWithConfig(t *testing.T, cfg service.AccountServiceConfig) (*service.AccountService, *mockRepo, *mockHasher, *mockCodec, *clock.MockClock) {
	t.Helper()

	log := newTestLogger(t)
	repo := &mockRepo{}
	hasher := &mockHasher{}
	codec := newMockCodec()
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	sessions := service.NewSessionManager(service.SessionManagerDeps{
		Repo:  repo,
		Codec: codec,
		Clock: clk,
		Log:   log,
	})

	svc := service.NewAccountService(
		service.AccountServiceDeps{
			Repo:        repo,
			Sessions:    sessions,
			Hasher:      hasher,
			IDGenerator: &mockIDGenerator{},
			Clock:       clk,
			Log:         log,
		},
		cfg,
	)

	return svc, repo, hasher, codec, clk
}

func setupSessionManager(t *testing.T) (*service.SessionManager, *mockRepo, *mockCodec, *clock.MockClock) {
	t.Helper()

	repo := &mockRepo{}
	codec := newMockCodec()
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	sessions := service.NewSessionManager(service.SessionManagerDeps{
		Repo:  repo,
		Codec: codec,
		Clock: clk,
		Log:   newTestLogger(t),
	})

	return sessions, repo, codec, clk
}
