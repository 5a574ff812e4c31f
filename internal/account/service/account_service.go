package service

import (
	"context"
	"errors"

	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/account/repository"
	"github.com/profiled/accounts/internal/common/clock"
	"github.com/profiled/accounts/internal/common/crypto"
	commonerrors "github.com/profiled/accounts/internal/common/errors"
	"github.com/profiled/accounts/internal/common/logger"
)

type AccountService struct {
	repo        repository.Repository
	sessions    *SessionManager
	hasher      crypto.PasswordHasher
	idGenerator crypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger

	passwordMinLength      int
	revokeOnPasswordChange bool
}

type AccountServiceDeps struct {
	Repo        repository.Repository
	Sessions    *SessionManager
	Hasher      crypto.PasswordHasher
	IDGenerator crypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

type AccountServiceConfig struct {
	PasswordMinLength              int
	RevokeSessionsOnPasswordChange bool
}

func NewAccountService(deps AccountServiceDeps, cfg AccountServiceConfig) *AccountService {
	return &AccountService{
		repo:                   deps.Repo,
		sessions:               deps.Sessions,
		hasher:                 deps.Hasher,
		idGenerator:            deps.IDGenerator,
		clock:                  deps.Clock,
		log:                    deps.Log,
		passwordMinLength:      cfg.PasswordMinLength,
		revokeOnPasswordChange: cfg.RevokeSessionsOnPasswordChange,
	}
}

type CreateInput struct {
	Username string
	Email    string
	Password string
}

// Create registers a new account and immediately opens a session for
// it. The stored record only ever holds the password hash.
func (s *AccountService) Create(ctx context.Context, input CreateInput) (domain.User, string, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "create_attempt",
	}).Info("account create attempt")

	if err := validateCreateInput(input, s.passwordMinLength); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "create_validation_failed",
		}).Warnf("account create validation failed: %v", err)
		return domain.User{}, "", err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "create_hash_failed",
		}).Errorf("account create failed: password hash error: %v", err)
		return domain.User{}, "", err
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "create_id_generation_failed",
		}).Errorf("account create failed: id generation error: %v", err)
		return domain.User{}, "", err
	}

	now := s.clock.Now()
	user := domain.User{
		ID:           domain.ID(id),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  input.Email,
				"action": "create_email_exists",
			}).Warn("account create failed: email already registered")
			return domain.User{}, "", ErrEmailTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "create_failed",
		}).Errorf("account create failed: %v", err)
		return domain.User{}, "", mapRepositoryError(err)
	}

	user, token, err := s.sessions.Issue(ctx, user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":   input.Email,
			"user_id": id,
			"action":  "create_token_issue_failed",
		}).Errorf("account create failed: token issue error: %v", err)
		return domain.User{}, "", err
	}

	incrementAccountsCreated()
	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "create_success",
	}).Info("account created")

	return user, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error, so the response does not reveal which
// emails are registered.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  email,
		"action": "login_attempt",
	}).Info("login attempt")

	user, err := s.findByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			incrementLoginsFailed()
			s.log.WithFields(ctx, logger.Fields{
				"email":  email,
				"action": "login_invalid_credentials",
			}).Warn("login failed: invalid credentials")
		}
		return domain.User{}, "", err
	}

	user, token, err := s.sessions.Issue(ctx, user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":   email,
			"user_id": string(user.ID),
			"action":  "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		return domain.User{}, "", err
	}

	incrementLoginsSucceeded()
	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "login_success",
	}).Info("login success")

	return user, token, nil
}

// findByCredentials returns the user only when the email exists and the
// password matches; both failures collapse into ErrInvalidCredentials.
func (s *AccountService) findByCredentials(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		return domain.User{}, mapRepositoryError(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// UpdateField mutates a single allow-listed profile field and persists
// the full record.
func (s *AccountService) UpdateField(ctx context.Context, user domain.User, field domain.ProfileField, value string) (domain.User, error) {
	if !field.Updatable() {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"field":   string(field),
			"action":  "update_field_rejected",
		}).Warn("profile update rejected: field not on allow-list")
		return domain.User{}, ErrFieldNotUpdatable
	}

	if err := validateProfileValue(field, value); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"field":   string(field),
			"action":  "update_field_validation_failed",
		}).Warnf("profile update validation failed: %v", err)
		return domain.User{}, err
	}

	user.SetProfileField(field, value)
	user.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"user_id": string(user.ID),
				"action":  "update_email_exists",
			}).Warn("profile update failed: email already registered")
			return domain.User{}, ErrEmailTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"field":   string(field),
			"action":  "update_field_failed",
		}).Errorf("profile update failed: %v", err)
		return domain.User{}, mapRepositoryError(err)
	}

	incrementProfileUpdates(field)
	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(user.ID),
		"field":   string(field),
		"action":  "update_field_success",
	}).Info("profile field updated")

	return user, nil
}

// ChangePassword verifies the current password before replacing the
// stored hash. Existing sessions survive unless the service was
// configured to revoke them.
func (s *AccountService) ChangePassword(ctx context.Context, user domain.User, currentPassword, newPassword string) (domain.User, error) {
	if err := s.hasher.Compare(user.PasswordHash, currentPassword); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "change_password_mismatch",
		}).Warn("password change failed: current password invalid")
		return domain.User{}, ErrCurrentPasswordInvalid
	}

	if err := validatePassword(newPassword, s.passwordMinLength); err != nil {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "change_password_hash_failed",
		}).Errorf("password change failed: hash error: %v", err)
		return domain.User{}, err
	}

	user.PasswordHash = hash
	if s.revokeOnPasswordChange {
		user.ClearTokens()
	}
	user.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, user); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "change_password_save_failed",
		}).Errorf("password change failed: %v", err)
		return domain.User{}, mapRepositoryError(err)
	}

	incrementPasswordChanges()
	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(user.ID),
		"action":  "change_password_success",
	}).Info("password changed")

	return user, nil
}

// Logout removes exactly the presented token from the user's active
// list. Logging out an already absent token is not an error.
func (s *AccountService) Logout(ctx context.Context, user domain.User, token string) error {
	removed := user.RemoveToken(token)
	user.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, user); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "logout_failed",
		}).Errorf("logout failed: %v", err)
		return mapRepositoryError(err)
	}

	if removed {
		incrementSessionTokensRevoked(1)
	}
	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(user.ID),
		"action":  "logout_success",
	}).Info("logout success")

	return nil
}

// LogoutAll clears the whole token list, revoking every session.
func (s *AccountService) LogoutAll(ctx context.Context, user domain.User) error {
	revoked := len(user.Tokens)
	user.ClearTokens()
	user.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, user); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "logout_all_failed",
		}).Errorf("logout all failed: %v", err)
		return mapRepositoryError(err)
	}

	if revoked > 0 {
		incrementSessionTokensRevoked(revoked)
	}
	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(user.ID),
		"action":  "logout_all_success",
	}).Info("logout all success")

	return nil
}

func mapRepositoryError(err error) error {
	if commonerrors.IsDomainError(err) {
		return err
	}
	return commonerrors.ErrDatabaseError.WithCause(err)
}
