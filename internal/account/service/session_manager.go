package service

import (
	"context"
	"errors"

	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/account/repository"
	"github.com/profiled/accounts/internal/common/clock"
	"github.com/profiled/accounts/internal/common/logger"
)

type SessionManager struct {
	repo  repository.Repository
	codec TokenCodec
	clock clock.Clock
	log   *logger.Logger
}

type SessionManagerDeps struct {
	Repo  repository.Repository
	Codec TokenCodec
	Clock clock.Clock
	Log   *logger.Logger
}

func NewSessionManager(deps SessionManagerDeps) *SessionManager {
	return &SessionManager{
		repo:  deps.Repo,
		codec: deps.Codec,
		clock: deps.Clock,
		log:   deps.Log,
	}
}

// Issue signs a new token bound to the user, appends it to the user's
// active list, and persists the updated record. The returned user
// carries the new token list.
func (m *SessionManager) Issue(ctx context.Context, user domain.User) (domain.User, string, error) {
	token, err := m.codec.Encode(string(user.ID))
	if err != nil {
		m.log.WithFields(ctx, logger.Fields{
			"user_id": string(user.ID),
			"action":  "token_issue_failed",
		}).Errorf("failed to sign session token: %v", err)
		return domain.User{}, "", err
	}

	user.AppendToken(token)
	user.UpdatedAt = m.clock.Now()

	if err := m.repo.Save(ctx, user); err != nil {
		return domain.User{}, "", mapRepositoryError(err)
	}

	incrementSessionTokensIssued()
	return user, token, nil
}

// Authenticate verifies the token signature and binding, then confirms
// the exact token string is still on the user's active list. A
// well-signed token that has been logged out fails here; presence in the
// list is the revocation mechanism.
func (m *SessionManager) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, ErrInvalidToken
	}

	userID, err := m.codec.Decode(token)
	if err != nil {
		m.log.WithFields(ctx, logger.Fields{
			"action": "token_decode_failed",
		}).Warnf("session token decode failed: %v", err)
		return domain.User{}, ErrInvalidToken
	}

	user, err := m.repo.FindByID(ctx, domain.ID(userID))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			m.log.WithFields(ctx, logger.Fields{
				"user_id": userID,
				"action":  "token_user_not_found",
			}).Warn("session token references unknown user")
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, mapRepositoryError(err)
	}

	if !user.HasToken(token) {
		m.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "token_revoked",
		}).Warn("session token not in active list")
		return domain.User{}, ErrInvalidToken
	}

	return user, nil
}

// PruneExpired removes tokens that no longer decode (expired or signed
// with a retired secret) from every user's active list. Returns the
// number of tokens dropped.
func (m *SessionManager) PruneExpired(ctx context.Context) (int, error) {
	users, err := m.repo.ListWithTokens(ctx)
	if err != nil {
		return 0, mapRepositoryError(err)
	}

	pruned := 0
	for _, user := range users {
		kept := user.Tokens[:0:0]
		for _, token := range user.Tokens {
			if _, err := m.codec.Decode(token); err != nil {
				pruned++
				continue
			}
			kept = append(kept, token)
		}
		if len(kept) == len(user.Tokens) {
			continue
		}

		user.Tokens = kept
		user.UpdatedAt = m.clock.Now()
		if err := m.repo.Save(ctx, user); err != nil {
			m.log.WithFields(ctx, logger.Fields{
				"user_id": string(user.ID),
				"action":  "session_prune_save_failed",
			}).Errorf("failed to save pruned token list: %v", err)
			return pruned, mapRepositoryError(err)
		}
	}

	if pruned > 0 {
		addSessionTokensPruned(pruned)
	}
	return pruned, nil
}
