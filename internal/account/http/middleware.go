package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/profiled/accounts/internal/account/domain"
	commonhttp "github.com/profiled/accounts/internal/common/http"
)

type contextKey string

const (
	userContextKey  contextKey = "authenticated_user"
	tokenContextKey contextKey = "session_token"
)

// requireAuth resolves the bearer token into a user before the handler
// runs. A token that decodes but is no longer on the user's active list
// is rejected the same way as a malformed one.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			commonhttp.WriteErrorEnvelope(
				w, http.StatusUnauthorized,
				commonhttp.CodeMissingAuthorization,
				"missing or malformed authorization header",
				nil, "",
			)
			return
		}

		user, err := h.sessions.Authenticate(r.Context(), token)
		if err != nil {
			h.errors.HandleError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		next(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(domain.User)
	return user, ok
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}
