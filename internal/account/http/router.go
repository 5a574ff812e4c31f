package http

import (
	"net/http"
	"time"

	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/account/service"
	"github.com/profiled/accounts/internal/account/service/mapper"
	commonhttp "github.com/profiled/accounts/internal/common/http"
	"github.com/profiled/accounts/internal/common/logger"
)

type Handler struct {
	accounts *service.AccountService
	sessions *service.SessionManager
	log      *logger.Logger
	errors   *commonhttp.ErrorHandler

	requestTimeout time.Duration
}

type HandlerDeps struct {
	Accounts *service.AccountService
	Sessions *service.SessionManager
	Log      *logger.Logger
}

type HandlerConfig struct {
	RequestTimeout time.Duration
}

func NewHandler(deps HandlerDeps, cfg HandlerConfig) *Handler {
	return &Handler{
		accounts:       deps.Accounts,
		sessions:       deps.Sessions,
		log:            deps.Log,
		errors:         commonhttp.NewErrorHandler(deps.Log),
		requestTimeout: cfg.RequestTimeout,
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	timeout := commonhttp.WithTimeout(h.requestTimeout)
	post := commonhttp.RequireMethod(http.MethodPost)
	put := commonhttp.RequireMethod(http.MethodPut)
	get := commonhttp.RequireMethod(http.MethodGet)

	mux.HandleFunc("/users/create", timeout(post(h.handleCreate)))
	mux.HandleFunc("/users/login", timeout(post(h.handleLogin)))
	mux.HandleFunc("/users/me", timeout(get(h.requireAuth(h.handleMe))))
	mux.HandleFunc("/users/me/password", timeout(put(h.requireAuth(h.handleChangePassword))))
	mux.HandleFunc("/users/me/logout", timeout(post(h.requireAuth(h.handleLogout))))
	mux.HandleFunc("/users/me/logoutall", timeout(post(h.requireAuth(h.handleLogoutAll))))

	for _, field := range []domain.ProfileField{
		domain.FieldEmail,
		domain.FieldDescription,
		domain.FieldPicture,
		domain.FieldLink,
	} {
		mux.HandleFunc("/users/me/"+string(field), timeout(put(h.requireAuth(h.updateField(field)))))
	}
}

type createRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type sessionResponse struct {
	User  mapper.PublicUser `json:"user"`
	Token string            `json:"token"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid request body", nil, "")
		return
	}

	user, token, err := h.accounts.Create(r.Context(), service.CreateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, sessionResponse{
		User:  mapper.ToPublic(user),
		Token: token,
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid request body", nil, "")
		return
	}

	user, token, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, sessionResponse{
		User:  mapper.ToPublic(user),
		Token: token,
	})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, mapper.ToPublic(user))
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var req changePasswordRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid request body", nil, "")
		return
	}

	updated, err := h.accounts.ChangePassword(r.Context(), user, req.CurrentPassword, req.NewPassword)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, mapper.ToPublic(updated))
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	user, okUser := UserFromContext(r.Context())
	token, okToken := TokenFromContext(r.Context())
	if !okUser || !okToken {
		commonhttp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.accounts.Logout(r.Context(), user, token); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleLogoutAll(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.accounts.LogoutAll(r.Context(), user); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// updateField builds the handler for a single profile field route. The
// body must carry the field under its own name, e.g. {"email": "..."}.
func (h *Handler) updateField(field domain.ProfileField) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			commonhttp.WriteError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		var body map[string]string
		if err := commonhttp.DecodeJSON(r, &body); err != nil {
			commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid request body", nil, "")
			return
		}

		value, present := body[string(field)]
		if !present {
			commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "missing field: "+string(field), nil, "")
			return
		}

		updated, err := h.accounts.UpdateField(r.Context(), user, field, value)
		if err != nil {
			h.errors.HandleError(w, r, err)
			return
		}

		commonhttp.WriteJSON(w, http.StatusCreated, mapper.ToPublic(updated))
	}
}
