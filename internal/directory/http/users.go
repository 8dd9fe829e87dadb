package http

import (
	"encoding/json"
	"net/http"

	"github.com/farrierlabs/accountd/internal/directory/domain"
	"github.com/farrierlabs/accountd/internal/directory/service"
	"github.com/farrierlabs/accountd/pkg/dirsdk"
	"github.com/farrierlabs/accountd/pkg/httpx"
	"github.com/farrierlabs/accountd/pkg/idx"
)

// UsersHandler handles all account endpoints.
type UsersHandler struct {
	Directory *service.DirectoryService
}

// actorFromRequest builds the caller's identity from the context populated
// by the identity middleware.
func actorFromRequest(r *http.Request) domain.Actor {
	return domain.Actor{
		ID:   httpx.UserIDFromCtx(r.Context()),
		Role: domain.Role(httpx.UserRoleFromCtx(r.Context())),
	}
}

func accountInfo(a domain.Account) dirsdk.AccountInfo {
	return dirsdk.AccountInfo{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        string(a.Role),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		LastLoginAt: a.LastLoginAt,
	}
}

// HandleSignup handles POST /api/users/signup
//
//	@Summary		Create Account
//	@Description	Creates a new account. Role is optional and defaults to "user".
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dirsdk.SignupRequest	true	"Signup request"
//	@Success		201		{object}	dirsdk.AccountInfo		"Sanitized account"
//	@Failure		400		{object}	dirsdk.ErrorResponse	"Validation failure or duplicate email"
//	@Router			/api/users/signup [post].
func (h *UsersHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req dirsdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	account, err := h.Directory.Signup(r.Context(), service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountInfo(account))
}

// HandleLogin handles POST /api/users/login
//
//	@Summary		Verify Credentials
//	@Description	Verifies email and password. An unknown email and a wrong password both yield 401.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dirsdk.LoginRequest		true	"Login request"
//	@Success		200		{object}	dirsdk.AccountInfo		"Sanitized account"
//	@Failure		401		{object}	dirsdk.ErrorResponse	"Invalid credentials"
//	@Router			/api/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req dirsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	account, ok, err := h.Directory.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !ok {
		(&dirsdk.APIError{
			StatusCode: http.StatusUnauthorized,
			Message:    "Invalid credentials",
		}).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountInfo(account))
}

// HandleList handles GET /api/users
//
//	@Summary		List Accounts
//	@Description	Lists accounts in creation order. Filters compose conjunctively.
//	@Tags			Users
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Caller id"
//	@Param			search		query		string	false	"Case-insensitive substring over name or email"
//	@Param			status		query		string	false	"Exact status filter"	Enums(active, inactive, pending)
//	@Param			role		query		string	false	"Exact role filter"		Enums(user, admin)
//	@Success		200			{array}		dirsdk.AccountInfo
//	@Failure		401			{object}	dirsdk.ErrorResponse
//	@Failure		500			{object}	dirsdk.ErrorResponse
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	accounts, err := h.Directory.List(r.Context(), domain.AccountFilter{
		Search: q.Get("search"),
		Status: domain.Status(q.Get("status")),
		Role:   domain.Role(q.Get("role")),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]dirsdk.AccountInfo, len(accounts))
	for i, a := range accounts {
		out[i] = accountInfo(a)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleStats handles GET /api/users/stats
//
//	@Summary		Directory Statistics
//	@Description	Aggregate counts over the whole directory.
//	@Tags			Users
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Caller id"
//	@Success		200			{object}	dirsdk.StatsResponse
//	@Failure		401			{object}	dirsdk.ErrorResponse
//	@Failure		500			{object}	dirsdk.ErrorResponse
//	@Router			/api/users/stats [get].
func (h *UsersHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Directory.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dirsdk.StatsResponse{
		TotalUsers:     stats.TotalAccounts,
		ActiveUsers:    stats.ActiveAccounts,
		Administrators: stats.Administrators,
	})
}

// HandleGet handles GET /api/users/{id}
//
//	@Summary		Get Account
//	@Tags			Users
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Caller id"
//	@Param			id			path		string	true	"Account id (ULID)"
//	@Success		200			{object}	dirsdk.AccountInfo
//	@Failure		401			{object}	dirsdk.ErrorResponse
//	@Failure		404			{object}	dirsdk.ErrorResponse
//	@Router			/api/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		// A malformed id can't name any account.
		writeServiceError(w, r, service.ErrAccountNotFound)
		return
	}

	account, err := h.Directory.Account(r.Context(), id.String())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountInfo(account))
}

// HandleUpdate handles PUT /api/users/{id}
//
//	@Summary		Update Account
//	@Description	Admin only. Applies the allow-listed patch (name, role, status); any other field is ignored.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string						true	"Caller id"
//	@Param			X-User-Role	header		string						true	"Caller role; must be admin"
//	@Param			id			path		string						true	"Account id (ULID)"
//	@Param			request		body		dirsdk.UpdateAccountRequest	true	"Patch"
//	@Success		200			{object}	dirsdk.AccountInfo
//	@Failure		400			{object}	dirsdk.ErrorResponse
//	@Failure		403			{object}	dirsdk.ErrorResponse
//	@Failure		404			{object}	dirsdk.ErrorResponse
//	@Router			/api/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dirsdk.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	patch := domain.AccountPatch{Name: req.Name}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		patch.Status = &status
	}

	account, err := h.Directory.Update(r.Context(), r.PathValue("id"), patch, actorFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountInfo(account))
}

// HandleDelete handles DELETE /api/users/{id}
//
//	@Summary		Delete Account
//	@Description	Admin only. Removes the account permanently.
//	@Tags			Users
//	@Produce		json
//	@Param			X-User-ID	header	string	true	"Caller id"
//	@Param			X-User-Role	header	string	true	"Caller role; must be admin"
//	@Param			id			path	string	true	"Account id (ULID)"
//	@Success		204			"Account deleted"
//	@Failure		403			{object}	dirsdk.ErrorResponse
//	@Failure		404			{object}	dirsdk.ErrorResponse
//	@Router			/api/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Directory.Delete(r.Context(), r.PathValue("id"), actorFromRequest(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
