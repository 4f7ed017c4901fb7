package http

import (
	"encoding/json"
	"net/http"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type PasswordHandler struct {
	AuthService *service.AuthService
}

// HandleForgot godoc
//
//	@Summary		Request a password reset
//	@Description	Issues a short-lived single-use reset token and emails a reset link to the account's address.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	httpx.MsgResponse		"msg"
//	@Failure		400		{object}	httpx.MsgResponse		"msg"
//	@Failure		404		{object}	httpx.MsgResponse		"msg"
//	@Failure		500		{object}	httpx.MsgResponse		"msg"
//	@Router			/api/auth/forgot-password [post].
func (h *PasswordHandler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.AuthService.ForgotPassword(ctx, req.Email); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteMsg(w, http.StatusOK, "reset email sent")
}

// HandleReset godoc
//
//	@Summary		Reset a password
//	@Description	Consumes a reset token (exactly once) and stores the new password. A replayed or expired token is rejected.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ResetPasswordRequest	true	"Reset token and new password"
//	@Success		200		{object}	httpx.MsgResponse		"msg"
//	@Failure		400		{object}	httpx.MsgResponse		"msg"
//	@Failure		500		{object}	httpx.MsgResponse		"msg"
//	@Router			/api/auth/reset-password [post].
func (h *PasswordHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.AuthService.ResetPassword(ctx, req.Token, req.Password); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteMsg(w, http.StatusOK, "password updated")
}
