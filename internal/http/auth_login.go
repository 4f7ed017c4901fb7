package http

import (
	"encoding/json"
	"net/http"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Authenticates by email and password and returns an access token. Unknown email and wrong password produce the same error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest		true	"Credentials"
//	@Success		200		{object}	LoginResponse		"token, role"
//	@Failure		400		{object}	httpx.MsgResponse	"msg"
//	@Failure		500		{object}	httpx.MsgResponse	"msg"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	res, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Token: res.Token,
		Role:  res.User.Role.String(),
	})
}
