package http

import (
	"encoding/json"
	"net/http"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleMe godoc
//
//	@Summary		Current user profile
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	UserView			"profile"
//	@Failure		401	{object}	httpx.MsgResponse	"msg"
//	@Failure		404	{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.UserService.GetUserByID(ctx, httpx.UserID(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userView(user))
}

// HandleUpdateMe godoc
//
//	@Summary		Update current user profile
//	@Description	Changes name and surname. Email, role and therapist assignment are immutable.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProfileRequest	true	"New name and surname"
//	@Success		200		{object}	httpx.MsgResponse		"msg"
//	@Failure		400		{object}	httpx.MsgResponse		"msg"
//	@Failure		401		{object}	httpx.MsgResponse		"msg"
//	@Security		BearerAuth
//	@Router			/api/users/me [put].
func (h *UsersHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.UserService.UpdateProfile(ctx, httpx.UserID(ctx), req.Nombre, req.Apellidos); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteMsg(w, http.StatusOK, "profile updated")
}
