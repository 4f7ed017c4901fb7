package http

import (
	"encoding/json"
	"net/http"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account. Patients must hold an unaccepted invitation (matched by invitationId or by email); accepting it binds the patient to the inviting therapist. Returns an access token on success.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest		true	"Registration form"
//	@Success		201		{object}	RegisterResponse	"token, role, user"
//	@Failure		400		{object}	httpx.MsgResponse	"msg"
//	@Failure		403		{object}	httpx.MsgResponse	"msg"
//	@Failure		500		{object}	httpx.MsgResponse	"msg"
//	@Router			/api/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	res, err := h.AuthService.Register(ctx, service.RegisterInput{
		Name:         req.Nombre,
		Surname:      req.Apellidos,
		BirthDate:    req.FechaNacimiento,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		InvitationID: req.InvitationID,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, RegisterResponse{
		Token: res.Token,
		Role:  res.User.Role.String(),
		User:  userSummary(res.User),
	})
}
