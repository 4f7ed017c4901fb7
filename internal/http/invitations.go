package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
	"github.com/janus-care/janus/pkg/slogx"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleCreate godoc
//
//	@Summary		Issue a patient invitation
//	@Description	Creates a single-use invitation for the given email under the authenticated therapist and emails the invite. At most one unaccepted invitation may exist per (email, therapist) pair.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateInvitationRequest		true	"Invited email"
//	@Success		201		{object}	CreateInvitationResponse	"msg, invitation"
//	@Failure		400		{object}	httpx.MsgResponse			"msg"
//	@Failure		401		{object}	httpx.MsgResponse			"msg"
//	@Failure		403		{object}	httpx.MsgResponse			"msg"
//	@Failure		500		{object}	httpx.MsgResponse			"msg"
//	@Security		BearerAuth
//	@Router			/api/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	inv, err := h.InvitationService.Issue(ctx, httpx.UserID(ctx), req.InvitedEmail)
	if errors.Is(err, service.ErrInvitationMailFailed) {
		// The invitation exists; only delivery failed. The therapist can
		// share the registration link manually.
		log.Warn("invitation email undeliverable", "invitation_id", inv.ID)
		httpx.WriteJSON(w, http.StatusInternalServerError, CreateInvitationResponse{
			Msg:        "invitation created but the email could not be sent",
			Invitation: invitationView(inv),
		})
		return
	}
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, CreateInvitationResponse{
		Msg:        "invitation sent",
		Invitation: invitationView(inv),
	})
}

// HandleValidate godoc
//
//	@Summary		Check an invitation
//	@Description	Reports whether an unaccepted invitation exists for the given invitationId or email (id wins when both are present). Public: the registration page calls this before the form is submitted.
//	@Tags			Invitations
//	@Produce		json
//	@Param			invitationId	query		string						false	"Invitation id"
//	@Param			email			query		string						false	"Invited email"
//	@Success		200				{object}	ValidateInvitationResponse	"valid, therapist"
//	@Failure		400				{object}	httpx.MsgResponse			"msg"
//	@Router			/api/invitations [get].
func (h *InvitationsHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("invitationId")
	email := r.URL.Query().Get("email")
	if id == "" && email == "" {
		httpx.WriteMsg(w, http.StatusBadRequest, "invitationId or email is required")
		return
	}

	inv, err := h.InvitationService.Lookup(ctx, id, email)
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusOK, ValidateInvitationResponse{Valid: false})
	case err != nil:
		writeServiceError(ctx, w, err)
	default:
		httpx.WriteJSON(w, http.StatusOK, ValidateInvitationResponse{
			Valid:     true,
			Therapist: inv.TherapistID,
		})
	}
}
