package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type MessagesHandler struct {
	MessageService *service.MessageService
}

// HandleSend godoc
//
//	@Summary		Send a message
//	@Description	Stores one chat message. Sender and recipient must be clinically linked (a patient and their assigned therapist).
//	@Tags			Messaging
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SendMessageRequest	true	"Recipient and body"
//	@Success		201		{object}	MessageView			"message"
//	@Failure		400		{object}	httpx.MsgResponse	"msg"
//	@Failure		401		{object}	httpx.MsgResponse	"msg"
//	@Failure		403		{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/messages [post].
func (h *MessagesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	msg, err := h.MessageService.Send(ctx, httpx.UserID(ctx), req.RecipientID, req.Body)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, messageView(msg))
}

// HandleConversation godoc
//
//	@Summary		Conversation with another user
//	@Description	Returns the newest window of messages between the caller and the given user, in chronological order.
//	@Tags			Messaging
//	@Produce		json
//	@Param			userId	path		string				true	"Other participant"
//	@Param			limit	query		int					false	"Window size (default 100)"
//	@Success		200		{array}		MessageView			"messages"
//	@Failure		401		{object}	httpx.MsgResponse	"msg"
//	@Failure		403		{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/messages/{userId} [get].
func (h *MessagesHandler) HandleConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	msgs, err := h.MessageService.Conversation(ctx, httpx.UserID(ctx), r.PathValue("userId"), limit)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageView(m))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
