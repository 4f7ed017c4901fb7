package http

import (
	"encoding/json"
	"net/http"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type NotesHandler struct {
	RecordsService *service.RecordsService
}

// HandleAdd godoc
//
//	@Summary		Write a session note
//	@Description	Only the patient's assigned therapist may write notes.
//	@Tags			Notes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Patient id"
//	@Param			request	body		AddSessionNoteRequest	true	"Note body"
//	@Success		201		{object}	SessionNoteView			"note"
//	@Failure		400		{object}	httpx.MsgResponse		"msg"
//	@Failure		403		{object}	httpx.MsgResponse		"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/notes [post].
func (h *NotesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddSessionNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	note, err := h.RecordsService.AddSessionNote(ctx, httpx.UserID(ctx), r.PathValue("id"), req.Body)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sessionNoteView(note))
}

// HandleList godoc
//
//	@Summary		List session notes
//	@Tags			Notes
//	@Produce		json
//	@Param			id	path		string				true	"Patient id"
//	@Success		200	{array}		SessionNoteView		"notes"
//	@Failure		403	{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/notes [get].
func (h *NotesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.RecordsService.ListSessionNotes(ctx, httpx.UserID(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]SessionNoteView, 0, len(notes))
	for _, n := range notes {
		out = append(out, sessionNoteView(n))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
