package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type DiaryHandler struct {
	RecordsService *service.RecordsService
}

// HandleAdd godoc
//
//	@Summary		Add an emotion diary entry
//	@Tags			Diary
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Patient id"
//	@Param			request	body		AddDiaryEntryRequest	true	"Entry"
//	@Success		201		{object}	DiaryEntryView		"entry"
//	@Failure		400		{object}	httpx.MsgResponse	"msg"
//	@Failure		403		{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/diary [post].
func (h *DiaryHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddDiaryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	entry := domain.DiaryEntry{
		Emotion:   req.Emotion,
		Intensity: req.Intensity,
		Note:      req.Note,
	}
	if req.Date != "" {
		d, err := time.Parse(dateWire, req.Date)
		if err != nil {
			httpx.WriteMsg(w, http.StatusBadRequest, "date must be yyyy-mm-dd")
			return
		}
		entry.EntryDate = d
	}

	created, err := h.RecordsService.AddDiaryEntry(ctx, httpx.UserID(ctx), r.PathValue("id"), entry)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, diaryEntryView(created))
}

// HandleList godoc
//
//	@Summary		List emotion diary entries
//	@Description	Entries in chronological order, optionally windowed by from/to (yyyy-mm-dd, inclusive).
//	@Tags			Diary
//	@Produce		json
//	@Param			id		path		string				true	"Patient id"
//	@Param			from	query		string				false	"Window start"
//	@Param			to		query		string				false	"Window end"
//	@Success		200		{array}		DiaryEntryView		"entries"
//	@Failure		403		{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/diary [get].
func (h *DiaryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, ok := parseDateQuery(w, r, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(w, r, "to")
	if !ok {
		return
	}

	entries, err := h.RecordsService.ListDiaryEntries(ctx, httpx.UserID(ctx), r.PathValue("id"), from, to)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]DiaryEntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, diaryEntryView(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// parseDateQuery reads an optional yyyy-mm-dd query parameter. On a
// malformed value it writes a 400 and reports false.
func parseDateQuery(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, true
	}
	d, err := time.Parse(dateWire, raw)
	if err != nil {
		httpx.WriteMsg(w, http.StatusBadRequest, name+" must be yyyy-mm-dd")
		return time.Time{}, false
	}
	return d, true
}
