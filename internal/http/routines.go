package http

import (
	"encoding/json"
	"net/http"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type RoutinesHandler struct {
	RecordsService *service.RecordsService
}

// HandleAdd godoc
//
//	@Summary		Create a weekly routine
//	@Tags			Routines
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Patient id"
//	@Param			request	body		AddRoutineRequest	true	"Routine (weekday 0=Sunday..6, timeOfDay HH:MM)"
//	@Success		201		{object}	RoutineView			"routine"
//	@Failure		400		{object}	httpx.MsgResponse	"msg"
//	@Failure		403		{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/routines [post].
func (h *RoutinesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	created, err := h.RecordsService.AddRoutine(ctx, httpx.UserID(ctx), r.PathValue("id"), domain.Routine{
		Title:     req.Title,
		Weekday:   req.Weekday,
		TimeOfDay: req.TimeOfDay,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, routineView(created))
}

// HandleList godoc
//
//	@Summary		List routines
//	@Tags			Routines
//	@Produce		json
//	@Param			id	path		string				true	"Patient id"
//	@Success		200	{array}		RoutineView			"routines"
//	@Failure		403	{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/routines [get].
func (h *RoutinesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	routines, err := h.RecordsService.ListRoutines(ctx, httpx.UserID(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]RoutineView, 0, len(routines))
	for _, rt := range routines {
		out = append(out, routineView(rt))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSetActive godoc
//
//	@Summary		Activate or deactivate a routine
//	@Tags			Routines
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string					true	"Patient id"
//	@Param			routineId	path		string					true	"Routine id"
//	@Param			request		body		SetRoutineActiveRequest	true	"Active flag"
//	@Success		200			{object}	httpx.MsgResponse		"msg"
//	@Failure		404			{object}	httpx.MsgResponse		"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/routines/{routineId}/active [put].
func (h *RoutinesHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetRoutineActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	err := h.RecordsService.SetRoutineActive(ctx, httpx.UserID(ctx), r.PathValue("id"), r.PathValue("routineId"), req.Active)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteMsg(w, http.StatusOK, "routine updated")
}

// HandleDelete godoc
//
//	@Summary		Delete a routine
//	@Tags			Routines
//	@Produce		json
//	@Param			id			path		string				true	"Patient id"
//	@Param			routineId	path		string				true	"Routine id"
//	@Success		200			{object}	httpx.MsgResponse	"msg"
//	@Failure		404			{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/routines/{routineId} [delete].
func (h *RoutinesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.RecordsService.DeleteRoutine(ctx, httpx.UserID(ctx), r.PathValue("id"), r.PathValue("routineId"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteMsg(w, http.StatusOK, "routine deleted")
}
