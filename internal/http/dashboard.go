package http

import (
	"net/http"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// HandlePatients godoc
//
//	@Summary		List the therapist's patients
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{array}		UserView			"patients"
//	@Failure		401	{object}	httpx.MsgResponse	"msg"
//	@Failure		403	{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/dashboard/patients [get].
func (h *DashboardHandler) HandlePatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patients, err := h.DashboardService.Patients(ctx, httpx.UserID(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]UserView, 0, len(patients))
	for _, p := range patients {
		out = append(out, userView(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSummary godoc
//
//	@Summary		Patient summary
//	@Description	Descriptive statistics over the patient's diary, tasks and game results: intensity mean and standard deviation, emotion distribution with its Shannon entropy, task completion rate, per-game plays and scores. Optional from/to window (yyyy-mm-dd) applies to diary entries.
//	@Tags			Dashboard
//	@Produce		json
//	@Param			id		path		string					true	"Patient id"
//	@Param			from	query		string					false	"Diary window start"
//	@Param			to		query		string					false	"Diary window end"
//	@Success		200		{object}	PatientSummaryResponse	"summary"
//	@Failure		403		{object}	httpx.MsgResponse		"msg"
//	@Failure		404		{object}	httpx.MsgResponse		"msg"
//	@Security		BearerAuth
//	@Router			/api/dashboard/patients/{id}/summary [get].
func (h *DashboardHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, ok := parseDateQuery(w, r, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(w, r, "to")
	if !ok {
		return
	}

	summary, err := h.DashboardService.Summary(ctx, httpx.UserID(ctx), r.PathValue("id"), from, to)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, patientSummaryResponse(summary))
}
