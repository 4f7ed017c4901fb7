package http

import (
	"encoding/json"
	"net/http"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type GamesHandler struct {
	RecordsService *service.RecordsService
}

// HandleAdd godoc
//
//	@Summary		Record a game result
//	@Description	Stores one play of a gamified assessment module. Payload is an opaque JSON document owned by the frontend.
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Patient id"
//	@Param			request	body		AddGameResultRequest	true	"Result"
//	@Success		201		{object}	GameResultView			"result"
//	@Failure		400		{object}	httpx.MsgResponse		"msg"
//	@Failure		403		{object}	httpx.MsgResponse		"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/games [post].
func (h *GamesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddGameResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	result, err := h.RecordsService.AddGameResult(ctx, httpx.UserID(ctx), r.PathValue("id"), domain.GameResult{
		Game:    req.Game,
		Score:   req.Score,
		Payload: req.Payload,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, gameResultView(result))
}

// HandleList godoc
//
//	@Summary		List game results
//	@Tags			Games
//	@Produce		json
//	@Param			id		path		string				true	"Patient id"
//	@Param			game	query		string				false	"Filter by game key"
//	@Success		200		{array}		GameResultView		"results"
//	@Failure		403		{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/games [get].
func (h *GamesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	results, err := h.RecordsService.ListGameResults(ctx, httpx.UserID(ctx), r.PathValue("id"), r.URL.Query().Get("game"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]GameResultView, 0, len(results))
	for _, g := range results {
		out = append(out, gameResultView(g))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
