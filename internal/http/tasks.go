package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
)

type TasksHandler struct {
	RecordsService *service.RecordsService
}

// HandleAdd godoc
//
//	@Summary		Create a planner task
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Patient id"
//	@Param			request	body		AddTaskRequest		true	"Task"
//	@Success		201		{object}	TaskView			"task"
//	@Failure		400		{object}	httpx.MsgResponse	"msg"
//	@Failure		403		{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/tasks [post].
func (h *TasksHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	task := domain.Task{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != "" {
		d, err := time.Parse(dateWire, req.DueDate)
		if err != nil {
			httpx.WriteMsg(w, http.StatusBadRequest, "dueDate must be yyyy-mm-dd")
			return
		}
		task.DueDate = d
	}

	created, err := h.RecordsService.AddTask(ctx, httpx.UserID(ctx), r.PathValue("id"), task)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, taskView(created))
}

// HandleList godoc
//
//	@Summary		List planner tasks
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path		string				true	"Patient id"
//	@Success		200	{array}		TaskView			"tasks"
//	@Failure		403	{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.RecordsService.ListTasks(ctx, httpx.UserID(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskView(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdateStatus godoc
//
//	@Summary		Update a task's status
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Patient id"
//	@Param			taskId	path		string					true	"Task id"
//	@Param			request	body		UpdateTaskStatusRequest	true	"New status (pending or done)"
//	@Success		200		{object}	httpx.MsgResponse		"msg"
//	@Failure		400		{object}	httpx.MsgResponse		"msg"
//	@Failure		404		{object}	httpx.MsgResponse		"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/tasks/{taskId}/status [put].
func (h *TasksHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	err := h.RecordsService.SetTaskStatus(ctx, httpx.UserID(ctx), r.PathValue("id"), r.PathValue("taskId"), domain.TaskStatus(req.Status))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteMsg(w, http.StatusOK, "task updated")
}

// HandleDelete godoc
//
//	@Summary		Delete a task
//	@Tags			Tasks
//	@Produce		json
//	@Param			id		path		string				true	"Patient id"
//	@Param			taskId	path		string				true	"Task id"
//	@Success		200		{object}	httpx.MsgResponse	"msg"
//	@Failure		404		{object}	httpx.MsgResponse	"msg"
//	@Security		BearerAuth
//	@Router			/api/patients/{id}/tasks/{taskId} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.RecordsService.DeleteTask(ctx, httpx.UserID(ctx), r.PathValue("id"), r.PathValue("taskId"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteMsg(w, http.StatusOK, "task deleted")
}
