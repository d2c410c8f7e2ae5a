package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/tonandton/report-tracking/internal/adapter/http/dto"
	"github.com/tonandton/report-tracking/internal/adapter/http/mapper"
	"github.com/tonandton/report-tracking/internal/adapter/http/middleware"
	"github.com/tonandton/report-tracking/internal/adapter/http/validation"
	"github.com/tonandton/report-tracking/internal/core/ports"
	"github.com/tonandton/report-tracking/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang, err)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang, err)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgInvalidTaskPayload, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	taskID, ok := bindTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTask(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgInvalidTaskID, apierrors.MsgFailToggleTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := bindTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondServiceError(c, err, apierrors.MsgInvalidTaskID, apierrors.MsgFailDeleteTask)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskResponse{ID: taskID, Deleted: true})
}

func (h *TaskHandler) ReorderTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ReorderTasksRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidOrder, lang, err)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidOrder, lang, err)
		return
	}

	ids, err := validation.BuildReorderIDs(req, raw)
	if err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidOrder, lang, err)
		return
	}

	if err := h.taskService.ReorderTasks(c.Request.Context(), ids); err != nil {
		respondServiceError(c, err, apierrors.MsgInvalidOrder, apierrors.MsgFailReorderTasks)
		return
	}

	c.JSON(http.StatusOK, dto.ReorderTasksResponse{Success: true})
}

func bindTaskID(c *gin.Context) (string, bool) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.Respond(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID, middleware.GetLang(c), err)
		return "", false
	}
	return taskID.String(), true
}
