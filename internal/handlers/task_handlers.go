package handlers

import (
	"net/http"
	"taskBoard/internal/handlers/dto"
	"taskBoard/internal/logger"
	"taskBoard/internal/service"
	"time"

	"go.uber.org/zap"
)

type TaskHandler struct {
	TaskService TaskService
}

func NewTaskHandler(taskService TaskService) *TaskHandler {
	return &TaskHandler{
		TaskService: taskService,
	}
}

func (h *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var request dto.CreateTaskRequest
	if err := decodeJSON(w, r, &request); err != nil {
		handleError(w, r, err, "create_task")
		return
	}

	task, err := h.TaskService.CreateTask(r.Context(), p.ID, request.ToInput())
	if err != nil {
		handleError(w, r, err, "create_task")
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.String("task_id", task.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithMessage(w, http.StatusCreated, "Task created successfully", toPayload("task", task))
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := parseID(r, "id")
	if !ok {
		handleError(w, r, service.NewNotFound("Task not found"), "get_task")
		return
	}

	task, err := h.TaskService.GetTask(r.Context(), p.ID, id)
	if err != nil {
		handleError(w, r, err, "get_task")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("task", task))
}

func (h *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := parseID(r, "id")
	if !ok {
		handleError(w, r, service.NewNotFound("Task not found"), "update_task")
		return
	}

	var request dto.UpdateTaskRequest
	if err := decodeJSON(w, r, &request); err != nil {
		handleError(w, r, err, "update_task")
		return
	}

	task, err := h.TaskService.UpdateTask(r.Context(), p.ID, id, request.ToInput())
	if err != nil {
		handleError(w, r, err, "update_task")
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.String("task_id", task.ID.String()),
		zap.String("status", string(task.Status)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithMessage(w, http.StatusOK, "Task updated successfully", toPayload("task", task))
}

func (h *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := parseID(r, "id")
	if !ok {
		handleError(w, r, service.NewNotFound("Task not found"), "delete_task")
		return
	}

	if err := h.TaskService.DeleteTask(r.Context(), p.ID, id); err != nil {
		handleError(w, r, err, "delete_task")
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithMessage(w, http.StatusOK, "Task deleted successfully")
}

func (h *TaskHandler) GetTasksByBoard(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	boardID, ok := parseID(r, "boardId")
	if !ok {
		handleError(w, r, service.NewNotFound("Board not found"), "get_board_tasks")
		return
	}

	board, tasks, err := h.TaskService.GetTasksByBoard(r.Context(), p.ID, boardID)
	if err != nil {
		handleError(w, r, err, "get_board_tasks")
		return
	}

	responseWithJSON(w, http.StatusOK,
		toPayload("tasks", tasks),
		toPayload("board", board.Summary()),
	)
}
