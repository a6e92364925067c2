package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/models"
	"github.com/workasana/workasana-be/internal/services"
)

// TaskHandler handles HTTP requests for task management.
type TaskHandler struct {
	service services.TaskServiceProvider
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service services.TaskServiceProvider) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles the request to get tasks, optionally filtered by project,
// team, tag or status query parameters.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.TaskFilter{
		Project: r.URL.Query().Get("project"),
		Team:    r.URL.Query().Get("team"),
		Tag:     r.URL.Query().Get("tag"),
		Status:  r.URL.Query().Get("status"),
	}

	tasks, err := h.service.ListTasks(filter)
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

// Get handles the request to get a single task by its ID.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "taskId")
	task, err := h.service.GetTaskByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Task not found")
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// Create handles the request to create a new task.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.service.CreateTask(input)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(w, http.StatusBadRequest, "Missing fields")
			return
		}
		log.Error().Err(err).Str("task", input.Name).Msg("Failed to create task")
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

// Complete marks the task named in the payload as completed and returns
// the updated task with its relations expanded.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TaskID string `json:"taskId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.TaskID == "" {
		respondError(w, http.StatusBadRequest, "Task Id is required")
		return
	}

	task, err := h.service.CompleteTask(payload.TaskID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Task not found")
			return
		}
		log.Error().Err(err).Str("task_id", payload.TaskID).Msg("Failed to complete task")
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}
