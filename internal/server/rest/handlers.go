package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/taskvault/internal/server/models"
	"github.com/dmitrijs2005/taskvault/internal/server/services"
	"github.com/gorilla/mux"
)

func (s *RESTServer) rootHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to TaskVault API",
		"version": apiVersion,
		"health":  "/health",
	})
}

func (s *RESTServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *RESTServer) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	s.writeJSON(w, http.StatusCreated, newUserResponse(user))
}

func (s *RESTServer) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *RESTServer) listTasksHandler(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	q := r.URL.Query()
	filter := models.TaskFilter{
		Status:   models.TaskStatus(q.Get("status_filter")),
		Priority: models.TaskPriority(q.Get("priority_filter")),
	}

	items, err := s.tasks.List(r.Context(), userID, filter)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newTaskListResponse(items))
}

func (s *RESTServer) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
		Priority:    models.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
	}

	created, err := s.tasks.Create(r.Context(), userID, task)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, newTaskResponse(created))
}

func (s *RESTServer) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())
	taskID := mux.Vars(r)["id"]

	task, err := s.tasks.Get(r.Context(), userID, taskID)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newTaskResponse(task))
}

func (s *RESTServer) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())
	taskID := mux.Vars(r)["id"]

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		upd.Status = &status
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		upd.Priority = &priority
	}

	task, err := s.tasks.Update(r.Context(), userID, taskID, upd)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newTaskResponse(task))
}

func (s *RESTServer) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())
	taskID := mux.Vars(r)["id"]

	if err := s.tasks.Delete(r.Context(), userID, taskID); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
