package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/models"
	"tasktracker/repository"
)

type addTaskRequest struct {
	ProjectID string            `json:"projectId"`
	Title     string            `json:"title"`
	Status    models.TaskStatus `json:"status"`
}

type updateTaskRequest struct {
	ID        string             `json:"id"`
	Title     *string            `json:"title"`
	Completed *bool              `json:"completed"`
	Status    *models.TaskStatus `json:"status"`
}

// handleListTasks runs the lazy status migration before answering, so clients
// never see a record without a status, then filters by the optional projectId
// query parameter.
func (s *Server) handleListTasks(c *gin.Context) {
	username, ok := usernameOrAbort(c)
	if !ok {
		return
	}
	tasks, err := s.tasks.MigrateStatuses(c.Request.Context(), username)
	if err != nil {
		s.serviceError(c, err)
		return
	}
	if projectID := c.Query("projectId"); projectID != "" {
		filtered := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ProjectID == projectID {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleAddTask(c *gin.Context) {
	username, ok := usernameOrAbort(c)
	if !ok {
		return
	}
	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == "" || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID and title required"})
		return
	}
	task, err := s.tasks.Add(c.Request.Context(), username, req.ProjectID, req.Title, req.Status)
	switch {
	case errors.Is(err, repository.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID and title required"})
		return
	case err != nil:
		s.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	username, ok := usernameOrAbort(c)
	if !ok {
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID required"})
		return
	}
	task, err := s.tasks.Update(c.Request.Context(), username, req.ID, repository.TaskUpdate{
		Title:     req.Title,
		Status:    req.Status,
		Completed: req.Completed,
	})
	switch {
	case errors.Is(err, repository.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task update"})
		return
	case err != nil:
		s.serviceError(c, err)
		return
	case task == nil:
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	username, ok := usernameOrAbort(c)
	if !ok {
		return
	}
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID required"})
		return
	}
	if err := s.tasks.Delete(c.Request.Context(), username, req.ID); err != nil {
		s.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
