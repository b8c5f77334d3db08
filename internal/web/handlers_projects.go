package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/repository"
)

type addProjectRequest struct {
	Name string `json:"name"`
}

type renameProjectRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type idRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleListProjects(c *gin.Context) {
	username, ok := usernameOrAbort(c)
	if !ok {
		return
	}
	projects, err := s.projects.List(c.Request.Context(), username)
	if err != nil {
		s.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (s *Server) handleAddProject(c *gin.Context) {
	username, ok := usernameOrAbort(c)
	if !ok {
		return
	}
	var req addProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project name required"})
		return
	}
	project, err := s.projects.Add(c.Request.Context(), username, req.Name)
	switch {
	case errors.Is(err, repository.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project name required"})
		return
	case err != nil:
		s.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (s *Server) handleRenameProject(c *gin.Context) {
	username, ok := usernameOrAbort(c)
	if !ok {
		return
	}
	var req renameProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID and name required"})
		return
	}
	project, err := s.projects.Rename(c.Request.Context(), username, req.ID, req.Name)
	switch {
	case errors.Is(err, repository.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID and name required"})
		return
	case err != nil:
		s.serviceError(c, err)
		return
	case project == nil:
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	username, ok := usernameOrAbort(c)
	if !ok {
		return
	}
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID required"})
		return
	}
	if err := s.projects.Delete(c.Request.Context(), username, req.ID); err != nil {
		s.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
