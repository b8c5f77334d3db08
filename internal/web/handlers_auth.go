package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/auth"
	"tasktracker/repository"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}
	_, err := s.users.Create(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, repository.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	case errors.Is(err, repository.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	case err != nil:
		s.serviceError(c, err)
		return
	}
	s.respondWithToken(c, req.Username)
}

func (s *Server) handleSignin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}
	res, err := s.users.Verify(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.serviceError(c, err)
		return
	}
	// Unknown user and wrong password are distinct results below this layer
	// but get the same response, so the API does not leak which usernames exist.
	if res != repository.VerifyValid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	s.respondWithToken(c, req.Username)
}

func (s *Server) respondWithToken(c *gin.Context, username string) {
	token, err := s.issuer.Issue(username)
	if err != nil {
		log.Printf("issue token for %s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "username": username})
}

// serviceError handles infrastructure faults (store reads/writes). These are
// fatal for the request and never retried here.
func (s *Server) serviceError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
}

// usernameOrAbort returns the authenticated username set by the auth
// middleware; routes are registered behind RequireAuth so a miss here means a
// wiring bug, answered with 401 rather than a panic.
func usernameOrAbort(c *gin.Context) (string, bool) {
	u, ok := auth.Username(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return u, ok
}
