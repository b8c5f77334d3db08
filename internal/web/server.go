package web

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/auth"
	"tasktracker/repository"
)

// Server is the tracker HTTP server. It is a thin caller of the repository
// contracts: all validation beyond field presence lives below it.
type Server struct {
	users    repository.UserRepositoryI
	projects repository.ProjectRepositoryI
	tasks    repository.TaskRepositoryI
	issuer   *auth.Issuer
	router   *gin.Engine
}

// NewServer wires the repositories and the session issuer into a router.
func NewServer(users repository.UserRepositoryI, projects repository.ProjectRepositoryI, tasks repository.TaskRepositoryI, issuer *auth.Issuer) *Server {
	router := gin.Default()
	s := &Server{
		users:    users,
		projects: projects,
		tasks:    tasks,
		issuer:   issuer,
		router:   router,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")

	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/signin", s.handleSignin)

	protected := api.Group("", auth.RequireAuth(s.issuer))
	protected.GET("/projects", s.handleListProjects)
	protected.POST("/projects", s.handleAddProject)
	protected.PUT("/projects", s.handleRenameProject)
	protected.DELETE("/projects", s.handleDeleteProject)

	protected.GET("/tasks", s.handleListTasks)
	protected.POST("/tasks", s.handleAddTask)
	protected.PUT("/tasks", s.handleUpdateTask)
	protected.DELETE("/tasks", s.handleDeleteTask)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr and serves in the background, returning a shutdown
// function that drains in-flight requests until its context expires.
func (s *Server) Start(addr string) (func(context.Context) error, error) {
	if addr == "" {
		addr = ":8080"
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{Handler: s.router}
	go func() { _ = srv.Serve(lis) }()
	return srv.Shutdown, nil
}
