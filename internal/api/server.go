package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectnexus/jobboard/internal/config"
	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/projectnexus/jobboard/internal/services"
)

type taxonomyLister interface {
	ListSkills(ctx context.Context) ([]entities.Skill, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
}

type Deps struct {
	Auth         *services.Auth
	Adverts      *services.Adverts
	Applications *services.Applications
	Taxonomy     taxonomyLister
	Metrics      http.Handler
}

type Server struct {
	engine       *gin.Engine
	http         *http.Server
	cfg          config.Config
	auth         *services.Auth
	adverts      *services.Adverts
	applications *services.Applications
	taxonomy     taxonomyLister
}

func NewServer(cfg config.Config, deps Deps) *Server {

	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:       engine,
		cfg:          cfg,
		auth:         deps.Auth,
		adverts:      deps.Adverts,
		applications: deps.Applications,
		taxonomy:     deps.Taxonomy,
	}
	s.registerRoutes(deps.Metrics)

	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s
}

func (s *Server) Run() error {
	err := s.http.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
