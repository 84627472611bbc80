package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectnexus/jobboard/internal/entities"
)

func (s *Server) registerRoutes(metricsHandler http.Handler) {

	if metricsHandler != nil {
		s.engine.GET("/metrics", gin.WrapH(metricsHandler))
	}

	auth := s.engine.Group("/auth")
	auth.Use(rateLimit(s.cfg.Server.RateLimit, s.cfg.Server.RateBurst))
	{
		auth.POST("/register/", s.register)
		auth.POST("/login/", s.login)
	}

	profile := s.engine.Group("/auth")
	profile.Use(s.authRequired())
	{
		profile.GET("/profile/", s.getProfile)
		profile.PATCH("/profile/", s.updateProfile)
	}

	s.engine.GET("/adverts/", s.listAdverts)
	s.engine.GET("/adverts/:id/", s.getAdvert)
	s.engine.GET("/skills/", s.listSkills)
	s.engine.GET("/categories/", s.listCategories)

	employer := s.engine.Group("/adverts")
	employer.Use(s.authRequired(), roleRequired(entities.Employer))
	{
		employer.POST("/create/", s.createAdvert)
		employer.PATCH("/:id/update/", s.updateAdvert)
		employer.DELETE("/:id/delete/", s.deleteAdvert)
	}

	seeker := s.engine.Group("/adverts")
	seeker.Use(s.authRequired())
	{
		seeker.POST("/:id/apply/", s.apply)
	}

	applications := s.engine.Group("/applications")
	applications.Use(s.authRequired())
	{
		applications.GET("/", s.listApplications)
		applications.GET("/:id/", s.getApplication)
		applications.PATCH("/:id/update/", s.updateApplicationStatus)
	}
}
