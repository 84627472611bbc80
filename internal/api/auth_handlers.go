package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/projectnexus/jobboard/internal/services"
)

func (s *Server) register(c *gin.Context) {

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userType, err := entities.ToUserType(req.UserType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.auth.Register(c.Request.Context(), services.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		UserType:    userType,
		CompanyName: req.CompanyName,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		Website:     req.Website,
		Location:    req.Location,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(*user))
}

func (s *Server) login(c *gin.Context) {

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   toUserResponse(*user),
		"access": token,
	})
}

func (s *Server) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(*currentUser(c)))
}

func (s *Server) updateProfile(c *gin.Context) {

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Website != nil {
		user.Website = *req.Website
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	if err := s.auth.UpdateProfile(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*user))
}
