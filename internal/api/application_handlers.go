package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/samber/lo"
)

func (s *Server) apply(c *gin.Context) {

	advertID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	coverLetter := c.PostForm("cover_letter")
	if coverLetter == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cover_letter is required"})
		return
	}

	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is required"})
		return
	}

	if s.cfg.Uploads.MaxSizeMB > 0 && file.Size > s.cfg.Uploads.MaxSizeMB*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is too large"})
		return
	}

	extension := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if !lo.Contains(s.cfg.Uploads.AllowedExtensions, extension) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file type"})
		return
	}

	resumePath := filepath.Join(s.cfg.Uploads.Dir, uuid.NewString()+"."+extension)
	if err = c.SaveUploadedFile(file, resumePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store resume"})
		return
	}

	application, err := s.applications.Submit(c.Request.Context(), currentUser(c), advertID, coverLetter, resumePath)
	if err != nil {
		// no ledger row references the file on a rejected submission
		_ = os.Remove(resumePath)
		respondError(c, err)
		return
	}

	created, err := s.applications.GetFor(c.Request.Context(), currentUser(c), application.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toApplicationResponse(*created))
}

func (s *Server) listApplications(c *gin.Context) {

	applications, err := s.applications.ListFor(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(applications, func(a entities.JobApplication, _ int) applicationResponse {
		return toApplicationResponse(a)
	}))
}

func (s *Server) getApplication(c *gin.Context) {

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	application, err := s.applications.GetFor(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApplicationResponse(*application))
}

func (s *Server) updateApplicationStatus(c *gin.Context) {

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req statusUpdateRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := entities.ToApplicationStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := s.applications.UpdateStatus(c.Request.Context(), currentUser(c), id, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApplicationResponse(*application))
}
