package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/projectnexus/jobboard/internal/repositories"
	"github.com/projectnexus/jobboard/internal/services"
	"github.com/samber/lo"
)

func (s *Server) listAdverts(c *gin.Context) {

	filter, err := parseAdvertFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adverts, err := s.adverts.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(adverts, func(a entities.JobAdvert, _ int) advertResponse {
		return toAdvertResponse(a)
	}))
}

// parseAdvertFilter translates query parameters into a repository filter.
// Public listings only ever see active adverts unless is_active is given
// explicitly.
func parseAdvertFilter(c *gin.Context) (repositories.AdvertFilter, error) {

	filter := repositories.AdvertFilter{}

	if v := c.Query("job_type"); v != "" {
		jobType, err := entities.ToJobType(v)
		if err != nil {
			return filter, err
		}
		filter.JobType = jobType
	}
	if v := c.Query("experience_level"); v != "" {
		level, err := entities.ToExperienceLevel(v)
		if err != nil {
			return filter, err
		}
		filter.ExperienceLevel = level
	}
	if v := c.Query("is_remote"); v != "" {
		remote, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		filter.IsRemote = &remote
	}

	active := true
	if v := c.Query("is_active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		active = parsed
	}
	filter.IsActive = &active

	var err error
	if filter.SkillIDs, err = parseIDList(c.QueryArray("skills")); err != nil {
		return filter, err
	}
	if filter.CategoryIDs, err = parseIDList(c.QueryArray("categories")); err != nil {
		return filter, err
	}

	if v := c.Query("min_salary"); v != "" {
		salary, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MinSalary = &salary
	}
	if v := c.Query("max_salary"); v != "" {
		salary, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxSalary = &salary
	}

	filter.DeadlineNotPassed = c.Query("deadline") != ""
	filter.Search = c.Query("search")

	ordering := c.Query("ordering")
	filter.Descending = strings.HasPrefix(ordering, "-")
	filter.OrderBy = strings.TrimPrefix(ordering, "-")

	if v := c.Query("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil {
			return filter, err
		}
	}
	if v := c.Query("offset"); v != "" {
		if filter.Offset, err = strconv.Atoi(v); err != nil {
			return filter, err
		}
	}

	return filter, nil
}

func parseIDList(values []string) ([]int64, error) {
	var ids []int64
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *Server) getAdvert(c *gin.Context) {

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	advert, err := s.adverts.GetPublic(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdvertResponse(*advert))
}

func (s *Server) createAdvert(c *gin.Context) {

	input, ok := bindAdvertInput(c)
	if !ok {
		return
	}

	advert, err := s.adverts.Create(c.Request.Context(), currentUser(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := s.adverts.GetOwned(c.Request.Context(), currentUser(c), advert.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAdvertResponse(*created))
}

func (s *Server) updateAdvert(c *gin.Context) {

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	input, ok := bindAdvertInput(c)
	if !ok {
		return
	}

	advert, err := s.adverts.Update(c.Request.Context(), currentUser(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdvertResponse(*advert))
}

func (s *Server) deleteAdvert(c *gin.Context) {

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := s.adverts.Remove(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) listSkills(c *gin.Context) {

	skills, err := s.taxonomy.ListSkills(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(skills, func(skill entities.Skill, _ int) skillResponse {
		return toSkillResponse(skill)
	}))
}

func (s *Server) listCategories(c *gin.Context) {

	categories, err := s.taxonomy.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(categories, func(category entities.Category, _ int) categoryResponse {
		return toCategoryResponse(category)
	}))
}

func bindAdvertInput(c *gin.Context) (services.AdvertInput, bool) {

	var req advertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return services.AdvertInput{}, false
	}

	currency := req.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	return services.AdvertInput{
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		JobType:             entities.JobType(req.JobType),
		ExperienceLevel:     entities.ExperienceLevel(req.ExperienceLevel),
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		SalaryCurrency:      currency,
		IsRemote:            req.IsRemote,
		ApplicationDeadline: req.ApplicationDeadline,
		SkillIDs:            req.SkillIDs,
		CategoryIDs:         req.CategoryIDs,
	}, true
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
