package api

import (
	"time"

	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/samber/lo"
)

type registerRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=64"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
	UserType        string `json:"user_type" binding:"required,oneof=job_seeker employer"`
	CompanyName     string `json:"company_name"`
	PhoneNumber     string `json:"phone_number"`
	Bio             string `json:"bio"`
	Website         string `json:"website" binding:"omitempty,url"`
	Location        string `json:"location"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileUpdateRequest struct {
	CompanyName *string `json:"company_name"`
	PhoneNumber *string `json:"phone_number"`
	Bio         *string `json:"bio"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Location    *string `json:"location"`
}

type advertRequest struct {
	Title               string     `json:"title" binding:"required,max=255"`
	Description         string     `json:"description" binding:"required"`
	Requirements        string     `json:"requirements" binding:"required"`
	Location            string     `json:"location" binding:"required,max=255"`
	JobType             string     `json:"job_type" binding:"required,oneof=full_time part_time contract freelance internship"`
	ExperienceLevel     string     `json:"experience_level" binding:"required,oneof=entry mid senior executive"`
	SalaryMin           *float64   `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax           *float64   `json:"salary_max" binding:"omitempty,gte=0"`
	SalaryCurrency      string     `json:"salary_currency" binding:"omitempty,len=3"`
	IsRemote            bool       `json:"is_remote"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	SkillIDs            []int64    `json:"skill_ids"`
	CategoryIDs         []int64    `json:"category_ids"`
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed interview rejected accepted withdrawn"`
}

type userResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	UserType    string `json:"user_type"`
	CompanyName string `json:"company_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type skillResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type advertSkillResponse struct {
	Skill           skillResponse `json:"skill"`
	ImportanceLevel int           `json:"importance_level"`
}

type categoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

type advertResponse struct {
	ID                  int64                 `json:"id"`
	Employer            userResponse          `json:"employer"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	Requirements        string                `json:"requirements"`
	Location            string                `json:"location"`
	JobType             string                `json:"job_type"`
	ExperienceLevel     string                `json:"experience_level"`
	SalaryMin           *float64              `json:"salary_min"`
	SalaryMax           *float64              `json:"salary_max"`
	SalaryCurrency      string                `json:"salary_currency"`
	IsRemote            bool                  `json:"is_remote"`
	ApplicationDeadline *time.Time            `json:"application_deadline"`
	IsActive            bool                  `json:"is_active"`
	ViewsCount          uint                  `json:"views_count"`
	ApplicationsCount   uint                  `json:"applications_count"`
	Skills              []advertSkillResponse `json:"skills"`
	Categories          []categoryResponse    `json:"categories"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

type applicationResponse struct {
	ID          int64        `json:"id"`
	JobSeeker   userResponse `json:"job_seeker"`
	JobAdvertID int64        `json:"job_advert_id"`
	AdvertTitle string       `json:"advert_title"`
	CoverLetter string       `json:"cover_letter"`
	Status      string       `json:"status"`
	AppliedAt   time.Time    `json:"applied_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func toUserResponse(user entities.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		UserType:    string(user.UserType),
		CompanyName: user.CompanyName,
		PhoneNumber: user.PhoneNumber,
		Bio:         user.Bio,
		Website:     user.Website,
		Location:    user.Location,
		CreatedAt:   user.CreatedAt,
	}
}

func toSkillResponse(skill entities.Skill) skillResponse {
	return skillResponse{ID: skill.ID, Name: skill.Name, Description: skill.Description}
}

func toCategoryResponse(category entities.Category) categoryResponse {
	return categoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		ParentID:    category.ParentID,
	}
}

func toAdvertResponse(advert entities.JobAdvert) advertResponse {
	return advertResponse{
		ID:                  advert.ID,
		Employer:            toUserResponse(advert.Employer),
		Title:               advert.Title,
		Description:         advert.Description,
		Requirements:        advert.Requirements,
		Location:            advert.Location,
		JobType:             string(advert.JobType),
		ExperienceLevel:     string(advert.ExperienceLevel),
		SalaryMin:           advert.SalaryMin,
		SalaryMax:           advert.SalaryMax,
		SalaryCurrency:      advert.SalaryCurrency,
		IsRemote:            advert.IsRemote,
		ApplicationDeadline: advert.ApplicationDeadline,
		IsActive:            advert.IsActive,
		ViewsCount:          advert.ViewsCount,
		ApplicationsCount:   advert.ApplicationsCount,
		Skills: lo.Map(advert.Skills, func(s entities.JobAdvertSkill, _ int) advertSkillResponse {
			return advertSkillResponse{Skill: toSkillResponse(s.Skill), ImportanceLevel: s.ImportanceLevel}
		}),
		Categories: lo.Map(advert.Categories, func(c entities.JobAdvertCategory, _ int) categoryResponse {
			return toCategoryResponse(c.Category)
		}),
		CreatedAt: advert.CreatedAt,
		UpdatedAt: advert.UpdatedAt,
	}
}

func toApplicationResponse(application entities.JobApplication) applicationResponse {
	return applicationResponse{
		ID:          application.ID,
		JobSeeker:   toUserResponse(application.JobSeeker),
		JobAdvertID: application.JobAdvertID,
		AdvertTitle: application.JobAdvert.Title,
		CoverLetter: application.CoverLetter,
		Status:      string(application.Status),
		AppliedAt:   application.AppliedAt,
		UpdatedAt:   application.UpdatedAt,
	}
}
