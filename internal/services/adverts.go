package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/projectnexus/jobboard/internal/logger"
	"github.com/projectnexus/jobboard/internal/repositories"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type advertRepository interface {
	Create(ctx context.Context, advert *entities.JobAdvert) error
	GetByID(ctx context.Context, id int64) (*entities.JobAdvert, error)
	Search(ctx context.Context, filter repositories.AdvertFilter) ([]entities.JobAdvert, error)
	Update(ctx context.Context, advert *entities.JobAdvert) error
	Remove(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	ReplaceSkills(ctx context.Context, advertID int64, skills []entities.JobAdvertSkill) error
	ReplaceCategories(ctx context.Context, advertID int64, categories []entities.JobAdvertCategory) error
}

type taxonomyCounter interface {
	CountSkills(ctx context.Context, ids []int64) (int64, error)
	CountCategories(ctx context.Context, ids []int64) (int64, error)
}

type AdvertInput struct {
	Title               string
	Description         string
	Requirements        string
	Location            string
	JobType             entities.JobType
	ExperienceLevel     entities.ExperienceLevel
	SalaryMin           *float64
	SalaryMax           *float64
	SalaryCurrency      string
	IsRemote            bool
	ApplicationDeadline *time.Time
	SkillIDs            []int64
	CategoryIDs         []int64
}

type Adverts struct {
	adverts  advertRepository
	taxonomy taxonomyCounter
}

func NewAdvertsService(adverts advertRepository, taxonomy taxonomyCounter) *Adverts {
	return &Adverts{adverts: adverts, taxonomy: taxonomy}
}

// Create posts a new advert for the employer. An advert without an explicit
// deadline gets one DefaultDeadlineDays from now; the default is assigned
// exactly once, at creation.
func (s *Adverts) Create(ctx context.Context, employer *entities.User, input AdvertInput) (*entities.JobAdvert, error) {

	if !employer.IsEmployer() {
		return nil, errors.Wrap(ErrForbidden, "only employers may post adverts")
	}

	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	deadline := input.ApplicationDeadline
	if deadline == nil {
		defaulted := time.Now().UTC().AddDate(0, 0, entities.DefaultDeadlineDays)
		deadline = &defaulted
	}

	advert := &entities.JobAdvert{
		EmployerID:          employer.ID,
		Title:               input.Title,
		Description:         input.Description,
		Requirements:        input.Requirements,
		Location:            input.Location,
		JobType:             input.JobType,
		ExperienceLevel:     input.ExperienceLevel,
		SalaryMin:           input.SalaryMin,
		SalaryMax:           input.SalaryMax,
		SalaryCurrency:      input.SalaryCurrency,
		IsRemote:            input.IsRemote,
		ApplicationDeadline: deadline,
		IsActive:            true,
		Skills:              skillAssociations(0, input.SkillIDs),
		Categories:          categoryAssociations(0, input.CategoryIDs),
	}

	if err := s.adverts.Create(ctx, advert); err != nil {
		return nil, err
	}

	return advert, nil
}

func (s *Adverts) Update(ctx context.Context, actor *entities.User, id int64, input AdvertInput) (*entities.JobAdvert, error) {

	advert, err := s.ownedAdvert(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err = s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	advert.Title = input.Title
	advert.Description = input.Description
	advert.Requirements = input.Requirements
	advert.Location = input.Location
	advert.JobType = input.JobType
	advert.ExperienceLevel = input.ExperienceLevel
	advert.SalaryMin = input.SalaryMin
	advert.SalaryMax = input.SalaryMax
	advert.SalaryCurrency = input.SalaryCurrency
	advert.IsRemote = input.IsRemote
	if input.ApplicationDeadline != nil {
		advert.ApplicationDeadline = input.ApplicationDeadline
	}
	advert.Skills = nil
	advert.Categories = nil

	if err = s.adverts.Update(ctx, advert); err != nil {
		return nil, err
	}

	if err = s.adverts.ReplaceSkills(ctx, id, skillAssociations(id, input.SkillIDs)); err != nil {
		return nil, err
	}
	if err = s.adverts.ReplaceCategories(ctx, id, categoryAssociations(id, input.CategoryIDs)); err != nil {
		return nil, err
	}

	return s.adverts.GetByID(ctx, id)
}

func (s *Adverts) Remove(ctx context.Context, actor *entities.User, id int64) error {

	if _, err := s.ownedAdvert(ctx, actor, id); err != nil {
		return err
	}
	return s.adverts.Remove(ctx, id)
}

// GetPublic retrieves an active advert and bumps its view counter as a side
// effect. Inactive adverts are treated as not found.
func (s *Adverts) GetPublic(ctx context.Context, id int64) (*entities.JobAdvert, error) {

	advert, err := s.adverts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if advert == nil || !advert.IsActive {
		return nil, errors.Wrap(ErrNotFound, "advert does not exist")
	}

	if err = s.adverts.IncrementViews(ctx, id); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to increment views for advert %v: %v", id, err)
	} else {
		advert.ViewsCount++
	}

	return advert, nil
}

// GetOwned fetches an advert for its owning employer without touching the
// view counter.
func (s *Adverts) GetOwned(ctx context.Context, actor *entities.User, id int64) (*entities.JobAdvert, error) {
	return s.ownedAdvert(ctx, actor, id)
}

func (s *Adverts) Search(ctx context.Context, filter repositories.AdvertFilter) ([]entities.JobAdvert, error) {
	return s.adverts.Search(ctx, filter)
}

func (s *Adverts) ownedAdvert(ctx context.Context, actor *entities.User, id int64) (*entities.JobAdvert, error) {

	advert, err := s.adverts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if advert == nil {
		return nil, errors.Wrap(ErrNotFound, "advert does not exist")
	}
	if advert.EmployerID != actor.ID && actor.UserType != entities.Admin {
		return nil, errors.Wrap(ErrForbidden, "advert belongs to another employer")
	}
	return advert, nil
}

func (s *Adverts) validateInput(ctx context.Context, input AdvertInput) error {

	if input.SalaryMin != nil && input.SalaryMax != nil && *input.SalaryMin > *input.SalaryMax {
		return errors.Wrap(ErrValidation, "salary_min exceeds salary_max")
	}

	if len(input.SkillIDs) > 0 {
		count, err := s.taxonomy.CountSkills(ctx, input.SkillIDs)
		if err != nil {
			return err
		}
		if count != int64(len(lo.Uniq(input.SkillIDs))) {
			return errors.Wrap(ErrValidation, "unknown skill id")
		}
	}

	if len(input.CategoryIDs) > 0 {
		count, err := s.taxonomy.CountCategories(ctx, input.CategoryIDs)
		if err != nil {
			return err
		}
		if count != int64(len(lo.Uniq(input.CategoryIDs))) {
			return errors.Wrap(ErrValidation, "unknown category id")
		}
	}

	return nil
}

func skillAssociations(advertID int64, skillIDs []int64) []entities.JobAdvertSkill {
	return lo.Map(lo.Uniq(skillIDs), func(skillID int64, _ int) entities.JobAdvertSkill {
		return entities.JobAdvertSkill{
			JobAdvertID:     advertID,
			SkillID:         skillID,
			ImportanceLevel: entities.DefaultImportanceLevel,
		}
	})
}

func categoryAssociations(advertID int64, categoryIDs []int64) []entities.JobAdvertCategory {
	return lo.Map(lo.Uniq(categoryIDs), func(categoryID int64, _ int) entities.JobAdvertCategory {
		return entities.JobAdvertCategory{
			JobAdvertID: advertID,
			CategoryID:  categoryID,
		}
	})
}
