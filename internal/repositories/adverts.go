package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/projectnexus/jobboard/internal/entities"
	"gorm.io/gorm"
)

type Adverts struct {
	db *gorm.DB
}

func NewAdvertsRepository(db *gorm.DB) *Adverts {
	return &Adverts{db: db}
}

// AdvertFilter narrows down advert listings. Zero values mean "no filter".
type AdvertFilter struct {
	JobType           entities.JobType
	ExperienceLevel   entities.ExperienceLevel
	IsRemote          *bool
	IsActive          *bool
	SkillIDs          []int64
	CategoryIDs       []int64
	MinSalary         *float64
	MaxSalary         *float64
	DeadlineNotPassed bool
	Search            string
	OrderBy           string
	Descending        bool
	Limit             int
	Offset            int
}

var orderableColumns = map[string]string{
	"created_at":  "created_at",
	"salary_min":  "salary_min",
	"salary_max":  "salary_max",
	"views_count": "views_count",
}

func (repo *Adverts) Create(ctx context.Context, advert *entities.JobAdvert) error {
	return repo.db.WithContext(ctx).Create(advert).Error
}

func (repo *Adverts) GetByID(ctx context.Context, id int64) (*entities.JobAdvert, error) {

	var advert entities.JobAdvert
	err := repo.db.WithContext(ctx).
		Preload("Employer").
		Preload("Skills.Skill").
		Preload("Categories.Category").
		First(&advert, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &advert, nil
}

func (repo *Adverts) Search(ctx context.Context, filter AdvertFilter) ([]entities.JobAdvert, error) {

	query := repo.db.WithContext(ctx).Model(&entities.JobAdvert{}).
		Preload("Employer").
		Preload("Skills.Skill").
		Preload("Categories.Category")

	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.IsRemote != nil {
		query = query.Where("is_remote = ?", *filter.IsRemote)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if len(filter.SkillIDs) > 0 {
		query = query.Where("id IN (?)", repo.db.Model(&entities.JobAdvertSkill{}).
			Select("job_advert_id").Where("skill_id IN ?", filter.SkillIDs))
	}
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("id IN (?)", repo.db.Model(&entities.JobAdvertCategory{}).
			Select("job_advert_id").Where("category_id IN ?", filter.CategoryIDs))
	}
	if filter.MinSalary != nil {
		query = query.Where("salary_min >= ?", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		query = query.Where("salary_max <= ?", *filter.MaxSalary)
	}
	if filter.DeadlineNotPassed {
		query = query.Where("application_deadline >= ?", time.Now().UTC())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR requirements LIKE ? OR location LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	order := "created_at DESC"
	if column, ok := orderableColumns[filter.OrderBy]; ok {
		order = column
		if filter.Descending {
			order += " DESC"
		}
	}
	query = query.Order(order)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var adverts []entities.JobAdvert
	if err := query.Find(&adverts).Error; err != nil {
		return nil, err
	}
	return adverts, nil
}

// Update persists the advert's editable columns. The explicit Select makes
// unset values stick: is_remote back to false, salaries back to NULL.
func (repo *Adverts) Update(ctx context.Context, advert *entities.JobAdvert) error {
	return repo.db.WithContext(ctx).Model(&entities.JobAdvert{}).
		Where("id = ?", advert.ID).
		Select("title", "description", "requirements", "location", "job_type",
			"experience_level", "salary_min", "salary_max", "salary_currency",
			"is_remote", "application_deadline").
		Updates(advert).Error
}

func (repo *Adverts) Remove(ctx context.Context, id int64) error {
	return repo.db.WithContext(ctx).Delete(&entities.JobAdvert{ID: id}).Error
}

// IncrementViews bumps the view counter in a single SQL expression so
// concurrent reads never lose updates.
func (repo *Adverts) IncrementViews(ctx context.Context, id int64) error {
	return repo.db.WithContext(ctx).Model(&entities.JobAdvert{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (repo *Adverts) SetApplicationsCount(ctx context.Context, id int64, count int64) error {
	return repo.db.WithContext(ctx).Model(&entities.JobAdvert{}).
		Where("id = ?", id).
		UpdateColumn("applications_count", count).Error
}

// ExpireBefore deactivates every active advert whose deadline precedes now
// and reports how many rows were touched.
func (repo *Adverts) ExpireBefore(ctx context.Context, now time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&entities.JobAdvert{}).
		Where("is_active = ? AND application_deadline < ?", true, now).
		UpdateColumn("is_active", false)
	return res.RowsAffected, res.Error
}

func (repo *Adverts) ReplaceSkills(ctx context.Context, advertID int64, skills []entities.JobAdvertSkill) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.JobAdvertSkill{}, "job_advert_id = ?", advertID).Error; err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}
		return tx.Create(&skills).Error
	})
}

func (repo *Adverts) ReplaceCategories(ctx context.Context, advertID int64, categories []entities.JobAdvertCategory) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.JobAdvertCategory{}, "job_advert_id = ?", advertID).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return nil
		}
		return tx.Create(&categories).Error
	})
}
