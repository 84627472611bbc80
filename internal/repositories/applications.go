package repositories

import (
	"context"
	"github.com/pkg/errors"
	"github.com/projectnexus/jobboard/internal/entities"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

// Create inserts a new ledger row. The composite unique index on
// (job_seeker_id, job_advert_id) is the authoritative duplicate guard;
// gorm.ErrDuplicatedKey is returned when it fires.
func (repo *Applications) Create(ctx context.Context, application *entities.JobApplication) error {
	return repo.db.WithContext(ctx).Create(application).Error
}

func (repo *Applications) GetByID(ctx context.Context, id int64) (*entities.JobApplication, error) {

	var application entities.JobApplication
	err := repo.db.WithContext(ctx).
		Preload("JobSeeker").
		Preload("JobAdvert").
		Preload("JobAdvert.Employer").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) GetBySeekerAndAdvert(ctx context.Context, seekerID, advertID int64) (*entities.JobApplication, error) {

	var application entities.JobApplication
	err := repo.db.WithContext(ctx).
		First(&application, "job_seeker_id = ? AND job_advert_id = ?", seekerID, advertID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) GetBySeeker(ctx context.Context, seekerID int64) ([]entities.JobApplication, error) {

	var applications []entities.JobApplication
	err := repo.db.WithContext(ctx).
		Preload("JobAdvert").
		Order("applied_at DESC").
		Find(&applications, "job_seeker_id = ?", seekerID).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) GetByEmployer(ctx context.Context, employerID int64) ([]entities.JobApplication, error) {

	var applications []entities.JobApplication
	err := repo.db.WithContext(ctx).
		Preload("JobSeeker").
		Preload("JobAdvert").
		Joins("JOIN job_adverts ON job_adverts.id = job_applications.job_advert_id").
		Where("job_adverts.employer_id = ?", employerID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) UpdateStatus(ctx context.Context, id int64, status entities.ApplicationStatus) error {
	return repo.db.WithContext(ctx).Model(&entities.JobApplication{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CountLive counts the rows that contribute to an advert's cached
// applications count.
func (repo *Applications) CountLive(ctx context.Context, advertID int64) (int64, error) {

	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.JobApplication{}).
		Where("job_advert_id = ? AND status IN ?", advertID, entities.LiveStatuses).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
