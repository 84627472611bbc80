package repositories

import (
	"context"
	"github.com/projectnexus/jobboard/internal/entities"
	"gorm.io/gorm"
)

type Taxonomy struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *Taxonomy {
	return &Taxonomy{db: db}
}

func (repo *Taxonomy) ListSkills(ctx context.Context) ([]entities.Skill, error) {

	var skills []entities.Skill
	if err := repo.db.WithContext(ctx).Order("name").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (repo *Taxonomy) ListCategories(ctx context.Context) ([]entities.Category, error) {

	var categories []entities.Category
	if err := repo.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (repo *Taxonomy) CountSkills(ctx context.Context, ids []int64) (int64, error) {

	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Skill{}).
		Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (repo *Taxonomy) CountCategories(ctx context.Context, ids []int64) (int64, error) {

	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Category{}).
		Where("id IN ?", ids).Count(&count).Error
	return count, err
}
