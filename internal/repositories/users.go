package repositories

import (
	"context"
	"errors"
	"github.com/projectnexus/jobboard/internal/entities"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Create(ctx context.Context, user *entities.User) error {
	return repo.db.WithContext(ctx).Create(user).Error
}

func (repo *Users) GetByID(ctx context.Context, id int64) (*entities.User, error) {

	var user entities.User
	if err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) GetByUsername(ctx context.Context, username string) (*entities.User, error) {

	var user entities.User
	if err := repo.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Update persists the mutable profile columns. The explicit Select makes
// cleared fields stick: struct-based Updates alone would skip zero values.
func (repo *Users) Update(ctx context.Context, user *entities.User) error {
	return repo.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", user.ID).
		Select("company_name", "phone_number", "bio", "website", "location").
		Updates(user).Error
}
