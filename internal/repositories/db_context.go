package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/projectnexus/jobboard/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {

	toMigrate := []any{
		entities.User{},
		entities.Skill{},
		entities.Category{},
		entities.JobAdvert{},
		entities.JobAdvertSkill{},
		entities.JobAdvertCategory{},
		entities.JobApplication{},
	}

	for _, entity := range toMigrate {
		if err := c.DB.AutoMigrate(entity); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", entity, err)
		}
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
