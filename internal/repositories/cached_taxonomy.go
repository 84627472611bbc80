package repositories

import (
	"context"
	gocache "github.com/patrickmn/go-cache"
	"github.com/projectnexus/jobboard/internal/entities"
	"time"
)

type taxonomyRepository interface {
	ListSkills(ctx context.Context) ([]entities.Skill, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
}

// CachedTaxonomy caches skill and category listings; both change rarely and
// back public list endpoints.
type CachedTaxonomy struct {
	repo  taxonomyRepository
	cache *gocache.Cache
}

const (
	skillsCacheKey     = "skills"
	categoriesCacheKey = "categories"
)

func NewCachedTaxonomy(repo taxonomyRepository) *CachedTaxonomy {
	return &CachedTaxonomy{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedTaxonomy) ListSkills(ctx context.Context) ([]entities.Skill, error) {
	if value, found := c.cache.Get(skillsCacheKey); found {
		return value.([]entities.Skill), nil
	}

	skills, err := c.repo.ListSkills(ctx)
	if err == nil {
		c.cache.Set(skillsCacheKey, skills, gocache.DefaultExpiration)
	}

	return skills, err
}

func (c *CachedTaxonomy) ListCategories(ctx context.Context) ([]entities.Category, error) {
	if value, found := c.cache.Get(categoriesCacheKey); found {
		return value.([]entities.Category), nil
	}

	categories, err := c.repo.ListCategories(ctx)
	if err == nil {
		c.cache.Set(categoriesCacheKey, categories, gocache.DefaultExpiration)
	}

	return categories, err
}
