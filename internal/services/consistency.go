package services

import (
	"context"
	"time"

	"github.com/projectnexus/jobboard/internal/metrics"
)

type liveCountRepository interface {
	CountLive(ctx context.Context, advertID int64) (int64, error)
}

type advertCountRepository interface {
	SetApplicationsCount(ctx context.Context, id int64, count int64) error
	ExpireBefore(ctx context.Context, now time.Time) (int64, error)
}

// ConsistencyEngine keeps the adverts' derived state aligned with the
// applications table: the cached applications count and the deadline-based
// deactivation flag.
type ConsistencyEngine struct {
	applications liveCountRepository
	adverts      advertCountRepository
}

func NewConsistencyEngine(applications liveCountRepository, adverts advertCountRepository) *ConsistencyEngine {
	return &ConsistencyEngine{applications: applications, adverts: adverts}
}

// RecomputeApplicationsCount overwrites the advert's cached count with a
// full recount of live-status rows. Idempotent, safe to call after every
// ledger mutation.
func (e *ConsistencyEngine) RecomputeApplicationsCount(ctx context.Context, advertID int64) error {

	count, err := e.applications.CountLive(ctx, advertID)
	if err != nil {
		return err
	}
	return e.adverts.SetApplicationsCount(ctx, advertID, count)
}

// ExpireAdverts deactivates every active advert whose deadline has passed
// and returns the number of rows mutated. A second immediate run mutates
// zero rows.
func (e *ConsistencyEngine) ExpireAdverts(ctx context.Context, now time.Time) (int64, error) {

	expired, err := e.adverts.ExpireBefore(ctx, now)
	if err != nil {
		return 0, err
	}
	metrics.ExpiredAdverts.Add(float64(expired))
	return expired, nil
}
