package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/projectnexus/jobboard/internal/logger"
	"github.com/projectnexus/jobboard/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// AdvertsExpirer runs the deadline sweep on a schedule. SkipIfStillRunning
// guarantees two sweeps never overlap.
type AdvertsExpirer struct {
	engine *ConsistencyEngine
	cron   *cron.Cron
}

func NewAdvertsExpirer(engine *ConsistencyEngine, schedule string) (*AdvertsExpirer, error) {

	if schedule == "" {
		return nil, errors.New("sweep schedule must not be empty")
	}

	e := &AdvertsExpirer{
		engine: engine,
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}

	_, err := e.cron.AddFunc(schedule, e.sweep)
	if err != nil {
		return nil, err
	}

	e.cron.Start()
	log.Infof("adverts expirer started with schedule %q", schedule)
	return e, nil
}

func (e *AdvertsExpirer) Stop() {
	e.cron.Stop()
}

func (e *AdvertsExpirer) sweep() {
	start := time.Now()
	expired, err := e.engine.ExpireAdverts(context.Background(), time.Now().UTC())
	metrics.SweepDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to expire adverts: %v", err)
	} else if expired > 0 {
		log.Infof("deadline sweep deactivated %v adverts", expired)
	}
}
