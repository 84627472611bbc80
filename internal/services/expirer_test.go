package services

import (
	"testing"

	"github.com/projectnexus/jobboard/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewAdvertsExpirer_RejectsBadSchedules(t *testing.T) {

	dbCtx := newTestContext(t)
	engine := NewConsistencyEngine(repositories.NewApplicationsRepository(dbCtx.DB),
		repositories.NewAdvertsRepository(dbCtx.DB))

	_, err := NewAdvertsExpirer(engine, "")
	assert.Error(t, err)

	_, err = NewAdvertsExpirer(engine, "not a cron expression")
	assert.Error(t, err)
}

func Test_NewAdvertsExpirer_StartsWithValidSchedule(t *testing.T) {

	dbCtx := newTestContext(t)
	engine := NewConsistencyEngine(repositories.NewApplicationsRepository(dbCtx.DB),
		repositories.NewAdvertsRepository(dbCtx.DB))

	expirer, err := NewAdvertsExpirer(engine, "@every 1h")
	require.NoError(t, err)
	expirer.Stop()
}
