package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearchFixture(t *testing.T, dbCtx *DbContext) (*Adverts, []entities.JobAdvert) {
	t.Helper()

	employer := entities.User{Username: "employer", Email: "employer@example.com", UserType: entities.Employer}
	require.NoError(t, dbCtx.DB.Create(&employer).Error)

	goSkill := entities.Skill{Name: "Go"}
	require.NoError(t, dbCtx.DB.Create(&goSkill).Error)

	lowMin, lowMax := 50000.0, 80000.0
	highMin, highMax := 150000.0, 200000.0
	pastDeadline := time.Now().UTC().AddDate(0, 0, -1)

	adverts := []entities.JobAdvert{
		{
			EmployerID: employer.ID, Title: "Go Backend Engineer", Description: "services in Go",
			Requirements: "reqs", Location: "Berlin", JobType: entities.FullTime,
			ExperienceLevel: entities.SeniorLevel, SalaryMin: &highMin, SalaryMax: &highMax,
			IsActive: true, IsRemote: true,
			Skills: []entities.JobAdvertSkill{{SkillID: goSkill.ID, ImportanceLevel: 5}},
		},
		{
			EmployerID: employer.ID, Title: "Junior Designer", Description: "figma work",
			Requirements: "reqs", Location: "Paris", JobType: entities.PartTime,
			ExperienceLevel: entities.EntryLevel, SalaryMin: &lowMin, SalaryMax: &lowMax,
			IsActive: true,
		},
		{
			EmployerID: employer.ID, Title: "Closed Role", Description: "gone",
			Requirements: "reqs", Location: "Remote", JobType: entities.FullTime,
			ExperienceLevel: entities.MidLevel, ApplicationDeadline: &pastDeadline,
			IsActive: false,
		},
	}
	require.NoError(t, dbCtx.DB.Create(&adverts).Error)

	return NewAdvertsRepository(dbCtx.DB), adverts
}

func searchTitles(t *testing.T, repo *Adverts, filter AdvertFilter) []string {
	t.Helper()

	found, err := repo.Search(context.Background(), filter)
	require.NoError(t, err)
	return lo.Map(found, func(a entities.JobAdvert, _ int) string { return a.Title })
}

func Test_Search_FiltersByActivity(t *testing.T) {

	dbCtx := newTestContext(t)
	repo, _ := seedSearchFixture(t, dbCtx)

	active := true
	titles := searchTitles(t, repo, AdvertFilter{IsActive: &active})
	assert.ElementsMatch(t, []string{"Go Backend Engineer", "Junior Designer"}, titles)

	inactive := false
	titles = searchTitles(t, repo, AdvertFilter{IsActive: &inactive})
	assert.Equal(t, []string{"Closed Role"}, titles)
}

func Test_Search_FiltersByJobTypeAndRemote(t *testing.T) {

	dbCtx := newTestContext(t)
	repo, _ := seedSearchFixture(t, dbCtx)

	titles := searchTitles(t, repo, AdvertFilter{JobType: entities.PartTime})
	assert.Equal(t, []string{"Junior Designer"}, titles)

	remote := true
	titles = searchTitles(t, repo, AdvertFilter{IsRemote: &remote})
	assert.Equal(t, []string{"Go Backend Engineer"}, titles)
}

func Test_Search_FiltersBySalaryRange(t *testing.T) {

	dbCtx := newTestContext(t)
	repo, _ := seedSearchFixture(t, dbCtx)

	minSalary := 100000.0
	titles := searchTitles(t, repo, AdvertFilter{MinSalary: &minSalary})
	assert.Equal(t, []string{"Go Backend Engineer"}, titles)

	maxSalary := 100000.0
	titles = searchTitles(t, repo, AdvertFilter{MaxSalary: &maxSalary})
	assert.Equal(t, []string{"Junior Designer"}, titles)
}

func Test_Search_FiltersBySkill(t *testing.T) {

	dbCtx := newTestContext(t)
	repo, adverts := seedSearchFixture(t, dbCtx)

	skillID := adverts[0].Skills[0].SkillID
	titles := searchTitles(t, repo, AdvertFilter{SkillIDs: []int64{skillID}})
	assert.Equal(t, []string{"Go Backend Engineer"}, titles)
}

func Test_Search_FullTextAndDeadline(t *testing.T) {

	dbCtx := newTestContext(t)
	repo, _ := seedSearchFixture(t, dbCtx)

	titles := searchTitles(t, repo, AdvertFilter{Search: "figma"})
	assert.Equal(t, []string{"Junior Designer"}, titles)

	// the past-deadline advert drops out, adverts without a deadline too
	titles = searchTitles(t, repo, AdvertFilter{DeadlineNotPassed: true})
	assert.Empty(t, titles)
}

func Test_ExpireBefore_ReportsMutatedRows(t *testing.T) {

	dbCtx := newTestContext(t)

	employer := entities.User{Username: "employer", Email: "employer@example.com", UserType: entities.Employer}
	require.NoError(t, dbCtx.DB.Create(&employer).Error)

	past := time.Now().UTC().AddDate(0, 0, -2)
	advert := entities.JobAdvert{
		EmployerID: employer.ID, Title: "Stale Role", Description: "desc",
		Requirements: "reqs", Location: "Remote", JobType: entities.FullTime,
		ExperienceLevel: entities.MidLevel, ApplicationDeadline: &past, IsActive: true,
	}
	require.NoError(t, dbCtx.DB.Create(&advert).Error)

	repo := NewAdvertsRepository(dbCtx.DB)

	rows, err := repo.ExpireBefore(context.Background(), time.Now().UTC())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.ExpireBefore(context.Background(), time.Now().UTC())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func Test_IncrementViews_IsCumulative(t *testing.T) {

	dbCtx := newTestContext(t)
	repo, adverts := seedSearchFixture(t, dbCtx)

	require.NoError(t, repo.IncrementViews(context.Background(), adverts[0].ID))
	require.NoError(t, repo.IncrementViews(context.Background(), adverts[0].ID))

	advert, err := repo.GetByID(context.Background(), adverts[0].ID)
	require.NoError(t, err)
	require.NotNil(t, advert)
	assert.Equal(t, uint(2), advert.ViewsCount)
}
