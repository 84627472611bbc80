package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/projectnexus/jobboard/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	newApplications []entities.JobApplication
	statusChanges   []statusChange
}

type statusChange struct {
	applicationID int64
	oldStatus     entities.ApplicationStatus
	newStatus     entities.ApplicationStatus
}

func (r *recordingNotifier) NotifyNewApplication(application entities.JobApplication) {
	r.newApplications = append(r.newApplications, application)
}

func (r *recordingNotifier) NotifyStatusChange(application entities.JobApplication,
	oldStatus, newStatus entities.ApplicationStatus) {
	r.statusChanges = append(r.statusChanges, statusChange{application.ID, oldStatus, newStatus})
}

type ledgerFixture struct {
	dbCtx        *repositories.DbContext
	service      *Applications
	adverts      *repositories.Adverts
	applications *repositories.Applications
	notifier     *recordingNotifier
	seeker       entities.User
	employer     entities.User
	advert       entities.JobAdvert
}

func newTestContext(t *testing.T) *repositories.DbContext {
	t.Helper()

	dbCtx, err := repositories.NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())
	t.Cleanup(func() { _ = dbCtx.Close() })
	return dbCtx
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	dbCtx := newTestContext(t)

	seeker := entities.User{Username: "seeker", Email: "seeker@example.com", UserType: entities.JobSeeker}
	employer := entities.User{Username: "employer", Email: "employer@example.com", UserType: entities.Employer}
	require.NoError(t, dbCtx.DB.Create(&seeker).Error)
	require.NoError(t, dbCtx.DB.Create(&employer).Error)

	deadline := time.Now().UTC().AddDate(0, 0, 1)
	advert := entities.JobAdvert{
		EmployerID:          employer.ID,
		Title:               "Backend Engineer",
		Description:         "desc",
		Requirements:        "reqs",
		Location:            "Remote",
		JobType:             entities.FullTime,
		ExperienceLevel:     entities.MidLevel,
		ApplicationDeadline: &deadline,
		IsActive:            true,
	}
	require.NoError(t, dbCtx.DB.Create(&advert).Error)

	advertsRepo := repositories.NewAdvertsRepository(dbCtx.DB)
	applicationsRepo := repositories.NewApplicationsRepository(dbCtx.DB)
	notifier := &recordingNotifier{}

	service := NewApplicationsService(applicationsRepo, advertsRepo,
		NewConsistencyEngine(applicationsRepo, advertsRepo), notifier)

	return &ledgerFixture{
		dbCtx:        dbCtx,
		service:      service,
		adverts:      advertsRepo,
		applications: applicationsRepo,
		notifier:     notifier,
		seeker:       seeker,
		employer:     employer,
		advert:       advert,
	}
}

func (f *ledgerFixture) applicationsCount(t *testing.T) uint {
	t.Helper()

	advert, err := f.adverts.GetByID(context.Background(), f.advert.ID)
	require.NoError(t, err)
	require.NotNil(t, advert)
	return advert.ApplicationsCount
}

func Test_Submit_CreatesPendingApplicationAndRecounts(t *testing.T) {

	f := newLedgerFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.NoError(t, err)
	assert.Equal(t, entities.StatusPending, application.Status)
	assert.Equal(t, uint(1), f.applicationsCount(t))
	assert.Len(t, f.notifier.newApplications, 1)
}

func Test_Submit_SecondSubmissionFailsWithDuplicate(t *testing.T) {

	f := newLedgerFixture(t)

	_, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.NoError(t, err)

	_, err = f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover again", "resume.pdf")
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	assert.Equal(t, uint(1), f.applicationsCount(t))
}

func Test_Submit_WithdrawnApplicationStillBlocksResubmission(t *testing.T) {

	f := newLedgerFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), &f.seeker, application.ID, entities.StatusWithdrawn)
	assert.NoError(t, err)

	_, err = f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "one more try", "resume.pdf")
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func Test_Submit_InactiveAdvertFails(t *testing.T) {

	f := newLedgerFixture(t)

	require.NoError(t, f.dbCtx.DB.Model(&entities.JobAdvert{}).
		Where("id = ?", f.advert.ID).UpdateColumn("is_active", false).Error)

	_, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.ErrorIs(t, err, ErrInactiveAdvert)
	assert.Empty(t, f.notifier.newApplications)
}

func Test_Submit_EmployerIsForbidden(t *testing.T) {

	f := newLedgerFixture(t)

	_, err := f.service.Submit(context.Background(), &f.employer, f.advert.ID, "cover", "resume.pdf")
	assert.ErrorIs(t, err, ErrForbidden)
}

func Test_Submit_MissingAdvertIsNotFound(t *testing.T) {

	f := newLedgerFixture(t)

	_, err := f.service.Submit(context.Background(), &f.seeker, 9999, "cover", "resume.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_UpdateStatus_LiveSetDrivesTheCachedCount(t *testing.T) {

	f := newLedgerFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), f.applicationsCount(t))

	// accepted is in the live set, the count must not move
	_, err = f.service.UpdateStatus(context.Background(), &f.employer, application.ID, entities.StatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), f.applicationsCount(t))

	_, err = f.service.UpdateStatus(context.Background(), &f.employer, application.ID, entities.StatusRejected)
	assert.NoError(t, err)
	assert.Equal(t, uint(0), f.applicationsCount(t))
}

func Test_UpdateStatus_SeekerMayOnlyWithdraw(t *testing.T) {

	f := newLedgerFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), &f.seeker, application.ID, entities.StatusAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := f.service.UpdateStatus(context.Background(), &f.seeker, application.ID, entities.StatusWithdrawn)
	assert.NoError(t, err)
	assert.Equal(t, entities.StatusWithdrawn, updated.Status)
	assert.Equal(t, uint(0), f.applicationsCount(t))
}

func Test_UpdateStatus_StrangerGetsForbidden(t *testing.T) {

	f := newLedgerFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.NoError(t, err)

	stranger := entities.User{Username: "other", Email: "other@example.com", UserType: entities.Employer}
	require.NoError(t, f.dbCtx.DB.Create(&stranger).Error)

	_, err = f.service.UpdateStatus(context.Background(), &stranger, application.ID, entities.StatusAccepted)
	assert.ErrorIs(t, err, ErrForbidden)
}

func Test_UpdateStatus_NoOpStillHealsTheCounter(t *testing.T) {

	f := newLedgerFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.NoError(t, err)

	// simulate counter drift
	require.NoError(t, f.dbCtx.DB.Model(&entities.JobAdvert{}).
		Where("id = ?", f.advert.ID).UpdateColumn("applications_count", 42).Error)

	_, err = f.service.UpdateStatus(context.Background(), &f.employer, application.ID, entities.StatusPending)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), f.applicationsCount(t))
	assert.Empty(t, f.notifier.statusChanges, "a no-op transition must not notify")
}

func Test_UpdateStatus_ChangeNotifiesWithOldAndNewStatus(t *testing.T) {

	f := newLedgerFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), &f.employer, application.ID, entities.StatusReviewed)
	assert.NoError(t, err)

	require.Len(t, f.notifier.statusChanges, 1)
	change := f.notifier.statusChanges[0]
	assert.Equal(t, application.ID, change.applicationID)
	assert.Equal(t, entities.StatusPending, change.oldStatus)
	assert.Equal(t, entities.StatusReviewed, change.newStatus)
}

func Test_ListFor_ScopesByRole(t *testing.T) {

	f := newLedgerFixture(t)

	_, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	assert.NoError(t, err)

	forSeeker, err := f.service.ListFor(context.Background(), &f.seeker)
	assert.NoError(t, err)
	assert.Len(t, forSeeker, 1)

	forEmployer, err := f.service.ListFor(context.Background(), &f.employer)
	assert.NoError(t, err)
	assert.Len(t, forEmployer, 1)

	stranger := entities.User{Username: "other", Email: "other@example.com", UserType: entities.JobSeeker}
	require.NoError(t, f.dbCtx.DB.Create(&stranger).Error)

	forStranger, err := f.service.ListFor(context.Background(), &stranger)
	assert.NoError(t, err)
	assert.Empty(t, forStranger)
}
