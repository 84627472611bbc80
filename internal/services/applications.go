package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/projectnexus/jobboard/internal/logger"
	"github.com/projectnexus/jobboard/internal/metrics"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type applicationRepository interface {
	Create(ctx context.Context, application *entities.JobApplication) error
	GetByID(ctx context.Context, id int64) (*entities.JobApplication, error)
	GetBySeekerAndAdvert(ctx context.Context, seekerID, advertID int64) (*entities.JobApplication, error)
	GetBySeeker(ctx context.Context, seekerID int64) ([]entities.JobApplication, error)
	GetByEmployer(ctx context.Context, employerID int64) ([]entities.JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, status entities.ApplicationStatus) error
}

type advertLookupRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.JobAdvert, error)
}

type notificationDispatcher interface {
	NotifyNewApplication(application entities.JobApplication)
	NotifyStatusChange(application entities.JobApplication, oldStatus, newStatus entities.ApplicationStatus)
}

// Applications is the ledger of seeker submissions. All mutations go through
// Submit and UpdateStatus; both keep the advert's cached count in sync and
// hand notifications to the dispatcher after the row is durable.
type Applications struct {
	applications applicationRepository
	adverts      advertLookupRepository
	consistency  *ConsistencyEngine
	notifier     notificationDispatcher
}

func NewApplicationsService(applications applicationRepository, adverts advertLookupRepository,
	consistency *ConsistencyEngine, notifier notificationDispatcher) *Applications {

	return &Applications{
		applications: applications,
		adverts:      adverts,
		consistency:  consistency,
		notifier:     notifier,
	}
}

// Submit creates a new application with status pending. The lookup before
// insert only produces a friendly error: the unique index on
// (seeker, advert) remains the authoritative duplicate guard.
func (s *Applications) Submit(ctx context.Context, seeker *entities.User, advertID int64,
	coverLetter, resumePath string) (*entities.JobApplication, error) {

	if !seeker.IsJobSeeker() {
		return nil, errors.Wrap(ErrForbidden, "only job seekers may apply")
	}

	advert, err := s.adverts.GetByID(ctx, advertID)
	if err != nil {
		return nil, err
	}
	if advert == nil {
		return nil, errors.Wrap(ErrNotFound, "advert does not exist")
	}
	if !advert.IsActive {
		return nil, ErrInactiveAdvert
	}

	existing, err := s.applications.GetBySeekerAndAdvert(ctx, seeker.ID, advertID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateApplication
	}

	application := &entities.JobApplication{
		JobSeekerID: seeker.ID,
		JobAdvertID: advertID,
		CoverLetter: coverLetter,
		ResumePath:  resumePath,
		Status:      entities.StatusPending,
		AppliedAt:   time.Now().UTC(),
	}

	if err = s.applications.Create(ctx, application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	metrics.ApplicationsSubmitted.Inc()
	s.afterMutation(ctx, advertID)
	s.notifier.NotifyNewApplication(*application)

	return application, nil
}

// UpdateStatus transitions an application. The advert's employer may set any
// status; the owning seeker may only withdraw from a non-terminal state.
// Setting the current status again is a permitted no-op that still triggers
// a recount.
func (s *Applications) UpdateStatus(ctx context.Context, actor *entities.User, applicationID int64,
	newStatus entities.ApplicationStatus) (*entities.JobApplication, error) {

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, errors.Wrap(ErrNotFound, "application does not exist")
	}

	if err = authorizeStatusChange(actor, application, newStatus); err != nil {
		return nil, err
	}

	oldStatus := application.Status
	if err = s.applications.UpdateStatus(ctx, applicationID, newStatus); err != nil {
		return nil, err
	}
	application.Status = newStatus

	metrics.ApplicationStatusChanges.WithLabelValues(string(newStatus)).Inc()
	s.afterMutation(ctx, application.JobAdvertID)

	if oldStatus != newStatus {
		s.notifier.NotifyStatusChange(*application, oldStatus, newStatus)
	}

	return application, nil
}

func authorizeStatusChange(actor *entities.User, application *entities.JobApplication,
	newStatus entities.ApplicationStatus) error {

	switch {
	case actor.UserType == entities.Admin:
		return nil
	case actor.IsEmployer() && application.JobAdvert.EmployerID == actor.ID:
		return nil
	case actor.ID == application.JobSeekerID:
		if newStatus != entities.StatusWithdrawn {
			return errors.Wrap(ErrForbidden, "seekers may only withdraw applications")
		}
		if application.Status.IsTerminal() && application.Status != entities.StatusWithdrawn {
			return errors.Wrap(ErrForbidden, "application is already in a terminal state")
		}
		return nil
	default:
		return errors.Wrap(ErrForbidden, "actor does not own this application")
	}
}

// afterMutation recomputes the advert's cached count. The ledger row is the
// durable fact at this point, so a failed recount is logged and never
// surfaces to the caller; the next mutation heals the counter.
func (s *Applications) afterMutation(ctx context.Context, advertID int64) {
	if err := s.consistency.RecomputeApplicationsCount(ctx, advertID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to recompute applications count for advert %v: %v", advertID, err)
	}
}

// ListFor returns the applications visible to the actor: employers see
// applications to their adverts, seekers see their own submissions.
func (s *Applications) ListFor(ctx context.Context, actor *entities.User) ([]entities.JobApplication, error) {

	if actor.IsEmployer() {
		return s.applications.GetByEmployer(ctx, actor.ID)
	}
	return s.applications.GetBySeeker(ctx, actor.ID)
}

func (s *Applications) GetFor(ctx context.Context, actor *entities.User, id int64) (*entities.JobApplication, error) {

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, errors.Wrap(ErrNotFound, "application does not exist")
	}

	visible := actor.UserType == entities.Admin ||
		application.JobSeekerID == actor.ID ||
		(actor.IsEmployer() && application.JobAdvert.EmployerID == actor.ID)
	if !visible {
		return nil, errors.Wrap(ErrNotFound, "application does not exist")
	}

	return application, nil
}
