package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/projectnexus/jobboard/internal/events"
	"github.com/projectnexus/jobboard/internal/logger"
	"github.com/projectnexus/jobboard/internal/mailer"
	"github.com/projectnexus/jobboard/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type notifierApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.JobApplication, error)
}

type notifierUserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

// Notifier is the fire-and-forget email dispatcher. The trigger methods only
// publish events; delivery happens on async bus subscribers, so the callers
// never wait on SMTP and delivery failures never reach them.
type Notifier struct {
	bus          EventBus.Bus
	sender       mailer.Sender
	applications notifierApplicationRepository
	users        notifierUserRepository
}

func NewNotifier(bus EventBus.Bus, sender mailer.Sender,
	applications notifierApplicationRepository, users notifierUserRepository) (*Notifier, error) {

	n := &Notifier{bus: bus, sender: sender, applications: applications, users: users}

	if err := bus.SubscribeAsync(events.ApplicationSubmittedTopic, n.onApplicationSubmitted, false); err != nil {
		return nil, err
	}
	// transactional subscriber: status-change mails for the same ledger keep
	// their submission order.
	if err := bus.SubscribeAsync(events.ApplicationStatusChangedTopic, n.onStatusChanged, true); err != nil {
		return nil, err
	}
	if err := bus.SubscribeAsync(events.UserRegisteredTopic, n.onUserRegistered, false); err != nil {
		return nil, err
	}

	return n, nil
}

// Stop waits for in-flight deliveries to finish.
func (n *Notifier) Stop() {
	n.bus.WaitAsync()
}

func (n *Notifier) NotifyNewApplication(application entities.JobApplication) {
	n.bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{ApplicationID: application.ID})
}

func (n *Notifier) NotifyStatusChange(application entities.JobApplication,
	oldStatus, newStatus entities.ApplicationStatus) {

	n.bus.Publish(events.ApplicationStatusChangedTopic, events.ApplicationStatusChanged{
		ApplicationID: application.ID,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
	})
}

func (n *Notifier) NotifyWelcome(user entities.User) {
	n.bus.Publish(events.UserRegisteredTopic, events.UserRegistered{UserID: user.ID})
}

func (n *Notifier) onApplicationSubmitted(event events.ApplicationSubmitted) {

	application, err := n.applications.GetByID(context.Background(), event.ApplicationID)
	if err != nil || application == nil {
		n.reportFailure("new_application", err)
		return
	}

	html, err := mailer.RenderNewApplication(mailer.NewApplicationData{
		EmployerName: application.JobAdvert.Employer.Username,
		SeekerName:   application.JobSeeker.Username,
		AdvertTitle:  application.JobAdvert.Title,
		CoverLetter:  application.CoverLetter,
	})
	if err != nil {
		n.reportFailure("new_application", err)
		return
	}

	n.deliver("new_application", mailer.Message{
		To:      application.JobAdvert.Employer.Email,
		Subject: "New Application for " + application.JobAdvert.Title,
		HTML:    html,
	})
}

func (n *Notifier) onStatusChanged(event events.ApplicationStatusChanged) {

	application, err := n.applications.GetByID(context.Background(), event.ApplicationID)
	if err != nil || application == nil {
		n.reportFailure("status_update", err)
		return
	}

	html, err := mailer.RenderStatusUpdate(mailer.StatusUpdateData{
		SeekerName:  application.JobSeeker.Username,
		AdvertTitle: application.JobAdvert.Title,
		OldStatus:   string(event.OldStatus),
		NewStatus:   string(event.NewStatus),
	})
	if err != nil {
		n.reportFailure("status_update", err)
		return
	}

	n.deliver("status_update", mailer.Message{
		To:      application.JobSeeker.Email,
		Subject: "Application Status Update: " + application.JobAdvert.Title,
		HTML:    html,
	})
}

func (n *Notifier) onUserRegistered(event events.UserRegistered) {

	user, err := n.users.GetByID(context.Background(), event.UserID)
	if err != nil || user == nil {
		n.reportFailure("welcome", err)
		return
	}

	html, err := mailer.RenderWelcome(mailer.WelcomeData{Username: user.Username})
	if err != nil {
		n.reportFailure("welcome", err)
		return
	}

	n.deliver("welcome", mailer.Message{
		To:      user.Email,
		Subject: "Welcome to the Job Board",
		HTML:    html,
	})
}

func (n *Notifier) deliver(kind string, msg mailer.Message) {
	if err := n.sender.Send(msg); err != nil {
		n.reportFailure(kind, err)
		return
	}
	metrics.EmailsSent.WithLabelValues(kind, "sent").Inc()
}

func (n *Notifier) reportFailure(kind string, err error) {
	metrics.EmailsSent.WithLabelValues(kind, "failed").Inc()
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeMail).
		Errorf("failed to deliver %v notification: %v", kind, err)
}
