package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/projectnexus/jobboard/internal/mailer"
	"github.com/projectnexus/jobboard/internal/repositories"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(msg mailer.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func newNotifierFixture(t *testing.T) (*Notifier, *mockSender, *ledgerFixture) {
	t.Helper()

	f := newLedgerFixture(t)
	sender := &mockSender{}

	notifier, err := NewNotifier(EventBus.New(), sender,
		repositories.NewApplicationsRepository(f.dbCtx.DB),
		repositories.NewUsersRepository(f.dbCtx.DB))
	require.NoError(t, err)

	return notifier, sender, f
}

func Test_Notifier_NewApplicationMailsTheEmployer(t *testing.T) {

	notifier, sender, f := newNotifierFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	require.NoError(t, err)

	sender.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == f.employer.Email
	})).Return(nil).Once()

	notifier.NotifyNewApplication(*application)
	notifier.Stop()

	sender.AssertExpectations(t)
}

func Test_Notifier_StatusChangeMailsTheSeeker(t *testing.T) {

	notifier, sender, f := newNotifierFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	require.NoError(t, err)

	sender.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == f.seeker.Email
	})).Return(nil).Once()

	notifier.NotifyStatusChange(*application, entities.StatusPending, entities.StatusReviewed)
	notifier.Stop()

	sender.AssertExpectations(t)
}

func Test_Notifier_WelcomeMailsTheNewUser(t *testing.T) {

	notifier, sender, f := newNotifierFixture(t)

	sender.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == f.seeker.Email
	})).Return(nil).Once()

	notifier.NotifyWelcome(f.seeker)
	notifier.Stop()

	sender.AssertExpectations(t)
}

func Test_Notifier_DeliveryFailureNeverReachesTheCaller(t *testing.T) {

	notifier, sender, f := newNotifierFixture(t)

	application, err := f.service.Submit(context.Background(), &f.seeker, f.advert.ID, "cover", "resume.pdf")
	require.NoError(t, err)

	sender.On("Send", mock.Anything).Return(errors.New("smtp down")).Once()

	notifier.NotifyNewApplication(*application)
	notifier.Stop()

	sender.AssertExpectations(t)
}
