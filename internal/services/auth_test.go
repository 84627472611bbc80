package services

import (
	"context"
	"testing"
	"time"

	"github.com/projectnexus/jobboard/internal/config"
	"github.com/projectnexus/jobboard/internal/entities"
	"github.com/projectnexus/jobboard/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopWelcomeNotifier struct{}

func (noopWelcomeNotifier) NotifyWelcome(entities.User) {}

func newAuthFixture(t *testing.T) *Auth {
	t.Helper()

	dbCtx := newTestContext(t)
	return NewAuthService(repositories.NewUsersRepository(dbCtx.DB), noopWelcomeNotifier{},
		config.AuthConfig{JwtSecret: "test-secret", TokenTTL: time.Hour})
}

func registerSampleUser(t *testing.T, auth *Auth) *entities.User {
	t.Helper()

	user, err := auth.Register(context.Background(), RegisterInput{
		Username:    "john",
		Email:       "john@example.com",
		Password:    "secret-password",
		UserType:    entities.JobSeeker,
		CompanyName: "Acme",
		Bio:         "hello",
		Location:    "Berlin",
	})
	require.NoError(t, err)
	return user
}

func Test_Register_HashesThePassword(t *testing.T) {

	auth := newAuthFixture(t)
	user := registerSampleUser(t, auth)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
}

func Test_Register_DuplicateUsernameIsValidationError(t *testing.T) {

	auth := newAuthFixture(t)
	registerSampleUser(t, auth)

	_, err := auth.Register(context.Background(), RegisterInput{
		Username: "john",
		Email:    "other@example.com",
		Password: "secret-password",
		UserType: entities.JobSeeker,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func Test_Login_IssuesParsableToken(t *testing.T) {

	auth := newAuthFixture(t)
	registered := registerSampleUser(t, auth)

	token, user, err := auth.Login(context.Background(), "john", "secret-password")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	parsed, err := auth.ParseToken(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, parsed.ID)
}

func Test_Login_WrongPasswordIsGenericFailure(t *testing.T) {

	auth := newAuthFixture(t)
	registerSampleUser(t, auth)

	_, _, err := auth.Login(context.Background(), "john", "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(context.Background(), "nobody", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func Test_UpdateProfile_ClearedFieldsStick(t *testing.T) {

	auth := newAuthFixture(t)
	user := registerSampleUser(t, auth)

	user.Bio = ""
	user.CompanyName = ""
	user.Location = "Paris"
	require.NoError(t, auth.UpdateProfile(context.Background(), user))

	reloaded, err := auth.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Bio)
	assert.Empty(t, reloaded.CompanyName)
	assert.Equal(t, "Paris", reloaded.Location)
}
