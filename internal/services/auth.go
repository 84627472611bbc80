package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/projectnexus/jobboard/internal/config"
	"github.com/projectnexus/jobboard/internal/entities"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}

type welcomeNotifier interface {
	NotifyWelcome(user entities.User)
}

// ErrInvalidCredentials is deliberately generic: login failures never reveal
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	UserType    entities.UserType
	CompanyName string
	PhoneNumber string
	Bio         string
	Website     string
	Location    string
}

type Auth struct {
	users    userRepository
	notifier welcomeNotifier
	cfg      config.AuthConfig
}

func NewAuthService(users userRepository, notifier welcomeNotifier, cfg config.AuthConfig) *Auth {
	return &Auth{users: users, notifier: notifier, cfg: cfg}
}

func (s *Auth) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		UserType:     input.UserType,
		CompanyName:  input.CompanyName,
		PhoneNumber:  input.PhoneNumber,
		Bio:          input.Bio,
		Website:      input.Website,
		Location:     input.Location,
	}

	if err = s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.Wrap(ErrValidation, "username or email already taken")
		}
		return nil, err
	}

	s.notifier.NotifyWelcome(*user)
	return user, nil
}

func (s *Auth) Login(ctx context.Context, username, password string) (string, *entities.User, error) {

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *Auth) GetUser(ctx context.Context, id int64) (*entities.User, error) {

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Wrap(ErrNotFound, "user does not exist")
	}
	return user, nil
}

func (s *Auth) UpdateProfile(ctx context.Context, user *entities.User) error {
	return s.users.Update(ctx, user)
}

func (s *Auth) issueToken(user *entities.User) (string, error) {

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(s.cfg.TokenTTL).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(s.cfg.JwtSecret))
}

// ParseToken validates a bearer token and returns the user it identifies.
func (s *Auth) ParseToken(ctx context.Context, tokenString string) (*entities.User, error) {

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, int64(sub))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
