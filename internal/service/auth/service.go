package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rishtahub/rishtahub/internal/app"
	"github.com/rishtahub/rishtahub/internal/config"
	"github.com/rishtahub/rishtahub/internal/db"
	svcErr "github.com/rishtahub/rishtahub/internal/errors"
	"github.com/rishtahub/rishtahub/internal/repository"
	"github.com/rishtahub/rishtahub/internal/service/user"
	"github.com/rishtahub/rishtahub/internal/utils/token"
)

// RegisterRequest is the typed input for POST /auth/register.
type RegisterRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=64"`
	Email        string `json:"email" binding:"required,email,max=128"`
	Password     string `json:"password" binding:"required,min=6,max=72"`
	Age          int    `json:"age" binding:"required,gte=18,lte=100"`
	Gender       string `json:"gender" binding:"required,oneof=male female other"`
	InterestedIn string `json:"interestedIn" binding:"required,oneof=male female both"`
	Location     string `json:"location" binding:"required,min=1,max=128"`
	Occupation   string `json:"occupation" binding:"required,min=1,max=128"`
	About        string `json:"about" binding:"omitempty,max=500"`
}

// LoginRequest is the typed input for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Session is a successful authentication result.
type Session struct {
	Token string       `json:"token"`
	User  user.Profile `json:"user"`
}

// Service issues accounts and tokens. Everything downstream of it only
// sees the resolved requester identity.
type Service struct {
	appCtx   *app.AppContext
	userRepo *repository.UserRepository
	secret   string
	ttl      time.Duration
}

// NewService creates the auth service with dependencies from AppContext
// and token settings from config.
func NewService(appCtx *app.AppContext, cfg *config.Config) *Service {
	return &Service{
		appCtx:   appCtx,
		userRepo: repository.NewUserRepository(appCtx.DB),
		secret:   cfg.JWT.Secret,
		ttl:      cfg.JWT.TTL,
	}
}

// Register creates a new account and returns a signed session.
//
// Behavior:
//   - Fails with ErrEmailTaken when the email is already registered.
//   - Passwords are stored as bcrypt hashes, never in clear.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, svcErr.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := db.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Age:          req.Age,
		Gender:       req.Gender,
		InterestedIn: req.InterestedIn,
		Location:     strings.TrimSpace(req.Location),
		Occupation:   strings.TrimSpace(req.Occupation),
		About:        strings.TrimSpace(req.About),
	}
	if err := s.userRepo.Create(ctx, &u); err != nil {
		s.appCtx.Logger.Error("failed to create user", "email", email, "err", err)
		return nil, err
	}

	signed, err := token.Sign(s.secret, u.ID, s.ttl)
	if err != nil {
		return nil, err
	}

	s.appCtx.Logger.Info("user registered", "user_id", u.ID)
	return &Session{Token: signed, User: user.ProfileFrom(u)}, nil
}

// Login verifies credentials and returns a signed session.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, svcErr.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, svcErr.ErrUnauthorized
	}

	signed, err := token.Sign(s.secret, u.ID, s.ttl)
	if err != nil {
		return nil, err
	}

	s.appCtx.Logger.Info("user logged in", "user_id", u.ID)
	return &Session{Token: signed, User: user.ProfileFrom(*u)}, nil
}
