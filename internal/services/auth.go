package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/repository"
	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/internal/utils"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingCredentials  = errors.New("username and password are required")
	ErrMissingRegistration = errors.New("All fields (username, password, email) are required")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUsernameTaken       = errors.New("Already Registered")
	ErrEmailTaken          = errors.New("Email already registered")
	ErrTokenRevoked        = errors.New("token has been revoked")
)

type AuthService struct {
	users     UserStore
	tokens    TokenStore
	jwtSecret string
	mailer    Mailer
}

// AuthResult is what a successful login or registration hands back to the client.
type AuthResult struct {
	User  *models.User
	Token string
}

// NewAuthService builds the service; mailer may be nil when e-mail is not configured.
func NewAuthService(users UserStore, tokens TokenStore, jwtSecret string, mailer Mailer) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		jwtSecret: jwtSecret,
		mailer:    mailer,
	}
}

func (s *AuthService) Login(ctx context.Context, req types.LoginRequest) (*AuthResult, error) {
	username := utils.SanitizeString(req.UserName)
	if username == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) Register(ctx context.Context, req types.RegisterRequest) (*AuthResult, error) {
	user := &models.User{
		Username:  utils.SanitizeString(req.UserName),
		Email:     utils.SanitizeString(req.Email),
		FirstName: utils.SanitizeString(req.FirstName),
		LastName:  utils.SanitizeString(req.LastName),
		IsActive:  true,
	}
	if user.Username == "" || req.Password == "" || user.Email == "" {
		return nil, ErrMissingRegistration
	}
	if !utils.IsValidEmail(user.Email) {
		return nil, ErrInvalidEmail
	}

	taken, err := s.users.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		logger.WithFields(logrus.Fields{"username": user.Username}).Warn("registration rejected: username taken")
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		logger.WithFields(logrus.Fields{"username": user.Username}).Warn("registration rejected: email taken")
		return nil, ErrEmailTaken
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.mailer != nil {
		go func(to, name string) {
			if err := s.mailer.SendWelcomeEmail(to, name); err != nil {
				logger.WithFields(logrus.Fields{"error": err}).Error("failed to send welcome email")
			}
		}(user.Email, displayName(user))
	}

	return s.issue(user)
}

// Authenticate validates a bearer token and rejects revoked ones.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := utils.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Logout revokes the presented token. Logging out without a valid token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := utils.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil
	}
	expiresAt := time.Now().Add(utils.AccessTokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.tokens.Revoke(ctx, claims.ID, claims.UserID, expiresAt)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, _, err := utils.GenerateAccessToken(user.ID, user.Username, s.jwtSecret)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}
	return &AuthResult{User: user, Token: token}, nil
}

func displayName(user *models.User) string {
	if user.FirstName != "" {
		return user.FirstName
	}
	return user.Username
}
