package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/diestrin/social-media-automation/internal/apperror"
	"github.com/diestrin/social-media-automation/internal/models"
	"github.com/diestrin/social-media-automation/internal/store"
)

const minPasswordLen = 8

// UserView is the safe user representation returned to clients.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	AccessToken string   `json:"access_token"`
	User        UserView `json:"user"`
}

// Service orchestrates registration, login and profile lookup.
type Service struct {
	users  store.UserRepository
	issuer *TokenIssuer
}

// NewService builds the auth service.
func NewService(users store.UserRepository, issuer *TokenIssuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// Register validates the input, creates the user and issues a token.
// A taken email fails with ErrConflict.
func (s *Service) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if err := validateRegistration(email, password, name); err != nil {
		return nil, err
	}

	taken, err := s.users.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", apperror.ErrConflict)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.result(u)
}

// Login checks the credentials and issues a fresh token. An unknown email
// and a wrong password fail identically, so callers cannot enumerate users.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: invalid email or password", apperror.ErrUnauthenticated)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperror.ErrUnauthenticated)
	}
	if !CheckPassword(u.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid email or password", apperror.ErrUnauthenticated)
	}
	return s.result(u)
}

// Profile loads the safe view of the authenticated user from the store.
func (s *Service) Profile(ctx context.Context, userID string) (*UserView, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserView{ID: u.ID, Email: u.Email, Name: u.Name}, nil
}

func (s *Service) result(u *models.User) (*AuthResult, error) {
	tok, err := s.issuer.Issue(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: tok,
		User:        UserView{ID: u.ID, Email: u.Email, Name: u.Name},
	}, nil
}

func validateRegistration(email, password, name string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", apperror.ErrValidation)
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return fmt.Errorf("%w: email is invalid", apperror.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", apperror.ErrValidation, minPasswordLen)
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", apperror.ErrValidation)
	}
	return nil
}
