// Package accounts manages the social-media accounts a user automates.
// Credentials are stored as given but always masked on the way out.
package accounts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/diestrin/social-media-automation/internal/apperror"
	"github.com/diestrin/social-media-automation/internal/models"
	"github.com/diestrin/social-media-automation/internal/store"
)

// CreateInput is the payload for creating an account.
type CreateInput struct {
	Type           models.AccountType `json:"type"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Goals          []string           `json:"goals"`
	Interests      []string           `json:"interests"`
	Credentials    map[string]string  `json:"credentials"`
	PostFrequency  *int               `json:"postFrequency"`
	BestTimeToPost []string           `json:"bestTimeToPost"`
}

// UpdateInput is the partial payload for updating an account. Nil fields
// are left untouched; credentials are merged key-wise into the stored set.
type UpdateInput struct {
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	Goals          []string          `json:"goals"`
	Interests      []string          `json:"interests"`
	Credentials    map[string]string `json:"credentials"`
	PostFrequency  *int              `json:"postFrequency"`
	BestTimeToPost []string          `json:"bestTimeToPost"`
	IsActive       *bool             `json:"isActive"`
}

// View is the client-facing account representation with masked credentials.
type View struct {
	ID                 string             `json:"id"`
	Type               models.AccountType `json:"type"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	Goals              []string           `json:"goals"`
	Interests          []string           `json:"interests"`
	Credentials        map[string]*string `json:"credentials"`
	ContentPreferences map[string]string  `json:"contentPreferences"`
	PostFrequency      int                `json:"postFrequency"`
	BestTimeToPost     []string           `json:"bestTimeToPost"`
	IsActive           bool               `json:"isActive"`
	LastSyncAt         *time.Time         `json:"lastSyncAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// Service implements the account CRUD operations, always scoped to the
// calling user.
type Service struct {
	repo store.AccountRepository
}

// NewService builds the accounts service.
func NewService(repo store.AccountRepository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new account for the user.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*View, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	freq := 1
	if in.PostFrequency != nil {
		freq = *in.PostFrequency
	}
	a := &models.Account{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Type:               in.Type,
		Name:               strings.TrimSpace(in.Name),
		Description:        in.Description,
		Goals:              models.StringList(in.Goals),
		Interests:          models.StringList(in.Interests),
		Credentials:        models.StringMap(in.Credentials),
		ContentPreferences: models.StringMap{},
		PostFrequency:      freq,
		BestTimeToPost:     models.StringList(in.BestTimeToPost),
		IsActive:           true,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return sanitize(a), nil
}

// List returns the user's accounts, optionally filtered by type.
func (s *Service) List(ctx context.Context, userID string, accountType models.AccountType) ([]*View, error) {
	if accountType != "" && !models.ValidAccountType(accountType) {
		return nil, fmt.Errorf("%w: unsupported account type: %s", apperror.ErrValidation, accountType)
	}
	accounts, err := s.repo.ListByUser(ctx, userID, accountType)
	if err != nil {
		return nil, err
	}
	views := make([]*View, 0, len(accounts))
	for i := range accounts {
		views = append(views, sanitize(&accounts[i]))
	}
	return views, nil
}

// Get returns one account owned by the user.
func (s *Service) Get(ctx context.Context, userID, id string) (*View, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return sanitize(a), nil
}

// Update applies a partial update to an account owned by the user.
func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (*View, error) {
	if in.PostFrequency != nil && (*in.PostFrequency < 1 || *in.PostFrequency > 24) {
		return nil, fmt.Errorf("%w: postFrequency must be between 1 and 24", apperror.ErrValidation)
	}
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.Goals != nil {
		a.Goals = models.StringList(in.Goals)
	}
	if in.Interests != nil {
		a.Interests = models.StringList(in.Interests)
	}
	if in.Credentials != nil {
		if a.Credentials == nil {
			a.Credentials = models.StringMap{}
		}
		for k, v := range in.Credentials {
			a.Credentials[k] = v
		}
	}
	if in.PostFrequency != nil {
		a.PostFrequency = *in.PostFrequency
	}
	if in.BestTimeToPost != nil {
		a.BestTimeToPost = models.StringList(in.BestTimeToPost)
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return sanitize(a), nil
}

// Delete removes an account owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// Verify checks the stored credentials against the platform. Only Twitter
// is dispatched today and its client is still a stub.
func (s *Service) Verify(ctx context.Context, userID, id string) (bool, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return false, err
	}
	switch a.Type {
	case models.AccountTwitter:
		return verifyTwitterCredentials(a.Credentials)
	default:
		return false, fmt.Errorf("%w: unsupported account type: %s", apperror.ErrValidation, a.Type)
	}
}

// TODO: call the Twitter API once the automation worker lands a client.
func verifyTwitterCredentials(_ models.StringMap) (bool, error) {
	return true, nil
}

func validateCreate(in CreateInput) error {
	if !models.ValidAccountType(in.Type) {
		return fmt.Errorf("%w: unsupported account type: %s", apperror.ErrValidation, in.Type)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", apperror.ErrValidation)
	}
	if len(in.Credentials) == 0 {
		return fmt.Errorf("%w: credentials are required", apperror.ErrValidation)
	}
	if in.PostFrequency != nil && (*in.PostFrequency < 1 || *in.PostFrequency > 24) {
		return fmt.Errorf("%w: postFrequency must be between 1 and 24", apperror.ErrValidation)
	}
	return nil
}

// sanitize converts a record to its client view, masking every credential
// to its first and last four characters.
func sanitize(a *models.Account) *View {
	masked := make(map[string]*string, len(a.Credentials))
	for k, v := range a.Credentials {
		masked[k] = maskCredential(v)
	}
	return &View{
		ID:                 a.ID,
		Type:               a.Type,
		Name:               a.Name,
		Description:        a.Description,
		Goals:              a.Goals,
		Interests:          a.Interests,
		Credentials:        masked,
		ContentPreferences: a.ContentPreferences,
		PostFrequency:      a.PostFrequency,
		BestTimeToPost:     a.BestTimeToPost,
		IsActive:           a.IsActive,
		LastSyncAt:         a.LastSyncAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func maskCredential(credential string) *string {
	if credential == "" {
		return nil
	}
	head := credential
	tail := credential
	if len(credential) >= 4 {
		head = credential[:4]
		tail = credential[len(credential)-4:]
	}
	m := head + "..." + tail
	return &m
}
