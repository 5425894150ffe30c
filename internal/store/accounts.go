package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/diestrin/social-media-automation/internal/apperror"
	"github.com/diestrin/social-media-automation/internal/models"
)

// AccountRepository is the persistence surface of the accounts service.
// Every read and write is scoped to the owning user; an account that exists
// but belongs to someone else is indistinguishable from one that does not.
type AccountRepository interface {
	Create(ctx context.Context, a *models.Account) error
	ListByUser(ctx context.Context, userID string, accountType models.AccountType) ([]models.Account, error)
	FindByID(ctx context.Context, userID, id string) (*models.Account, error)
	Save(ctx context.Context, a *models.Account) error
	Delete(ctx context.Context, userID, id string) error
}

type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepository returns the gorm-backed AccountRepository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, a *models.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *accountRepo) ListByUser(ctx context.Context, userID string, accountType models.AccountType) ([]models.Account, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if accountType != "" {
		q = q.Where("type = ?", accountType)
	}
	var accounts []models.Account
	if err := q.Order("created_at").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepo) FindByID(ctx context.Context, userID, id string) (*models.Account, error) {
	var a models.Account
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) Save(ctx context.Context, a *models.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *accountRepo) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Account{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
