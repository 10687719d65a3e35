package accounts

import (
	"context"
	"errors"
	"fmt"

	"clipgenie/internal/domain/plans"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindOrCreate(ctx context.Context, id, ownerID string) (*Account, error) {
	var a Account
	err := s.db.WithContext(ctx).
		Where(Account{ID: id}).
		Attrs(Account{OwnerID: ownerID, Plan: plans.Free}).
		FirstOrCreate(&a).Error
	if err != nil {
		return nil, fmt.Errorf("accounts: find or create %s: %w", id, err)
	}
	return &a, nil
}

func (s *GormStore) FindByID(ctx context.Context, id string) (*Account, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *GormStore) FindBySubscription(ctx context.Context, subscriptionID string) (*Account, error) {
	return s.first(ctx, "stripe_subscription_id = ?", subscriptionID)
}

func (s *GormStore) first(ctx context.Context, query string, arg string) (*Account, error) {
	var a Account
	if err := s.db.WithContext(ctx).Where(query, arg).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("accounts: lookup: %w", err)
	}
	return &a, nil
}

func (s *GormStore) SetPlan(ctx context.Context, id string, plan plans.Plan) error {
	res := s.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("plan", plan)
	if res.Error != nil {
		return fmt.Errorf("accounts: set plan %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ApplyBilling(ctx context.Context, id string, u BillingUpdate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a Account
		if err := tx.Where("id = ?", id).First(&a).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("accounts: apply billing %s: %w", id, err)
		}

		applyBilling(&a, u)

		if err := tx.Save(&a).Error; err != nil {
			return fmt.Errorf("accounts: apply billing %s: %w", id, err)
		}
		return nil
	})
}
