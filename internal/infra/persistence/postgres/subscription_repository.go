// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/repository"
	"agora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create persists a new subscription relationship.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.CategorySubscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryUnavailable.WrapMessage("invalid user or category reference")
		}

		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.SubscribedAt = subscriptionM.CreatedAt

	return nil
}

// Delete removes a subscription.
func (repo *subscriptionRepository) Delete(ctx context.Context, userID uuid.UUID, categoryID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Delete(&model.CategorySubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// FindByUser retrieves all subscriptions for a specific user.
func (repo *subscriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategorySubscription, error) {
	var subscriptionModels []*model.CategorySubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	subscriptions := make([]*entity.CategorySubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// Exists reports whether a user subscribes to a category.
func (repo *subscriptionRepository) Exists(ctx context.Context, userID uuid.UUID, categoryID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CategorySubscriptionModel{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check subscription existence")
	}

	return count > 0, nil
}

// FindSubscriberIDs retrieves the IDs of every user subscribed to a category.
func (repo *subscriptionRepository) FindSubscriberIDs(ctx context.Context, categoryID int64) ([]uuid.UUID, error) {
	var subscriberIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.CategorySubscriptionModel{}).
		Where("category_id = ?", categoryID).
		Pluck("user_id", &subscriberIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriber IDs")
	}

	return subscriberIDs, nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM CategorySubscriptionModel to a domain CategorySubscription entity.
func toSubscriptionDomain(data *model.CategorySubscriptionModel) *entity.CategorySubscription {
	if data == nil {
		return nil
	}

	return &entity.CategorySubscription{
		UserID:       data.UserID,
		CategoryID:   data.CategoryID,
		SubscribedAt: data.CreatedAt,
	}
}

// fromSubscriptionDomain converts a domain CategorySubscription entity to a GORM CategorySubscriptionModel.
func fromSubscriptionDomain(data *entity.CategorySubscription) *model.CategorySubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.CategorySubscriptionModel{
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		CreatedAt:  data.SubscribedAt,
	}
}
