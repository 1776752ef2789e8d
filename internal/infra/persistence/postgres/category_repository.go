// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"agora/internal/domain/entity"
	"agora/internal/domain/repository"
	"agora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategory
		}

		return errors.Wrap(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

// FindByID retrieves a category by its ID, soft-deleted ones included.
// The caller decides how a deleted category affects its operation.
func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindAll retrieves all non-deleted categories ordered by name.
func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// Delete removes a category row.
func (repo *categoryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryReferenced
		}

		return errors.Wrap(result.Error, "failed to delete category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// CountSubscribersPerCategory returns subscriber totals grouped by category.
// Reporting queries tolerate replica lag and run against read replicas.
func (repo *categoryRepository) CountSubscribersPerCategory(ctx context.Context) ([]*entity.CategorySubscriberCount, error) {
	var counts []*entity.CategorySubscriberCount

	query := `
		SELECT c.id AS category_id,
		       c.name AS category_name,
		       COUNT(s.user_id) AS subscribers
		FROM categories c
		LEFT JOIN category_subscriptions s ON s.category_id = c.id
		WHERE c.is_deleted = false
		GROUP BY c.id, c.name
		ORDER BY subscribers DESC, c.name ASC
	`

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(query).
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers per category")
	}

	return counts, nil
}

// CountPostsPerCategory returns active post totals grouped by category.
func (repo *categoryRepository) CountPostsPerCategory(ctx context.Context) ([]*entity.CategoryPostCount, error) {
	var counts []*entity.CategoryPostCount

	query := `
		SELECT c.id AS category_id,
		       c.name AS category_name,
		       COUNT(p.id) FILTER (WHERE p.is_deleted = false) AS posts
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		WHERE c.is_deleted = false
		GROUP BY c.id, c.name
		ORDER BY posts DESC, c.name ASC
	`

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(query).
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count posts per category")
	}

	return counts, nil
}

// SummaryForUser returns one row per category with the user's subscription
// state and their own active post count.
func (repo *categoryRepository) SummaryForUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserCategorySummary, error) {
	var summaries []*entity.UserCategorySummary

	query := `
		SELECT c.id AS category_id,
		       c.name AS category_name,
		       EXISTS (
		           SELECT 1 FROM category_subscriptions s
		           WHERE s.category_id = c.id AND s.user_id = ?
		       ) AS subscribed,
		       COUNT(p.id) FILTER (WHERE p.author_id = ? AND p.is_deleted = false) AS own_posts
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		WHERE c.is_deleted = false
		GROUP BY c.id, c.name
		ORDER BY c.name ASC
	`

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(query, userID, userID).
		Scan(&summaries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to build category summary for user")
	}

	return summaries, nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		IsDeleted: data.IsDeleted,
	}
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		Name:      data.Name,
		IsDeleted: data.IsDeleted,
	}
}
