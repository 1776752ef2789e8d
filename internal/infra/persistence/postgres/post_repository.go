// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"agora/internal/domain/entity"
	"agora/internal/domain/repository"
	"agora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface.
//
// Every mutation filters on author_id in addition to the primary key. The use
// case layer checks ownership first for the right error code, but the WHERE
// clause is what actually guarantees no cross-owner write can slip through
// between the check and the update.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// Create persists a new post in the active state.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to create post")
	}

	// Update the entity with generated values
	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves an active post by its unique ID.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return toPostDomain(&postM), nil
}

// FindAll retrieves active posts, newest first, optionally filtered by category.
func (repo *postRepository) FindAll(ctx context.Context, categoryID *int64) ([]*entity.Post, error) {
	query := repo.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC")

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var postModels []*model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// FindByAuthor retrieves a user's active posts, newest first.
func (repo *postRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("author_id = ? AND is_deleted = ?", authorID, false).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by author")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// FindOwnership retrieves the ownership projection of an active post.
func (repo *postRepository) FindOwnership(ctx context.Context, id uuid.UUID) (*entity.PostOwnership, error) {
	return repo.findOwnership(ctx, id, true)
}

// FindOwnershipAny retrieves the ownership projection regardless of delete state.
func (repo *postRepository) FindOwnershipAny(ctx context.Context, id uuid.UUID) (*entity.PostOwnership, error) {
	return repo.findOwnership(ctx, id, false)
}

func (repo *postRepository) findOwnership(ctx context.Context, id uuid.UUID, activeOnly bool) (*entity.PostOwnership, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Select("id", "author_id", "is_deleted").
		Where("id = ?", id)

	if activeOnly {
		query = query.Where("is_deleted = ?", false)
	}

	var ownership entity.PostOwnership
	if err := query.First(&ownership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post ownership")
	}

	return &ownership, nil
}

// Update modifies the title, content and category of an active post owned by authorID.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post, authorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ? AND author_id = ? AND is_deleted = ?", post.ID, authorID, false).
		Updates(map[string]any{
			"title":       post.Title,
			"content":     post.Content,
			"category_id": post.CategoryID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// SoftDelete marks an active post owned by authorID as deleted.
func (repo *postRepository) SoftDelete(ctx context.Context, id, authorID uuid.UUID) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ? AND author_id = ? AND is_deleted = ?", id, authorID, false).
		Updates(map[string]any{
			"is_deleted": true,
			"deleted_at": &now,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Restore clears the delete mark of a soft-deleted post owned by authorID.
func (repo *postRepository) Restore(ctx context.Context, id, authorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ? AND author_id = ? AND is_deleted = ?", id, authorID, true).
		Updates(map[string]any{
			"is_deleted": false,
			"deleted_at": nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to restore post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// HardDelete removes the row of a post owned by authorID in any state.
func (repo *postRepository) HardDelete(ctx context.Context, id, authorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&model.PostModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to hard delete post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		AuthorID:   data.AuthorID,
		CategoryID: data.CategoryID,
		IsDeleted:  data.IsDeleted,
		DeletedAt:  data.DeletedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		AuthorID:   data.AuthorID,
		CategoryID: data.CategoryID,
		IsDeleted:  data.IsDeleted,
		DeletedAt:  data.DeletedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
