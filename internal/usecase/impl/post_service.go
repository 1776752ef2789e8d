package impl

import (
	"context"
	"log/slog"

	deliverycontext "agora/internal/delivery/context"
	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/lifecycle"
	"agora/internal/domain/repository"
	"agora/internal/domain/service"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager        repository.TransactionManager
	postRepo         repository.PostRepository
	categoryRepo     repository.CategoryRepository
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	PostRepo         repository.PostRepository
	CategoryRepo     repository.CategoryRepository
	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager:        params.TxManager,
		postRepo:         params.PostRepo,
		categoryRepo:     params.CategoryRepo,
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost publishes a new post and triggers the subscriber fan-out.
func (srv *postService) CreatePost(ctx context.Context, authorID uuid.UUID, input *usecase.CreatePostInput) (*entity.Post, error) {
	srv.log(ctx).Info("Creating post", slog.Any("authorID", authorID), slog.Int64("categoryID", input.CategoryID))

	newPost := &entity.Post{
		Title:      input.Title,
		Content:    input.Content,
		AuthorID:   authorID,
		CategoryID: input.CategoryID,
	}

	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		category, err = srv.requireActiveCategory(ctx, repoFactory.NewCategoryRepository(), input.CategoryID)
		if err != nil {
			return err
		}

		return repoFactory.NewPostRepository().Create(ctx, newPost)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute post creation transaction", slog.Any("authorID", authorID), slog.Any("error", err))

		return nil, err
	}

	// Delivery must never delay or fail the creation response.
	srv.publishPostEvent(ctx, newPost, category.Name)

	srv.log(ctx).Debug("Post created", slog.Any("postID", newPost.ID))

	return newPost, nil
}

// GetPost retrieves an active post. Soft-deleted posts are indistinguishable
// from missing ones.
func (srv *postService) GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound.WrapMessage("post not found")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// ListPosts retrieves active posts, optionally filtered by category.
func (srv *postService) ListPosts(ctx context.Context, categoryID *int64) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAll(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// ListPostsByAuthor retrieves a user's active posts.
func (srv *postService) ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return posts, nil
}

// UpdatePost modifies an active post after the ownership check. The repository
// re-asserts authorship in its WHERE clause, so a row changed between check and
// write surfaces as not found instead of clobbering somebody else's post.
func (srv *postService) UpdatePost(ctx context.Context, userID, postID uuid.UUID, input *usecase.UpdatePostInput) (*entity.Post, error) {
	srv.log(ctx).Info("Updating post", slog.Any("userID", userID), slog.Any("postID", postID))

	var updated *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		if _, err := srv.guardOwnership(ctx, postRepo, userID, postID, false); err != nil {
			return err
		}

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("post not found")
			}

			return errors.Wrap(err, "failed to load post for update")
		}

		if input.Title != nil {
			post.Title = *input.Title
		}
		if input.Content != nil {
			post.Content = *input.Content
		}
		if input.CategoryID != nil && *input.CategoryID != post.CategoryID {
			if _, err := srv.requireActiveCategory(ctx, repoFactory.NewCategoryRepository(), *input.CategoryID); err != nil {
				return err
			}
			post.CategoryID = *input.CategoryID
		}

		if err := postRepo.Update(ctx, post, userID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("post changed during update")
			}

			return errors.Wrap(err, "failed to update post")
		}

		updated = post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute post update transaction", slog.Any("postID", postID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// SoftDeletePost hides an active post. The post remains restorable.
func (srv *postService) SoftDeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	srv.log(ctx).Info("Soft deleting post", slog.Any("userID", userID), slog.Any("postID", postID))

	if _, err := srv.guardOwnership(ctx, srv.postRepo, userID, postID, false); err != nil {
		return err
	}

	if err := srv.postRepo.SoftDelete(ctx, postID, userID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound.WrapMessage("post changed during delete")
		}

		return errors.Wrap(err, "failed to soft delete post")
	}

	return nil
}

// RestorePost brings a soft-deleted post back to active.
func (srv *postService) RestorePost(ctx context.Context, userID, postID uuid.UUID) error {
	srv.log(ctx).Info("Restoring post", slog.Any("userID", userID), slog.Any("postID", postID))

	ownership, err := srv.guardOwnership(ctx, srv.postRepo, userID, postID, true)
	if err != nil {
		return err
	}

	if !ownership.IsDeleted {
		return domainerrors.ErrPostNotDeleted.WrapMessage("post is not deleted")
	}

	if err := srv.postRepo.Restore(ctx, postID, userID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound.WrapMessage("post changed during restore")
		}

		return errors.Wrap(err, "failed to restore post")
	}

	return nil
}

// HardDeletePost permanently removes a post in any state.
func (srv *postService) HardDeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	srv.log(ctx).Info("Hard deleting post", slog.Any("userID", userID), slog.Any("postID", postID))

	if _, err := srv.guardOwnership(ctx, srv.postRepo, userID, postID, true); err != nil {
		return err
	}

	if err := srv.postRepo.HardDelete(ctx, postID, userID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound.WrapMessage("post changed during delete")
		}

		return errors.Wrap(err, "failed to hard delete post")
	}

	return nil
}

// guardOwnership loads the minimal ownership projection and checks authorship.
// A missing post maps to not found, somebody else's post to a forbidden error.
func (srv *postService) guardOwnership(ctx context.Context, postRepo repository.PostRepository, userID, postID uuid.UUID, includeDeleted bool) (*entity.PostOwnership, error) {
	var (
		ownership *entity.PostOwnership
		err       error
	)
	if includeDeleted {
		ownership, err = postRepo.FindOwnershipAny(ctx, postID)
	} else {
		ownership, err = postRepo.FindOwnership(ctx, postID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound.WrapMessage("post not found")
		}

		return nil, errors.Wrap(err, "failed to load post ownership")
	}

	if ownership.AuthorID != userID {
		srv.log(ctx).Warn("Ownership violation", slog.Any("userID", userID), slog.Any("postID", postID))

		return nil, domainerrors.ErrPostOwnershipViolation.WrapMessage("post belongs to another user")
	}

	return ownership, nil
}

// requireActiveCategory checks that the target category exists and still
// accepts posts.
func (srv *postService) requireActiveCategory(ctx context.Context, categoryRepo repository.CategoryRepository, categoryID int64) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryUnavailable.WrapMessage("category does not exist")
		}

		return nil, errors.Wrap(err, "failed to load category")
	}
	if category.IsDeleted {
		return nil, domainerrors.ErrCategoryUnavailable.WrapMessage("category no longer accepts posts")
	}

	return category, nil
}

// publishPostEvent collects subscribers and hands the event to the publisher in
// the background. The request context is only used to carry the request ID and
// logger; delivery runs on its own deadline so a slow broker cannot stall or
// fail the creation response.
func (srv *postService) publishPostEvent(ctx context.Context, post *entity.Post, categoryName string) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	logger := srv.log(ctx)

	go func() {
		fanoutCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		subscriberIDs, err := srv.subscriptionRepo.FindSubscriberIDs(fanoutCtx, post.CategoryID)
		if err != nil {
			logger.Warn("Failed to collect subscribers for post event", slog.Any("postID", post.ID), slog.Any("error", err))

			return
		}
		if len(subscriberIDs) == 0 {
			logger.Debug("No subscribers for post event", slog.Any("postID", post.ID))

			return
		}

		authorName := ""
		if author, err := srv.userRepo.FindByID(fanoutCtx, post.AuthorID); err == nil {
			authorName = author.Name
		}

		ids := make([]string, 0, len(subscriberIDs))
		for _, id := range subscriberIDs {
			ids = append(ids, id.String())
		}

		event := &service.PostEvent{
			RequestID:     requestID,
			PostID:        post.ID.String(),
			CategoryID:    post.CategoryID,
			CategoryName:  categoryName,
			Title:         post.Title,
			AuthorName:    authorName,
			SubscriberIDs: ids,
		}

		if err := srv.publisher.PublishPostEvent(fanoutCtx, event); err != nil {
			logger.Warn("Failed to publish post event", slog.Any("postID", post.ID), slog.Any("error", err))

			return
		}

		logger.Debug("Post event published", slog.Any("postID", post.ID), slog.Int("subscribers", len(ids)))
	}()
}
