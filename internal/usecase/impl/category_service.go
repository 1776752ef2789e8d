package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "agora/internal/delivery/context"
	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/repository"
	"agora/internal/infra/cache"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Cache keys for the report projections. The summary key is per user.
const (
	cacheKeySubscriberReport = "reports:categories:subscribers"
	cacheKeyPostReport       = "reports:categories:posts"
	cacheKeyUserSummary      = "reports:categories:summary:"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	reportCache  *cache.Client
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	ReportCache  *cache.Client `optional:"true"`
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		reportCache:  params.ReportCache,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory creates a new category.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Creating category", slog.String("name", input.Name))

	newCategory := &entity.Category{Name: input.Name}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCategoryRepository().Create(ctx, newCategory); err != nil {
			if errors.Is(err, repository.ErrDuplicateCategory) {
				return domainerrors.ErrCategoryAlreadyExists.WrapMessage("category name already taken")
			}

			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute category creation transaction", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.invalidateReports(ctx)

	return newCategory, nil
}

// ListCategories retrieves all non-deleted categories.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// DeleteCategory removes a category that nothing references anymore.
func (srv *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting category", slog.Int64("categoryID", id))

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
		}
		if errors.Is(err, repository.ErrCategoryReferenced) {
			return domainerrors.ErrCategoryInUse.WrapMessage("category still has posts or subscribers")
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.invalidateReports(ctx)

	return nil
}

// SubscriberReport returns subscriber totals per category, served from the
// report cache when fresh.
func (srv *categoryService) SubscriberReport(ctx context.Context) ([]*entity.CategorySubscriberCount, error) {
	var cached []*entity.CategorySubscriberCount
	if srv.readCached(ctx, cacheKeySubscriberReport, &cached) {
		return cached, nil
	}

	report, err := srv.categoryRepo.CountSubscribersPerCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers per category")
	}

	srv.writeCached(ctx, cacheKeySubscriberReport, report)

	return report, nil
}

// PostReport returns active post totals per category, served from the report
// cache when fresh.
func (srv *categoryService) PostReport(ctx context.Context) ([]*entity.CategoryPostCount, error) {
	var cached []*entity.CategoryPostCount
	if srv.readCached(ctx, cacheKeyPostReport, &cached) {
		return cached, nil
	}

	report, err := srv.categoryRepo.CountPostsPerCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count posts per category")
	}

	srv.writeCached(ctx, cacheKeyPostReport, report)

	return report, nil
}

// UserSummary returns per-category subscription state and own-post counts for
// one user.
func (srv *categoryService) UserSummary(ctx context.Context, userID uuid.UUID) ([]*entity.UserCategorySummary, error) {
	key := cacheKeyUserSummary + userID.String()

	var cached []*entity.UserCategorySummary
	if srv.readCached(ctx, key, &cached) {
		return cached, nil
	}

	summary, err := srv.categoryRepo.SummaryForUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build category summary")
	}

	srv.writeCached(ctx, key, summary)

	return summary, nil
}

// readCached loads a cached report into out. False means a miss, an unreadable
// payload, or no cache at all; the caller falls through to the database.
func (srv *categoryService) readCached(ctx context.Context, key string, out any) bool {
	raw, err := srv.reportCache.Get(ctx, key)
	if err != nil || raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		srv.log(ctx).Warn("Dropping unreadable cached report", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

func (srv *categoryService) writeCached(ctx context.Context, key string, report any) {
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	//nolint:errcheck // cache writes are best effort
	srv.reportCache.Set(ctx, key, raw, srv.reportCache.ReportTTL())
}

// invalidateReports drops the category-level projections after a mutation. Per
// user summaries expire on their own TTL.
func (srv *categoryService) invalidateReports(ctx context.Context) {
	//nolint:errcheck // cache invalidation is best effort
	srv.reportCache.Delete(ctx, cacheKeySubscriberReport)
	//nolint:errcheck // cache invalidation is best effort
	srv.reportCache.Delete(ctx, cacheKeyPostReport)
}
