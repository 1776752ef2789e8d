package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/repository"
	mockRepo "agora/internal/mocks/repository"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

// newCategoryServiceForTest wires the service without a report cache; a nil
// cache behaves like an always-missing one, so reads hit the repository.
func newCategoryServiceForTest(t *testing.T) (usecase.CategoryUsecase, *categoryServiceMocks) {
	t.Helper()

	m := &categoryServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    m.txManager,
		CategoryRepo: m.categoryRepo,
		ReportCache:  nil,
		Logger:       logger,
	})

	return service, m
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	service, m := newCategoryServiceForTest(t)

	ctx := context.Background()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().NewCategoryRepository().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					category.ID = 42
					assert.Equal(t, "General", category.Name)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	category, err := service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "General"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), category.ID)
	assert.Equal(t, "General", category.Name)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	service, m := newCategoryServiceForTest(t)

	ctx := context.Background()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().NewCategoryRepository().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(repository.ErrDuplicateCategory)

			return fn(mockFactory)
		})

	_, err := service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "General"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_ListCategories_Success(t *testing.T) {
	service, m := newCategoryServiceForTest(t)

	ctx := context.Background()
	categories := []*entity.Category{
		{ID: 1, Name: "General"},
		{ID: 2, Name: "Announcements"},
	}

	m.categoryRepo.EXPECT().FindAll(ctx).Return(categories, nil)

	result, err := service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	service, m := newCategoryServiceForTest(t)

	ctx := context.Background()

	m.categoryRepo.EXPECT().Delete(ctx, int64(7)).Return(nil)

	err := service.DeleteCategory(ctx, 7)

	require.NoError(t, err)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	service, m := newCategoryServiceForTest(t)

	ctx := context.Background()

	m.categoryRepo.EXPECT().Delete(ctx, int64(7)).Return(repository.ErrCategoryNotFound)

	err := service.DeleteCategory(ctx, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_DeleteCategory_StillReferenced(t *testing.T) {
	service, m := newCategoryServiceForTest(t)

	ctx := context.Background()

	m.categoryRepo.EXPECT().Delete(ctx, int64(7)).Return(repository.ErrCategoryReferenced)

	err := service.DeleteCategory(ctx, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
}

func TestCategoryService_SubscriberReport_FallsThroughToRepository(t *testing.T) {
	service, m := newCategoryServiceForTest(t)

	ctx := context.Background()
	report := []*entity.CategorySubscriberCount{
		{CategoryID: 1, CategoryName: "General", Subscribers: 12},
		{CategoryID: 2, CategoryName: "Announcements", Subscribers: 3},
	}

	m.categoryRepo.EXPECT().CountSubscribersPerCategory(ctx).Return(report, nil)

	result, err := service.SubscriberReport(ctx)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(12), result[0].Subscribers)
}

func TestCategoryService_PostReport_FallsThroughToRepository(t *testing.T) {
	service, m := newCategoryServiceForTest(t)

	ctx := context.Background()
	report := []*entity.CategoryPostCount{
		{CategoryID: 1, CategoryName: "General", Posts: 5},
	}

	m.categoryRepo.EXPECT().CountPostsPerCategory(ctx).Return(report, nil)

	result, err := service.PostReport(ctx)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(5), result[0].Posts)
}

func TestCategoryService_UserSummary_Success(t *testing.T) {
	service, m := newCategoryServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	summary := []*entity.UserCategorySummary{
		{CategoryID: 1, CategoryName: "General", Subscribed: true, OwnPosts: 2},
		{CategoryID: 2, CategoryName: "Announcements", Subscribed: false, OwnPosts: 0},
	}

	m.categoryRepo.EXPECT().SummaryForUser(ctx, userID).Return(summary, nil)

	result, err := service.UserSummary(ctx, userID)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].Subscribed)
	assert.Equal(t, int64(2), result[0].OwnPosts)
}
