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

type userServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
}

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:        m.txManager,
		UserRepo:         m.userRepo,
		SubscriptionRepo: m.subscriptionRepo,
		Logger:           logger,
	})

	return service, m
}

func TestUserService_ListUsers_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Email: "b@example.com"},
		{ID: uuid.New(), Email: "a@example.com"},
	}

	m.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	result, err := service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestUserService_GetUser_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com"}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	result, err := service.GetUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, result.ID)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := service.GetUser(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	newName := "Alice Cooper"
	studentID := "B123456"
	user := &entity.User{ID: userID, Name: "Alice", Email: "alice@example.com"}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "Alice Cooper", user.Name)
					assert.Equal(t, "alice@example.com", user.Email)
					require.NotNil(t, user.StudentID)
					assert.Equal(t, "B123456", *user.StudentID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		Name:      &newName,
		StudentID: &studentID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
}

func TestUserService_UpdateUser_DuplicateEmail(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	takenEmail := "taken@example.com"
	user := &entity.User{ID: userID, Email: "alice@example.com"}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUser)

			return fn(mockFactory)
		})

	_, err := service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Email: &takenEmail})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	newName := "Nobody"

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	_, err := service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Name: &newName})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	err := service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_DeleteUser_StillReferenced(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserReferenced)

	err := service.DeleteUser(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserReferenced)
}

func TestUserService_ListSubscriptions_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	subscriptions := []*entity.CategorySubscription{
		{UserID: userID, CategoryID: 7},
		{UserID: userID, CategoryID: 9},
	}

	m.subscriptionRepo.EXPECT().FindByUser(ctx, userID).Return(subscriptions, nil)

	result, err := service.ListSubscriptions(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
