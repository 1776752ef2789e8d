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
	mockSvc "agora/internal/mocks/service"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	categoryRepo     *mockRepo.MockCategoryRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	qrcodeService    *mockSvc.MockQRCodeService
}

func newSubscriptionServiceForTest(t *testing.T) (usecase.SubscriptionUsecase, *subscriptionServiceMocks) {
	t.Helper()

	m := &subscriptionServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		categoryRepo:     mockRepo.NewMockCategoryRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		qrcodeService:    mockSvc.NewMockQRCodeService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSubscriptionService(SubscriptionServiceParams{
		TxManager:        m.txManager,
		SubscriptionRepo: m.subscriptionRepo,
		CategoryRepo:     m.categoryRepo,
		DeviceRepo:       m.deviceRepo,
		QRCodeService:    m.qrcodeService,
		Logger:           logger,
	})

	return service, m
}

func TestSubscriptionService_Subscribe_Success(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	category := &entity.Category{ID: 7, Name: "General"}

	m.categoryRepo.EXPECT().FindByID(ctx, int64(7)).Return(category, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().NewSubscriptionRepository().Return(mockSubscriptionRepo)
			mockSubscriptionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CategorySubscription")).
				Run(func(ctx context.Context, subscription *entity.CategorySubscription) {
					assert.Equal(t, userID, subscription.UserID)
					assert.Equal(t, int64(7), subscription.CategoryID)
					assert.False(t, subscription.SubscribedAt.IsZero())
				}).
				Return(nil)

			return fn(mockFactory)
		})

	subscription, err := service.Subscribe(ctx, userID, 7, nil)

	require.NoError(t, err)
	assert.Equal(t, userID, subscription.UserID)
	assert.Equal(t, int64(7), subscription.CategoryID)
}

func TestSubscriptionService_Subscribe_RegistersDevice(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	category := &entity.Category{ID: 7, Name: "General"}
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "fcm-token",
		DeviceID: "device-1",
		Platform: "android",
	}

	m.categoryRepo.EXPECT().FindByID(ctx, int64(7)).Return(category, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewSubscriptionRepository().Return(mockSubscriptionRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockSubscriptionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CategorySubscription")).Return(nil)
			mockDeviceRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.UserDevice")).
				Run(func(ctx context.Context, device *entity.UserDevice) {
					assert.Equal(t, userID, device.UserID)
					assert.Equal(t, "fcm-token", device.FCMToken)
					assert.Equal(t, "device-1", device.DeviceID)
					assert.Equal(t, "android", device.Platform)
					assert.True(t, device.IsActive)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	_, err := service.Subscribe(ctx, userID, 7, deviceInfo)

	require.NoError(t, err)
}

func TestSubscriptionService_Subscribe_AlreadySubscribed(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	category := &entity.Category{ID: 7, Name: "General"}

	m.categoryRepo.EXPECT().FindByID(ctx, int64(7)).Return(category, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().NewSubscriptionRepository().Return(mockSubscriptionRepo)
			mockSubscriptionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CategorySubscription")).
				Return(repository.ErrDuplicateSubscription)

			return fn(mockFactory)
		})

	_, err := service.Subscribe(ctx, userID, 7, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionAlreadyExists)
}

func TestSubscriptionService_Subscribe_CategoryNotFound(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.categoryRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrCategoryNotFound)

	_, err := service.Subscribe(ctx, userID, 404, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestSubscriptionService_Subscribe_CategorySoftDeleted(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	category := &entity.Category{ID: 7, Name: "Closed", IsDeleted: true}

	m.categoryRepo.EXPECT().FindByID(ctx, int64(7)).Return(category, nil)

	_, err := service.Subscribe(ctx, userID, 7, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryUnavailable)
}

func TestSubscriptionService_Unsubscribe_Success(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.subscriptionRepo.EXPECT().Delete(ctx, userID, int64(7)).Return(nil)

	err := service.Unsubscribe(ctx, userID, 7)

	require.NoError(t, err)
}

func TestSubscriptionService_Unsubscribe_NotFound(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.subscriptionRepo.EXPECT().Delete(ctx, userID, int64(7)).Return(repository.ErrSubscriptionNotFound)

	err := service.Unsubscribe(ctx, userID, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_GenerateSubscriptionQR_Success(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	category := &entity.Category{ID: 7, Name: "General"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	m.categoryRepo.EXPECT().FindByID(ctx, int64(7)).Return(category, nil)
	m.qrcodeService.EXPECT().GenerateSubscriptionQR(int64(7)).Return(png, nil)

	qrCode, err := service.GenerateSubscriptionQR(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, png, qrCode)
}

func TestSubscriptionService_GenerateSubscriptionQR_CategoryNotFound(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()

	m.categoryRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrCategoryNotFound)

	_, err := service.GenerateSubscriptionQR(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestSubscriptionService_ProcessQRSubscription_Success(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	category := &entity.Category{ID: 7, Name: "General"}

	m.qrcodeService.EXPECT().ParseSubscriptionQR("qr-payload").Return(int64(7), nil)
	m.categoryRepo.EXPECT().FindByID(ctx, int64(7)).Return(category, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().NewSubscriptionRepository().Return(mockSubscriptionRepo)
			mockSubscriptionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CategorySubscription")).Return(nil)

			return fn(mockFactory)
		})

	subscription, err := service.ProcessQRSubscription(ctx, userID, "qr-payload", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(7), subscription.CategoryID)
}

func TestSubscriptionService_ProcessQRSubscription_InvalidPayload(t *testing.T) {
	service, m := newSubscriptionServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.qrcodeService.EXPECT().ParseSubscriptionQR("garbage").Return(int64(0), errors.New("failed to unmarshal QR code data"))

	_, err := service.ProcessQRSubscription(ctx, userID, "garbage", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
