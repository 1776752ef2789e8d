package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"agora/config"
	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	domainservice "agora/internal/domain/service"
	mockRepo "agora/internal/mocks/repository"
	mockSvc "agora/internal/mocks/service"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceMocks struct {
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func newNotificationServiceForTest(t *testing.T, cfg *config.Config) (usecase.NotificationUsecase, *notificationServiceMocks) {
	t.Helper()

	m := &notificationServiceMocks{
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		notificationSvc: mockSvc.NewMockNotificationService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewNotificationService(NotificationServiceParams{
		DeviceRepo:      m.deviceRepo,
		NotificationSvc: m.notificationSvc,
		Config:          cfg,
		Logger:          logger,
	})

	return service, m
}

func postEventForTest(subscriberIDs ...string) *domainservice.PostEvent {
	return &domainservice.PostEvent{
		RequestID:     "req-1",
		PostID:        uuid.New().String(),
		CategoryID:    7,
		CategoryName:  "General",
		Title:         "Hello",
		AuthorName:    "Alice",
		SubscriberIDs: subscriberIDs,
	}
}

func TestNotificationService_FanoutPostEvent_Success(t *testing.T) {
	service, m := newNotificationServiceForTest(t, nil)

	ctx := context.Background()
	subscriberID := uuid.New()
	event := postEventForTest(subscriberID.String())
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: subscriberID, FCMToken: "token-1", IsActive: true},
		{ID: uuid.New(), UserID: subscriberID, FCMToken: "token-2", IsActive: true},
	}

	m.deviceRepo.EXPECT().FindActiveForUsers(ctx, []uuid.UUID{subscriberID}).Return(devices, nil)
	m.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1", "token-2"}, "「General」有新文章", "Alice：Hello", mock.AnythingOfType("map[string]string")).
		Run(func(ctx context.Context, tokens []string, title, body string, data map[string]string) {
			assert.Equal(t, event.PostID, data["post_id"])
			assert.Equal(t, "7", data["category_id"])
			assert.Equal(t, "req-1", data["request_id"])
		}).
		Return(2, 0, nil, nil)

	result, err := service.FanoutPostEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Recipients)
	assert.Equal(t, 2, result.Devices)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Deactivated)
}

func TestNotificationService_FanoutPostEvent_EmptyEvent(t *testing.T) {
	service, _ := newNotificationServiceForTest(t, nil)

	ctx := context.Background()

	_, err := service.FanoutPostEvent(ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.FanoutPostEvent(ctx, &domainservice.PostEvent{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_FanoutPostEvent_SkipsMalformedSubscriberIDs(t *testing.T) {
	service, m := newNotificationServiceForTest(t, nil)

	ctx := context.Background()
	subscriberID := uuid.New()
	event := postEventForTest("not-a-uuid", subscriberID.String())
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: subscriberID, FCMToken: "token-1", IsActive: true},
	}

	m.deviceRepo.EXPECT().FindActiveForUsers(ctx, []uuid.UUID{subscriberID}).Return(devices, nil)
	m.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)

	result, err := service.FanoutPostEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Recipients)
	assert.Equal(t, 1, result.Sent)
}

func TestNotificationService_FanoutPostEvent_AllSubscriberIDsMalformed(t *testing.T) {
	service, _ := newNotificationServiceForTest(t, nil)

	ctx := context.Background()
	event := postEventForTest("not-a-uuid", "also-bad")

	result, err := service.FanoutPostEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Recipients)
	assert.Equal(t, 0, result.Sent)
}

func TestNotificationService_FanoutPostEvent_NoActiveDevices(t *testing.T) {
	service, m := newNotificationServiceForTest(t, nil)

	ctx := context.Background()
	subscriberID := uuid.New()
	event := postEventForTest(subscriberID.String())

	m.deviceRepo.EXPECT().FindActiveForUsers(ctx, []uuid.UUID{subscriberID}).Return([]*entity.UserDevice{}, nil)

	result, err := service.FanoutPostEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Recipients)
	assert.Equal(t, 0, result.Devices)
	assert.Equal(t, 0, result.Sent)
}

func TestNotificationService_FanoutPostEvent_DeactivatesInvalidTokens(t *testing.T) {
	service, m := newNotificationServiceForTest(t, nil)

	ctx := context.Background()
	subscriberID := uuid.New()
	event := postEventForTest(subscriberID.String())
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: subscriberID, FCMToken: "good-token", IsActive: true},
		{ID: uuid.New(), UserID: subscriberID, FCMToken: "stale-token", IsActive: true},
	}

	m.deviceRepo.EXPECT().FindActiveForUsers(ctx, []uuid.UUID{subscriberID}).Return(devices, nil)
	m.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"good-token", "stale-token"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(1, 1, []string{"stale-token"}, nil)
	m.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale-token"}).Return(nil)

	result, err := service.FanoutPostEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Deactivated)
}

func TestNotificationService_FanoutPostEvent_BatchFailureCountsWholeBatch(t *testing.T) {
	service, m := newNotificationServiceForTest(t, nil)

	ctx := context.Background()
	subscriberID := uuid.New()
	event := postEventForTest(subscriberID.String())
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: subscriberID, FCMToken: "token-1", IsActive: true},
		{ID: uuid.New(), UserID: subscriberID, FCMToken: "token-2", IsActive: true},
	}

	m.deviceRepo.EXPECT().FindActiveForUsers(ctx, []uuid.UUID{subscriberID}).Return(devices, nil)
	m.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.AnythingOfType("[]string"), mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(0, 0, nil, errors.New("provider unreachable"))

	result, err := service.FanoutPostEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 2, result.Failed)
}

func TestNotificationService_FanoutPostEvent_BatchesLargeDeviceSets(t *testing.T) {
	cfg := &config.Config{Push: &config.PushConfig{FanoutConcurrency: 2}}
	service, m := newNotificationServiceForTest(t, cfg)

	ctx := context.Background()
	subscriberID := uuid.New()
	event := postEventForTest(subscriberID.String())

	// Three full batches plus a remainder.
	deviceCount := fanoutBatchSize*3 + 17
	devices := make([]*entity.UserDevice, 0, deviceCount)
	for i := 0; i < deviceCount; i++ {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   subscriberID,
			FCMToken: fmt.Sprintf("token-%d", i),
			IsActive: true,
		})
	}

	m.deviceRepo.EXPECT().FindActiveForUsers(ctx, []uuid.UUID{subscriberID}).Return(devices, nil)
	m.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.AnythingOfType("[]string"), mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		RunAndReturn(func(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
			assert.LessOrEqual(t, len(tokens), fanoutBatchSize)

			return len(tokens), 0, nil, nil
		}).
		Times(4)

	result, err := service.FanoutPostEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, deviceCount, result.Devices)
	assert.Equal(t, deviceCount, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestNotificationService_FanoutPostEvent_DeviceLookupFails(t *testing.T) {
	service, m := newNotificationServiceForTest(t, nil)

	ctx := context.Background()
	subscriberID := uuid.New()
	event := postEventForTest(subscriberID.String())

	m.deviceRepo.EXPECT().
		FindActiveForUsers(ctx, []uuid.UUID{subscriberID}).
		Return(nil, errors.New("connection refused"))

	_, err := service.FanoutPostEvent(ctx, event)

	require.Error(t, err)
}
