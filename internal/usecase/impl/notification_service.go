package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"agora/config"
	deliverycontext "agora/internal/delivery/context"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/repository"
	"agora/internal/domain/service"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase multicast limit per request.
	fanoutBatchSize = 500

	// Concurrent batches when config leaves it unset.
	defaultFanoutConcurrency = 4
)

// notificationService implements the worker-side NotificationUsecase.
type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	concurrency     int
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewNotificationService creates the fan-out service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	concurrency := defaultFanoutConcurrency
	if params.Config != nil && params.Config.Push != nil && params.Config.Push.FanoutConcurrency > 0 {
		concurrency = params.Config.Push.FanoutConcurrency
	}

	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		concurrency:     concurrency,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FanoutPostEvent delivers a post event to every active device of its
// subscribers. Batches run concurrently under a semaphore; a failed batch is
// counted and logged, never retried here (the broker redelivers retryable
// failures).
func (s *notificationService) FanoutPostEvent(ctx context.Context, event *service.PostEvent) (*usecase.FanoutResult, error) {
	if event == nil || event.PostID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("post event is empty")
	}

	logger := s.log(ctx).With(slog.String("postID", event.PostID), slog.Int64("categoryID", event.CategoryID))

	userIDs := make([]uuid.UUID, 0, len(event.SubscriberIDs))
	for _, raw := range event.SubscriberIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Skipping malformed subscriber ID", slog.String("subscriberID", raw))

			continue
		}
		userIDs = append(userIDs, id)
	}

	result := &usecase.FanoutResult{Recipients: len(userIDs)}
	if len(userIDs) == 0 {
		return result, nil
	}

	devices, err := s.deviceRepo.FindActiveForUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load devices for fan-out")
	}

	result.Devices = len(devices)
	if len(devices) == 0 {
		logger.Debug("No active devices for post event")

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title := fmt.Sprintf("「%s」有新文章", event.CategoryName)
	body := event.Title
	if event.AuthorName != "" {
		body = fmt.Sprintf("%s：%s", event.AuthorName, event.Title)
	}
	data := map[string]string{
		"post_id":     event.PostID,
		"category_id": fmt.Sprintf("%d", event.CategoryID),
		"request_id":  event.RequestID,
	}

	sent, failed, invalidTokens := s.sendBatches(ctx, logger, tokens, title, body, data)
	result.Sent = sent
	result.Failed = failed

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid device tokens", slog.Int("tokens", len(invalidTokens)), slog.Any("error", err))
		} else {
			result.Deactivated = len(invalidTokens)
		}
	}

	logger.Info("Post event fan-out finished",
		slog.Int("recipients", result.Recipients),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("deactivated", result.Deactivated),
	)

	return result, nil
}

// sendBatches pushes token batches through the provider with bounded
// concurrency and aggregates the counters.
func (s *notificationService) sendBatches(ctx context.Context, logger *slog.Logger, tokens []string, title, body string, data map[string]string) (int, int, []string) {
	var (
		mu            sync.Mutex
		wg            sync.WaitGroup
		sent          int
		failed        int
		invalidTokens []string
	)

	semaphore := make(chan struct{}, s.concurrency)

	for start := 0; start < len(tokens); start += fanoutBatchSize {
		end := start + fanoutBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		wg.Add(1)
		semaphore <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-semaphore }()

			successCount, failureCount, batchInvalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				logger.Warn("Push batch failed", slog.Int("batchSize", len(batch)), slog.Any("error", err))
				failed += len(batch)

				return
			}

			sent += successCount
			failed += failureCount
			invalidTokens = append(invalidTokens, batchInvalid...)
		}()
	}

	wg.Wait()

	return sent, failed, invalidTokens
}
