package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "agora/internal/delivery/context"
	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/repository"
	"agora/internal/domain/service"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	categoryRepo     repository.CategoryRepository
	deviceRepo       repository.DeviceRepository
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.SubscriptionRepository
	CategoryRepo     repository.CategoryRepository
	DeviceRepo       repository.DeviceRepository
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		categoryRepo:     params.CategoryRepo,
		deviceRepo:       params.DeviceRepo,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Subscribe creates a subscription to a category and optionally registers the
// subscribing device for push notifications
func (s *subscriptionService) Subscribe(ctx context.Context, userID uuid.UUID, categoryID int64, deviceInfo *usecase.DeviceInfo) (*entity.CategorySubscription, error) {
	s.log(ctx).Info("Subscribing to category", slog.Any("userID", userID), slog.Int64("categoryID", categoryID))

	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
		}

		return nil, errors.Wrap(err, "failed to load category")
	}
	if category.IsDeleted {
		return nil, domainerrors.ErrCategoryUnavailable.WrapMessage("category no longer accepts subscriptions")
	}

	subscription := &entity.CategorySubscription{
		UserID:       userID,
		CategoryID:   categoryID,
		SubscribedAt: time.Now(),
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewSubscriptionRepository().Create(ctx, subscription); err != nil {
			if errors.Is(err, repository.ErrDuplicateSubscription) {
				return domainerrors.ErrSubscriptionAlreadyExists.WrapMessage("already subscribed to this category")
			}

			return errors.Wrap(err, "failed to create subscription")
		}

		if deviceInfo != nil {
			return s.registerDevice(ctx, repoFactory.NewDeviceRepository(), userID, deviceInfo)
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Failed to execute subscription transaction", slog.Any("userID", userID), slog.Int64("categoryID", categoryID), slog.Any("error", err))

		return nil, err
	}

	return subscription, nil
}

// Unsubscribe removes a subscription to a category
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID uuid.UUID, categoryID int64) error {
	s.log(ctx).Info("Unsubscribing from category", slog.Any("userID", userID), slog.Int64("categoryID", categoryID))

	if err := s.subscriptionRepo.Delete(ctx, userID, categoryID); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound.WrapMessage("subscription not found")
		}

		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

// GenerateSubscriptionQR generates a QR code for category subscription
func (s *subscriptionService) GenerateSubscriptionQR(ctx context.Context, categoryID int64) ([]byte, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	qrCode, err := s.qrcodeService.GenerateSubscriptionQR(categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate subscription QR")
	}

	return qrCode, nil
}

// ProcessQRSubscription processes a QR code subscription and optionally registers a device
func (s *subscriptionService) ProcessQRSubscription(ctx context.Context, userID uuid.UUID, qrData string, deviceInfo *usecase.DeviceInfo) (*entity.CategorySubscription, error) {
	categoryID, err := s.qrcodeService.ParseSubscriptionQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid subscription QR code")
	}

	return s.Subscribe(ctx, userID, categoryID, deviceInfo)
}

// registerDevice upserts the subscribing device so fan-out can reach it. An
// existing (user, deviceID) pair gets its token refreshed instead of a
// duplicate row.
func (s *subscriptionService) registerDevice(ctx context.Context, deviceRepo repository.DeviceRepository, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) error {
	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: deviceInfo.Platform,
		IsActive: true,
	}

	if err := deviceRepo.Upsert(ctx, device); err != nil {
		return errors.Wrap(err, "failed to register device")
	}

	return nil
}
