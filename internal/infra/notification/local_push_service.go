package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"agora/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultLocalPushTimeout = 10 * time.Second

// localPushService implements NotificationService by POSTing each notification
// as JSON to a local endpoint. It stands in for FCM during development.
type localPushService struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalPushService creates a local HTTP push sender for development.
func NewLocalPushService(endpoint string, timeout time.Duration, logger *slog.Logger) service.NotificationService {
	if timeout <= 0 {
		timeout = defaultLocalPushTimeout
	}

	return &localPushService{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SendSingleNotification sends a push notification to a single device token
func (s *localPushService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	payload, err := json.Marshal(map[string]any{
		"token": token,
		"title": title,
		"body":  body,
		"data":  data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("local push endpoint returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// SendBatchNotification sends push notifications token by token. The local
// endpoint has no multicast API, so failures are counted individually and
// never abort the batch.
func (s *localPushService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	for _, token := range tokens {
		if sendErr := s.SendSingleNotification(ctx, token, title, body, data); sendErr != nil {
			failureCount++
			s.logger.Warn("[LocalPush] send failed",
				slog.String("token", token),
				slog.String("error", sendErr.Error()),
			)

			continue
		}
		successCount++
	}

	return successCount, failureCount, nil, nil
}
