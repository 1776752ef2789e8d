package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agora/config"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/service"
	mockUC "agora/internal/mocks/usecase"
	"agora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandlerForTest(t *testing.T) (*PushHandler, *mockUC.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUC.NewMockNotificationUsecase(t)
	handler := NewPushHandler(PushHandlerParams{
		Config:         &config.Config{},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return handler, notificationUC
}

func newPushContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func pushBodyForTest(t *testing.T, event *service.PostEvent, attributes map[string]string) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{Subscription: "projects/test/subscriptions/post-events"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	handler, notificationUC := newPushHandlerForTest(t)

	event := &service.PostEvent{
		PostID:        "b9f7d2e8-0000-0000-0000-000000000001",
		CategoryID:    7,
		CategoryName:  "General",
		Title:         "Hello",
		AuthorName:    "Alice",
		SubscriberIDs: []string{"b9f7d2e8-0000-0000-0000-000000000002"},
	}
	c, rec := newPushContext(t, pushBodyForTest(t, event, map[string]string{"request_id": "req-from-attr"}))

	notificationUC.EXPECT().
		FanoutPostEvent(mock.Anything, mock.AnythingOfType("*service.PostEvent")).
		Run(func(ctx context.Context, received *service.PostEvent) {
			assert.Equal(t, event.PostID, received.PostID)
			assert.Equal(t, "req-from-attr", received.RequestID)
		}).
		Return(&usecase.FanoutResult{Recipients: 1, Devices: 1, Sent: 1}, nil)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedBody(t *testing.T) {
	handler, _ := newPushHandlerForTest(t)

	c, rec := newPushContext(t, "{not-json")

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64Data(t *testing.T) {
	handler, _ := newPushHandlerForTest(t)

	c, rec := newPushContext(t, `{"message":{"data":"%%%not-base64%%%"},"subscription":"s"}`)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidEventNotRetried(t *testing.T) {
	handler, notificationUC := newPushHandlerForTest(t)

	event := &service.PostEvent{}
	c, rec := newPushContext(t, pushBodyForTest(t, event, nil))

	notificationUC.EXPECT().
		FanoutPostEvent(mock.Anything, mock.AnythingOfType("*service.PostEvent")).
		Return(nil, domainerrors.ErrValidationFailed.WrapMessage("empty event"))

	// Malformed events are acknowledged so Pub/Sub does not redeliver them.
	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_TransientFailureRetried(t *testing.T) {
	handler, notificationUC := newPushHandlerForTest(t)

	event := &service.PostEvent{
		PostID:        "b9f7d2e8-0000-0000-0000-000000000001",
		CategoryID:    7,
		CategoryName:  "General",
		Title:         "Hello",
		AuthorName:    "Alice",
		SubscriberIDs: []string{"b9f7d2e8-0000-0000-0000-000000000002"},
	}
	c, rec := newPushContext(t, pushBodyForTest(t, event, nil))

	notificationUC.EXPECT().
		FanoutPostEvent(mock.Anything, mock.AnythingOfType("*service.PostEvent")).
		Return(nil, errors.New("connection refused"))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_RequestIDFallsBackToEventField(t *testing.T) {
	handler, notificationUC := newPushHandlerForTest(t)

	event := &service.PostEvent{
		RequestID:     "req-from-event",
		PostID:        "b9f7d2e8-0000-0000-0000-000000000001",
		CategoryID:    7,
		CategoryName:  "General",
		Title:         "Hello",
		AuthorName:    "Alice",
		SubscriberIDs: []string{"b9f7d2e8-0000-0000-0000-000000000002"},
	}
	c, rec := newPushContext(t, pushBodyForTest(t, event, nil))

	notificationUC.EXPECT().
		FanoutPostEvent(mock.Anything, mock.AnythingOfType("*service.PostEvent")).
		Run(func(ctx context.Context, received *service.PostEvent) {
			assert.Equal(t, "req-from-event", received.RequestID)
		}).
		Return(&usecase.FanoutResult{Recipients: 1}, nil)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
