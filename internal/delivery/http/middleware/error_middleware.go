package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "agora/internal/delivery/context"
	domainerrors "agora/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	meta := &domainerrors.MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
		Timestamp: time.Now().Format(time.RFC3339),
		Path:      c.Request().URL.Path,
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		info := &domainerrors.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
		}
		if details := appErr.Details(); details != "" {
			info.Details = details
		}

		m.writeJSON(c, appErr.HTTPCode(), &domainerrors.ErrorResponse{Error: info, Meta: meta})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeJSON(c, httpErr.Code, &domainerrors.ErrorResponse{
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Message: fmt.Sprintf("%v", httpErr.Message),
			},
			Meta: meta,
		})

		return
	}

	// Default to internal error, log and return a generic response
	m.logger.Error("Unhandled error",
		slog.String("request_id", meta.RequestID),
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.writeJSON(c, http.StatusInternalServerError, &domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
		},
		Meta: meta,
	})
}

func (m *ErrorMiddleware) writeJSON(c echo.Context, code int, body *domainerrors.ErrorResponse) {
	if err := c.JSON(code, body); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
