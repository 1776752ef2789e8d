package handler

import (
	"log/slog"
	"net/http"

	"agora/internal/delivery/http/middleware"
	"agora/internal/delivery/http/response"
	"agora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents the optional request body for subscribing to a
// category. Device info, when present, registers the device for push delivery.
type SubscribeRequest struct {
	DeviceInfo *usecase.DeviceInfo `json:"device_info,omitempty"`
}

// ProcessQRRequest represents the request body for processing QR subscription
type ProcessQRRequest struct {
	QRData     string              `json:"qr_data" validate:"required"`
	DeviceInfo *usecase.DeviceInfo `json:"device_info,omitempty"`
}

// Subscribe handles subscribing to a category
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	categoryID, err := parseCategoryID(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	subscription, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, categoryID, req.DeviceInfo)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscribed to category successfully")
}

// Unsubscribe handles unsubscribing from a category
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	categoryID, err := parseCategoryID(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID, categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed successfully"}, "Unsubscribed from category successfully")
}

// GenerateSubscriptionQR handles generating a QR code for category subscription
func (h *SubscriptionHandler) GenerateSubscriptionQR(c echo.Context) error {
	categoryID, err := parseCategoryID(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	qrCode, err := h.subscriptionUC.GenerateSubscriptionQR(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Disposition", "inline; filename=subscription-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// ProcessQRSubscription handles subscribing through a scanned QR code
func (h *SubscriptionHandler) ProcessQRSubscription(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ProcessQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.ProcessQRSubscription(c.Request().Context(), userID, req.QRData, req.DeviceInfo)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscribed via QR code successfully")
}
