package usecase

import (
	"context"

	"agora/internal/domain/service"
)

// FanoutResult summarizes one fan-out run for logging and the worker response.
type FanoutResult struct {
	Recipients  int // Subscribers addressed by the event.
	Devices     int // Active devices found for those subscribers.
	Sent        int
	Failed      int
	Deactivated int // Devices deactivated because the provider rejected their token.
}

// NotificationUsecase defines the interface for the worker-side notification fan-out
type NotificationUsecase interface {
	// FanoutPostEvent delivers a published post to every active device of the
	// event's subscribers. Partial delivery failure is reported in the result,
	// not as an error; an error means the event itself could not be processed.
	FanoutPostEvent(ctx context.Context, event *service.PostEvent) (*FanoutResult, error)
}
