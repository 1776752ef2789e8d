package service

import (
	"context"
)

// PostEvent represents a published post to be fanned out to category subscribers
type PostEvent struct {
	RequestID     string   `json:"request_id,omitempty"` // For distributed tracing
	PostID        string   `json:"post_id"`
	CategoryID    int64    `json:"category_id"`
	CategoryName  string   `json:"category_name"`
	Title         string   `json:"title"`
	AuthorName    string   `json:"author_name"`
	SubscriberIDs []string `json:"subscriber_ids"` // Pre-collected subscriber user IDs
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPostEvent publishes a post-created event for async fan-out
	PublishPostEvent(ctx context.Context, event *PostEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
