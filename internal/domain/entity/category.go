// Package entity contains the core business objects of the project.
package entity

// Category groups posts by topic. Names are unique across the platform.
type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsDeleted bool   `json:"is_deleted"` // Soft-deleted categories reject new posts but keep history.
}

// CategorySubscriberCount is a reporting projection: subscriber totals per category.
type CategorySubscriberCount struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Subscribers  int64  `json:"subscribers"`
}

// CategoryPostCount is a reporting projection: post totals per category,
// soft-deleted posts excluded.
type CategoryPostCount struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Posts        int64  `json:"posts"`
}

// UserCategorySummary is a reporting projection: one row per category for a
// given user, with their subscription state and own post count.
type UserCategorySummary struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Subscribed   bool   `json:"subscribed"`
	OwnPosts     int64  `json:"own_posts"`
}
