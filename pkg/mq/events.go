package mq

// LikeEvent is published on every successful like toggle.
type LikeEvent struct {
	UserID     int64  `json:"user_id"`
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
	ActionType string `json:"action_type"` // "like" or "unlike"
	Timestamp  int64  `json:"timestamp"`
	EventID    string `json:"event_id"`
}

// CleanupEvent reports a cascade-delete sub-operation that failed after the
// primary delete already succeeded, typically an orphaned remote asset. The
// consumer side retries the cleanup; publishing it here is what keeps partial
// failures from being silently swallowed.
type CleanupEvent struct {
	EntityType string `json:"entity_type"` // "video", "comment", "tweet"
	EntityID   int64  `json:"entity_id"`
	Operation  string `json:"operation"` // which sub-operation failed
	AssetURL   string `json:"asset_url,omitempty"`
	Reason     string `json:"reason"`
	Timestamp  int64  `json:"timestamp"`
	EventID    string `json:"event_id"`
}

const (
	LikeEventExchange    = "like_events"
	CleanupEventExchange = "cleanup_events"

	LikeEventQueue    = "like_event_queue"
	CleanupEventQueue = "cleanup_event_queue"
)
