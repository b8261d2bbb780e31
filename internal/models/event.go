package models

// Event types published to the activity topic
const (
	EventImageCreated   = "image.created"
	EventLikeToggled    = "like.toggled"
	EventAlbumCreated   = "album.created"
	EventCommentCreated = "comment.created"
)

// Event represents an activity event, published as JSON.
type Event struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // One of the Event* constants
	EntityID  string `json:"entity_id"` // Id of the image, album or comment concerned
	UserID    string `json:"user_id"`   // Acting user
	Timestamp int64  `json:"timestamp"` // Unix seconds
	Payload   any    `json:"payload,omitempty"`
}
