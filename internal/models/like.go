package models

// LikeState is the like status of an image as seen by one user.
type LikeState struct {
	LikeCount int64 `json:"likeCount" db:"like_count"` // Number of likes on the image
	IsLiked   bool  `json:"isLiked" db:"is_liked"`     // Whether the caller likes the image
}
