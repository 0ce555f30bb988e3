package dto

// LikeStatus is returned by the toggle and status endpoints.
type LikeStatus struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

type LikeCount struct {
	Count int64 `json:"count"`
}
