package model

// Identity is what the stakeholders service knows about the caller.
// Resolved per request from the Authorization header, never persisted.
type Identity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

const (
	RoleTourist = "Tourist"
	RoleGuide   = "Guide"
)

// CanPublish reports whether the role is allowed to author blogs.
func (i Identity) CanPublish() bool {
	return i.Role == RoleTourist || i.Role == RoleGuide
}
