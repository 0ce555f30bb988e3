package services

import (
	"context"

	"blog-service/model"
)

// IdentityResolver resolves the caller behind an Authorization header.
// Implementations must not distinguish "collaborator failed" from "no
// identity": both come back as a Forbidden error.
type IdentityResolver interface {
	Resolve(ctx context.Context, authHeader string) (*model.Identity, error)
}

// FollowChecker answers follow-graph questions against the follower
// service, forwarding the caller's Authorization header verbatim.
type FollowChecker interface {
	// IsFollowedByMe reports whether the caller follows userID.
	IsFollowedByMe(ctx context.Context, authHeader string, userID int64) (bool, error)

	// FollowedByMe returns the ids of every user the caller follows.
	FollowedByMe(ctx context.Context, authHeader string) ([]int64, error)
}

// BlogStore is the persistence surface the blog service needs. Lookups
// return (nil, nil) when the document is absent.
type BlogStore interface {
	Create(ctx context.Context, blog *model.Blog) error
	GetByID(ctx context.Context, id int64) (*model.Blog, error)
	ListAll(ctx context.Context) ([]model.Blog, error)
	ListByAuthors(ctx context.Context, authorIDs []int64, skip, limit int64) ([]model.Blog, error)
}

type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	ListByBlog(ctx context.Context, blogID int64) ([]model.Comment, error)
	UpdateContent(ctx context.Context, id int64, content string) (*model.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type LikeStore interface {
	// Insert reports dup=true when the (user, blog) pair already holds
	// a like, without treating it as a hard error.
	Insert(ctx context.Context, like *model.Like) (dup bool, err error)
	Find(ctx context.Context, userID, blogID int64) (*model.Like, error)
	Delete(ctx context.Context, userID, blogID int64) (bool, error)
	CountByBlog(ctx context.Context, blogID int64) (int64, error)
	ListByBlog(ctx context.Context, blogID int64) ([]model.Like, error)
}
