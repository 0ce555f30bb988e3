package services

import (
	"context"
	"time"

	"blog-service/dto"
	"blog-service/internal/apperr"
	"blog-service/model"
)

type LikeService struct {
	likes LikeStore
	auth  IdentityResolver
	gate  interactionGate
}

func NewLikeService(likes LikeStore, blogs BlogStore, auth IdentityResolver, followers FollowChecker, authorExempt bool) *LikeService {
	return &LikeService{
		likes: likes,
		auth:  auth,
		gate: interactionGate{
			auth:         auth,
			followers:    followers,
			blogs:        blogs,
			authorExempt: authorExempt,
		},
	}
}

// Create adds a like through the interaction gate. A pair that already
// holds a like is a Conflict on this path; Toggle is the forgiving one.
func (s *LikeService) Create(ctx context.Context, authHeader string, blogID int64) (*model.Like, error) {
	identity, _, err := s.gate.authorize(ctx, authHeader, blogID)
	if err != nil {
		return nil, err
	}

	like := &model.Like{
		UserID:    identity.UserID,
		BlogID:    blogID,
		CreatedAt: time.Now().UTC(),
	}
	dup, err := s.likes.Insert(ctx, like)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if dup {
		return nil, apperr.Conflict("you already liked this blog")
	}
	return like, nil
}

// Toggle creates the like when absent and removes it when present,
// returning the resulting state and the blog's like count. Two racing
// toggles from the same user can both see "absent"; the loser's insert
// hits the unique index and surfaces as Conflict rather than being
// swallowed.
func (s *LikeService) Toggle(ctx context.Context, authHeader string, blogID int64) (*dto.LikeStatus, error) {
	identity, _, err := s.gate.authorize(ctx, authHeader, blogID)
	if err != nil {
		return nil, err
	}

	existing, err := s.likes.Find(ctx, identity.UserID, blogID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	liked := false
	if existing != nil {
		if _, err := s.likes.Delete(ctx, identity.UserID, blogID); err != nil {
			return nil, apperr.Internal(err)
		}
	} else {
		like := &model.Like{UserID: identity.UserID, BlogID: blogID, CreatedAt: time.Now().UTC()}
		dup, err := s.likes.Insert(ctx, like)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if dup {
			return nil, apperr.Conflict("you already liked this blog")
		}
		liked = true
	}

	count, err := s.likes.CountByBlog(ctx, blogID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.LikeStatus{Liked: liked, Count: count}, nil
}

// Status reports whether the caller has liked the blog, plus its count.
// No existence check here: an unknown blog reads as not liked, count 0.
func (s *LikeService) Status(ctx context.Context, authHeader string, blogID int64) (*dto.LikeStatus, error) {
	identity, err := s.auth.Resolve(ctx, authHeader)
	if err != nil {
		return nil, err
	}
	if blogID <= 0 {
		return nil, apperr.Invalid("a valid blogId is required")
	}

	existing, err := s.likes.Find(ctx, identity.UserID, blogID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	count, err := s.likes.CountByBlog(ctx, blogID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.LikeStatus{Liked: existing != nil, Count: count}, nil
}

func (s *LikeService) Count(ctx context.Context, blogID int64) (int64, error) {
	if blogID <= 0 {
		return 0, apperr.Invalid("a valid blogId is required")
	}
	count, err := s.likes.CountByBlog(ctx, blogID)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return count, nil
}

func (s *LikeService) ListByBlog(ctx context.Context, blogID int64) ([]model.Like, error) {
	if blogID <= 0 {
		return nil, apperr.Invalid("a valid blogId is required")
	}
	likes, err := s.likes.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return likes, nil
}

// Delete removes a (blog, user) like. Idempotent at the boundary:
// deleting an absent pair answers NotFound, never a server error.
func (s *LikeService) Delete(ctx context.Context, blogID, userID int64) error {
	if blogID <= 0 || userID <= 0 {
		return apperr.Invalid("valid blogId and userId are required")
	}
	deleted, err := s.likes.Delete(ctx, userID, blogID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("like not found for the given blogId/userId")
	}
	return nil
}
