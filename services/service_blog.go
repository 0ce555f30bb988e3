package services

import (
	"context"
	"time"

	"blog-service/dto"
	"blog-service/internal/apperr"
	"blog-service/model"
)

const (
	DefaultFeedLimit = 10
	MaxFeedLimit     = 100
)

type BlogService struct {
	blogs     BlogStore
	auth      IdentityResolver
	followers FollowChecker
}

func NewBlogService(blogs BlogStore, auth IdentityResolver, followers FollowChecker) *BlogService {
	return &BlogService{blogs: blogs, auth: auth, followers: followers}
}

// Create persists a new blog for the resolved caller. Only tourists and
// guides may publish.
func (s *BlogService) Create(ctx context.Context, authHeader string, req dto.CreateBlogReq) (*model.Blog, error) {
	identity, err := s.auth.Resolve(ctx, authHeader)
	if err != nil {
		return nil, err
	}
	if !identity.CanPublish() {
		return nil, apperr.Forbidden("your role may not publish blogs")
	}

	blog := &model.Blog{
		UserID:    identity.UserID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, apperr.Internal(err)
	}
	return blog, nil
}

func (s *BlogService) GetByID(ctx context.Context, id int64) (*model.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if blog == nil {
		return nil, apperr.NotFound("blog not found")
	}
	return blog, nil
}

func (s *BlogService) ListAll(ctx context.Context) ([]model.Blog, error) {
	blogs, err := s.blogs.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return blogs, nil
}

// Feed returns the caller's follow-scoped blog page: blogs written by
// anyone they follow, plus their own, newest first.
func (s *BlogService) Feed(ctx context.Context, authHeader string, page, limit int64) ([]model.Blog, error) {
	identity, err := s.auth.Resolve(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	followed, err := s.followers.FollowedByMe(ctx, authHeader)
	if err != nil {
		return nil, err
	}
	authorIDs := append(followed, identity.UserID)

	page, limit = NormalizePage(page, limit)
	blogs, err := s.blogs.ListByAuthors(ctx, authorIDs, (page-1)*limit, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return blogs, nil
}

// NormalizePage clamps pagination input: pages are 1-based and anything
// unusable falls back to page 1 with the default limit.
func NormalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}
	return page, limit
}
