package services

import (
	"context"
	"time"

	"blog-service/dto"
	"blog-service/internal/apperr"
	"blog-service/model"
)

type CommentService struct {
	comments CommentStore
	auth     IdentityResolver
	gate     interactionGate
}

func NewCommentService(comments CommentStore, blogs BlogStore, auth IdentityResolver, followers FollowChecker, authorExempt bool) *CommentService {
	return &CommentService{
		comments: comments,
		auth:     auth,
		gate: interactionGate{
			auth:         auth,
			followers:    followers,
			blogs:        blogs,
			authorExempt: authorExempt,
		},
	}
}

// Create runs the interaction gate and persists the comment with the
// caller's id and username attached.
func (s *CommentService) Create(ctx context.Context, authHeader string, req dto.CreateCommentReq) (*model.Comment, error) {
	identity, _, err := s.gate.authorize(ctx, authHeader, req.BlogID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &model.Comment{
		BlogID:         req.BlogID,
		UserID:         identity.UserID,
		AuthorUsername: identity.Username,
		Content:        req.Content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperr.Internal(err)
	}
	return comment, nil
}

// ListByBlog returns a blog's comments newest first. Public: no
// identity, no existence check, an unknown blog just has no comments.
func (s *CommentService) ListByBlog(ctx context.Context, blogID int64) ([]model.Comment, error) {
	comments, err := s.comments.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return comments, nil
}

func (s *CommentService) Update(ctx context.Context, authHeader string, commentID int64, req dto.UpdateCommentReq) (*model.Comment, error) {
	if _, err := s.ownedComment(ctx, authHeader, commentID); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateContent(ctx, commentID, req.Content)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if updated == nil {
		return nil, apperr.NotFound("comment not found")
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, authHeader string, commentID int64) error {
	if _, err := s.ownedComment(ctx, authHeader, commentID); err != nil {
		return err
	}

	deleted, err := s.comments.Delete(ctx, commentID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("comment not found")
	}
	return nil
}

// ownedComment resolves the caller and loads the comment, failing
// Forbidden unless the caller authored it. Roles grant no override.
func (s *CommentService) ownedComment(ctx context.Context, authHeader string, commentID int64) (*model.Comment, error) {
	identity, err := s.auth.Resolve(ctx, authHeader)
	if err != nil {
		return nil, err
	}
	if commentID <= 0 {
		return nil, apperr.Invalid("a valid commentId is required")
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if comment == nil {
		return nil, apperr.NotFound("comment not found")
	}
	if comment.UserID != identity.UserID {
		return nil, apperr.Forbidden("only the comment's author may modify it")
	}
	return comment, nil
}
