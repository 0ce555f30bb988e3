package services

import (
	"context"

	"blog-service/internal/apperr"
	"blog-service/model"
)

// interactionGate runs the checks that precede commenting on or liking a
// blog. The order matters: the blog existence check runs before the
// follow check so a missing blog answers 404 instead of a misleading 403.
type interactionGate struct {
	auth      IdentityResolver
	followers FollowChecker
	blogs     BlogStore

	// authorExempt skips the follow check when the caller is the blog's
	// own author.
	authorExempt bool
}

func (g interactionGate) authorize(ctx context.Context, authHeader string, blogID int64) (*model.Identity, *model.Blog, error) {
	identity, err := g.auth.Resolve(ctx, authHeader)
	if err != nil {
		return nil, nil, err
	}

	if blogID <= 0 {
		return nil, nil, apperr.Invalid("a valid blogId is required")
	}

	blog, err := g.blogs.GetByID(ctx, blogID)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	if blog == nil {
		return nil, nil, apperr.NotFound("blog not found")
	}

	if identity.UserID != blog.UserID || !g.authorExempt {
		follows, err := g.followers.IsFollowedByMe(ctx, authHeader, blog.UserID)
		if err != nil {
			return nil, nil, err
		}
		if !follows {
			return nil, nil, apperr.Forbidden("you must follow the author to interact with this blog")
		}
	}

	return identity, blog, nil
}
