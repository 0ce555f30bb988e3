package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blog-service/dto"
	"blog-service/internal/apperr"
	"blog-service/services"
)

type LikeHandler struct {
	Likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{Likes: likes}
}

// Create godoc
// @Summary  Like a blog
// @Tags     likes
// @Produce  json
// @Param    blogId  path  int  true  "blog id"
// @Success  201  {object}  dto.Envelope
// @Router   /api/blogs/{blogId}/likes [post]
func (h *LikeHandler) Create(c *fiber.Ctx) error {
	blogID, err := parseID(c.Params("blogId"))
	if err != nil {
		return apperr.Invalid("a valid blogId is required")
	}

	like, err := h.Likes.Create(c.Context(), c.Get(fiber.HeaderAuthorization), blogID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("you liked this blog", like))
}

// Toggle godoc
// @Summary  Toggle a like
// @Tags     likes
// @Produce  json
// @Param    blogId  path  int  true  "blog id"
// @Success  200  {object}  dto.Envelope
// @Router   /api/blogs/{blogId}/likes/toggle [post]
func (h *LikeHandler) Toggle(c *fiber.Ctx) error {
	blogID, err := parseID(c.Params("blogId"))
	if err != nil {
		return apperr.Invalid("a valid blogId is required")
	}

	status, err := h.Likes.Toggle(c.Context(), c.Get(fiber.HeaderAuthorization), blogID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(status))
}

func (h *LikeHandler) Status(c *fiber.Ctx) error {
	blogID, err := parseID(c.Params("blogId"))
	if err != nil {
		return apperr.Invalid("a valid blogId is required")
	}

	status, err := h.Likes.Status(c.Context(), c.Get(fiber.HeaderAuthorization), blogID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(status))
}

func (h *LikeHandler) Count(c *fiber.Ctx) error {
	blogID, err := parseID(c.Params("blogId"))
	if err != nil {
		return apperr.Invalid("a valid blogId is required")
	}

	count, err := h.Likes.Count(c.Context(), blogID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.LikeCount{Count: count}))
}

func (h *LikeHandler) ListByBlog(c *fiber.Ctx) error {
	blogID, err := parseID(c.Params("blogId"))
	if err != nil {
		return apperr.Invalid("a valid blogId is required")
	}

	likes, err := h.Likes.ListByBlog(c.Context(), blogID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(likes))
}

func (h *LikeHandler) Delete(c *fiber.Ctx) error {
	blogID, err := parseID(c.Params("blogId"))
	if err != nil {
		return apperr.Invalid("a valid blogId is required")
	}
	userID, err := parseID(c.Params("userId"))
	if err != nil {
		return apperr.Invalid("a valid userId is required")
	}

	if err := h.Likes.Delete(c.Context(), blogID, userID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
