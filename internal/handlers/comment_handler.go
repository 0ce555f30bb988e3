package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blog-service/dto"
	"blog-service/internal/apperr"
	"blog-service/services"
)

type CommentHandler struct {
	Comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{Comments: comments}
}

// Create godoc
// @Summary  Comment on a blog
// @Tags     comments
// @Accept   json
// @Produce  json
// @Param    comment  body  dto.CreateCommentReq  true  "comment"
// @Success  201  {object}  dto.Envelope
// @Router   /api/blogs/comment [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return apperr.Invalid("invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return apperr.Invalid("blogId and content are required")
	}

	comment, err := h.Comments.Create(c.Context(), c.Get(fiber.HeaderAuthorization), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(comment))
}

func (h *CommentHandler) ListByBlog(c *fiber.Ctx) error {
	blogID, err := parseID(c.Params("blogId"))
	if err != nil {
		return apperr.Invalid("a valid blogId is required")
	}

	comments, err := h.Comments.ListByBlog(c.Context(), blogID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(comments))
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	commentID, err := parseID(c.Params("commentId"))
	if err != nil {
		return apperr.Invalid("a valid commentId is required")
	}

	var body dto.UpdateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return apperr.Invalid("invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return apperr.Invalid("content is required")
	}

	comment, err := h.Comments.Update(c.Context(), c.Get(fiber.HeaderAuthorization), commentID, body)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(comment))
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	commentID, err := parseID(c.Params("commentId"))
	if err != nil {
		return apperr.Invalid("a valid commentId is required")
	}

	if err := h.Comments.Delete(c.Context(), c.Get(fiber.HeaderAuthorization), commentID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
