package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"blog-service/dto"
	"blog-service/internal/apperr"
	"blog-service/services"
)

var validate = validator.New()

type BlogHandler struct {
	Blogs *services.BlogService
}

func NewBlogHandler(blogs *services.BlogService) *BlogHandler {
	return &BlogHandler{Blogs: blogs}
}

// Create godoc
// @Summary  Publish a blog
// @Tags     blogs
// @Accept   json
// @Produce  json
// @Param    blog  body  dto.CreateBlogReq  true  "blog"
// @Success  201  {object}  dto.Envelope
// @Router   /api/blogs [post]
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateBlogReq
	if err := c.BodyParser(&body); err != nil {
		return apperr.Invalid("invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return apperr.Invalid("title and content are required")
	}

	blog, err := h.Blogs.Create(c.Context(), c.Get(fiber.HeaderAuthorization), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(blog))
}

// Feed godoc
// @Summary  Follow-scoped blog feed
// @Tags     blogs
// @Produce  json
// @Param    page   query  int  false  "1-based page"
// @Param    limit  query  int  false  "page size"
// @Success  200  {object}  dto.Envelope
// @Router   /api/blogs [get]
func (h *BlogHandler) Feed(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", services.DefaultFeedLimit))

	blogs, err := h.Blogs.Feed(c.Context(), c.Get(fiber.HeaderAuthorization), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(blogs))
}

func (h *BlogHandler) ListAll(c *fiber.Ctx) error {
	blogs, err := h.Blogs.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(blogs))
}

// GetByID godoc
// @Summary  Fetch one blog
// @Tags     blogs
// @Produce  json
// @Param    id  path  int  true  "blog id"
// @Success  200  {object}  dto.Envelope
// @Router   /api/blogs/{id} [get]
func (h *BlogHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return apperr.Invalid("a valid blog id is required")
	}

	blog, err := h.Blogs.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(blog))
}

// parseID accepts positive integer path ids only; everything else is
// rejected before any store access.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalid("a valid id is required")
	}
	return id, nil
}
