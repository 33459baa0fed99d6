package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/pkg/utils"
	"github.com/tourism-backend/internal/usecase"
)

// BlogHandler - обработчик статей блога
type BlogHandler struct {
	blogUC *usecase.BlogUseCase
	logger *zap.Logger
}

// NewBlogHandler - создание нового BlogHandler
func NewBlogHandler(blogUC *usecase.BlogUseCase, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{
		blogUC: blogUC,
		logger: logger,
	}
}

// GetCityBlogs godoc
// @Summary Статьи блога города
// @Description Возвращает опубликованные статьи блога для указанного города
// @Tags Blog
// @Produce json
// @Param city_name path string true "Название города"
// @Success 200 {object} utils.SuccessResponse{data=dto.BlogListResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/blog/{city_name} [get]
func (h *BlogHandler) GetCityBlogs(c *fiber.Ctx) error {
	cityName := c.Params("city_name")

	result, err := h.blogUC.GetCityBlogs(c.Context(), cityName)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetBlog godoc
// @Summary Статья блога по ID
// @Tags Blog
// @Produce json
// @Param blog_id path int true "Идентификатор статьи"
// @Success 200 {object} utils.SuccessResponse{data=domain.Blog}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/blog/detail/{blog_id} [get]
func (h *BlogHandler) GetBlog(c *fiber.Ctx) error {
	blogID, err := c.ParamsInt("blog_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid blog id"})
	}

	blog, err := h.blogUC.GetBlog(c.Context(), int64(blogID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, blog, nil)
}
