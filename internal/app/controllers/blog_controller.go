package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/middleware"
)

// BlogController handles the institute blog
type BlogController struct {
	blogService services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService services.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

// ListPosts lists blog posts
// @Summary List blog posts
// @Description Returns the blog posts newest first, optionally only those carrying a tag
// @Tags blog
// @Produce json
// @Param tag query string false "Case-insensitive tag" example(Study Tips)
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse} "Posts, possibly none"
// @Router /posts [get]
func (c *BlogController) ListPosts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.blogService.ListPosts(ctx.Request.Context(), ctx.Query("tag"))))
}

// GetPost retrieves one post
// @Summary Get blog post by slug
// @Description Retrieves a post with its content split into blocks
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug" example(board-exam-study-plan)
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{slug} [get]
func (c *BlogController) GetPost(ctx *gin.Context) {
	post, err := c.blogService.GetPost(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}
