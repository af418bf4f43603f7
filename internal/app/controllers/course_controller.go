package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/middleware"
)

// CourseController handles catalog queries
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses filters the catalog
// @Summary List courses
// @Description Returns the courses matching the optional filters. When select is given, every other filter is ignored.
// @Tags courses
// @Produce json
// @Param q query string false "Case-insensitive substring of the course title"
// @Param select query string false "Course id to show on its own"
// @Param class query string false "Class level, e.g. 11"
// @Param stream query string false "Stream, e.g. Commerce"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Matching courses, possibly none"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	filter := catalog.ParseFilter(ctx.Request.URL.Query())

	list, err := c.courseService.ListCourses(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(list))
}

// GetCourse retrieves one course
// @Summary Get course by ID
// @Description Retrieves a single course by its id
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" example(11-accounts)
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// GetNavGroups lists the courses dropdown
// @Summary Navbar course groups
// @Description One group per class level holding its first courses
// @Tags courses
// @Produce json
// @Param limit query int false "Courses per group, 0 for all" default(3)
// @Success 200 {object} dto.APIResponse{data=[]dto.NavGroup} "Navbar groups"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Router /courses/nav [get]
func (c *CourseController) GetNavGroups(ctx *gin.Context) {
	limit := services.DefaultNavLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit")
			errorDetail = errorDetail.WithField("limit").WithDetails("limit must be a non-negative integer")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = n
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.courseService.NavGroups(ctx.Request.Context(), limit)))
}
