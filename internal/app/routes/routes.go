package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursecatalog/internal/app/controllers"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/views"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/middleware"
)

// Controllers groups every controller the router dispatches to
type Controllers struct {
	Course    *controllers.CourseController
	Results   *controllers.ResultsController
	Institute *controllers.InstituteController
	Enquiry   *controllers.EnquiryController
	Blog      *controllers.BlogController
	Page      *controllers.PageController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.ListCourses)
		// Registered before /:id; gin prefers the static segment
		courses.GET("/nav", c.Course.GetNavGroups)
		courses.GET("/:id", c.Course.GetCourse)
	}

	v1.GET("/results", c.Results.ListToppers)

	posts := v1.Group("/posts")
	{
		posts.GET("", c.Blog.ListPosts)
		posts.GET("/:slug", c.Blog.GetPost)
	}

	v1.GET("/institute", c.Institute.GetInstitute)
	v1.POST("/enquiries", middleware.ValidateRequest(&dto.EnquiryRequest{}), c.Enquiry.CreateEnquiry)
	v1.GET("/health", c.Institute.Health)

	// --- HTML pages ---
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, catalog.CoursesPath)
	})
	router.GET(catalog.CoursesPath, c.Page.Courses)
	router.GET("/search", c.Page.Search)
	router.GET(views.ResultsPath, c.Page.Results)
	router.GET(views.BlogPath, c.Page.Blog)
	router.GET(views.BlogPath+"/:slug", c.Page.BlogPost)
	router.GET(views.EnquiryPath, c.Page.EnquiryForm)
	router.POST(views.EnquiryPath, c.Page.SubmitEnquiry)
}
