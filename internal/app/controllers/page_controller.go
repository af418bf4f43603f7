package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/app/views"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/middleware"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
)

var errInvalidBody = apperrors.NewBadRequestError("request body could not be read")

// PageController serves the HTML pages
type PageController struct {
	courseService    services.CourseService
	resultsService   services.ResultsService
	instituteService services.InstituteService
	enquiryService   services.EnquiryService
	blogService      services.BlogService
	navLimit         int
}

// NewPageController creates a new PageController
func NewPageController(
	courseService services.CourseService,
	resultsService services.ResultsService,
	instituteService services.InstituteService,
	enquiryService services.EnquiryService,
	blogService services.BlogService,
	navLimit int,
) *PageController {
	return &PageController{
		courseService:    courseService,
		resultsService:   resultsService,
		instituteService: instituteService,
		enquiryService:   enquiryService,
		blogService:      blogService,
		navLimit:         navLimit,
	}
}

func (c *PageController) chrome(ctx *gin.Context) views.Chrome {
	return views.Chrome{
		Institute: c.instituteService.GetInstitute(ctx.Request.Context()).Institute,
		Nav:       c.courseService.NavGroups(ctx.Request.Context(), c.navLimit),
		Query:     ctx.Query(catalog.ParamQuery),
	}
}

// Courses renders the catalog page for the current URL parameters.
func (c *PageController) Courses(ctx *gin.Context) {
	current := ctx.Request.URL.Query()

	list, err := c.courseService.ListCourses(ctx.Request.Context(), catalog.ParseFilter(current))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	render(ctx, http.StatusOK, views.CoursesPage(views.CoursesPageData{
		Chrome:  c.chrome(ctx),
		Pills:   c.courseService.Pills(ctx.Request.Context(), current),
		Courses: list.Courses,
	}))
}

// Search redirects the navbar search box to the catalog page.
func (c *PageController) Search(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, catalog.SearchLocation(ctx.Query(catalog.ParamQuery)))
}

// Results renders the toppers page.
func (c *PageController) Results(ctx *gin.Context) {
	year, err := parseYear(ctx)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	results, err := c.resultsService.ListToppers(ctx.Request.Context(), year)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	render(ctx, http.StatusOK, views.ResultsPage(c.chrome(ctx), results))
}

// Blog renders the article listing, filtered by ?tag= when given.
func (c *PageController) Blog(ctx *gin.Context) {
	list := c.blogService.ListPosts(ctx.Request.Context(), ctx.Query("tag"))
	render(ctx, http.StatusOK, views.BlogPage(c.chrome(ctx), list))
}

// BlogPost renders a single article.
func (c *PageController) BlogPost(ctx *gin.Context) {
	post, err := c.blogService.GetPost(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	render(ctx, http.StatusOK, views.PostPage(c.chrome(ctx), post))
}

// EnquiryForm renders the empty enquiry form, preselecting ?course= when given.
func (c *PageController) EnquiryForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, c.enquiryPage(ctx, dto.EnquiryRequest{CourseID: ctx.Query("course")}, nil))
}

// SubmitEnquiry redirects a valid enquiry form to WhatsApp and re-renders an invalid one.
func (c *PageController) SubmitEnquiry(ctx *gin.Context) {
	var req dto.EnquiryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		render(ctx, http.StatusBadRequest, c.enquiryPage(ctx, req, map[string]interface{}{"form": err.Error()}))
		return
	}

	resp, err := c.enquiryService.Submit(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			render(ctx, http.StatusBadRequest, c.enquiryPage(ctx, req, apperrors.DetailsOf(err)))
			return
		}
		c.renderError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, resp.WhatsAppURL)
}

func (c *PageController) enquiryPage(ctx *gin.Context, req dto.EnquiryRequest, errs map[string]interface{}) templ.Component {
	data := views.EnquiryPageData{
		Chrome:  c.chrome(ctx),
		Options: c.instituteService.GetInstitute(ctx.Request.Context()).EnquiryOptions,
		Values:  req,
		Errors:  errs,
	}
	if req.CourseID != "" {
		if course, err := c.courseService.GetCourse(ctx.Request.Context(), req.CourseID); err == nil {
			data.CourseTitle = course.Title
		}
	}
	return views.EnquiryPage(data)
}

// renderError answers a failed page request with the error page. Unexpected
// errors are logged and never shown to the visitor.
func (c *PageController) renderError(ctx *gin.Context, err error) {
	data := views.ErrorPageData{Chrome: c.chrome(ctx)}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		data.Status = http.StatusNotFound
		data.Title = "Page Not Found"
		data.Message = "The page you are looking for does not exist or has moved."
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		data.Status = http.StatusBadRequest
		data.Title = "Invalid Request"
		data.Message = validationMessage(err)
	default:
		logger.Error().
			Err(err).
			Str("requestId", middleware.RequestID(ctx)).
			Str("path", ctx.Request.URL.Path).
			Msg("Failed to render page")
		data.Status = http.StatusInternalServerError
		data.Title = "Something Went Wrong"
		data.Message = "Please try again later."
	}

	render(ctx, data.Status, views.ErrorPage(data))
}

// validationMessage picks the first field message of err, falling back to its text.
func validationMessage(err error) string {
	details := apperrors.DetailsOf(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msg, ok := details[k].(string); ok {
			return msg
		}
	}
	return err.Error()
}

func render(ctx *gin.Context, status int, component templ.Component) {
	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Status(status)
	if err := component.Render(ctx.Request.Context(), ctx.Writer); err != nil {
		_ = ctx.Error(err)
	}
}
