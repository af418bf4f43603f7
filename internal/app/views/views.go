// Package views renders the server-side HTML pages with templ components.
// The *_templ.go files are generated from the .templ sources by `templ generate`.
package views

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/catalog"
)

// Page paths owned by the views.
const (
	EnquiryPath = "/enquiry"
	ResultsPath = "/results"
	BlogPath    = "/blog"
)

// Chrome is the per-site data shared by every page.
type Chrome struct {
	Institute models.Institute
	Nav       []dto.NavGroup
	Query     string
}

// CoursesPageData is everything the catalog page shows.
type CoursesPageData struct {
	Chrome  Chrome
	Pills   catalog.PillRows
	Courses []dto.CourseResponse
}

// EnquiryPageData is the enquiry form with its previous input and errors.
// CourseTitle names the preselected course when it exists in the catalog.
type EnquiryPageData struct {
	Chrome      Chrome
	Options     []models.EnquiryOptionGroup
	Values      dto.EnquiryRequest
	CourseTitle string
	Errors      map[string]interface{}
}

// ErrorPageData describes a failed page request.
type ErrorPageData struct {
	Chrome  Chrome
	Status  int
	Title   string
	Message string
}

func enquiryHref(courseID string) string {
	return EnquiryPath + "?" + url.Values{"course": {courseID}}.Encode()
}

func yearHref(year int) string {
	return ResultsPath + "?year=" + strconv.Itoa(year)
}

func tagHref(tag string) string {
	return BlogPath + "?" + url.Values{"tag": {tag}}.Encode()
}

func isYear(selected *int, year int) bool {
	return selected != nil && *selected == year
}

// fieldError returns the message recorded for field, or "".
func fieldError(errs map[string]interface{}, field string) string {
	msg, ok := errs[field]
	if !ok || msg == nil {
		return ""
	}
	return fmt.Sprint(msg)
}

// postMeta joins the date, author and reading time of a post.
func postMeta(p dto.PostSummary) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.DateLabel, p.Author} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if p.ReadTime != "" {
		parts = append(parts, p.ReadTime+" read")
	}
	return strings.Join(parts, " · ")
}
