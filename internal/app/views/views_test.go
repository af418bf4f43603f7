package views

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/catalog"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func testChrome() Chrome {
	return Chrome{
		Institute: models.Institute{Name: "Test & Sons Institute", Phones: []string{"+91-1"}, Email: "a@b.c"},
		Nav: []dto.NavGroup{{
			Class: 11, Label: "Class 11",
			Courses: []dto.CourseResponse{{ID: "11-accounts", Title: "Class 11 Accounts", Href: "/courses?select=11-accounts"}},
		}},
	}
}

func TestCoursesPage(t *testing.T) {
	out := renderString(t, CoursesPage(CoursesPageData{
		Chrome: testChrome(),
		Pills: catalog.PillRows{
			Classes: []catalog.Pill{{Label: "All Classes", Href: "/courses", Active: true}},
		},
		Courses: []dto.CourseResponse{{
			ID: "11-accounts", Class: 11, Stream: "Commerce", Title: "Class 11 Accounts",
			Summary: "Journal entries", Href: "/courses?select=11-accounts",
		}},
	}))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Courses | Test &amp; Sons Institute</title>")
	assert.Contains(t, out, `<a href="/courses" class="pill active">All Classes</a>`)
	assert.Contains(t, out, `<h3>Class 11 Accounts</h3>`)
	assert.Contains(t, out, `href="/enquiry?course=11-accounts"`)
	assert.Contains(t, out, `href="mailto:a@b.c"`)
	assert.NotContains(t, out, "No courses found")
}

func TestCoursesPageEmptyState(t *testing.T) {
	out := renderString(t, CoursesPage(CoursesPageData{Chrome: testChrome()}))

	assert.Contains(t, out, "No courses found")
	assert.Contains(t, out, "View all courses")
}

func TestUnsafeHrefIsSanitized(t *testing.T) {
	out := renderString(t, CoursesPage(CoursesPageData{
		Chrome: testChrome(),
		Courses: []dto.CourseResponse{{
			ID: "x", Class: 9, Stream: "Science", Title: "Bad Link", Href: "javascript:alert(1)",
		}},
	}))

	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, string(templ.FailedSanitizationURL))
}

func TestEnquiryPageErrors(t *testing.T) {
	out := renderString(t, EnquiryPage(EnquiryPageData{
		Chrome:  testChrome(),
		Options: []models.EnquiryOptionGroup{{Label: "Class 11-12", Options: []string{"Class 11 Commerce"}}},
		Values:  dto.EnquiryRequest{Name: `"Riya"`, ClassInterest: "Class 11 Commerce"},
		Errors:  map[string]interface{}{"phone": "phone must be a valid phone number"},
	}))

	assert.Contains(t, out, `value="&#34;Riya&#34;"`)
	assert.Contains(t, out, `<option value="Class 11 Commerce" selected>`)
	assert.Contains(t, out, `<small class="field-error">phone must be a valid phone number</small>`)
	assert.Contains(t, out, `role="alert"`)
	assert.NotContains(t, out, `name="course"`)
}

func TestEnquiryPageCourseError(t *testing.T) {
	out := renderString(t, EnquiryPage(EnquiryPageData{
		Chrome: testChrome(),
		Values: dto.EnquiryRequest{CourseID: "nope"},
		Errors: map[string]interface{}{"courseId": "courseId must name a course in the catalog"},
	}))

	assert.Contains(t, out, `<input type="hidden" name="course" value="nope">`)
	assert.Contains(t, out, `<small class="field-error">courseId must name a course in the catalog</small>`)
	assert.NotContains(t, out, "Enquiring about")
}

func TestEnquiryPageSelectedCourse(t *testing.T) {
	out := renderString(t, EnquiryPage(EnquiryPageData{
		Chrome:      testChrome(),
		Values:      dto.EnquiryRequest{CourseID: "11-accounts"},
		CourseTitle: "Class 11 Accounts",
	}))

	assert.Contains(t, out, "Enquiring about <strong>Class 11 Accounts</strong>")
	assert.NotContains(t, out, "field-error")
	assert.NotContains(t, out, `role="alert"`)
}

func TestResultsPage(t *testing.T) {
	year := 2025
	out := renderString(t, ResultsPage(testChrome(), &dto.ResultsResponse{
		Year:    &year,
		Years:   []int{2025, 2024},
		Toppers: []dto.TopperResponse{{Name: "Anuj Rathore", Class: "Class 10", Stream: "All Subjects", Score: "97%"}},
	}))

	assert.Contains(t, out, `<a href="/results?year=2025" class="pill active">2025</a>`)
	assert.Contains(t, out, `<a href="/results" class="pill">All Years</a>`)
	assert.Contains(t, out, "Anuj Rathore")
	assert.NotContains(t, out, "No results published yet.")
}

func TestBlogPage(t *testing.T) {
	out := renderString(t, BlogPage(testChrome(), &dto.PostListResponse{
		Tag:  "study tips",
		Tags: []string{"Board Exams", "Study Tips"},
		Posts: []dto.PostSummary{{
			Slug: "board-exam-study-plan", Title: "Board Exam Plan", DateLabel: "10 Jan 2025",
			Author: "Faculty", ReadTime: "6 min", Excerpt: "Three months.", Href: "/blog/board-exam-study-plan",
		}},
	}))

	assert.Contains(t, out, "<title>Blog | Test &amp; Sons Institute</title>")
	assert.Contains(t, out, `<a href="/blog?tag=Study+Tips" class="pill active">Study Tips</a>`)
	assert.Contains(t, out, `<a href="/blog" class="pill">All Posts</a>`)
	assert.Contains(t, out, `<a href="/blog/board-exam-study-plan">Board Exam Plan</a>`)
	assert.Contains(t, out, "10 Jan 2025 · Faculty · 6 min read")
	assert.NotContains(t, out, "No articles found.")
}

func TestPostPage(t *testing.T) {
	out := renderString(t, PostPage(testChrome(), &dto.PostResponse{
		PostSummary: dto.PostSummary{Title: "Board Exam Plan", DateLabel: "10 Jan 2025", Tags: []string{"Study Tips"}},
		Blocks: []catalog.Block{
			{Kind: catalog.BlockHeading, Text: "Weekly plan"},
			{Kind: catalog.BlockNumbered, Items: []string{"Read", "Plan"}},
			{Kind: catalog.BlockQuote, Text: "Keep going."},
			{Kind: catalog.BlockParagraph, Text: "<b>plain</b>"},
		},
	}))

	assert.Contains(t, out, "<title>Board Exam Plan | Test &amp; Sons Institute</title>")
	assert.Contains(t, out, "<h2>Weekly plan</h2>")
	assert.Contains(t, out, "<ol><li>Read</li><li>Plan</li></ol>")
	assert.Contains(t, out, "<blockquote>Keep going.</blockquote>")
	assert.Contains(t, out, "<p>&lt;b&gt;plain&lt;/b&gt;</p>")
	assert.Contains(t, out, `<li><a href="/blog?tag=Study+Tips">Study Tips</a></li>`)
}

func TestErrorPage(t *testing.T) {
	out := renderString(t, ErrorPage(ErrorPageData{
		Chrome:  testChrome(),
		Status:  404,
		Title:   "Article Not Found",
		Message: `post "x" not found`,
	}))

	assert.Contains(t, out, `<p class="status">404</p>`)
	assert.Contains(t, out, "<h1>Article Not Found</h1>")
	assert.Contains(t, out, "post &#34;x&#34; not found")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderReportsWriteErrors(t *testing.T) {
	err := CoursesPage(CoursesPageData{Chrome: testChrome()}).Render(context.Background(), failingWriter{})
	assert.EqualError(t, err, "closed")
}
