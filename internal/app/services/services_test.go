package services

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/pkg/whatsapp"
)

func testRegistry() *catalog.Registry {
	return catalog.MustNewRegistry([]models.Course{
		{ID: "11-accounts", ClassLevel: 11, Stream: "Commerce", Title: "Class 11 Accounts"},
		{ID: "11-economics", ClassLevel: 11, Stream: "Commerce", Title: "Class 11 Economics"},
		{ID: "11-maths", ClassLevel: 11, Stream: "Maths", Title: "Class 11 Maths", Short: "Calculus basics"},
		{ID: "11-physics", ClassLevel: 11, Stream: "Science", Title: "Class 11 Physics"},
		{ID: "12-accounts", ClassLevel: 12, Stream: "Commerce", Title: "Class 12 Accounts"},
	})
}

func courseIDs(courses []dto.CourseResponse) []string {
	out := []string{}
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func TestCourseServiceListCourses(t *testing.T) {
	svc := NewCourseService(testRegistry(), zerolog.Nop())

	list, err := svc.ListCourses(context.Background(), catalog.Filter{Class: "11", Stream: "Commerce"})
	require.NoError(t, err)

	assert.Equal(t, 2, list.Total)
	assert.Equal(t, []string{"11-accounts", "11-economics"}, courseIDs(list.Courses))
	assert.Equal(t, "/courses?select=11-accounts", list.Courses[0].Href)
	assert.Equal(t, models.DefaultCourseSummary, list.Courses[0].Summary)
	assert.Equal(t, catalog.Filter{Class: "11", Stream: "Commerce"}, list.Filter)
	assert.True(t, list.Pills.Classes[1].Active)
}

func TestCourseServiceListCoursesEmpty(t *testing.T) {
	svc := NewCourseService(testRegistry(), zerolog.Nop())

	list, err := svc.ListCourses(context.Background(), catalog.Filter{Query: "biology"})
	require.NoError(t, err)

	assert.Zero(t, list.Total)
	assert.NotNil(t, list.Courses)
	assert.Empty(t, list.Courses)
}

func TestCourseServiceListCoursesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCourseService(testRegistry(), zerolog.Nop()).ListCourses(ctx, catalog.Filter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCourseServiceGetCourse(t *testing.T) {
	svc := NewCourseService(testRegistry(), zerolog.Nop())

	c, err := svc.GetCourse(context.Background(), "11-maths")
	require.NoError(t, err)
	assert.Equal(t, "Calculus basics", c.Summary)

	_, err = svc.GetCourse(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.EqualError(t, err, `course "missing" not found`)
}

func TestCourseServiceNavGroups(t *testing.T) {
	svc := NewCourseService(testRegistry(), zerolog.Nop())

	groups := svc.NavGroups(context.Background(), DefaultNavLimit)
	require.Len(t, groups, 2)

	assert.Equal(t, "Class 11", groups[0].Label)
	assert.Equal(t, []string{"11-accounts", "11-economics", "11-maths"}, courseIDs(groups[0].Courses))
	assert.Equal(t, "/courses?select=11-economics", groups[0].Courses[1].Href)
	assert.Equal(t, []string{"12-accounts"}, courseIDs(groups[1].Courses))

	all := svc.NavGroups(context.Background(), 0)
	assert.Len(t, all[0].Courses, 4)
}

func TestCourseServicePills(t *testing.T) {
	svc := NewCourseService(testRegistry(), zerolog.Nop())

	rows := svc.Pills(context.Background(), url.Values{"stream": {"Maths"}})
	require.Len(t, rows.Streams, 4)
	assert.True(t, rows.Streams[2].Active)
	assert.Equal(t, "Maths", rows.Streams[2].Label)
}

func TestResultsServiceListToppers(t *testing.T) {
	svc := NewResultsService([]models.Topper{
		{Name: "A", Class: "Class 10", Score: "97%", Year: 2024},
		{Name: "B", Class: "Class 12", Stream: "Commerce", Score: "95%", Year: 2025},
		{Name: "C", Class: "Class 9", Score: "94%", Year: 2025},
	})

	all, err := svc.ListToppers(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all.Toppers, 3)
	assert.Equal(t, []int{2025, 2024}, all.Years)
	assert.Equal(t, models.DefaultTopperStream, all.Toppers[0].Stream)
	assert.Equal(t, "Commerce", all.Toppers[1].Stream)

	year := 2025
	filtered, err := svc.ListToppers(context.Background(), &year)
	require.NoError(t, err)
	assert.Len(t, filtered.Toppers, 2)
	assert.Equal(t, []int{2025, 2024}, filtered.Years)

	none := 2001
	empty, err := svc.ListToppers(context.Background(), &none)
	require.NoError(t, err)
	assert.NotNil(t, empty.Toppers)
	assert.Empty(t, empty.Toppers)

	bad := -1
	_, err = svc.ListToppers(context.Background(), &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "year must be positive", apperrors.DetailsOf(err)["year"])
}

func testPosts() []models.Post {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	return []models.Post{
		{Slug: "older", Title: "Older", Date: day(2024, time.October, 5), Tags: []string{"Study Tips"}, Content: "Plan."},
		{Slug: "newest", Title: "Newest", Date: day(2025, time.January, 10), Tags: []string{"Board Exams", "Study Tips"}, Content: "## Plan\n- Revise"},
		{Slug: "same-day", Title: "Same Day", Date: day(2025, time.January, 10), Content: "Note."},
	}
}

func TestBlogServiceListPosts(t *testing.T) {
	svc := NewBlogService(testPosts())

	all := svc.ListPosts(context.Background(), "")
	require.Equal(t, 3, all.Total)
	assert.Equal(t, "newest", all.Posts[0].Slug)
	assert.Equal(t, "same-day", all.Posts[1].Slug)
	assert.Equal(t, "older", all.Posts[2].Slug)
	assert.Equal(t, []string{"Board Exams", "Study Tips"}, all.Tags)
	assert.Equal(t, "/blog/newest", all.Posts[0].Href)
	assert.Equal(t, "10 Jan 2025", all.Posts[0].DateLabel)
	assert.NotNil(t, all.Posts[1].Tags)

	tagged := svc.ListPosts(context.Background(), "study tips")
	assert.Equal(t, 2, tagged.Total)
	assert.Equal(t, "study tips", tagged.Tag)

	none := svc.ListPosts(context.Background(), "Sports")
	assert.Zero(t, none.Total)
	assert.NotNil(t, none.Posts)
}

func TestBlogServiceGetPost(t *testing.T) {
	svc := NewBlogService(testPosts())

	post, err := svc.GetPost(context.Background(), "newest")
	require.NoError(t, err)
	assert.Equal(t, "Newest", post.Title)
	assert.Equal(t, []catalog.Block{
		{Kind: catalog.BlockHeading, Text: "Plan"},
		{Kind: catalog.BlockBullets, Items: []string{"Revise"}},
	}, post.Blocks)

	_, err = svc.GetPost(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.EqualError(t, err, `post "missing" not found`)
}

func TestInstituteService(t *testing.T) {
	inst := models.Institute{Name: "Test Institute", WhatsApp: "91"}

	resp := NewInstituteService(inst, nil).GetInstitute(context.Background())
	assert.Equal(t, inst, resp.Institute)
	assert.NotNil(t, resp.EnquiryOptions)
}

func newEnquiryService() EnquiryService {
	links := whatsapp.NewLinkService(whatsapp.Config{Number: "919289071052", InstituteName: "Test Institute"}, zerolog.Nop())
	return NewEnquiryService(testRegistry(), links, zerolog.Nop())
}

func TestEnquiryServiceSubmit(t *testing.T) {
	resp, err := newEnquiryService().Submit(context.Background(), dto.EnquiryRequest{
		Name:          "  Riya Sharma ",
		Phone:         "+91-9876543210",
		ClassInterest: "Class 11 Commerce",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/919289071052?text="))
	assert.Contains(t, resp.Message, "*Name:* Riya Sharma\n")
	assert.Contains(t, resp.Message, "*Email:* Not provided\n")
	assert.Contains(t, resp.Message, "*Class Interested In:* Class 11 Commerce\n")
}

func TestEnquiryServiceCourseFallback(t *testing.T) {
	resp, err := newEnquiryService().Submit(context.Background(), dto.EnquiryRequest{
		Name:     "Riya",
		Phone:    "9876543210",
		CourseID: "11-maths",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "*Class Interested In:* Class 11 Maths\n")
}

func TestEnquiryServiceValidation(t *testing.T) {
	tests := []struct {
		name   string
		req    dto.EnquiryRequest
		fields []string
	}{
		{
			name:   "missing everything",
			req:    dto.EnquiryRequest{},
			fields: []string{"name", "phone", "classInterest"},
		},
		{
			name:   "bad phone and email",
			req:    dto.EnquiryRequest{Name: "Riya", Phone: "12", Email: "riya@", ClassInterest: "Class 9"},
			fields: []string{"phone", "email"},
		},
		{
			name:   "blank name after trimming",
			req:    dto.EnquiryRequest{Name: "   ", Phone: "9876543210", ClassInterest: "Class 9"},
			fields: []string{"name"},
		},
		{
			name:   "unknown course",
			req:    dto.EnquiryRequest{Name: "Riya", Phone: "9876543210", CourseID: "nope"},
			fields: []string{"courseId"},
		},
		{
			name:   "message too long",
			req:    dto.EnquiryRequest{Name: "Riya", Phone: "9876543210", ClassInterest: "Class 9", Message: strings.Repeat("x", 1001)},
			fields: []string{"message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newEnquiryService().Submit(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

			details := apperrors.DetailsOf(err)
			require.NotNil(t, details)
			assert.Len(t, details, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, details, f)
			}
		})
	}
}
