package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/config"
	"github.com/yigit/coursecatalog/internal/seed"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Server.Mode = config.ModeTest

	cat, err := seed.Catalog(models.BrandDeepjyoti)
	require.NoError(t, err)

	router, err := SetupRouter(cfg, BuildDependencies(cfg, cat, zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)
	return router
}

func do(t *testing.T, router http.Handler, method, target string, body string, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

type courseList struct {
	Total   int `json:"total"`
	Courses []struct {
		ID   string `json:"id"`
		Href string `json:"href"`
	} `json:"courses"`
}

func TestAPIListCourses(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"class and stream", "class=12&stream=Maths", []string{"12-maths"}},
		{"search", "q=ACCOUNTS", []string{"11-accounts", "12-accounts"}},
		{"select wins", "select=11-physics&class=12", []string{"11-physics"}},
		{"no match", "stream=Arts", []string{}},
		{"unknown select", "select=missing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodGet, "/api/v1/courses?"+tt.query, "", "")
			require.Equal(t, http.StatusOK, w.Code)

			var list courseList
			env := decode(t, w, &list)
			assert.True(t, env.Success)
			assert.Equal(t, len(tt.want), list.Total)

			got := []string{}
			for _, c := range list.Courses {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPIGetCourse(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/courses/11-accounts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var course struct {
		Title string `json:"title"`
		Class int    `json:"class"`
	}
	decode(t, w, &course)
	assert.Equal(t, "Class 11 Accounts", course.Title)
	assert.Equal(t, 11, course.Class)

	w = do(t, router, http.MethodGet, "/api/v1/courses/missing", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w, nil)
	assert.False(t, env.Success)
	assert.Equal(t, "RES_001", env.Error.Code)
	assert.Equal(t, `Course "missing" not found`, env.Error.Message)
}

func TestAPINavGroups(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/courses/nav?limit=2", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var groups []struct {
		Label   string        `json:"label"`
		Courses []interface{} `json:"courses"`
	}
	decode(t, w, &groups)
	require.Len(t, groups, 2)
	assert.Equal(t, "Class 11", groups[0].Label)
	assert.Len(t, groups[0].Courses, 2)

	w = do(t, router, http.MethodGet, "/api/v1/courses/nav?limit=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIResults(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/results?year=2025", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var results struct {
		Toppers []struct {
			Name   string `json:"name"`
			Stream string `json:"stream"`
		} `json:"toppers"`
	}
	decode(t, w, &results)
	require.NotEmpty(t, results.Toppers)
	assert.Equal(t, "Anuj Rathore", results.Toppers[0].Name)
	assert.Equal(t, models.DefaultTopperStream, results.Toppers[0].Stream)

	w = do(t, router, http.MethodGet, "/api/v1/results?year=last", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, "VAL_001", env.Error.Code)
	assert.Equal(t, "year must be a number", env.Error.Details["year"])

	w = do(t, router, http.MethodGet, "/api/v1/results?year=0", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIInstituteAndHealth(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/institute", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var inst struct {
		Institute struct {
			Name string `json:"name"`
		} `json:"institute"`
		EnquiryOptions []interface{} `json:"enquiryOptions"`
	}
	decode(t, w, &inst)
	assert.Equal(t, "Deepjyoti Institute", inst.Institute.Name)
	assert.NotEmpty(t, inst.EnquiryOptions)

	w = do(t, router, http.MethodGet, "/api/v1/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = do(t, router, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPICreateEnquiry(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/enquiries",
		`{"name":"Riya","phone":"+91-9876543210","courseId":"12-maths"}`, "application/json")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message     string `json:"message"`
		WhatsAppURL string `json:"whatsappUrl"`
	}
	decode(t, w, &resp)
	assert.Contains(t, resp.Message, "*Class Interested In:* Class 12 Mathematics")
	assert.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/919289071052?text="))
}

func TestAPICreateEnquiryInvalid(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/enquiries", `{"name":"R","phone":"abc"}`, "application/json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, "VAL_001", env.Error.Code)
	assert.Contains(t, env.Error.Details, "name")
	assert.Contains(t, env.Error.Details, "phone")
	assert.Contains(t, env.Error.Details, "classInterest")

	w = do(t, router, http.MethodPost, "/api/v1/enquiries", `{"name":`, "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/enquiries",
		`{"name":"Riya","phone":"9876543210","courseId":"nope"}`, "application/json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	env = decode(t, w, nil)
	assert.Contains(t, env.Error.Details, "courseId")
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/ping", "", "")
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "6f1c1d4e-8a4b-4c8e-9a57-0b7f3f0d2a11")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "6f1c1d4e-8a4b-4c8e-9a57-0b7f3f0d2a11", w.Header().Get("X-Request-ID"))
}

func TestPageCourses(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/courses?class=11&stream=Commerce", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "Class 11 Accounts")
	assert.NotContains(t, body, "Class 12 Accounts</h3>")
	assert.Contains(t, body, `href="/courses?select=11-accounts"`)
	assert.Contains(t, body, "Apply Now")
	assert.Contains(t, body, `class="pill active"`)

	w = do(t, router, http.MethodGet, "/courses?q=zzz", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No courses found")
}

func TestPageCoursesEscapesQuery(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/courses?q="+url.QueryEscape(`<script>alert(1)</script>`), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>")
}

func TestPageSearchRedirect(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/search?q=+class+11+", "", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/courses?q=class+11", w.Header().Get("Location"))

	w = do(t, router, http.MethodGet, "/search?q=+++", "", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/courses", w.Header().Get("Location"))
}

func TestPageEnquiry(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/enquiry?course=11-accounts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="course" value="11-accounts"`)
	assert.Contains(t, w.Body.String(), "<optgroup")

	form := url.Values{"name": {"Riya"}, "phone": {"9876543210"}, "class": {"Class 11 Commerce"}}
	w = do(t, router, http.MethodPost, "/enquiry", form.Encode(), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "https://wa.me/919289071052?text="))

	form = url.Values{"name": {"Riya"}, "phone": {"no"}}
	w = do(t, router, http.MethodPost, "/enquiry", form.Encode(), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "phone must be a valid phone number")
}

func TestPageEnquiryUnknownCourse(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{"name": {"Riya"}, "phone": {"9876543210"}, "course": {"nope"}}
	w := do(t, router, http.MethodPost, "/enquiry", form.Encode(), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<small class="field-error">courseId does not match any course</small>`)
	assert.NotContains(t, body, "Enquiring about")
}

func TestPageEnquiryMissingClass(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{"name": {"Riya"}, "phone": {"9876543210"}}
	w := do(t, router, http.MethodPost, "/enquiry", form.Encode(), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "classInterest is required when course id is empty")
	assert.NotContains(t, body, "validation failed")
}

func TestPageEnquiryShowsCourseTitle(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/enquiry?course=12-maths", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enquiring about <strong>Class 12 Mathematics</strong>")
}

func TestPageResults(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/results", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Anuj Rathore")
}

func TestPageResultsInvalidYear(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/results?year=abc", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, `<section class="error-page">`)
	assert.Contains(t, body, "year must be a number")
	assert.NotContains(t, body, `"success"`)
}

func TestAPIPosts(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/posts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int      `json:"total"`
		Tags  []string `json:"tags"`
		Posts []struct {
			Slug string `json:"slug"`
			Href string `json:"href"`
		} `json:"posts"`
	}
	decode(t, w, &list)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "board-exam-study-plan", list.Posts[0].Slug)
	assert.Equal(t, "/blog/board-exam-study-plan", list.Posts[0].Href)
	assert.Contains(t, list.Tags, "Career Guidance")

	w = do(t, router, http.MethodGet, "/api/v1/posts?tag=career+guidance", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "choosing-commerce-or-science", list.Posts[0].Slug)

	w = do(t, router, http.MethodGet, "/api/v1/posts/board-exam-study-plan", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var post struct {
		Title  string `json:"title"`
		Blocks []struct {
			Kind string `json:"kind"`
		} `json:"blocks"`
	}
	decode(t, w, &post)
	assert.Equal(t, "A 90-Day Study Plan for Class 12 Board Exams", post.Title)
	assert.NotEmpty(t, post.Blocks)

	w = do(t, router, http.MethodGet, "/api/v1/posts/nope", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func TestPageBlog(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/blog", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, `href="/blog/board-exam-study-plan"`)
	assert.Contains(t, body, "Commerce or Science After Class 10?")

	w = do(t, router, http.MethodGet, "/blog?tag=Career+Guidance", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `href="/blog/board-exam-study-plan"`)

	w = do(t, router, http.MethodGet, "/blog/board-exam-study-plan", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h2>Start with the syllabus, not the textbook</h2>")

	w = do(t, router, http.MethodGet, "/blog/nope", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}

func TestRootRedirect(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/courses", w.Header().Get("Location"))
}
