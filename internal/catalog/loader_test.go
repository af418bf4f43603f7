package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

const validCatalog = `
institute:
  name: Test Institute
  whatsapp: "911234567890"
  phones: ["+91-1234567890"]
courses:
  - id: 11-accounts
    class: 11
    stream: Commerce
    title: Class 11 Accounts
  - id: 12-maths
    class: 12
    stream: Maths
    title: Class 12 Maths
    short: Calculus first
toppers:
  - name: Asha
    class: Class 10
    score: 98%
    year: 2025
enquiry_options:
  - label: Class 11-12
    options: [Class 11 Commerce, Class 12 Science]
posts:
  - slug: exam-tips
    title: Exam Tips
    date: 2025-01-10
    tags: [Study Tips]
    content: |
      ## Plan
      Start early.
`

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(validCatalog))
	require.NoError(t, err)

	assert.Equal(t, "Test Institute", cat.Institute.Name)
	assert.Equal(t, 2, cat.Registry.Len())
	assert.Equal(t, []string{"11-accounts", "12-maths"}, ids(cat.Registry.All()))

	c, ok := cat.Registry.ByID("12-maths")
	require.True(t, ok)
	assert.Equal(t, "Calculus first", c.Summary())

	require.Len(t, cat.Toppers, 1)
	assert.Equal(t, 2025, cat.Toppers[0].Year)
	require.Len(t, cat.EnquiryOptions, 1)
	assert.Len(t, cat.EnquiryOptions[0].Options, 2)

	require.Len(t, cat.Posts, 1)
	assert.Equal(t, "exam-tips", cat.Posts[0].Slug)
	assert.Equal(t, 2025, cat.Posts[0].Date.Year())
	assert.True(t, cat.Posts[0].HasTag("study tips"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		msg     string
	}{
		{
			name:    "empty document",
			doc:     "",
			wantErr: apperrors.ErrInvalidCatalog,
			msg:     "empty document",
		},
		{
			name:    "unknown field",
			doc:     strings.Replace(validCatalog, "title: Class 11 Accounts", "titel: Class 11 Accounts", 1),
			wantErr: apperrors.ErrInvalidCatalog,
			msg:     "titel",
		},
		{
			name:    "duplicate id",
			doc:     strings.Replace(validCatalog, "id: 12-maths", "id: 11-accounts", 1),
			wantErr: apperrors.ErrDuplicateCourseID,
		},
		{
			name:    "whatsapp with symbols",
			doc:     strings.Replace(validCatalog, `"911234567890"`, `"+91 12345"`, 1),
			wantErr: apperrors.ErrInvalidCatalog,
			msg:     "digits only",
		},
		{
			name:    "missing class",
			doc:     strings.Replace(validCatalog, "    class: 12\n", "", 1),
			wantErr: apperrors.ErrInvalidCatalog,
			msg:     "class must be positive",
		},
		{
			name:    "post slug with spaces",
			doc:     strings.Replace(validCatalog, "slug: exam-tips", "slug: Exam Tips", 1),
			wantErr: apperrors.ErrInvalidCatalog,
			msg:     "lowercase letters",
		},
		{
			name:    "post without date",
			doc:     strings.Replace(validCatalog, "    date: 2025-01-10\n", "", 1),
			wantErr: apperrors.ErrInvalidCatalog,
			msg:     "date is required",
		},
		{
			name: "duplicate post slug",
			doc: validCatalog + `  - slug: exam-tips
    title: Again
    date: 2025-02-01
    content: Repeat.
`,
			wantErr: apperrors.ErrDuplicatePostSlug,
		},
		{
			name: "no courses",
			doc: `
institute:
  name: Empty
  whatsapp: "91"
`,
			wantErr: apperrors.ErrInvalidCatalog,
			msg:     "at least one course",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestParseReportsEveryProblem(t *testing.T) {
	doc := `
institute:
  whatsapp: ""
courses:
  - id: a
    class: 0
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	for _, want := range []string{"institute name", "whatsapp", "title is required", "class must be positive", "stream is required"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o600))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Registry.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
