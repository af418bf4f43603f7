package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

func sampleCourses() []models.Course {
	return []models.Course{
		{ID: "11-accounts", ClassLevel: 11, Stream: "Commerce", Title: "Class 11 Accounts"},
		{ID: "11-maths", ClassLevel: 11, Stream: "Maths", Title: "Class 11 Mathematics"},
		{ID: "12-accounts", ClassLevel: 12, Stream: "Commerce", Title: "Class 12 Accounts"},
		{ID: "11-physics", ClassLevel: 11, Stream: "Science", Title: "Class 11 Physics"},
		{ID: "12-maths", ClassLevel: 12, Stream: "Maths", Title: "Class 12 MATHS Advanced"},
	}
}

func ids(courses []models.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func TestNewRegistry(t *testing.T) {
	t.Run("keeps definition order", func(t *testing.T) {
		reg, err := NewRegistry(sampleCourses())
		require.NoError(t, err)

		assert.Equal(t, 5, reg.Len())
		if diff := cmp.Diff(sampleCourses(), reg.All()); diff != "" {
			t.Errorf("All() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		courses := append(sampleCourses(), models.Course{ID: "11-maths", ClassLevel: 11, Stream: "Maths", Title: "Dup"})
		_, err := NewRegistry(courses)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateCourseID)
		assert.Contains(t, err.Error(), `"11-maths"`)
	})

	t.Run("rejects empty ids", func(t *testing.T) {
		_, err := NewRegistry([]models.Course{{ID: " ", ClassLevel: 11, Stream: "Maths", Title: "X"}})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCatalog)
	})

	t.Run("empty registry is valid", func(t *testing.T) {
		reg, err := NewRegistry(nil)
		require.NoError(t, err)
		assert.NotNil(t, reg.All())
		assert.Empty(t, reg.All())
	})

	t.Run("copies its input", func(t *testing.T) {
		courses := sampleCourses()
		reg := MustNewRegistry(courses)
		courses[0].Title = "changed"

		c, ok := reg.ByID("11-accounts")
		require.True(t, ok)
		assert.Equal(t, "Class 11 Accounts", c.Title)
	})
}

func TestMustNewRegistryPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewRegistry([]models.Course{{ID: "a"}, {ID: "a"}})
	})
}

func TestRegistryAllReturnsCopy(t *testing.T) {
	reg := MustNewRegistry(sampleCourses())

	all := reg.All()
	all[0].Title = "mutated"

	assert.Equal(t, "Class 11 Accounts", reg.All()[0].Title)
}

func TestRegistryByClass(t *testing.T) {
	reg := MustNewRegistry(sampleCourses())

	tests := []struct {
		name  string
		level int
		want  []string
	}{
		{"class 11 in order", 11, []string{"11-accounts", "11-maths", "11-physics"}},
		{"class 12 in order", 12, []string{"12-accounts", "12-maths"}},
		{"unknown level", 9, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.ByClass(tt.level)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRegistryByID(t *testing.T) {
	reg := MustNewRegistry(sampleCourses())

	c, ok := reg.ByID("12-maths")
	require.True(t, ok)
	assert.Equal(t, 12, c.ClassLevel)

	_, ok = reg.ByID("does-not-exist")
	assert.False(t, ok)

	_, ok = reg.ByID("")
	assert.False(t, ok)
}

func TestRegistryFacets(t *testing.T) {
	reg := MustNewRegistry(sampleCourses())

	assert.Equal(t, []int{11, 12}, reg.ClassLevels())
	assert.Equal(t, []string{"Commerce", "Maths", "Science"}, reg.Streams())
}
