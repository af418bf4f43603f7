package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
	"github.com/yigit/coursecatalog/internal/seed"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, args...)
	return out, err
}

func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	t.Cleanup(func() {
		logger.Configure(logger.Config{Level: logger.InfoLevel, Format: logger.FormatConsole, Output: os.Stderr})
	})

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCoursesTable(t *testing.T) {
	out, err := run(t, "courses", "--class", "12", "--stream", "Commerce")
	require.NoError(t, err)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "12-accounts")
	assert.NotContains(t, out, "11-accounts")
}

func TestCoursesSelectOverridesFilters(t *testing.T) {
	out, err := run(t, "courses", "--select", "11-physics", "--class", "12", "-f", "json")
	require.NoError(t, err)

	var courses []models.Course
	require.NoError(t, json.Unmarshal([]byte(out), &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "11-physics", courses[0].ID)
}

func TestCoursesNoMatch(t *testing.T) {
	out, err := run(t, "courses", "--q", "astrophysics")
	require.NoError(t, err)
	assert.Contains(t, out, "No courses found")

	out, err = run(t, "courses", "--q", "astrophysics", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestCoursesBrandFlag(t *testing.T) {
	out, err := run(t, "courses", "--brand", "anupama", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "id: 12-science")
}

func TestCoursesUnsupportedFormat(t *testing.T) {
	_, err := run(t, "courses", "-f", "xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestValidateBuiltIn(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)

	for _, brand := range seed.Brands() {
		assert.Contains(t, out, "ok   "+string(brand))
	}
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	good, err := seed.Raw(models.BrandChanakya)
	require.NoError(t, err)
	goodPath := filepath.Join(dir, "good.yaml")
	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(goodPath, good, 0o600))
	require.NoError(t, os.WriteFile(badPath, []byte("institute:\n  name: X\n"), 0o600))

	out, err := run(t, "validate", goodPath)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   "+goodPath+": Chanakya Institute")

	out, err = run(t, "validate", goodPath, badPath)
	assert.ErrorIs(t, err, errInvalidCatalogs)
	assert.Contains(t, out, "FAIL "+badPath)
}

func TestLogLevelFlagSetsEnvironment(t *testing.T) {
	_, err := run(t, "--log-level", "debug", "validate")
	require.NoError(t, err)
	assert.Equal(t, "debug", os.Getenv("LOG_LEVEL"))
}

func TestCoursesHonoursLogLevel(t *testing.T) {
	out, stderr, err := runWithStderr(t, "courses", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Loading built-in catalog")
	assert.True(t, json.Valid([]byte(out)))

	_, stderr, err = runWithStderr(t, "--log-level", "error", "courses", "-f", "json")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Loading built-in catalog")
}
