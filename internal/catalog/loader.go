package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// File is the on-disk layout of a catalog.
type File struct {
	Institute      models.Institute            `yaml:"institute"`
	Courses        []models.Course             `yaml:"courses"`
	Toppers        []models.Topper             `yaml:"toppers"`
	EnquiryOptions []models.EnquiryOptionGroup `yaml:"enquiry_options"`
	Posts          []models.Post               `yaml:"posts"`
}

// Catalog is a loaded, validated catalog file.
type Catalog struct {
	Institute      models.Institute
	Registry       *Registry
	Toppers        []models.Topper
	EnquiryOptions []models.EnquiryOptionGroup
	Posts          []models.Post
}

// LoadFile reads and validates the catalog at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes and validates a YAML catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", apperrors.ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidCatalog, err)
	}
	return file.Build()
}

// Build validates the file and constructs its registry.
func (f *File) Build() (*Catalog, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	reg, err := NewRegistry(f.Courses)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Institute:      f.Institute,
		Registry:       reg,
		Toppers:        append([]models.Topper(nil), f.Toppers...),
		EnquiryOptions: append([]models.EnquiryOptionGroup(nil), f.EnquiryOptions...),
		Posts:          append([]models.Post(nil), f.Posts...),
	}, nil
}

func (f *File) validate() error {
	var errs []error

	if strings.TrimSpace(f.Institute.Name) == "" {
		errs = append(errs, errors.New("institute name is required"))
	}
	if !isDigits(f.Institute.WhatsApp) {
		errs = append(errs, fmt.Errorf("institute whatsapp number %q must contain digits only", f.Institute.WhatsApp))
	}
	if len(f.Courses) == 0 {
		errs = append(errs, errors.New("at least one course is required"))
	}
	for i, c := range f.Courses {
		if strings.TrimSpace(c.Title) == "" {
			errs = append(errs, fmt.Errorf("course %d (%q): title is required", i, c.ID))
		}
		if c.ClassLevel <= 0 {
			errs = append(errs, fmt.Errorf("course %d (%q): class must be positive", i, c.ID))
		}
		if strings.TrimSpace(c.Stream) == "" {
			errs = append(errs, fmt.Errorf("course %d (%q): stream is required", i, c.ID))
		}
	}
	for i, t := range f.Toppers {
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Errorf("topper %d: name is required", i))
		}
	}

	seen := make(map[string]bool, len(f.Posts))
	for i, p := range f.Posts {
		switch {
		case !slugPattern.MatchString(p.Slug):
			errs = append(errs, fmt.Errorf("post %d: slug %q must be lowercase letters, digits and hyphens", i, p.Slug))
		case seen[p.Slug]:
			errs = append(errs, fmt.Errorf("post %d: %w %q", i, apperrors.ErrDuplicatePostSlug, p.Slug))
		}
		seen[p.Slug] = true
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("post %d (%q): title is required", i, p.Slug))
		}
		if p.Date.IsZero() {
			errs = append(errs, fmt.Errorf("post %d (%q): date is required", i, p.Slug))
		}
		if strings.TrimSpace(p.Content) == "" {
			errs = append(errs, fmt.Errorf("post %d (%q): content is required", i, p.Slug))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
