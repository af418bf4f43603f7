package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yigit/coursecatalog/internal/app/models"
)

// Filter is the set of optional criteria applied to a registry.
// An empty field is an inactive criterion; the zero Filter matches everything.
type Filter struct {
	// SelectID picks a single course by id. When set, every other field is ignored.
	SelectID string `json:"select,omitempty"`
	// Query is matched case-insensitively as a substring of the course title.
	Query string `json:"q,omitempty"`
	// Class is compared with the decimal form of the course class level, e.g. "11".
	Class string `json:"class,omitempty"`
	// Stream is compared verbatim with the course stream.
	Stream string `json:"stream,omitempty"`
}

// IsZero reports whether no criterion is active.
func (f Filter) IsZero() bool {
	return f.SelectID == "" && strings.TrimSpace(f.Query) == "" && f.Class == "" && f.Stream == ""
}

type predicate func(models.Course) bool

// Apply returns the courses of src matching f, in registry order.
// Unmatched criteria yield an empty, non-nil slice.
func Apply(src Source, f Filter) []models.Course {
	if f.SelectID != "" {
		if c, ok := src.ByID(f.SelectID); ok {
			return []models.Course{c}
		}
		return []models.Course{}
	}

	result := append([]models.Course{}, src.All()...)
	for _, keep := range f.predicates() {
		result = narrow(result, keep)
	}
	return result
}

func (f Filter) predicates() []predicate {
	var preds []predicate

	if q := strings.TrimSpace(f.Query); q != "" {
		// cases.Caser is stateful and must not be shared across calls.
		lower := cases.Lower(language.Und)
		needle := lower.String(q)
		preds = append(preds, func(c models.Course) bool {
			return strings.Contains(lower.String(c.Title), needle)
		})
	}
	if f.Class != "" {
		preds = append(preds, func(c models.Course) bool {
			return c.ClassParam() == f.Class
		})
	}
	if f.Stream != "" {
		preds = append(preds, func(c models.Course) bool {
			return c.Stream == f.Stream
		})
	}

	return preds
}

// narrow filters courses in place.
func narrow(courses []models.Course, keep predicate) []models.Course {
	out := courses[:0]
	for _, c := range courses {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
