package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// URL query parameter names understood by the courses page. Existing links
// and bookmarks depend on them.
const (
	ParamQuery  = "q"
	ParamSelect = "select"
	ParamClass  = "class"
	ParamStream = "stream"
)

// CoursesPath is the path of the catalog page.
const CoursesPath = "/courses"

// ParseFilter reads a Filter from URL query values. Empty values are absent.
func ParseFilter(v url.Values) Filter {
	return Filter{
		SelectID: v.Get(ParamSelect),
		Query:    v.Get(ParamQuery),
		Class:    v.Get(ParamClass),
		Stream:   v.Get(ParamStream),
	}
}

// Values is the inverse of ParseFilter.
func (f Filter) Values() url.Values {
	v := url.Values{}
	if f.SelectID != "" {
		v.Set(ParamSelect, f.SelectID)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		v.Set(ParamQuery, q)
	}
	if f.Class != "" {
		v.Set(ParamClass, f.Class)
	}
	if f.Stream != "" {
		v.Set(ParamStream, f.Stream)
	}
	return v
}

// WithPill returns a copy of current with key set to value, or removed when
// value is empty. A direct selection never survives a pill click.
func WithPill(current url.Values, key, value string) url.Values {
	next := url.Values{}
	for k, vs := range current {
		next[k] = append([]string(nil), vs...)
	}

	if value == "" {
		next.Del(key)
	} else {
		next.Set(key, value)
	}
	next.Del(ParamSelect)

	return next
}

// CoursesLocation returns the catalog page URL for the given parameters.
func CoursesLocation(v url.Values) string {
	if len(v) == 0 {
		return CoursesPath
	}
	encoded := v.Encode()
	if encoded == "" {
		return CoursesPath
	}
	return CoursesPath + "?" + encoded
}

// SearchLocation is the target of the navbar search box.
func SearchLocation(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return CoursesPath
	}
	return CoursesLocation(url.Values{ParamQuery: {q}})
}

// SelectLocation links directly to one course. Other parameters are not carried over.
func SelectLocation(id string) string {
	return CoursesLocation(url.Values{ParamSelect: {id}})
}

// Pill is one filter control of the catalog page.
type Pill struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// PillRows groups the class and stream pills.
type PillRows struct {
	Classes []Pill `json:"classes"`
	Streams []Pill `json:"streams"`
}

// facets is what Pills needs from a registry.
type facets interface {
	ClassLevels() []int
	Streams() []string
}

// Pills builds the filter controls for the page currently showing current.
func Pills(reg facets, current url.Values) PillRows {
	activeClass := current.Get(ParamClass)
	activeStream := current.Get(ParamStream)

	rows := PillRows{
		Classes: []Pill{{
			Label:  "All Classes",
			Href:   CoursesLocation(WithPill(current, ParamClass, "")),
			Active: activeClass == "",
		}},
		Streams: []Pill{{
			Label:  "All Streams",
			Href:   CoursesLocation(WithPill(current, ParamStream, "")),
			Active: activeStream == "",
		}},
	}

	for _, level := range reg.ClassLevels() {
		value := strconv.Itoa(level)
		rows.Classes = append(rows.Classes, Pill{
			Label:  "Class " + value,
			Href:   CoursesLocation(WithPill(current, ParamClass, value)),
			Active: activeClass == value,
		})
	}
	for _, stream := range reg.Streams() {
		rows.Streams = append(rows.Streams, Pill{
			Label:  stream,
			Href:   CoursesLocation(WithPill(current, ParamStream, stream)),
			Active: activeStream == stream,
		})
	}

	return rows
}
