package models

// DefaultTopperStream is displayed when a topper has no stream.
const DefaultTopperStream = "All Subjects"

// Topper represents a student listed on the results page.
type Topper struct {
	Name    string `json:"name" yaml:"name"`
	Class   string `json:"class" yaml:"class"` // Display form, e.g. "Class 10"
	Stream  string `json:"stream,omitempty" yaml:"stream"`
	Score   string `json:"score" yaml:"score"` // "96%" or "483/500"
	Subject string `json:"subject,omitempty" yaml:"subject"`
	Year    int    `json:"year" yaml:"year"`
	Rank    int    `json:"rank,omitempty" yaml:"rank"` // 0 when unranked
}

// StreamLabel returns the stream or the "All Subjects" fallback.
func (t Topper) StreamLabel() string {
	if t.Stream == "" {
		return DefaultTopperStream
	}
	return t.Stream
}
