// Package whatsapp composes admission enquiry messages and the wa.me links
// that open them in a chat with the institute.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the click-to-chat endpoint.
const DefaultBaseURL = "https://wa.me"

const (
	emailFallback   = "Not provided"
	messageFallback = "No additional message"
)

// Enquiry is the content of an admission enquiry form.
type Enquiry struct {
	Name          string
	Phone         string
	Email         string
	ClassInterest string
	Message       string
}

// LinkService builds chat links for enquiries
type LinkService interface {
	Compose(e Enquiry) string
	Link(e Enquiry) string
}

// Config holds the chat target
type Config struct {
	Number        string // Digits only, country code included
	InstituteName string
	BaseURL       string
}

// LinkServiceImpl implements LinkService
type LinkServiceImpl struct {
	config Config
	logger zerolog.Logger
}

// NewLinkService creates a new LinkService
func NewLinkService(config Config, logger zerolog.Logger) LinkService {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &LinkServiceImpl{
		config: config,
		logger: logger,
	}
}

// Compose renders the chat message for e.
func (s *LinkServiceImpl) Compose(e Enquiry) string {
	email := strings.TrimSpace(e.Email)
	if email == "" {
		email = emailFallback
	}
	message := strings.TrimSpace(e.Message)
	if message == "" {
		message = messageFallback
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello! I'm interested in admission at %s.\n\n", s.config.InstituteName)
	fmt.Fprintf(&b, "*Name:* %s\n", strings.TrimSpace(e.Name))
	fmt.Fprintf(&b, "*Phone:* %s\n", strings.TrimSpace(e.Phone))
	fmt.Fprintf(&b, "*Email:* %s\n", email)
	fmt.Fprintf(&b, "*Class Interested In:* %s\n", strings.TrimSpace(e.ClassInterest))
	fmt.Fprintf(&b, "*Message:* %s\n\n", message)
	b.WriteString("I would like to know more about the admission process and course details.")
	return b.String()
}

// Link returns the click-to-chat URL carrying the composed message.
func (s *LinkServiceImpl) Link(e Enquiry) string {
	link := fmt.Sprintf("%s/%s?text=%s", strings.TrimRight(s.config.BaseURL, "/"), s.config.Number, encodeText(s.Compose(e)))

	s.logger.Debug().
		Str("classInterest", e.ClassInterest).
		Int("linkLength", len(link)).
		Msg("Composed WhatsApp enquiry link")

	return link
}

// encodeText escapes like encodeURIComponent; wa.me does not decode '+' as a space.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
