package models

// Institute holds the contact and branding details of one institute.
type Institute struct {
	Name     string   `json:"name" yaml:"name"`
	Tagline  string   `json:"tagline,omitempty" yaml:"tagline"`
	WhatsApp string   `json:"whatsapp" yaml:"whatsapp"` // Digits only, country code included
	Phones   []string `json:"phones,omitempty" yaml:"phones"`
	Email    string   `json:"email,omitempty" yaml:"email"`
	Address  string   `json:"address,omitempty" yaml:"address"`
	Hours    []string `json:"hours,omitempty" yaml:"hours"`
}

// EnquiryOptionGroup is one <optgroup> of the admission enquiry form.
type EnquiryOptionGroup struct {
	Label   string   `json:"label" yaml:"label"`
	Options []string `json:"options" yaml:"options"`
}
