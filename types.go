package brochure

// ContentDocument is the full structured copy driving the public site.
// It lives under a single key in the content store and is replaced
// wholesale on every admin save — there are no partial updates.
type ContentDocument struct {
	Hero         HeroSection         `json:"hero"`
	Capabilities CapabilitiesSection `json:"capabilities"`
	About        AboutSection        `json:"about"`
	Approach     ApproachSection     `json:"approach"`
	Contact      ContactSection      `json:"contact"`
}

// HeroSection is the headline banner at the top of the landing page.
type HeroSection struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Button1Label string `json:"button1Label"`
	Button2Label string `json:"button2Label"`
}

// CapabilitiesSection lists what the business offers. Items render in
// slice order.
type CapabilitiesSection struct {
	Subtitle string       `json:"subtitle"`
	Items    []Capability `json:"items"`
}

// Capability is a single offering card.
type Capability struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutSection introduces the company.
type AboutSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ApproachSection describes how the company works. Paragraphs render
// in slice order.
type ApproachSection struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Paragraphs []string `json:"paragraphs"`
}

// ContactSection holds the call-to-action details. LinkedinURL is
// optional and stays an empty string when unset, never null.
type ContactSection struct {
	Title       string `json:"title"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedinUrl"`
}

// Clone returns an independent copy of the document. The two slices
// are the only reference fields.
func (d ContentDocument) Clone() ContentDocument {
	out := d
	if d.Capabilities.Items != nil {
		out.Capabilities.Items = append([]Capability(nil), d.Capabilities.Items...)
	}
	if d.Approach.Paragraphs != nil {
		out.Approach.Paragraphs = append([]string(nil), d.Approach.Paragraphs...)
	}
	return out
}
