package brochure

import (
	"encoding/json"
	"fmt"
	"sync"
)

// ValidationError reports a ContentDocument field that fails the
// schema invariants. Persist rejects such documents before any
// network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid document: %s: %s", e.Field, e.Reason)
}

// Validate checks the document shape: every required string present,
// capabilities.items and approach.paragraphs non-empty, and every
// entry in those sequences fully populated. contact.linkedinUrl is
// the only optional field.
func (d ContentDocument) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"hero.title", d.Hero.Title},
		{"hero.subtitle", d.Hero.Subtitle},
		{"hero.button1Label", d.Hero.Button1Label},
		{"hero.button2Label", d.Hero.Button2Label},
		{"capabilities.subtitle", d.Capabilities.Subtitle},
		{"about.title", d.About.Title},
		{"about.description", d.About.Description},
		{"approach.title", d.Approach.Title},
		{"approach.subtitle", d.Approach.Subtitle},
		{"contact.title", d.Contact.Title},
		{"contact.email", d.Contact.Email},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Reason: "required"}
		}
	}
	if len(d.Capabilities.Items) == 0 {
		return &ValidationError{Field: "capabilities.items", Reason: "must contain at least one item"}
	}
	for i, item := range d.Capabilities.Items {
		if item.Title == "" {
			return &ValidationError{Field: fmt.Sprintf("capabilities.items[%d].title", i), Reason: "required"}
		}
		if item.Description == "" {
			return &ValidationError{Field: fmt.Sprintf("capabilities.items[%d].description", i), Reason: "required"}
		}
	}
	if len(d.Approach.Paragraphs) == 0 {
		return &ValidationError{Field: "approach.paragraphs", Reason: "must contain at least one paragraph"}
	}
	for i, p := range d.Approach.Paragraphs {
		if p == "" {
			return &ValidationError{Field: fmt.Sprintf("approach.paragraphs[%d]", i), Reason: "required"}
		}
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultDoc  ContentDocument
)

// DefaultContent returns the bundled fallback document. The public
// site serves this copy whenever the content store is unconfigured,
// unreachable, or returns a malformed payload.
func DefaultContent() ContentDocument {
	defaultOnce.Do(func() {
		raw, err := EmbeddedAssets.ReadFile("embedded/content.json")
		if err != nil {
			panic("brochure: bundled content.json missing: " + err.Error())
		}
		if err := json.Unmarshal(raw, &defaultDoc); err != nil {
			panic("brochure: bundled content.json malformed: " + err.Error())
		}
	})
	return defaultDoc.Clone()
}
