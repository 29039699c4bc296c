package brochure

import (
	"errors"
	"testing"
)

func testDocument() ContentDocument {
	return ContentDocument{
		Hero: HeroSection{
			Title:        "Build better systems",
			Subtitle:     "We help teams ship",
			Button1Label: "What we do",
			Button2Label: "Contact",
		},
		Capabilities: CapabilitiesSection{
			Subtitle: "End to end",
			Items: []Capability{
				{Title: "Architecture", Description: "Designing systems"},
				{Title: "Operations", Description: "Running systems"},
			},
		},
		About: AboutSection{
			Title:       "About",
			Description: "A small consultancy",
		},
		Approach: ApproachSection{
			Title:      "Approach",
			Subtitle:   "Short loops",
			Paragraphs: []string{"First paragraph", "Second paragraph"},
		},
		Contact: ContactSection{
			Title: "Talk to us",
			Email: "hello@example.com",
		},
	}
}

func TestValidateAcceptsCompleteDocument(t *testing.T) {
	if err := testDocument().Validate(); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestValidateAllowsEmptyLinkedinURL(t *testing.T) {
	doc := testDocument()
	doc.Contact.LinkedinURL = ""
	if err := doc.Validate(); err != nil {
		t.Fatalf("linkedinUrl is optional, got %v", err)
	}
}

func TestValidateRejectsMissingRequiredString(t *testing.T) {
	doc := testDocument()
	doc.Hero.Title = ""
	err := doc.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "hero.title" {
		t.Errorf("Field = %q, want %q", verr.Field, "hero.title")
	}
}

func TestValidateRejectsEmptyCapabilities(t *testing.T) {
	doc := testDocument()
	doc.Capabilities.Items = nil
	err := doc.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "capabilities.items" {
		t.Errorf("Field = %q, want %q", verr.Field, "capabilities.items")
	}
}

func TestValidateRejectsEmptyParagraphs(t *testing.T) {
	doc := testDocument()
	doc.Approach.Paragraphs = []string{}
	err := doc.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "approach.paragraphs" {
		t.Errorf("Field = %q, want %q", verr.Field, "approach.paragraphs")
	}
}

func TestValidateRejectsBlankCapabilityItem(t *testing.T) {
	doc := testDocument()
	doc.Capabilities.Items[1].Description = ""
	if doc.Validate() == nil {
		t.Fatal("expected error for blank capability description")
	}
}

func TestDefaultContentIsValid(t *testing.T) {
	doc := DefaultContent()
	if err := doc.Validate(); err != nil {
		t.Fatalf("bundled default document must validate, got %v", err)
	}
}

func TestDefaultContentReturnsIndependentCopies(t *testing.T) {
	a := DefaultContent()
	a.Capabilities.Items[0].Title = "mutated"
	a.Approach.Paragraphs[0] = "mutated"

	b := DefaultContent()
	if b.Capabilities.Items[0].Title == "mutated" {
		t.Error("mutating one copy leaked into the next")
	}
	if b.Approach.Paragraphs[0] == "mutated" {
		t.Error("mutating paragraphs leaked into the next copy")
	}
}

func TestClonePreservesOrder(t *testing.T) {
	doc := testDocument()
	clone := doc.Clone()
	for i, item := range doc.Capabilities.Items {
		if clone.Capabilities.Items[i] != item {
			t.Fatalf("item %d changed position or value in clone", i)
		}
	}
	for i, p := range doc.Approach.Paragraphs {
		if clone.Approach.Paragraphs[i] != p {
			t.Fatalf("paragraph %d changed position or value in clone", i)
		}
	}
}
