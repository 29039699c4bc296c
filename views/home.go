package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/eringen/brochure"
)

// Home renders the public landing page from the resolved content
// document. Section order is fixed; the copy inside each section is
// entirely document-driven.
func Home(doc brochure.ContentDocument, cfg brochure.SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg.Name, cfg.Description)
		buf.WriteString("<body>\n")
		writeHero(buf, doc.Hero)
		writeCapabilities(buf, doc.Capabilities)
		writeAbout(buf, doc.About)
		writeApproach(buf, doc.Approach)
		writeContact(buf, doc.Contact)
		buf.WriteString("<footer>" + esc(cfg.Name) + "</footer>\n")
		buf.WriteString("</body>\n</html>\n")
	})
}

func writeHero(buf *bytes.Buffer, h brochure.HeroSection) {
	buf.WriteString("<section id=\"hero\">\n")
	buf.WriteString("<h1>" + esc(h.Title) + "</h1>\n")
	buf.WriteString("<p class=\"subtitle\">" + esc(h.Subtitle) + "</p>\n")
	buf.WriteString("<div class=\"buttons\">")
	buf.WriteString("<a class=\"primary\" href=\"#capabilities\">" + esc(h.Button1Label) + "</a>")
	buf.WriteString("<a href=\"#contact\">" + esc(h.Button2Label) + "</a>")
	buf.WriteString("</div>\n</section>\n")
}

func writeCapabilities(buf *bytes.Buffer, c brochure.CapabilitiesSection) {
	buf.WriteString("<div class=\"capabilities\"><section id=\"capabilities\">\n")
	buf.WriteString("<h2>Capabilities</h2>\n")
	buf.WriteString("<p class=\"subtitle\">" + esc(c.Subtitle) + "</p>\n")
	buf.WriteString("<div class=\"cards\">\n")
	for _, item := range c.Items {
		buf.WriteString("<div class=\"card\"><h3>" + esc(item.Title) + "</h3><p>" + esc(item.Description) + "</p></div>\n")
	}
	buf.WriteString("</div>\n</section></div>\n")
}

func writeAbout(buf *bytes.Buffer, a brochure.AboutSection) {
	buf.WriteString("<section id=\"about\">\n")
	buf.WriteString("<h2>" + esc(a.Title) + "</h2>\n")
	buf.WriteString("<p>" + esc(a.Description) + "</p>\n")
	buf.WriteString("</section>\n")
}

func writeApproach(buf *bytes.Buffer, ap brochure.ApproachSection) {
	buf.WriteString("<div class=\"approach\"><section id=\"approach\">\n")
	buf.WriteString("<h2>" + esc(ap.Title) + "</h2>\n")
	buf.WriteString("<p class=\"subtitle\">" + esc(ap.Subtitle) + "</p>\n")
	for _, p := range ap.Paragraphs {
		buf.WriteString("<p>" + esc(p) + "</p>\n")
	}
	buf.WriteString("</section></div>\n")
}

func writeContact(buf *bytes.Buffer, ct brochure.ContactSection) {
	buf.WriteString("<section id=\"contact\">\n")
	buf.WriteString("<h2>" + esc(ct.Title) + "</h2>\n")
	buf.WriteString("<p><a href=\"mailto:" + esc(ct.Email) + "\">" + esc(ct.Email) + "</a></p>\n")
	if ct.LinkedinURL != "" {
		buf.WriteString("<p><a href=\"" + esc(ct.LinkedinURL) + "\" rel=\"noopener\">LinkedIn</a></p>\n")
	}
	buf.WriteString("</section>\n")
}
