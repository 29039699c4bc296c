package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/eringen/brochure"
)

// AdminLogin renders the login form shown to anonymous visitors of
// /admin/. The embedded editor script posts the credentials as JSON.
func AdminLogin(showError bool, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, "Admin login", "")
		buf.WriteString("<body>\n")
		buf.WriteString("<form class=\"panel\" id=\"login-form\">\n")
		buf.WriteString("<h2>Admin login</h2>\n")
		buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\">\n")
		buf.WriteString("<label for=\"username\">Username</label>\n")
		buf.WriteString("<input id=\"username\" name=\"username\" autocomplete=\"username\" required>\n")
		buf.WriteString("<label for=\"password\">Password</label>\n")
		buf.WriteString("<input id=\"password\" name=\"password\" type=\"password\" autocomplete=\"current-password\" required>\n")
		buf.WriteString("<button type=\"submit\">Sign in</button>\n")
		if showError {
			buf.WriteString("<p class=\"error\">Invalid username or password.</p>\n")
		}
		buf.WriteString("<p class=\"error\" id=\"login-error\" hidden></p>\n")
		buf.WriteString("</form>\n")
		buf.WriteString("<script src=\"/public/editor.js\"></script>\n")
		buf.WriteString("</body>\n</html>\n")
	})
}

// AdminEditor renders the editor shell for an authenticated admin. The
// embedded script loads the current document into an index-addressed
// form, saves it, and triggers a revalidation of the landing page.
func AdminEditor(cfg brochure.SiteConfig, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg.Name+" — content editor", "")
		buf.WriteString("<body>\n")
		buf.WriteString("<div class=\"panel\" id=\"editor\" data-csrf=\"" + esc(csrfToken) + "\">\n")
		buf.WriteString("<h2>Content editor</h2>\n")
		buf.WriteString("<p class=\"subtitle\">Changes go live on the next page load after saving.</p>\n")
		buf.WriteString("<div id=\"editor-form\">Loading content…</div>\n")
		buf.WriteString("<button id=\"save\">Save</button>\n")
		buf.WriteString("<button class=\"secondary\" id=\"reset\">Reset to defaults</button>\n")
		buf.WriteString("<button class=\"secondary\" id=\"logout\">Log out</button>\n")
		buf.WriteString("<p class=\"error\" id=\"editor-error\" hidden></p>\n")
		buf.WriteString("<p class=\"notice\" id=\"editor-notice\" hidden></p>\n")
		buf.WriteString("</div>\n")
		buf.WriteString("<script src=\"/public/editor.js\"></script>\n")
		buf.WriteString("</body>\n</html>\n")
	})
}
