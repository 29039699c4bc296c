package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, "Page not found", "")
		buf.WriteString("<body>\n<section>\n<h1>404</h1>\n")
		buf.WriteString("<p class=\"subtitle\">That page does not exist.</p>\n")
		buf.WriteString("<p><a href=\"/\">Back to the homepage</a></p>\n")
		buf.WriteString("</section>\n</body>\n</html>\n")
	})
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, "Something went wrong", "")
		buf.WriteString("<body>\n<section>\n<h1>Something went wrong</h1>\n")
		buf.WriteString("<p class=\"subtitle\">Please try again in a moment.</p>\n")
		buf.WriteString("<p><a href=\"/\">Back to the homepage</a></p>\n")
		buf.WriteString("</section>\n</body>\n</html>\n")
	})
}
