// Package views provides the default templ components for a brochure
// site: the public landing page, the admin panel, and error pages.
// Components are authored in plain Go against a buffer so users can
// swap any of them out through brochure.ViewFuncs.
package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/brochure"
)

// Default returns the stock component set.
func Default() brochure.ViewFuncs {
	return brochure.ViewFuncs{
		Home:        Home,
		AdminLogin:  AdminLogin,
		AdminEditor: AdminEditor,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// component adapts a buffer-writing function into a templ.Component.
func component(write func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		write(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

func writeHead(buf *bytes.Buffer, title, description string) {
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\">\n")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	buf.WriteString("<title>" + esc(title) + "</title>\n")
	if description != "" {
		buf.WriteString("<meta name=\"description\" content=\"" + esc(description) + "\">\n")
	}
	buf.WriteString("<style>" + baseCSS + "</style>\n")
	buf.WriteString("</head>\n")
}

const baseCSS = `
:root{--ink:#1a1a1a;--muted:#555;--accent:#0b5fff;--bg:#ffffff;--soft:#f5f5f4}
*{box-sizing:border-box;margin:0}
body{font-family:system-ui,-apple-system,sans-serif;color:var(--ink);background:var(--bg);line-height:1.6}
a{color:var(--accent);text-decoration:none}
section{padding:4rem 1.5rem;max-width:64rem;margin:0 auto}
h1{font-size:2.5rem;line-height:1.15}
h2{font-size:1.75rem;margin-bottom:1rem}
.subtitle{color:var(--muted);margin:1rem 0 2rem;font-size:1.125rem}
.buttons a{display:inline-block;padding:.75rem 1.5rem;border-radius:.375rem;margin-right:.75rem;border:1px solid var(--ink)}
.buttons a.primary{background:var(--ink);color:#fff}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(16rem,1fr));gap:1.5rem}
.card{background:var(--soft);border-radius:.5rem;padding:1.5rem}
.card h3{margin-bottom:.5rem}
.capabilities,.approach{background:var(--soft)}
.approach p{margin-bottom:1rem;max-width:48rem}
footer{padding:2rem 1.5rem;text-align:center;color:var(--muted);font-size:.875rem}
form.panel,div.panel{max-width:40rem;margin:3rem auto;padding:2rem;background:var(--soft);border-radius:.5rem}
label{display:block;font-weight:600;margin:.75rem 0 .25rem;font-size:.875rem}
input,textarea{width:100%;padding:.5rem;border:1px solid #ccc;border-radius:.25rem;font:inherit}
textarea{min-height:5rem}
button{padding:.6rem 1.25rem;border-radius:.375rem;border:none;background:var(--ink);color:#fff;cursor:pointer;margin-top:1rem}
button.secondary{background:transparent;color:var(--ink);border:1px solid var(--ink)}
.error{color:#b91c1c;margin-top:.75rem}
.notice{color:#166534;margin-top:.75rem}
fieldset{border:1px solid #ddd;border-radius:.375rem;padding:1rem;margin-top:1.5rem}
legend{font-weight:700;padding:0 .5rem}
`
