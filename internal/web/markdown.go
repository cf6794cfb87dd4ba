package web

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Helper replies are Markdown; GFM covers the tables and fenced code
// the model tends to emit.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderMarkdown converts a Markdown reply to HTML. On a conversion
// failure the reply is shown escaped as plain text instead.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}
