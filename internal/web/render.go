package web

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"
)

// TemplateRenderer renders pages against a shared layout. Templates
// are parsed once at startup; a malformed template is a programmer
// error and panics via template.Must.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

func NewTemplateRenderer(templatesDir string) *TemplateRenderer {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}

	layoutFile := filepath.Join(templatesDir, "layout.html")
	pages := []string{
		"welcome.html",
		"lesson.html",
		"progress.html",
		"quiz_start.html",
		"quiz_question.html",
		"quiz_result.html",
		"llm_helper.html",
		"brahmi_converter.html",
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		tmpl := template.Must(
			template.New("").Funcs(funcMap).ParseFiles(layoutFile, filepath.Join(templatesDir, page)),
		)
		templates[page] = tmpl
	}

	return &TemplateRenderer{templates: templates}
}

func (t *TemplateRenderer) Render(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := t.templates[name]
	if !ok {
		http.Error(w, "template not found: "+name, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
