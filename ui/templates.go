package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"net/http"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"pct":       func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
		"floorStep": floorStep,
		"ceilStep":  ceilStep,
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}

// floorStep and ceilStep place slider thumbs on the step grid without narrowing the range they cover
func floorStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Floor(v/step) * step
}

func ceilStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Ceil(v/step) * step
}

// renderAbout converts the embedded about page from markdown to HTML
func renderAbout() (template.HTML, error) {
	src, err := embeddedFiles.ReadFile("content/about.md")
	if err != nil {
		return "", fmt.Errorf("failed to read about page: %w", err)
	}
	return template.HTML(markdownToHTML(src)), nil
}

func markdownToHTML(src []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(src)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return markdown.Render(doc, renderer)
}

// renderTemplate buffers the page so a template error never sends a partial body
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		a.logger.Error("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
