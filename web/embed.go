// Package web provides the embedded HTML templates for the redpen form UI.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates
var templatesFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}
