package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templates holds the parsed page templates. Parsing happens once at
// process start; a broken template is a programming error and panics.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
