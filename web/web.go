// Package web contiene las plantillas HTML del formulario de facturas.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// Templates parsea las plantillas embebidas.
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}
