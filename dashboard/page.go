package dashboard

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// Render writes the HTML dashboard for view to w.
// The page is rendered to a buffer first so a template error never leaves a half-written response.
func Render(w io.Writer, view *View) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
