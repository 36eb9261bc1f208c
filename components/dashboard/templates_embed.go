package dashboard

import (
	"embed"
	"io/fs"

	template "github.com/goliatone/go-template"
)

//go:embed templates/*.html templates/**/*.html
var embeddedTemplates embed.FS

// TemplateFS exposes the bundled page and partial templates rooted at the templates directory.
func TemplateFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewTemplateRenderer creates a pongo2 renderer over the bundled storefront templates.
// Templates are read from the embedded filesystem only, so the working directory does not matter.
func NewTemplateRenderer() (Renderer, error) {
	return template.NewRenderer(
		template.WithFS(TemplateFS()),
		template.WithExtension(".html"),
	)
}
