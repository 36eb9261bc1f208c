package dashboard

import (
	"io"
	"strings"
)

// Renderer draws a named template with a page view model.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// TemplateFor returns the template rendered for a page.
func TemplateFor(page Page) string {
	return string(page) + ".html"
}

// DetailTemplateFor returns the fragment template for a page's detail dialog.
func DetailTemplateFor(page Page) string {
	return "partials/" + strings.TrimSuffix(string(page), "s") + "_detail.html"
}
