// Package summary renders summarization output for the summary pane.
package summary

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts summary markdown (title line, section headings, bullet
// action items) into HTML for the presentation surface.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// RenderHTML renders summary markdown to HTML.
func (r *Renderer) RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render summary markdown: %w", err)
	}
	return buf.String(), nil
}
