// Package markdown renders Markdown to HTML for the docs namespace and
// for render-time conversion inside templates.
package markdown

import (
	"bytes"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// ToHTML converts a Markdown document to HTML.
//
// Raw HTML embedded in the source passes through unchanged; doc pages
// routinely mix HTML examples into their prose.
func ToHTML(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Convert adapts ToHTML to the converter signature the templating
// engine expects for markdown-format templates.
func Convert(src []byte, out io.Writer) error {
	h, err := ToHTML(src)
	if err != nil {
		return err
	}
	_, err = out.Write(h)
	return err
}
