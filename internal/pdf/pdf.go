// Package pdf converts exported markdown study sheets to PDF.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// fontFamily is the family name the embedded UTF-8 font is registered under.
const fontFamily = "SheetUTF8"

type options struct {
	paperSize string
	theme     mdtopdf.Theme
	fontPath  string
}

type Option func(*options)

// WithPaperSize sets the paper size, such as A4 or Letter. It defaults to A4.
func WithPaperSize(size string) Option {
	return func(o *options) {
		o.paperSize = size
	}
}

func WithDarkTheme() Option {
	return func(o *options) {
		o.theme = mdtopdf.DARK
	}
}

// WithUTF8Font embeds the TrueType font at path and renders every style with it.
// The core PDF fonts only cover Latin-1, so hanzi and kana need a font such as Noto Sans CJK.
func WithUTF8Font(path string) Option {
	return func(o *options) {
		o.fontPath = path
	}
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string, opts ...Option) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}
	o := options{
		paperSize: "A4",
		theme:     mdtopdf.LIGHT,
	}
	for _, opt := range opts {
		opt(&o)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", o.paperSize, pdfPath, "", nil, o.theme)
	if o.fontPath != "" {
		if err := useUTF8Font(renderer, o.fontPath); err != nil {
			return "", err
		}
	}
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}

func useUTF8Font(renderer *mdtopdf.PdfRenderer, fontPath string) error {
	font, err := os.ReadFile(fontPath)
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s) > %w", fontPath, err)
	}
	// The stylers use bold and italic, so the same face backs every style.
	for _, style := range []string{"", "B", "I", "BI"} {
		renderer.Pdf.AddUTF8FontFromBytes(fontFamily, style, font)
	}
	if err := renderer.Pdf.Error(); err != nil {
		return fmt.Errorf("Pdf.AddUTF8FontFromBytes(%s) > %w", fontPath, err)
	}

	for _, styler := range []*mdtopdf.Styler{
		&renderer.Normal, &renderer.Link, &renderer.Backtick, &renderer.Blockquote,
		&renderer.H1, &renderer.H2, &renderer.H3, &renderer.H4, &renderer.H5, &renderer.H6,
		&renderer.THeader, &renderer.TBody, &renderer.Code,
	} {
		styler.Font = fontFamily
	}
	renderer.UpdateParagraphStyler(renderer.Normal)
	return nil
}
