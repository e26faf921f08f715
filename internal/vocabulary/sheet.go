package vocabulary

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/samber/lo"

	"github.com/at-ishikawa/hskquiz/internal/assets"
	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/pdf"
)

// ErrPDFFontRequired is returned when a PDF is requested without a font that covers hanzi and kana.
var ErrPDFFontRequired = errors.New("PDF output needs a TrueType font with CJK glyphs: set templates.pdf_font or --pdf-font")

// SheetWriter exports the entries of a level as a markdown study sheet.
type SheetWriter struct {
	store        *Store
	catalog      *message.Catalog
	templatePath string
	pdfFontPath  string
	logger       *slog.Logger
	stdout       io.Writer
}

func NewSheetWriter(store *Store, catalog *message.Catalog, templatePath, pdfFontPath string, logger *slog.Logger, stdout io.Writer) *SheetWriter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &SheetWriter{
		store:        store,
		catalog:      catalog,
		templatePath: templatePath,
		pdfFontPath:  pdfFontPath,
		logger:       logger,
		stdout:       stdout,
	}
}

func (writer *SheetWriter) Sheet(level Level) (assets.VocabularySheet, error) {
	entries, err := writer.store.Lookup(level)
	if err != nil {
		return assets.VocabularySheet{}, fmt.Errorf("store.Lookup() > %w", err)
	}

	catalog := writer.catalog
	return assets.VocabularySheet{
		Title:       catalog.Text(message.KeySheetTitle, level.String()),
		Description: catalog.Text(message.KeySheetDescription, level.String(), strconv.Itoa(len(entries))),
		Headers: assets.SheetHeaders{
			Source:      catalog.Text(message.KeySheetSource),
			Phonetic:    catalog.Text(message.KeySheetPhonetic),
			Translation: catalog.Text(message.KeySheetTranslation),
		},
		Entries: lo.Map(entries, func(entry Entry, _ int) assets.SheetEntry {
			return assets.SheetEntry{
				Source:      entry.Source,
				Phonetic:    entry.Phonetic,
				Translation: entry.Translation,
			}
		}),
		Footer: catalog.Text(message.KeySheetFooter, level.String()),
	}, nil
}

// OutputSheet writes <outputDirectory>/<level>.md and returns its path, or the PDF path when generatePDF is set.
func (writer *SheetWriter) OutputSheet(level Level, outputDirectory string, generatePDF bool) (string, error) {
	if generatePDF && writer.pdfFontPath == "" {
		return "", ErrPDFFontRequired
	}
	sheet, err := writer.Sheet(level)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDirectory, err)
	}
	outputFilename := filepath.Join(outputDirectory, level.String()+".md")

	output, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		_ = output.Close()
	}()

	if err := assets.WriteVocabularySheet(output, writer.logger, writer.templatePath, sheet); err != nil {
		return "", fmt.Errorf("assets.WriteVocabularySheet(%s, %s) > %w", outputFilename, writer.templatePath, err)
	}
	fmt.Fprintf(writer.stdout, "Vocabulary sheet written to: %s\n", outputFilename)

	if !generatePDF {
		return outputFilename, nil
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(outputFilename, pdf.WithUTF8Font(writer.pdfFontPath))
	if err != nil {
		return "", fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", outputFilename, err)
	}
	fmt.Fprintf(writer.stdout, "PDF generated at: %s\n", pdfPath)
	return pdfPath, nil
}
