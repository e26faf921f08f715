package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
)

const vocabularySheetTemplateName = "vocabulary-sheet.md.go.tmpl"

//go:embed templates/vocabulary-sheet.md.go.tmpl
var fallbackVocabularySheetTemplate string

// VocabularySheet is the data of a study sheet for one level
type VocabularySheet struct {
	Title       string
	Description string
	Headers     SheetHeaders
	Entries     []SheetEntry
	Footer      string
}

// SheetHeaders are the localized column names
type SheetHeaders struct {
	Source      string
	Phonetic    string
	Translation string
}

type SheetEntry struct {
	Source      string
	Phonetic    string
	Translation string
}

// WriteVocabularySheet renders sheet with the template at templatePath, or the embedded one.
func WriteVocabularySheet(output io.Writer, logger *slog.Logger, templatePath string, sheet VocabularySheet) error {
	tmpl, err := parseTemplateWithFallback(logger, templatePath, vocabularySheetTemplateName, fallbackVocabularySheetTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, sheet); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
