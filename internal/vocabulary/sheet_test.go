package vocabulary

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hskquiz/internal/assets"
	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/testutil"
)

func newTestSheetWriter(t *testing.T, language message.Language, pdfFontPath string, stdout io.Writer) *SheetWriter {
	t.Helper()
	store, err := NewStore()
	require.NoError(t, err)
	return NewSheetWriter(store, message.MustNew(language), "", pdfFontPath, slog.New(slog.NewTextHandler(io.Discard, nil)), stdout)
}

func TestSheetWriter_Sheet(t *testing.T) {
	writer := newTestSheetWriter(t, message.English, "", io.Discard)

	got, err := writer.Sheet(LevelHSK4)
	require.NoError(t, err)
	assert.Equal(t, assets.VocabularySheet{
		Title:       "HSK4 vocabulary",
		Description: "3 words of HSK4",
		Headers: assets.SheetHeaders{
			Source:      "Chinese",
			Phonetic:    "Pinyin",
			Translation: "Japanese",
		},
		Entries: []assets.SheetEntry{
			{Source: "发展", Phonetic: "fāzhǎn", Translation: "発展"},
			{Source: "经济", Phonetic: "jīngjì", Translation: "経済"},
			{Source: "文化", Phonetic: "wénhuà", Translation: "文化"},
		},
		Footer: "Practice with `hskquiz play --level HSK4`.",
	}, got)

	_, err = writer.Sheet(Level("HSK5"))
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestSheetWriter_OutputSheet(t *testing.T) {
	tests := []struct {
		name        string
		generatePDF bool
		wantExt     string
	}{
		{name: "markdown only", wantExt: ".md"},
		{name: "with pdf", generatePDF: true, wantExt: ".pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			writer := newTestSheetWriter(t, message.Japanese, testutil.UTF8FontPath(t), &stdout)
			outputDirectory := filepath.Join(t.TempDir(), "outputs", "vocabulary")

			got, err := writer.OutputSheet(LevelHSK1, outputDirectory, tt.generatePDF)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, filepath.Ext(got))
			assert.FileExists(t, got)

			markdown, err := os.ReadFile(filepath.Join(outputDirectory, "HSK1.md"))
			require.NoError(t, err)
			assert.Contains(t, string(markdown), "# HSK1 単語リスト")
			assert.Contains(t, string(markdown), "| 1 | 你好 | nǐ hǎo | こんにちは |")
			assert.Contains(t, stdout.String(), "Vocabulary sheet written to:")
		})
	}

	t.Run("unknown level writes nothing", func(t *testing.T) {
		writer := newTestSheetWriter(t, message.Japanese, "", io.Discard)
		outputDirectory := filepath.Join(t.TempDir(), "out")

		_, err := writer.OutputSheet(Level("HSK0"), outputDirectory, false)
		assert.ErrorIs(t, err, ErrUnknownLevel)
		assert.NoDirExists(t, outputDirectory)
	})

	t.Run("pdf without a font writes nothing", func(t *testing.T) {
		writer := newTestSheetWriter(t, message.Japanese, "", io.Discard)
		outputDirectory := filepath.Join(t.TempDir(), "out")

		_, err := writer.OutputSheet(LevelHSK1, outputDirectory, true)
		assert.ErrorIs(t, err, ErrPDFFontRequired)
		assert.NoDirExists(t, outputDirectory)
	})
}
