package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hskquiz/internal/testutil"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

func TestLevelsCommand(t *testing.T) {
	testutil.Isolate(t)

	got, err := execute(t, "", "levels")
	require.NoError(t, err)
	assert.Equal(t, "HSK1\t3\nHSK2\t3\nHSK3\t3\nHSK4\t3\n", got)
}

func TestVocabListCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
		wantErr error
	}{
		{
			name:    "one level",
			args:    []string{"vocab", "list", "--level", "hsk2", "--lang", "en"},
			want:    []string{"3 words of HSK2", "朋友 (péngyou) → 友達"},
			notWant: []string{"HSK1"},
		},
		{
			name: "every level",
			args: []string{"vocab", "list"},
			want: []string{"HSK1の単語 3語", "HSK4の単語 3語"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Isolate(t)
			got, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, got, notWant)
			}
		})
	}

	t.Run("unknown level", func(t *testing.T) {
		testutil.Isolate(t)
		_, err := execute(t, "", "vocab", "list", "--level", "HSK7")
		assert.ErrorContains(t, err, "unknown level")
	})
}

func TestVocabExportCommand(t *testing.T) {
	t.Run("writes the sheet to the output directory", func(t *testing.T) {
		dir := testutil.Isolate(t)
		output := filepath.Join(dir, "sheets")

		got, err := execute(t, "", "vocab", "export", "--level", "HSK3", "--lang", "en", "--output", output)
		require.NoError(t, err)
		assert.Contains(t, got, "Vocabulary sheet written to:")

		content, err := os.ReadFile(filepath.Join(output, "HSK3.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "# HSK3 vocabulary")
		assert.Contains(t, string(content), "| 1 | 今天 | jīntiān |")
	})

	t.Run("uses the configured template and directory", func(t *testing.T) {
		dir := testutil.Isolate(t)
		require.NoError(t, writeFile(filepath.Join(dir, "sheet.md.go.tmpl"), "{{ .Title }}{{ range .Entries }} {{ .Source }}{{ end }}\n"))
		require.NoError(t, writeFile(filepath.Join(dir, "config.yml"), `templates:
  vocabulary_sheet_template: sheet.md.go.tmpl
outputs:
  vocabulary_directory: configured
quiz:
  level: HSK4
`))

		_, err := execute(t, "", "vocab", "export")
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "configured", "HSK4.md"))
		require.NoError(t, err)
		assert.Equal(t, "HSK4 単語リスト 发展 经济 文化\n", string(content))
	})

	t.Run("pdf embeds the configured font", func(t *testing.T) {
		dir := testutil.Isolate(t)
		output := filepath.Join(dir, "sheets")

		got, err := execute(t, "", "vocab", "export", "--output", output, "--pdf", "--pdf-font", testutil.UTF8FontPath(t))
		require.NoError(t, err)
		assert.Contains(t, got, "PDF generated at:")

		content, err := os.ReadFile(filepath.Join(output, "HSK1.pdf"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "/FontFile2")
	})

	t.Run("pdf without a font", func(t *testing.T) {
		dir := testutil.Isolate(t)
		output := filepath.Join(dir, "sheets")

		_, err := execute(t, "", "vocab", "export", "--output", output, "--pdf")
		assert.ErrorIs(t, err, vocabulary.ErrPDFFontRequired)
		assert.NoDirExists(t, output)
	})

	t.Run("invalid level", func(t *testing.T) {
		testutil.Isolate(t)
		_, err := execute(t, "", "vocab", "export", "--level", "HSK9")
		assert.ErrorContains(t, err, "level must be one of HSK1, HSK2, HSK3, HSK4")
	})
}
