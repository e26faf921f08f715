package assets

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVocabularySheet(t *testing.T) {
	sheet := VocabularySheet{
		Title:       "HSK1 vocabulary",
		Description: "2 words of HSK1",
		Headers: SheetHeaders{
			Source:      "Chinese",
			Phonetic:    "Pinyin",
			Translation: "Japanese",
		},
		Entries: []SheetEntry{
			{Source: "你好", Phonetic: "nǐhǎo", Translation: "こんにちは"},
			{Source: "谢谢", Phonetic: "xièxiè", Translation: "ありがとう"},
		},
		Footer: "Practice with `hskquiz play --level HSK1`.",
	}

	writeTemplate := func(t *testing.T, content string) string {
		templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
		require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
		return templatePath
	}

	tests := []struct {
		name         string
		templatePath func(t *testing.T) string
		want         string
		// only the beginning of the embedded output is compared
		wantPrefix bool
	}{
		{
			name:         "uses embedded template when no path is configured",
			templatePath: func(t *testing.T) string { return "" },
			want: `# HSK1 vocabulary

2 words of HSK1

| # | Chinese | Pinyin | Japanese |
|---|---|---|---|
| 1 | 你好 | nǐhǎo | こんにちは |
| 2 | 谢谢 | xièxiè | ありがとう |

Practice with ` + "`hskquiz play --level HSK1`" + `.
`,
		},
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				return writeTemplate(t, `{{ .Title }}:{{ range .Entries }} {{ .Source }}{{ end }}`)
			},
			want: "HSK1 vocabulary: 你好 谢谢",
		},
		{
			name:         "uses embedded template when file doesn't exist",
			templatePath: func(t *testing.T) string { return "/non/existent/invalid.md.go.tmpl" },
			want:         "# HSK1 vocabulary\n",
			wantPrefix:   true,
		},
		{
			name: "uses embedded template when file cannot be parsed",
			templatePath: func(t *testing.T) string {
				return writeTemplate(t, `{{ .Title `)
			},
			want:       "# HSK1 vocabulary\n",
			wantPrefix: true,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteVocabularySheet(&buf, logger, tt.templatePath(t), sheet)
			require.NoError(t, err)
			if tt.wantPrefix {
				assert.True(t, strings.HasPrefix(buf.String(), tt.want), buf.String())
				return
			}
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteVocabularySheet_ExecuteError(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "broken.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte(`{{ .Missing }}`), 0644))

	var buf bytes.Buffer
	err := WriteVocabularySheet(&buf, slog.New(slog.NewTextHandler(io.Discard, nil)), templatePath, VocabularySheet{})
	assert.ErrorContains(t, err, "tmpl.Execute()")
}
