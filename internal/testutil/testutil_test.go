package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hskquiz/internal/config"
)

func TestIsolate(t *testing.T) {
	t.Setenv("HSKQUIZ_LANGUAGE", "en")

	dir := Isolate(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
	assert.Equal(t, dir, os.Getenv("HOME"))
	assert.Empty(t, os.Getenv("HSKQUIZ_LANGUAGE"))
}

func TestSetupTestConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []ConfigOption
		want func(tmpDir string) config.Config
	}{
		{
			name: "defaults",
			want: func(tmpDir string) config.Config {
				return config.Config{
					Server: config.ServerConfig{
						Port:       18080,
						CORS:       config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
						SessionTTL: time.Minute,
					},
					Quiz: config.QuizConfig{
						Level:         "HSK1",
						QuestionCount: 3,
						Mode:          "CN→JP",
						Language:      "ja",
					},
					Log: config.LogConfig{Format: "text"},
					Outputs: config.OutputsConfig{
						VocabularyDirectory: filepath.Join(tmpDir, "output_vocabulary"),
					},
				}
			},
		},
		{
			name: "with options",
			opts: []ConfigOption{
				WithQuiz("HSK4", 2, "JP→CN"),
				WithLanguage("en"),
				WithLogFormat("json"),
				WithVocabularySheetTemplate("{{ .Title }}"),
				WithPDFFont(UTF8FontPath(t)),
			},
			want: func(tmpDir string) config.Config {
				return config.Config{
					Server: config.ServerConfig{
						Port:       18080,
						CORS:       config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
						SessionTTL: time.Minute,
					},
					Quiz: config.QuizConfig{
						Level:         "HSK4",
						QuestionCount: 2,
						Mode:          "JP→CN",
						Language:      "en",
					},
					Log: config.LogConfig{Format: "json"},
					Templates: config.TemplatesConfig{
						VocabularySheetTemplate: filepath.Join(tmpDir, "vocabulary-sheet.md.go.tmpl"),
						PDFFont:                 UTF8FontPath(t),
					},
					Outputs: config.OutputsConfig{
						VocabularyDirectory: filepath.Join(tmpDir, "output_vocabulary"),
					},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := Isolate(t)
			got := SetupTestConfig(t, tmpDir, tt.opts...)
			assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)
			assert.DirExists(t, filepath.Join(tmpDir, "output_vocabulary"))

			cfg, err := config.Load(got)
			require.NoError(t, err)
			assert.Equal(t, tt.want(tmpDir), *cfg)
		})
	}
}
