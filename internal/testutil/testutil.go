// Package testutil provides shared test helpers for isolating the working directory and creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// Environment lists the variables that override the configuration.
var Environment = []string{"HSKQUIZ_PORT", "HSKQUIZ_LANGUAGE", "HSKQUIZ_LOG_FORMAT"}

// Isolate moves the test into an empty directory, which is also HOME, and clears the
// configuration variables, so that no real configuration is read. Returns the directory.
func Isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, env := range Environment {
		t.Setenv(env, "")
	}
	return dir
}

// ConfigOption configures optional fields of the generated config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	level         string
	questionCount int
	mode          string
	language      string
	logFormat     string
	template      string
	pdfFont       string
}

func WithQuiz(level string, questionCount int, mode string) ConfigOption {
	return func(c *testConfig) {
		c.level = level
		c.questionCount = questionCount
		c.mode = mode
	}
}

func WithLanguage(language string) ConfigOption {
	return func(c *testConfig) {
		c.language = language
	}
}

func WithLogFormat(format string) ConfigOption {
	return func(c *testConfig) {
		c.logFormat = format
	}
}

// WithVocabularySheetTemplate writes the template next to the config file and configures it.
func WithVocabularySheetTemplate(content string) ConfigOption {
	return func(c *testConfig) {
		c.template = content
	}
}

// WithPDFFont configures templates.pdf_font.
func WithPDFFont(path string) ConfigOption {
	return func(c *testConfig) {
		c.pdfFont = path
	}
}

// UTF8FontPath returns a TrueType font that tests can embed into PDF files.
func UTF8FontPath(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "testdata", "DejaVuSansCondensed.ttf")
}

// SetupTestConfig creates a config file and the output directory for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		level:         "HSK1",
		questionCount: 3,
		mode:          "CN→JP",
		language:      "ja",
		logFormat:     "text",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	outputDir := filepath.Join(tmpDir, "output_vocabulary")
	require.NoError(t, os.MkdirAll(outputDir, 0755))

	templateLines := ""
	if cfg.template != "" {
		templatePath := filepath.Join(tmpDir, "vocabulary-sheet.md.go.tmpl")
		require.NoError(t, os.WriteFile(templatePath, []byte(cfg.template), 0644))
		templateLines += fmt.Sprintf("  vocabulary_sheet_template: %s\n", templatePath)
	}
	if cfg.pdfFont != "" {
		templateLines += fmt.Sprintf("  pdf_font: %s\n", cfg.pdfFont)
	}
	if templateLines != "" {
		templateLines = "templates:\n" + templateLines
	}

	configContent := fmt.Sprintf(`server:
  port: 18080
  session_ttl: 1m
quiz:
  level: %s
  question_count: %d
  mode: %s
  language: %s
log:
  format: %s
outputs:
  vocabulary_directory: %s
%s`,
		cfg.level,
		cfg.questionCount,
		cfg.mode,
		cfg.language,
		cfg.logFormat,
		outputDir,
		templateLines,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
