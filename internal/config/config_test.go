package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
	"github.com/at-ishikawa/hskquiz/internal/testutil"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			CORS: CORSConfig{
				AllowedOrigins: []string{"http://localhost:3000"},
			},
			SessionTTL: 30 * time.Minute,
		},
		Quiz: QuizConfig{
			Level:         "HSK1",
			QuestionCount: 10,
			Mode:          "CN→JP",
			Language:      "ja",
		},
		Log: LogConfig{
			Format: "text",
		},
		Outputs: OutputsConfig{
			VocabularyDirectory: filepath.Join("outputs", "vocabulary"),
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		want              func(tempDir string) *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want: func(string) *Config {
				return defaultConfig()
			},
		},
		{
			name: "valid config file with custom values",
			configContent: `server:
  port: 9090
  session_ttl: 5m
  cors:
    allowed_origins:
      - https://quiz.example.com
quiz:
  level: hsk3
  question_count: 5
  mode: jp-cn
  language: en
log:
  format: json
outputs:
  vocabulary_directory: custom/vocabulary
`,
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Server = ServerConfig{
					Port:       9090,
					CORS:       CORSConfig{AllowedOrigins: []string{"https://quiz.example.com"}},
					SessionTTL: 5 * time.Minute,
				}
				cfg.Quiz = QuizConfig{
					Level:         "hsk3",
					QuestionCount: 5,
					Mode:          "jp-cn",
					Language:      "en",
				}
				cfg.Log.Format = "json"
				cfg.Outputs.VocabularyDirectory = "custom/vocabulary"
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `quiz:
  level: HSK2
`,
			useExplicitPath: true,
			want: func(string) *Config {
				cfg := defaultConfig()
				cfg.Quiz.Level = "HSK2"
				return cfg
			},
		},
		{
			name: "existing template file",
			configContent: `templates:
  vocabulary_sheet_template: sheet.md
  pdf_font: sheet.md
`,
			want: func(tempDir string) *Config {
				cfg := defaultConfig()
				cfg.Templates.VocabularySheetTemplate = "sheet.md"
				cfg.Templates.PDFFont = "sheet.md"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `quiz:
  level: HSK1
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "invalid values are all reported",
			configContent: `server:
  port: 0
quiz:
  level: HSK7
  question_count: 0
  mode: sideways
  language: zh
log:
  format: xml
`,
			wantErrorContains: []string{
				"invalid configuration",
				"port must be 1 or greater",
				"level must be one of HSK1, HSK2, HSK3, HSK4",
				"question_count must be 1 or greater",
				"mode must be either JP→CN or CN→JP",
				"language must be either ja or en",
				"format must be one of [text json tint]",
			},
		},
		{
			name: "missing template file",
			configContent: `templates:
  vocabulary_sheet_template: missing.md
`,
			wantErrorContains: []string{
				"templates.vocabulary_sheet_template must be an existing and readable file",
			},
		},
		{
			name: "missing pdf font file",
			configContent: `templates:
  pdf_font: NotoSansCJK.ttf
`,
			wantErrorContains: []string{
				"templates.pdf_font must be an existing and readable file",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := testutil.Isolate(t)
			require.NoError(t, os.WriteFile(filepath.Join(tempDir, "sheet.md"), []byte("# {{ .Level }}"), 0644))

			var configPath string
			if tt.configContent != "" {
				name := "config.yaml"
				if tt.useExplicitPath {
					name = "hskquiz.yml"
				}
				path := filepath.Join(tempDir, name)
				require.NoError(t, os.WriteFile(path, []byte(tt.configContent), 0644))
				if tt.useExplicitPath {
					configPath = path
				}
			}

			got, err := Load(configPath)
			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(tempDir), got)
		})
	}
}

func TestConfigLoader_Environment(t *testing.T) {
	tempDir := testutil.Isolate(t)
	t.Setenv("HSKQUIZ_PORT", "7070")
	t.Setenv("HSKQUIZ_LANGUAGE", "en")

	// Variables from the dotenv file do not override the environment.
	t.Setenv("HSKQUIZ_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("HSKQUIZ_LOG_FORMAT"))
	envFile := filepath.Join(tempDir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("HSKQUIZ_LOG_FORMAT=tint\nHSKQUIZ_PORT=6060\n"), 0644))

	loader, err := NewConfigLoader("", WithEnvFile(envFile))
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, got.Server.Port)
	assert.Equal(t, "en", got.Quiz.Language)
	assert.Equal(t, "tint", got.Log.Format)
}

func TestConfigLoader_MissingEnvFile(t *testing.T) {
	testutil.Isolate(t)

	loader, err := NewConfigLoader("", WithEnvFile("does-not-exist.env"))
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), got)
}

func TestConfigLoader_BindFlags(t *testing.T) {
	tempDir := testutil.Isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte("quiz:\n  level: HSK2\n  question_count: 3\n"), 0644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("level", "", "")
	flags.Int("count", 0, "")
	require.NoError(t, flags.Parse([]string{"--level", "HSK4"}))

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	require.NoError(t, loader.BindFlags(flags, map[string]string{
		"quiz.level":          "level",
		"quiz.question_count": "count",
	}))
	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "HSK4", got.Quiz.Level)
	// unchanged flags fall back to the file
	assert.Equal(t, 3, got.Quiz.QuestionCount)

	err = loader.BindFlags(flags, map[string]string{"quiz.mode": "mode"})
	assert.ErrorContains(t, err, "flag --mode is not defined")
}

func TestQuizConfig(t *testing.T) {
	cfg := QuizConfig{
		Level:         "hsk2",
		QuestionCount: 4,
		Mode:          "jp-cn",
		Language:      "EN",
	}
	assert.Equal(t, quiz.Settings{
		Level:         vocabulary.Level("HSK2"),
		QuestionCount: 4,
		Mode:          quiz.ModeJapaneseToChinese,
	}, cfg.Settings())
	assert.Equal(t, message.English, cfg.DisplayLanguage())
}
