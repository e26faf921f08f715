package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Log       LogConfig       `mapstructure:"log"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type ServerConfig struct {
	Port       int           `mapstructure:"port" validate:"min=1,max=65535"`
	CORS       CORSConfig    `mapstructure:"cors"`
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"min=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// QuizConfig holds the default settings of a quiz and the display language.
type QuizConfig struct {
	Level         string `mapstructure:"level" validate:"hsklevel"`
	QuestionCount int    `mapstructure:"question_count" validate:"min=1"`
	Mode          string `mapstructure:"mode" validate:"quizmode"`
	Language      string `mapstructure:"language" validate:"language"`
}

// Settings returns the quiz settings of the configuration.
func (c QuizConfig) Settings() quiz.Settings {
	return quiz.NewSettings(c.Level, c.QuestionCount, c.Mode)
}

// DisplayLanguage returns the configured language. Load has validated it.
func (c QuizConfig) DisplayLanguage() message.Language {
	language, err := message.ParseLanguage(c.Language)
	if err != nil {
		return message.Languages[0]
	}
	return language
}

type LogConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json tint"`
}

type TemplatesConfig struct {
	VocabularySheetTemplate string `mapstructure:"vocabulary_sheet_template" validate:"omitempty,file"`
	// PDFFont is a TrueType font with CJK glyphs, embedded into exported PDF sheets.
	PDFFont string `mapstructure:"pdf_font" validate:"omitempty,file"`
}

type OutputsConfig struct {
	VocabularyDirectory string `mapstructure:"vocabulary_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	envFile    string
}

type LoaderOption func(*ConfigLoader)

// WithEnvFile changes the dotenv file read before the environment is bound. It defaults to .env.
func WithEnvFile(path string) LoaderOption {
	return func(loader *ConfigLoader) {
		loader.envFile = path
	}
}

func NewConfigLoader(configFile string, opts ...LoaderOption) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hskquiz")
	}

	loader := &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		envFile:    ".env",
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader, nil
}

// BindFlags lets command line flags override configuration keys. flagNames maps a
// configuration key such as quiz.level to a flag name.
func (loader *ConfigLoader) BindFlags(flags *pflag.FlagSet, flagNames map[string]string) error {
	for key, name := range flagNames {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag --%s is not defined", name)
		}
		if err := loader.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s to %s: %w", name, key, err)
		}
	}
	return nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.session_ttl", 30*time.Minute)
	v.SetDefault("quiz.level", "HSK1")
	v.SetDefault("quiz.question_count", 10)
	v.SetDefault("quiz.mode", string(quiz.ModeChineseToJapanese))
	v.SetDefault("quiz.language", string(message.Japanese))
	v.SetDefault("log.format", "text")
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.vocabulary_sheet_template", "")
	v.SetDefault("templates.pdf_font", "")
	v.SetDefault("outputs.vocabulary_directory", filepath.Join("outputs", "vocabulary"))

	if loader.envFile != "" {
		if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", loader.envFile, err)
		}
	}

	envBindings := map[string]string{
		"server.port":   "HSKQUIZ_PORT",
		"quiz.language": "HSKQUIZ_LANGUAGE",
		"log.format":    "HSKQUIZ_LOG_FORMAT",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads the configuration file, or config.yml in the working directory when configFile is empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
