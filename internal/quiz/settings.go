package quiz

import (
	"fmt"
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	jaTranslations "github.com/go-playground/validator/v10/translations/ja"

	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

// Settings is the settings form of a quiz.
type Settings struct {
	Level         vocabulary.Level `json:"level" validate:"hsklevel"`
	QuestionCount int              `json:"questionCount" validate:"min=1"`
	Mode          Mode             `json:"mode" validate:"quizmode"`
}

// NewSettings normalizes user input. Values that cannot be parsed are kept as typed,
// so that validation reports them.
func NewSettings(level string, questionCount int, mode string) Settings {
	settings := Settings{
		Level:         vocabulary.Level(level),
		QuestionCount: questionCount,
		Mode:          Mode(mode),
	}
	if parsed, err := vocabulary.ParseLevel(level); err == nil {
		settings.Level = parsed
	}
	if parsed, err := ParseMode(mode); err == nil {
		settings.Mode = parsed
	}
	return settings
}

// FieldViolation describes one invalid settings field
type FieldViolation struct {
	Field       string
	Description string
}

// ValidationError lists every invalid field of a settings submission.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	descriptions := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		descriptions = append(descriptions, violation.Description)
	}
	return strings.Join(descriptions, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSettings
}

var customTranslations = map[message.Language]map[string]string{
	message.Japanese: {
		"hsklevel": "{0}はHSK1、HSK2、HSK3、HSK4のいずれかでなければなりません",
		"quizmode": "{0}はJP→CNまたはCN→JPでなければなりません",
	},
	message.English: {
		"hsklevel": "{0} must be one of HSK1, HSK2, HSK3, HSK4",
		"quizmode": "{0} must be either JP→CN or CN→JP",
	},
}

// SettingsValidator validates settings and translates violations into the display language.
type SettingsValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewSettingsValidator(language message.Language) (*SettingsValidator, error) {
	translator, err := message.NewTranslator(language)
	if err != nil {
		return nil, fmt.Errorf("message.NewTranslator() > %w", err)
	}

	validate := validator.New()
	switch language {
	case message.Japanese:
		err = jaTranslations.RegisterDefaultTranslations(validate, translator)
	default:
		err = enTranslations.RegisterDefaultTranslations(validate, translator)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validations := map[string]validator.Func{
		"hsklevel": func(fl validator.FieldLevel) bool {
			return vocabulary.Level(fl.Field().String()).Valid()
		},
		"quizmode": func(fl validator.FieldLevel) bool {
			return Mode(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
		text := customTranslations[language][tag]
		if err := validate.RegisterTranslation(tag, translator, func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), fe.Field())
			return t
		}); err != nil {
			return nil, fmt.Errorf("failed to register %s translation: %w", tag, err)
		}
	}

	return &SettingsValidator{
		validate:   validate,
		translator: translator,
	}, nil
}

// Validate returns a *ValidationError when any field is invalid.
func (v *SettingsValidator) Validate(settings Settings) error {
	err := v.validate.Struct(settings)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate.Struct() > %w", err)
	}

	violations := make([]FieldViolation, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		violations = append(violations, FieldViolation{
			Field:       fieldErr.Field(),
			Description: fieldErr.Translate(v.translator),
		})
	}
	return &ValidationError{Violations: violations}
}
