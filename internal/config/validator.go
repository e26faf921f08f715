package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

type customValidation struct {
	fn          validator.Func
	translation string
}

var customValidations = map[string]customValidation{
	"file": {
		fn:          isFileReadable,
		translation: "{0} must be an existing and readable file",
	},
	"hsklevel": {
		fn: func(fl validator.FieldLevel) bool {
			_, err := vocabulary.ParseLevel(fl.Field().String())
			return err == nil
		},
		translation: "{0} must be one of HSK1, HSK2, HSK3, HSK4",
	},
	"quizmode": {
		fn: func(fl validator.FieldLevel) bool {
			_, err := quiz.ParseMode(fl.Field().String())
			return err == nil
		},
		translation: "{0} must be either JP→CN or CN→JP",
	},
	"language": {
		fn: func(fl validator.FieldLevel) bool {
			_, err := message.ParseLanguage(fl.Field().String())
			return err == nil
		},
		translation: "{0} must be either ja or en",
	},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, custom := range customValidations {
		if err := validate.RegisterValidation(tag, custom.fn); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
		if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, custom.translation, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), strings.TrimPrefix(fe.Namespace(), "Config."))
			return t
		}); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", tag, err)
		}
	}

	return validate, trans, nil
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(7))) != 0
}
