package quiz

import (
	"fmt"

	"github.com/at-ishikawa/hskquiz/internal/message"
)

// Factory builds controllers that share one generator. Validators and presenters are built
// once per display language and are safe to share.
type Factory struct {
	generator  *Generator
	validators map[message.Language]*SettingsValidator
	presenters map[message.Language]*Presenter
	options    []ControllerOption
}

func NewFactory(generator *Generator, opts ...ControllerOption) (*Factory, error) {
	factory := &Factory{
		generator:  generator,
		validators: make(map[message.Language]*SettingsValidator, len(message.Languages)),
		presenters: make(map[message.Language]*Presenter, len(message.Languages)),
		options:    opts,
	}
	for _, language := range message.Languages {
		validator, err := NewSettingsValidator(language)
		if err != nil {
			return nil, fmt.Errorf("NewSettingsValidator(%s) > %w", language, err)
		}
		catalog, err := message.New(language)
		if err != nil {
			return nil, fmt.Errorf("message.New(%s) > %w", language, err)
		}
		factory.validators[language] = validator
		factory.presenters[language] = NewPresenter(catalog)
	}
	return factory, nil
}

// New returns an idle controller rendering texts in the language.
func (f *Factory) New(language message.Language) (*Controller, error) {
	validator, ok := f.validators[language]
	if !ok {
		return nil, fmt.Errorf("%w: %q", message.ErrUnsupportedLanguage, language)
	}
	return NewController(f.generator, validator, f.presenters[language], f.options...), nil
}
