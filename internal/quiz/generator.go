package quiz

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

// Question is one prompt of a quiz. IDs are 1-based and sequential within a session.
type Question struct {
	ID     int
	Prompt string
	Answer string
}

//go:generate mockgen -source=generator.go -destination=../mocks/quiz/mock_vocabulary.go -package=mock_quiz Vocabulary

// Vocabulary is the source of entries per level
type Vocabulary interface {
	Lookup(level vocabulary.Level) ([]vocabulary.Entry, error)
}

// Shuffler permutes entries in place.
type Shuffler func(entries []vocabulary.Entry)

func shuffleUniformly(entries []vocabulary.Entry) {
	lo.Shuffle(entries)
}

// Generator builds question lists from the vocabulary.
type Generator struct {
	vocabulary Vocabulary
	shuffle    Shuffler
}

type GeneratorOption func(*Generator)

// WithShuffler replaces the random permutation, e.g. with a deterministic one in tests.
func WithShuffler(shuffle Shuffler) GeneratorOption {
	return func(g *Generator) {
		g.shuffle = shuffle
	}
}

func NewGenerator(vocabulary Vocabulary, opts ...GeneratorOption) *Generator {
	g := &Generator{
		vocabulary: vocabulary,
		shuffle:    shuffleUniformly,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws up to count entries of the level in random order.
// A count larger than the level yields every entry; a count of zero or less yields an empty list.
func (g *Generator) Generate(level vocabulary.Level, count int, mode Mode) ([]Question, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	entries, err := g.vocabulary.Lookup(level)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Lookup(%s) > %w", level, err)
	}
	if count <= 0 {
		return []Question{}, nil
	}

	selected := slices.Clone(entries)
	g.shuffle(selected)
	selected = selected[:min(count, len(selected))]

	return lo.Map(selected, func(entry vocabulary.Entry, i int) Question {
		return Question{
			ID:     i + 1,
			Prompt: mode.prompt(entry),
			Answer: mode.answer(entry),
		}
	}), nil
}
