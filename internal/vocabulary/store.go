// Package vocabulary holds the compiled-in HSK vocabulary table.
package vocabulary

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed hsk.yml
var embeddedTable []byte

var (
	// ErrUnknownLevel is returned when a level key is not one of the fixed HSK levels.
	ErrUnknownLevel = errors.New("unknown level")
)

// Level selects a fixed-order list of entries
type Level string

const (
	LevelHSK1 Level = "HSK1"
	LevelHSK2 Level = "HSK2"
	LevelHSK3 Level = "HSK3"
	LevelHSK4 Level = "HSK4"
)

var knownLevels = []Level{LevelHSK1, LevelHSK2, LevelHSK3, LevelHSK4}

// Valid reports whether the level is one of the four HSK levels
func (l Level) Valid() bool {
	return slices.Contains(knownLevels, l)
}

func (l Level) String() string {
	return string(l)
}

// ParseLevel converts user input such as "hsk1" into a Level.
func ParseLevel(value string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(value)))
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, value)
	}
	return level, nil
}

// Entry is a single vocabulary item
type Entry struct {
	Source      string `yaml:"source"`
	Phonetic    string `yaml:"phonetic"`
	Translation string `yaml:"translation"`
}

// SourceWithPhonetic formats the entry as "你好 (nǐ hǎo)".
func (e Entry) SourceWithPhonetic() string {
	return fmt.Sprintf("%s (%s)", e.Source, e.Phonetic)
}

type tableFile struct {
	Levels []struct {
		Level   Level   `yaml:"level"`
		Entries []Entry `yaml:"entries"`
	} `yaml:"levels"`
}

// Store is a read-only mapping from level to its entries.
type Store struct {
	levels  []Level
	entries map[Level][]Entry
}

// NewStore loads the embedded vocabulary table.
func NewStore() (*Store, error) {
	return LoadStore(embeddedTable)
}

// LoadStore parses a vocabulary table in the embedded YAML format.
// Every level must be a known HSK level and must have at least one entry.
func LoadStore(data []byte) (*Store, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal() > %w", err)
	}

	store := &Store{
		entries: make(map[Level][]Entry, len(file.Levels)),
	}
	for _, section := range file.Levels {
		if !section.Level.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, section.Level)
		}
		if _, ok := store.entries[section.Level]; ok {
			return nil, fmt.Errorf("level %s is defined more than once", section.Level)
		}
		if len(section.Entries) == 0 {
			return nil, fmt.Errorf("level %s has no entries", section.Level)
		}
		for i, entry := range section.Entries {
			if entry.Source == "" || entry.Translation == "" {
				return nil, fmt.Errorf("level %s entry #%d is missing source or translation", section.Level, i+1)
			}
		}
		store.levels = append(store.levels, section.Level)
		store.entries[section.Level] = section.Entries
	}
	return store, nil
}

// Lookup returns a copy of the ordered entries of the level.
func (s *Store) Lookup(level Level) ([]Entry, error) {
	entries, ok := s.entries[level]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	return slices.Clone(entries), nil
}

// Levels returns the levels in table order.
func (s *Store) Levels() []Level {
	return slices.Clone(s.levels)
}
