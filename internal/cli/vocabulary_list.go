package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

// PrintVocabulary prints every entry of the levels, one level after another.
func PrintVocabulary(stdout io.Writer, store *vocabulary.Store, catalog *message.Catalog, levels []vocabulary.Level) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	bold := color.New(color.Bold)
	for i, level := range levels {
		entries, err := store.Lookup(level)
		if err != nil {
			return fmt.Errorf("store.Lookup() > %w", err)
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		_, _ = bold.Fprintln(stdout, catalog.Text(message.KeySheetDescription, level.String(), strconv.Itoa(len(entries))))
		for j, entry := range entries {
			fmt.Fprintf(stdout, "  %d. %s → %s\n", j+1, entry.SourceWithPhonetic(), entry.Translation)
		}
	}
	return nil
}

// PrintLevels prints the levels with the number of their entries.
func PrintLevels(stdout io.Writer, store *vocabulary.Store) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	for _, level := range store.Levels() {
		entries, err := store.Lookup(level)
		if err != nil {
			return fmt.Errorf("store.Lookup() > %w", err)
		}
		fmt.Fprintf(stdout, "%s\t%d\n", level, len(entries))
	}
	return nil
}
