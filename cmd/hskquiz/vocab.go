package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/hskquiz/internal/cli"
	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

func newLevelsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the HSK levels and their number of words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := vocabulary.NewStore()
			if err != nil {
				return fmt.Errorf("vocabulary.NewStore() > %w", err)
			}
			return cli.PrintLevels(opts.stdout, store)
		},
	}
}

func newVocabCommand(opts *rootOptions) *cobra.Command {
	vocabCommand := &cobra.Command{
		Use:   "vocab",
		Short: "Vocabulary table commands",
	}
	vocabCommand.AddCommand(
		newVocabListCommand(opts),
		newVocabExportCommand(opts),
	)
	return vocabCommand
}

func newVocabListCommand(opts *rootOptions) *cobra.Command {
	var level string
	command := &cobra.Command{
		Use:   "list",
		Short: "Print the words of a level, or of every level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig(cmd.Flags(), map[string]string{
				"quiz.language": "lang",
			})
			if err != nil {
				return err
			}
			store, err := vocabulary.NewStore()
			if err != nil {
				return fmt.Errorf("vocabulary.NewStore() > %w", err)
			}

			levels := store.Levels()
			if level != "" {
				parsed, err := vocabulary.ParseLevel(level)
				if err != nil {
					return err
				}
				levels = []vocabulary.Level{parsed}
			}
			catalog, err := message.New(cfg.Quiz.DisplayLanguage())
			if err != nil {
				return fmt.Errorf("message.New() > %w", err)
			}
			return cli.PrintVocabulary(opts.stdout, store, catalog, levels)
		},
	}
	command.Flags().StringVar(&level, "level", "", "HSK level. Every level is printed when empty")
	command.Flags().String("lang", string(message.Japanese), "Display language: ja or en")
	return command
}

func newVocabExportCommand(opts *rootOptions) *cobra.Command {
	var generatePDF bool
	command := &cobra.Command{
		Use:   "export",
		Short: "Write a markdown vocabulary sheet of a level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.loadConfig(cmd.Flags(), map[string]string{
				"quiz.level":                   "level",
				"quiz.language":                "lang",
				"outputs.vocabulary_directory": "output",
				"templates.pdf_font":           "pdf-font",
			})
			if err != nil {
				return err
			}
			store, err := vocabulary.NewStore()
			if err != nil {
				return fmt.Errorf("vocabulary.NewStore() > %w", err)
			}
			level, err := vocabulary.ParseLevel(cfg.Quiz.Level)
			if err != nil {
				return err
			}
			catalog, err := message.New(cfg.Quiz.DisplayLanguage())
			if err != nil {
				return fmt.Errorf("message.New() > %w", err)
			}

			writer := vocabulary.NewSheetWriter(store, catalog, cfg.Templates.VocabularySheetTemplate, cfg.Templates.PDFFont, logger, opts.stdout)
			if _, err := writer.OutputSheet(level, cfg.Outputs.VocabularyDirectory, generatePDF); err != nil {
				return fmt.Errorf("writer.OutputSheet() > %w", err)
			}
			return nil
		},
	}
	flags := command.Flags()
	flags.String("level", string(vocabulary.LevelHSK1), "HSK level: HSK1, HSK2, HSK3 or HSK4")
	flags.String("lang", string(message.Japanese), "Display language: ja or en")
	flags.String("output", "", "Output directory. Defaults to outputs.vocabulary_directory of the configuration")
	flags.BoolVar(&generatePDF, "pdf", false, "Generate PDF output in addition to markdown. Requires a CJK font")
	flags.String("pdf-font", "", "TrueType font embedded into the PDF. Defaults to templates.pdf_font of the configuration")
	return command
}
