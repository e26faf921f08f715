package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/hskquiz/internal/api"
	"github.com/at-ishikawa/hskquiz/internal/cli"
	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

var playFlagNames = map[string]string{
	"quiz.level":          "level",
	"quiz.question_count": "count",
	"quiz.mode":           "mode",
	"quiz.language":       "lang",
}

func newPlayCommand(opts *rootOptions) *cobra.Command {
	var serverURL string
	command := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz in the terminal. Type 'quit' to stop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.loadConfig(cmd.Flags(), playFlagNames)
			if err != nil {
				return err
			}
			language := cfg.Quiz.DisplayLanguage()
			catalog, err := message.New(language)
			if err != nil {
				return fmt.Errorf("message.New() > %w", err)
			}

			driver, err := newQuizDriver(serverURL, language, logger)
			if err != nil {
				return err
			}
			quizCLI := cli.NewQuizCLI(driver, cfg.Quiz.Settings(), catalog, opts.stdin, opts.stdout)
			return quizCLI.Run(cmd.Context(), quizCLI)
		},
	}

	flags := command.Flags()
	flags.String("level", string(vocabulary.LevelHSK1), "HSK level: HSK1, HSK2, HSK3 or HSK4")
	flags.Int("count", 10, "Number of questions")
	flags.String("mode", string(quiz.ModeChineseToJapanese), "Direction: JP→CN (jp-cn) or CN→JP (cn-jp)")
	flags.String("lang", string(message.Japanese), "Display language: ja or en")
	flags.StringVar(&serverURL, "server", "", "Play on a hskquiz-server at this URL instead of in process")
	return command
}

// newQuizDriver plays in process, or on the server when serverURL is set.
func newQuizDriver(serverURL string, language message.Language, logger *slog.Logger) (cli.Quiz, error) {
	if serverURL != "" {
		logger.Debug("playing on a server", slog.String("url", serverURL))
		client := api.NewQuizServiceClient(http.DefaultClient, serverURL)
		return cli.NewRemoteQuiz(client, language), nil
	}

	store, err := vocabulary.NewStore()
	if err != nil {
		return nil, fmt.Errorf("vocabulary.NewStore() > %w", err)
	}
	factory, err := quiz.NewFactory(quiz.NewGenerator(store), quiz.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("quiz.NewFactory() > %w", err)
	}
	controller, err := factory.New(language)
	if err != nil {
		return nil, fmt.Errorf("factory.New() > %w", err)
	}
	return cli.NewLocalQuiz(controller), nil
}
