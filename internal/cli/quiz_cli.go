package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
)

//go:generate mockgen -source=quiz_cli.go -destination=../mocks/cli/mock_quiz.go -package=mock_cli Quiz

// Quiz is the quiz a terminal session plays, either in process or on a server.
type Quiz interface {
	Current(ctx context.Context) (quiz.View, error)
	SubmitSettings(ctx context.Context, settings quiz.Settings) (quiz.View, error)
	SubmitAnswer(ctx context.Context, answer string) (quiz.View, error)
	Restart(ctx context.Context) (quiz.View, error)
}

const quitCommand = "quit"

// QuizCLI plays a quiz in the terminal. Each call of Session handles one step of the quiz.
type QuizCLI struct {
	*InteractiveQuizCLI
	quiz      Quiz
	settings  quiz.Settings
	catalog   *message.Catalog
	presenter *quiz.Presenter
}

// NewQuizCLI creates a CLI which starts the quiz with the settings. Nil stdin and stdout use the process ones.
func NewQuizCLI(
	driver Quiz,
	settings quiz.Settings,
	catalog *message.Catalog,
	stdin io.Reader,
	stdout io.Writer,
) *QuizCLI {
	return &QuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		quiz:               driver,
		settings:           settings,
		catalog:            catalog,
		presenter:          quiz.NewPresenter(catalog),
	}
}

func (c *QuizCLI) Session(ctx context.Context) error {
	view, err := c.quiz.Current(ctx)
	if err != nil {
		return fmt.Errorf("quiz.Current() > %w", err)
	}

	switch view.State {
	case quiz.StateIdle:
		return c.start(ctx)
	case quiz.StateInProgress:
		return c.ask(ctx, view)
	case quiz.StateFinished:
		return c.finish(ctx, view)
	}
	return fmt.Errorf("unknown quiz state %q", view.State)
}

func (c *QuizCLI) start(ctx context.Context) error {
	view, err := c.quiz.SubmitSettings(ctx, c.settings)
	if err != nil {
		if quiz.IsRejection(err) {
			c.printError(err)
			return errEnd
		}
		return fmt.Errorf("quiz.SubmitSettings() > %w", err)
	}

	fmt.Fprintln(c.stdoutWriter, c.catalog.Text(
		message.KeyQuizStarted,
		strconv.Itoa(view.Total),
		c.settings.Level.String(),
		c.settings.Mode.String(),
	))
	fmt.Fprintln(c.stdoutWriter)
	return nil
}

func (c *QuizCLI) ask(ctx context.Context, view quiz.View) error {
	_, _ = c.bold.Fprintln(c.stdoutWriter, view.QuestionText)
	fmt.Fprintln(c.stdoutWriter, view.ScoreText)
	_, _ = c.bold.Fprintf(c.stdoutWriter, "%s: ", c.catalog.Text(message.KeyAnswerPrompt))

	input, err := c.readLine()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.stdoutWriter)
		return errEnd
	}
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, quitCommand) {
		fmt.Fprintln(c.stdoutWriter, c.catalog.Text(message.KeyGoodbye))
		return errEnd
	}
	if input == "" {
		return nil
	}

	answered, err := c.quiz.SubmitAnswer(ctx, input)
	if err != nil {
		if quiz.IsRejection(err) {
			c.printError(err)
			return nil
		}
		return fmt.Errorf("quiz.SubmitAnswer() > %w", err)
	}

	if outcome := answered.LastAnswer; outcome != nil {
		if outcome.Correct {
			_, _ = c.green.Fprintf(c.stdoutWriter, "✅ %s\n", c.catalog.Text(message.KeyAnswerCorrect))
		} else {
			_, _ = c.red.Fprintf(c.stdoutWriter, "❌ %s\n", c.catalog.Text(message.KeyAnswerWrong, outcome.Expected))
		}
	}
	fmt.Fprintln(c.stdoutWriter)
	return nil
}

func (c *QuizCLI) finish(ctx context.Context, view quiz.View) error {
	if result := view.Result; result != nil {
		_, _ = c.bold.Fprintln(c.stdoutWriter, result.Heading)
		fmt.Fprintln(c.stdoutWriter, result.Summary)
		fmt.Fprintln(c.stdoutWriter, result.Encouragement)
		_, _ = c.tierColor(result.Tier).Fprintln(c.stdoutWriter, result.Feedback)
		for _, detail := range result.Details {
			if detail.Correct {
				continue
			}
			fmt.Fprintf(c.stdoutWriter, "  %d. %s → %s\n", detail.ID, detail.UserAnswer, detail.Expected)
		}
		fmt.Fprintln(c.stdoutWriter)
	}

	fmt.Fprint(c.stdoutWriter, c.catalog.Text(message.KeyRestartPrompt))
	input, err := c.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading input: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		if _, err := c.quiz.Restart(ctx); err != nil {
			return fmt.Errorf("quiz.Restart() > %w", err)
		}
		fmt.Fprintln(c.stdoutWriter)
		return nil
	}
	fmt.Fprintln(c.stdoutWriter, c.catalog.Text(message.KeyGoodbye))
	return errEnd
}

func (c *QuizCLI) tierColor(tier quiz.Tier) *color.Color {
	switch tier {
	case quiz.TierExcellent:
		return c.green
	case quiz.TierGood:
		return c.yellow
	default:
		return c.red
	}
}

func (c *QuizCLI) printError(err error) {
	_, _ = c.red.Fprintln(c.stdoutWriter, c.presenter.ErrorMessage(err))
}
