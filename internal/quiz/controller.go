package quiz

import (
	"fmt"
	"log/slog"
	"strings"
)

// State is the lifecycle state of the controller.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
)

// View is everything a user interface shows for the current state.
type View struct {
	State        State
	QuestionText string
	ScoreText    string
	Correct      int
	Total        int
	Result       *ResultView
	// LastAnswer is the outcome of the most recently answered question.
	LastAnswer *AnswerDetail

	QuizAreaVisible bool
	NextVisible     bool
	RestartVisible  bool
}

// Controller drives one quiz through Idle, InProgress and Finished.
// It is not safe for concurrent use; callers serialize events.
type Controller struct {
	generator *Generator
	validator *SettingsValidator
	presenter *Presenter
	logger    *slog.Logger

	state    State
	session  *Session
	settings Settings
	running  Result
	result   *Result
	// index of the last answered question, -1 before the first answer
	lastAnswered int
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(
	generator *Generator,
	validator *SettingsValidator,
	presenter *Presenter,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		generator: generator,
		validator: validator,
		presenter: presenter,
		logger:    slog.Default(),
		state:     StateIdle,
		session:   NewSession(),

		lastAnswered: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	return c.state
}

// Settings returns the settings of the current quiz
func (c *Controller) Settings() Settings {
	return c.settings
}

// Result returns the final result once the quiz is finished.
func (c *Controller) Result() (Result, bool) {
	if c.result == nil {
		return Result{}, false
	}
	return *c.result, true
}

// Questions returns the questions of the current quiz.
func (c *Controller) Questions() []Question {
	return c.session.Questions()
}

func (c *Controller) rejectUnless(want State, action string) error {
	if c.state == want {
		return nil
	}
	if c.state == StateIdle {
		return fmt.Errorf("%s: %w", action, ErrNoActiveSession)
	}
	return fmt.Errorf("%s while %s: %w", action, c.state, ErrActionNotAllowed)
}

// SubmitSettings generates a quiz and shows its first question.
// The controller stays idle when the settings are invalid or produce no questions.
func (c *Controller) SubmitSettings(settings Settings) error {
	if c.state != StateIdle {
		return fmt.Errorf("submit settings while %s: %w", c.state, ErrActionNotAllowed)
	}
	if err := c.validator.Validate(settings); err != nil {
		return err
	}

	questions, err := c.generator.Generate(settings.Level, settings.QuestionCount, settings.Mode)
	if err != nil {
		return fmt.Errorf("generator.Generate() > %w", err)
	}
	if len(questions) == 0 {
		return ErrEmptyQuiz
	}

	c.session.Start(questions)
	c.settings = settings
	c.running = Score(c.session)
	c.result = nil
	c.lastAnswered = -1
	c.state = StateInProgress
	c.logger.Debug("quiz started",
		slog.String("level", settings.Level.String()),
		slog.String("mode", settings.Mode.String()),
		slog.Int("questions", len(questions)),
	)
	return nil
}

// SubmitAnswer records the answer of the current question and moves on.
// Input that is empty after trimming is ignored without an error.
func (c *Controller) SubmitAnswer(input string) error {
	if err := c.rejectUnless(StateInProgress, "submit answer"); err != nil {
		return err
	}
	answer := strings.TrimSpace(input)
	if answer == "" {
		return nil
	}

	if err := c.session.RecordAnswer(answer); err != nil {
		return fmt.Errorf("session.RecordAnswer() > %w", err)
	}
	c.running = Score(c.session)
	c.lastAnswered = c.session.Position()

	if c.session.HasNext() {
		return c.session.Advance()
	}

	result := c.running
	c.result = &result
	c.state = StateFinished
	c.logger.Debug("quiz finished",
		slog.Int("correct", result.Correct),
		slog.Int("total", result.Total),
		slog.Float64("percentage", result.Percentage),
	)
	return nil
}

// ShowNext moves to the next question without scoring. The current question must be answered.
func (c *Controller) ShowNext() error {
	if err := c.rejectUnless(StateInProgress, "show next"); err != nil {
		return err
	}
	if !c.session.CurrentAnswered() {
		return ErrNotAnswered
	}
	return c.session.Advance()
}

// Restart discards the finished quiz and returns to the settings form.
func (c *Controller) Restart() error {
	if err := c.rejectUnless(StateFinished, "restart"); err != nil {
		return err
	}
	c.session.Reset()
	c.settings = Settings{}
	c.running = Result{}
	c.result = nil
	c.lastAnswered = -1
	c.state = StateIdle
	return nil
}

// CurrentQuestion returns the question being asked.
func (c *Controller) CurrentQuestion() (Question, error) {
	if c.state != StateInProgress {
		return Question{}, ErrNoActiveSession
	}
	return c.session.CurrentQuestion()
}

// View renders the output surface of the current state.
func (c *Controller) View() View {
	catalog := c.presenter.Catalog()
	view := View{State: c.state}
	if c.lastAnswered >= 0 && c.lastAnswered < len(c.running.Details) {
		detail := c.running.Details[c.lastAnswered]
		view.LastAnswer = &detail
	}

	switch c.state {
	case StateInProgress:
		view.QuizAreaVisible = true
		if question, err := c.session.CurrentQuestion(); err == nil {
			view.QuestionText = catalog.Question(question.ID, question.Prompt)
		}
		view.Correct, view.Total = c.running.Correct, c.running.Total
		view.ScoreText = catalog.RunningScore(view.Correct, view.Total)
		view.NextVisible = c.session.CurrentAnswered() && c.session.HasNext()
	case StateFinished:
		view.QuizAreaVisible = true
		if question, err := c.session.CurrentQuestion(); err == nil {
			view.QuestionText = catalog.Question(question.ID, question.Prompt)
		}
		view.Correct, view.Total = c.result.Correct, c.result.Total
		view.ScoreText = catalog.RunningScore(view.Correct, view.Total)
		resultView := c.presenter.Present(*c.result)
		view.Result = &resultView
		view.RestartVisible = true
	}
	return view
}
