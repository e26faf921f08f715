package quiz

import "errors"

var (
	// ErrUnknownMode is returned for a direction other than JP→CN or CN→JP.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrNoActiveSession is returned when an action needs a started quiz.
	ErrNoActiveSession = errors.New("no active session")
	// ErrActionNotAllowed is returned when an action is not valid in the current state.
	ErrActionNotAllowed = errors.New("action not allowed")
	// ErrAtEnd is returned when advancing past the last question.
	ErrAtEnd = errors.New("already at the last question")
	// ErrNotAnswered is returned when showing the next question before answering the current one.
	ErrNotAnswered = errors.New("current question is not answered")
	// ErrEmptyQuiz is returned when the settings produce no questions.
	ErrEmptyQuiz = errors.New("no questions generated")
	// ErrInvalidSettings is wrapped by ValidationError.
	ErrInvalidSettings = errors.New("invalid settings")
)

// IsRejection reports whether err is a rejected user action, which leaves the quiz unchanged,
// rather than a failure.
func IsRejection(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr) ||
		errors.Is(err, ErrNoActiveSession) ||
		errors.Is(err, ErrActionNotAllowed) ||
		errors.Is(err, ErrEmptyQuiz) ||
		errors.Is(err, ErrAtEnd) ||
		errors.Is(err, ErrNotAnswered)
}
