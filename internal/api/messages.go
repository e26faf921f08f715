// Package api defines the hskquiz.v1.QuizService Connect contract with plain Go messages
// carried by a JSON codec.
package api

// ListLevelsRequest asks for the levels and directions a quiz can be started with.
type ListLevelsRequest struct{}

type LevelSummary struct {
	Level      string `json:"level"`
	EntryCount int    `json:"entryCount"`
}

type ListLevelsResponse struct {
	Levels []LevelSummary `json:"levels"`
	Modes  []string       `json:"modes"`
}

// StartQuizRequest submits the settings form. An empty SessionID opens a new session.
type StartQuizRequest struct {
	SessionID     string `json:"sessionId,omitempty"`
	Level         string `json:"level"`
	QuestionCount int    `json:"questionCount"`
	Mode          string `json:"mode"`
	Language      string `json:"language,omitempty"`
}

type SubmitAnswerRequest struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}

type ShowNextRequest struct {
	SessionID string `json:"sessionId"`
}

type RestartRequest struct {
	SessionID string `json:"sessionId"`
}

type GetQuizRequest struct {
	SessionID string `json:"sessionId"`
}

// QuizResponse is returned by every procedure that changes or reads a session.
type QuizResponse struct {
	SessionID string   `json:"sessionId"`
	Quiz      QuizView `json:"quiz"`
}

// QuizView mirrors quiz.View on the wire.
type QuizView struct {
	State        string         `json:"state"`
	QuestionText string         `json:"questionText,omitempty"`
	ScoreText    string         `json:"scoreText,omitempty"`
	Correct      int            `json:"correct"`
	Total        int            `json:"total"`
	LastAnswer   *AnswerOutcome `json:"lastAnswer,omitempty"`
	Result       *QuizResult    `json:"result,omitempty"`

	QuizAreaVisible bool `json:"quizAreaVisible"`
	NextVisible     bool `json:"nextVisible"`
	RestartVisible  bool `json:"restartVisible"`
}

type AnswerOutcome struct {
	ID         int    `json:"id"`
	UserAnswer string `json:"userAnswer,omitempty"`
	Expected   string `json:"expected"`
	Answered   bool   `json:"answered"`
	Correct    bool   `json:"correct"`
}

type QuizResult struct {
	Correct       int             `json:"correct"`
	Total         int             `json:"total"`
	Percentage    float64         `json:"percentage"`
	Tier          string          `json:"tier"`
	Heading       string          `json:"heading"`
	Summary       string          `json:"summary"`
	Encouragement string          `json:"encouragement"`
	Feedback      string          `json:"feedback"`
	Details       []AnswerOutcome `json:"details"`
}
