package cli

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/hskquiz/internal/api"
	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
)

// RemoteQuiz plays the quiz on an hskquiz server. The server keeps the session,
// so the texts of the views come in the language requested at start.
type RemoteQuiz struct {
	client    api.QuizServiceClient
	language  message.Language
	sessionID string
}

func NewRemoteQuiz(client api.QuizServiceClient, language message.Language) *RemoteQuiz {
	return &RemoteQuiz{
		client:   client,
		language: language,
	}
}

// SessionID returns the id of the server session, empty before the first start.
func (q *RemoteQuiz) SessionID() string {
	return q.sessionID
}

func (q *RemoteQuiz) Current(ctx context.Context) (quiz.View, error) {
	if q.sessionID == "" {
		return quiz.View{State: quiz.StateIdle}, nil
	}
	res, err := q.client.GetQuiz(ctx, connect.NewRequest(&api.GetQuizRequest{SessionID: q.sessionID}))
	if err != nil {
		return quiz.View{}, fmt.Errorf("client.GetQuiz() > %w", api.FromConnectError(err))
	}
	return res.Msg.Quiz.ToView(), nil
}

func (q *RemoteQuiz) SubmitSettings(ctx context.Context, settings quiz.Settings) (quiz.View, error) {
	res, err := q.client.StartQuiz(ctx, connect.NewRequest(&api.StartQuizRequest{
		SessionID:     q.sessionID,
		Level:         settings.Level.String(),
		QuestionCount: settings.QuestionCount,
		Mode:          settings.Mode.String(),
		Language:      string(q.language),
	}))
	if err != nil {
		return quiz.View{}, fmt.Errorf("client.StartQuiz() > %w", api.FromConnectError(err))
	}
	q.sessionID = res.Msg.SessionID
	return res.Msg.Quiz.ToView(), nil
}

func (q *RemoteQuiz) SubmitAnswer(ctx context.Context, answer string) (quiz.View, error) {
	res, err := q.client.SubmitAnswer(ctx, connect.NewRequest(&api.SubmitAnswerRequest{
		SessionID: q.sessionID,
		Answer:    answer,
	}))
	if err != nil {
		return quiz.View{}, fmt.Errorf("client.SubmitAnswer() > %w", api.FromConnectError(err))
	}
	return res.Msg.Quiz.ToView(), nil
}

func (q *RemoteQuiz) Restart(ctx context.Context) (quiz.View, error) {
	res, err := q.client.Restart(ctx, connect.NewRequest(&api.RestartRequest{SessionID: q.sessionID}))
	if err != nil {
		return quiz.View{}, fmt.Errorf("client.Restart() > %w", api.FromConnectError(err))
	}
	return res.Msg.Quiz.ToView(), nil
}
