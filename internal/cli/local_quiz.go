package cli

import (
	"context"

	"github.com/at-ishikawa/hskquiz/internal/quiz"
)

// LocalQuiz plays the quiz in process.
type LocalQuiz struct {
	controller *quiz.Controller
}

func NewLocalQuiz(controller *quiz.Controller) *LocalQuiz {
	return &LocalQuiz{controller: controller}
}

func (q *LocalQuiz) Current(context.Context) (quiz.View, error) {
	return q.controller.View(), nil
}

func (q *LocalQuiz) SubmitSettings(_ context.Context, settings quiz.Settings) (quiz.View, error) {
	if err := q.controller.SubmitSettings(settings); err != nil {
		return quiz.View{}, err
	}
	return q.controller.View(), nil
}

func (q *LocalQuiz) SubmitAnswer(_ context.Context, answer string) (quiz.View, error) {
	if err := q.controller.SubmitAnswer(answer); err != nil {
		return quiz.View{}, err
	}
	return q.controller.View(), nil
}

func (q *LocalQuiz) Restart(context.Context) (quiz.View, error) {
	if err := q.controller.Restart(); err != nil {
		return quiz.View{}, err
	}
	return q.controller.View(), nil
}
