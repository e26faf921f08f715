package api

import (
	"github.com/samber/lo"

	"github.com/at-ishikawa/hskquiz/internal/quiz"
)

// FromView converts the controller view into its wire form.
func FromView(view quiz.View) QuizView {
	wire := QuizView{
		State:           string(view.State),
		QuestionText:    view.QuestionText,
		ScoreText:       view.ScoreText,
		Correct:         view.Correct,
		Total:           view.Total,
		QuizAreaVisible: view.QuizAreaVisible,
		NextVisible:     view.NextVisible,
		RestartVisible:  view.RestartVisible,
	}
	if view.LastAnswer != nil {
		outcome := fromDetail(*view.LastAnswer, 0)
		wire.LastAnswer = &outcome
	}
	if view.Result != nil {
		wire.Result = &QuizResult{
			Correct:       view.Result.Correct,
			Total:         view.Result.Total,
			Percentage:    view.Result.Percentage,
			Tier:          string(view.Result.Tier),
			Heading:       view.Result.Heading,
			Summary:       view.Result.Summary,
			Encouragement: view.Result.Encouragement,
			Feedback:      view.Result.Feedback,
			Details:       lo.Map(view.Result.Details, fromDetail),
		}
	}
	return wire
}

// ToView converts the wire form back into the controller view.
func (v QuizView) ToView() quiz.View {
	view := quiz.View{
		State:           quiz.State(v.State),
		QuestionText:    v.QuestionText,
		ScoreText:       v.ScoreText,
		Correct:         v.Correct,
		Total:           v.Total,
		QuizAreaVisible: v.QuizAreaVisible,
		NextVisible:     v.NextVisible,
		RestartVisible:  v.RestartVisible,
	}
	if v.LastAnswer != nil {
		detail := toDetail(*v.LastAnswer, 0)
		view.LastAnswer = &detail
	}
	if v.Result != nil {
		view.Result = &quiz.ResultView{
			Result: quiz.Result{
				Correct:    v.Result.Correct,
				Total:      v.Result.Total,
				Percentage: v.Result.Percentage,
				Details:    lo.Map(v.Result.Details, toDetail),
			},
			Tier:          quiz.Tier(v.Result.Tier),
			Heading:       v.Result.Heading,
			Summary:       v.Result.Summary,
			Encouragement: v.Result.Encouragement,
			Feedback:      v.Result.Feedback,
		}
	}
	return view
}

func fromDetail(detail quiz.AnswerDetail, _ int) AnswerOutcome {
	return AnswerOutcome{
		ID:         detail.ID,
		UserAnswer: detail.UserAnswer,
		Expected:   detail.Expected,
		Answered:   detail.Answered,
		Correct:    detail.Correct,
	}
}

func toDetail(outcome AnswerOutcome, _ int) quiz.AnswerDetail {
	return quiz.AnswerDetail{
		ID:         outcome.ID,
		UserAnswer: outcome.UserAnswer,
		Expected:   outcome.Expected,
		Answered:   outcome.Answered,
		Correct:    outcome.Correct,
	}
}
