package quiz

import (
	"math"
	"strings"

	"github.com/samber/lo"
)

// Tier is the feedback bracket of a final percentage.
type Tier string

const (
	TierExcellent     Tier = "excellent"
	TierGood          Tier = "good"
	TierNeedsPractice Tier = "needs_practice"
)

const (
	excellentThreshold = 90.0
	goodThreshold      = 70.0
)

// TierFor selects the tier with inclusive lower bounds: 90 and above is excellent, 70 and above is good.
func TierFor(percentage float64) Tier {
	switch {
	case percentage >= excellentThreshold:
		return TierExcellent
	case percentage >= goodThreshold:
		return TierGood
	default:
		return TierNeedsPractice
	}
}

// AnswerDetail is the outcome of one question.
type AnswerDetail struct {
	ID         int
	UserAnswer string
	Expected   string
	Answered   bool
	Correct    bool
}

// Result is the score of a session.
type Result struct {
	Correct    int
	Total      int
	Percentage float64
	Details    []AnswerDetail
}

func (r Result) Tier() Tier {
	return TierFor(r.Percentage)
}

// IsCorrect compares the recorded answer with the expected one after lower-casing both.
// Whitespace is significant.
func IsCorrect(question Question, record *AnswerRecord) bool {
	if record == nil {
		return false
	}
	return strings.ToLower(record.UserAnswer) == strings.ToLower(question.Answer)
}

// Score counts the correct answers of the session. Unanswered slots count as wrong.
func Score(session *Session) Result {
	questions := session.Questions()
	answers := session.Answers()

	details := lo.Map(questions, func(question Question, i int) AnswerDetail {
		detail := AnswerDetail{
			ID:       question.ID,
			Expected: question.Answer,
		}
		if record := answers[i]; record != nil {
			detail.Answered = true
			detail.UserAnswer = record.UserAnswer
			detail.Correct = IsCorrect(question, record)
		}
		return detail
	})
	correct := lo.CountBy(details, func(detail AnswerDetail) bool {
		return detail.Correct
	})

	return Result{
		Correct:    correct,
		Total:      len(questions),
		Percentage: percentage(correct, len(questions)),
		Details:    details,
	}
}

func percentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}
