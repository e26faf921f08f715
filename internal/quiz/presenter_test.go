package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/hskquiz/internal/message"
)

func TestPresenter_Present(t *testing.T) {
	tests := []struct {
		name         string
		language     message.Language
		result       Result
		wantTier     Tier
		wantSummary  string
		wantFeedback string
	}{
		{
			name:         "perfect score in japanese",
			language:     message.Japanese,
			result:       Result{Correct: 3, Total: 3, Percentage: 100},
			wantTier:     TierExcellent,
			wantSummary:  "3/3 問正解",
			wantFeedback: "素晴らしい！完璧なスコアです！",
		},
		{
			name:         "boundary of good in english",
			language:     message.English,
			result:       Result{Correct: 7, Total: 10, Percentage: 70},
			wantTier:     TierGood,
			wantSummary:  "7/10 correct",
			wantFeedback: "Good score! Keep it up next time!",
		},
		{
			name:         "two of three in japanese",
			language:     message.Japanese,
			result:       Result{Correct: 2, Total: 3, Percentage: 66.7},
			wantTier:     TierNeedsPractice,
			wantSummary:  "2/3 問正解",
			wantFeedback: "もう少し練習が必要かもしれませんね。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presenter := NewPresenter(message.MustNew(tt.language))
			got := presenter.Present(tt.result)

			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.result, got.Result)
			assert.Contains(t, got.Summary, tt.wantSummary)
			assert.Equal(t, tt.wantFeedback, got.Feedback)
			assert.NotEmpty(t, got.Heading)
			assert.NotEmpty(t, got.Encouragement)
		})
	}
}

func TestPresenter_ErrorMessage(t *testing.T) {
	presenter := NewPresenter(message.MustNew(message.English))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation error",
			err:  &ValidationError{Violations: []FieldViolation{{Field: "level", Description: "level is wrong"}}},
			want: "level is wrong",
		},
		{
			name: "wrapped no active session",
			err:  fmt.Errorf("submit answer: %w", ErrNoActiveSession),
			want: "No quiz is in progress",
		},
		{
			name: "action not allowed",
			err:  ErrActionNotAllowed,
			want: "That action is not available right now",
		},
		{
			name: "empty quiz",
			err:  ErrEmptyQuiz,
			want: "No questions could be generated",
		},
		{
			name: "at end",
			err:  ErrAtEnd,
			want: "This is the last question",
		},
		{
			name: "not answered",
			err:  ErrNotAnswered,
			want: "The current question has not been answered yet",
		},
		{
			name: "other error",
			err:  errors.New("disk full"),
			want: "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, presenter.ErrorMessage(tt.err))
		})
	}
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(&ValidationError{}))
	assert.True(t, IsRejection(fmt.Errorf("show next: %w", ErrNotAnswered)))
	assert.True(t, IsRejection(ErrEmptyQuiz))
	assert.False(t, IsRejection(errors.New("broken pipe")))
	assert.False(t, IsRejection(ErrUnknownMode))
}
