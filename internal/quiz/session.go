package quiz

import (
	"fmt"
	"slices"
)

// AnswerRecord is the answer given to the question with the same ID.
type AnswerRecord struct {
	ID         int
	UserAnswer string
}

// Session is the mutable state of one quiz attempt: the questions, one answer slot per
// question and the current position. It is not safe for concurrent use.
type Session struct {
	questions []Question
	answers   []*AnswerRecord
	position  int
}

func NewSession() *Session {
	return &Session{}
}

// Start replaces any previous state with the questions and empty answer slots.
func (s *Session) Start(questions []Question) {
	s.questions = slices.Clone(questions)
	s.answers = make([]*AnswerRecord, len(questions))
	s.position = 0
}

// Active reports whether a non-empty question list has been started
func (s *Session) Active() bool {
	return len(s.questions) > 0
}

func (s *Session) CurrentQuestion() (Question, error) {
	if !s.Active() {
		return Question{}, ErrNoActiveSession
	}
	return s.questions[s.position], nil
}

// RecordAnswer stores the answer in the slot of the current question, replacing an earlier one.
func (s *Session) RecordAnswer(userAnswer string) error {
	question, err := s.CurrentQuestion()
	if err != nil {
		return err
	}
	s.answers[s.position] = &AnswerRecord{
		ID:         question.ID,
		UserAnswer: userAnswer,
	}
	return nil
}

// Advance moves to the next question.
func (s *Session) Advance() error {
	if !s.Active() {
		return ErrNoActiveSession
	}
	if !s.HasNext() {
		return fmt.Errorf("%w: question %d of %d", ErrAtEnd, s.position+1, len(s.questions))
	}
	s.position++
	return nil
}

func (s *Session) HasNext() bool {
	return s.position < len(s.questions)-1
}

// CurrentAnswered reports whether the slot at the current position has an answer.
func (s *Session) CurrentAnswered() bool {
	return s.Active() && s.answers[s.position] != nil
}

// IsComplete is true when the last question has been answered.
func (s *Session) IsComplete() bool {
	return s.Active() && !s.HasNext() && s.CurrentAnswered()
}

// Reset discards the questions and answers.
func (s *Session) Reset() {
	s.questions = nil
	s.answers = nil
	s.position = 0
}

func (s *Session) Position() int {
	return s.position
}

func (s *Session) Questions() []Question {
	return slices.Clone(s.questions)
}

// Answers returns the answer slots, index-aligned with Questions. Unanswered slots are nil.
func (s *Session) Answers() []*AnswerRecord {
	answers := make([]*AnswerRecord, len(s.answers))
	for i, answer := range s.answers {
		if answer != nil {
			record := *answer
			answers[i] = &record
		}
	}
	return answers
}
