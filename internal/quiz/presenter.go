package quiz

import (
	"errors"

	"github.com/at-ishikawa/hskquiz/internal/message"
)

// ResultView is the rendered result block.
type ResultView struct {
	Result
	Tier          Tier
	Heading       string
	Summary       string
	Encouragement string
	Feedback      string
}

// Presenter renders scores and errors in one display language.
type Presenter struct {
	catalog *message.Catalog
}

func NewPresenter(catalog *message.Catalog) *Presenter {
	return &Presenter{catalog: catalog}
}

func (p *Presenter) Catalog() *message.Catalog {
	return p.catalog
}

func (p *Presenter) Present(result Result) ResultView {
	tier := result.Tier()
	return ResultView{
		Result:        result,
		Tier:          tier,
		Heading:       p.catalog.Text(message.KeyResultHeading),
		Summary:       p.catalog.ResultSummary(result.Correct, result.Total, result.Percentage),
		Encouragement: p.catalog.Encouragement(result.Percentage),
		Feedback:      p.Feedback(tier),
	}
}

func (p *Presenter) Feedback(tier Tier) string {
	switch tier {
	case TierExcellent:
		return p.catalog.Text(message.KeyTierExcellent)
	case TierGood:
		return p.catalog.Text(message.KeyTierGood)
	default:
		return p.catalog.Text(message.KeyTierNeedsPractice)
	}
}

// ErrorMessage renders a rejected action for the user.
func (p *Presenter) ErrorMessage(err error) string {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, ErrNoActiveSession):
		return p.catalog.Text(message.KeyErrNoActiveSession)
	case errors.Is(err, ErrActionNotAllowed):
		return p.catalog.Text(message.KeyErrActionNotAllowed)
	case errors.Is(err, ErrEmptyQuiz):
		return p.catalog.Text(message.KeyErrEmptyQuiz)
	case errors.Is(err, ErrAtEnd):
		return p.catalog.Text(message.KeyErrAtEnd)
	case errors.Is(err, ErrNotAnswered):
		return p.catalog.Text(message.KeyErrNotAnswered)
	}
	return err.Error()
}
