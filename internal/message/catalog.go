// Package message provides the user-facing texts of the quiz in the two display languages.
package message

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
)

// ErrUnsupportedLanguage is returned for a display language other than ja or en.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a display language
type Language string

const (
	Japanese Language = "ja"
	English  Language = "en"
)

// Languages lists the supported display languages; the first one is the default.
var Languages = []Language{Japanese, English}

// ParseLanguage converts "ja", "EN" and so on into a Language.
func ParseLanguage(value string) (Language, error) {
	language := Language(strings.ToLower(strings.TrimSpace(value)))
	switch language {
	case Japanese, English:
		return language, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, value)
}

// Key identifies a text in the catalog
type Key string

const (
	KeyQuestion          Key = "question"
	KeyRunningScore      Key = "running_score"
	KeyResultHeading     Key = "result_heading"
	KeyResultSummary     Key = "result_summary"
	KeyEncouragement     Key = "encouragement"
	KeyTierExcellent     Key = "tier.excellent"
	KeyTierGood          Key = "tier.good"
	KeyTierNeedsPractice Key = "tier.needs_practice"
	KeyAnswerPrompt      Key = "answer_prompt"
	KeyAnswerCorrect     Key = "answer_correct"
	KeyAnswerWrong       Key = "answer_wrong"
	KeyRestartPrompt     Key = "restart_prompt"
	KeyQuizStarted       Key = "quiz_started"
	KeyGoodbye           Key = "goodbye"

	KeyErrNoActiveSession  Key = "error.no_active_session"
	KeyErrActionNotAllowed Key = "error.action_not_allowed"
	KeyErrEmptyQuiz        Key = "error.empty_quiz"
	KeyErrAtEnd            Key = "error.at_end"
	KeyErrNotAnswered      Key = "error.not_answered"
	KeyErrSessionExpired   Key = "error.session_expired"

	KeyPageTitle     Key = "page.title"
	KeyLabelLevel    Key = "label.level"
	KeyLabelCount    Key = "label.count"
	KeyLabelMode     Key = "label.mode"
	KeyButtonStart   Key = "button.start"
	KeyButtonSubmit  Key = "button.submit"
	KeyButtonNext    Key = "button.next"
	KeyButtonRestart Key = "button.restart"

	KeySheetTitle       Key = "sheet.title"
	KeySheetDescription Key = "sheet.description"
	KeySheetSource      Key = "sheet.source"
	KeySheetPhonetic    Key = "sheet.phonetic"
	KeySheetTranslation Key = "sheet.translation"
	KeySheetFooter      Key = "sheet.footer"
)

var texts = map[Language]map[Key]string{
	Japanese: {
		KeyQuestion:          "{0}. {1}",
		KeyRunningScore:      "正解数: {0}/{1}",
		KeyResultHeading:     "テスト結果",
		KeyResultSummary:     "{0}/{1} 問正解 ({2})",
		KeyEncouragement:     "よく頑張りました！今日は{0}でした。",
		KeyTierExcellent:     "素晴らしい！完璧なスコアです！",
		KeyTierGood:          "良いスコアですね！次も頑張りましょう！",
		KeyTierNeedsPractice: "もう少し練習が必要かもしれませんね。",
		KeyAnswerPrompt:      "答え",
		KeyAnswerCorrect:     "正解です",
		KeyAnswerWrong:       "不正解です。正解は「{0}」",
		KeyRestartPrompt:     "もう一度挑戦しますか？ [y/N]: ",
		KeyQuizStarted:       "{0}問のテストを開始します ({1}, {2})",
		KeyGoodbye:           "お疲れさまでした。",

		KeyErrNoActiveSession:  "テストが開始されていません",
		KeyErrActionNotAllowed: "この操作は現在できません",
		KeyErrEmptyQuiz:        "出題できる問題がありません",
		KeyErrAtEnd:            "これが最後の問題です",
		KeyErrNotAnswered:      "まだ回答していません",
		KeyErrSessionExpired:   "セッションの有効期限が切れました",

		KeyPageTitle:     "HSK 単語テスト",
		KeyLabelLevel:    "レベル",
		KeyLabelCount:    "問題数",
		KeyLabelMode:     "出題形式",
		KeyButtonStart:   "テスト開始",
		KeyButtonSubmit:  "回答",
		KeyButtonNext:    "次の問題",
		KeyButtonRestart: "もう一度",

		KeySheetTitle:       "{0} 単語リスト",
		KeySheetDescription: "{0}の単語 {1}語",
		KeySheetSource:      "中国語",
		KeySheetPhonetic:    "ピンイン",
		KeySheetTranslation: "日本語",
		KeySheetFooter:      "`hskquiz play --level {0}` で練習できます。",
	},
	English: {
		KeyQuestion:          "{0}. {1}",
		KeyRunningScore:      "Correct: {0}/{1}",
		KeyResultHeading:     "Test results",
		KeyResultSummary:     "{0}/{1} correct ({2})",
		KeyEncouragement:     "Well done! Today's score was {0}.",
		KeyTierExcellent:     "Excellent! A perfect score!",
		KeyTierGood:          "Good score! Keep it up next time!",
		KeyTierNeedsPractice: "You may need a little more practice.",
		KeyAnswerPrompt:      "Answer",
		KeyAnswerCorrect:     "Correct",
		KeyAnswerWrong:       "Wrong. The answer is \"{0}\"",
		KeyRestartPrompt:     "Try again? [y/N]: ",
		KeyQuizStarted:       "Starting a quiz with {0} questions ({1}, {2})",
		KeyGoodbye:           "See you next time.",

		KeyErrNoActiveSession:  "No quiz is in progress",
		KeyErrActionNotAllowed: "That action is not available right now",
		KeyErrEmptyQuiz:        "No questions could be generated",
		KeyErrAtEnd:            "This is the last question",
		KeyErrNotAnswered:      "The current question has not been answered yet",
		KeyErrSessionExpired:   "The session has expired",

		KeyPageTitle:     "HSK vocabulary quiz",
		KeyLabelLevel:    "Level",
		KeyLabelCount:    "Questions",
		KeyLabelMode:     "Direction",
		KeyButtonStart:   "Start",
		KeyButtonSubmit:  "Submit",
		KeyButtonNext:    "Next question",
		KeyButtonRestart: "Restart",

		KeySheetTitle:       "{0} vocabulary",
		KeySheetDescription: "{1} words of {0}",
		KeySheetSource:      "Chinese",
		KeySheetPhonetic:    "Pinyin",
		KeySheetTranslation: "Japanese",
		KeySheetFooter:      "Practice with `hskquiz play --level {0}`.",
	},
}

// Catalog renders texts for one display language.
type Catalog struct {
	language   Language
	translator ut.Translator
}

// New builds the catalog of the language.
func New(language Language) (*Catalog, error) {
	entries, ok := texts[language]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	translator, err := NewTranslator(language)
	if err != nil {
		return nil, err
	}
	for key, text := range entries {
		if err := translator.Add(string(key), text, false); err != nil {
			return nil, fmt.Errorf("translator.Add(%s) > %w", key, err)
		}
	}

	return &Catalog{
		language:   language,
		translator: translator,
	}, nil
}

// NewTranslator returns an empty translator for the locale of the language.
// Each caller gets its own instance, so registering the same key twice never conflicts.
func NewTranslator(language Language) (ut.Translator, error) {
	uni := ut.New(ja.New(), ja.New(), en.New())
	translator, found := uni.GetTranslator(string(language))
	if !found {
		return nil, fmt.Errorf("%w: no locale for %q", ErrUnsupportedLanguage, language)
	}
	return translator, nil
}

// MustNew is New for the languages listed in Languages.
func MustNew(language Language) *Catalog {
	catalog, err := New(language)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (c *Catalog) Language() Language {
	return c.language
}

// Text renders the key with positional parameters. An unknown key renders as itself.
func (c *Catalog) Text(key Key, params ...string) string {
	text, err := c.translator.T(string(key), params...)
	if err != nil {
		return string(key)
	}
	return text
}

// Percent formats 66.7 as "66.7%" in the catalog's locale.
func (c *Catalog) Percent(percentage float64) string {
	return c.translator.FmtPercent(percentage, 1)
}

func (c *Catalog) Question(id int, prompt string) string {
	return c.Text(KeyQuestion, strconv.Itoa(id), prompt)
}

func (c *Catalog) RunningScore(correct, total int) string {
	return c.Text(KeyRunningScore, strconv.Itoa(correct), strconv.Itoa(total))
}

func (c *Catalog) ResultSummary(correct, total int, percentage float64) string {
	return c.Text(KeyResultSummary, strconv.Itoa(correct), strconv.Itoa(total), c.Percent(percentage))
}

func (c *Catalog) Encouragement(percentage float64) string {
	return c.Text(KeyEncouragement, c.Percent(percentage))
}
