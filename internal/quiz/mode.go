package quiz

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

// Mode selects which field of an entry is the prompt and which is the expected answer.
type Mode string

const (
	// ModeJapaneseToChinese shows the translation and expects "source (phonetic)".
	ModeJapaneseToChinese Mode = "JP→CN"
	// ModeChineseToJapanese shows "source (phonetic)" and expects the translation.
	ModeChineseToJapanese Mode = "CN→JP"
)

// Modes lists the directions in display order
var Modes = []Mode{ModeJapaneseToChinese, ModeChineseToJapanese}

func (m Mode) Valid() bool {
	return m == ModeJapaneseToChinese || m == ModeChineseToJapanese
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode accepts "JP→CN", "CN→JP" and the ASCII aliases "jp-cn" and "cn-jp".
func ParseMode(value string) (Mode, error) {
	normalized := strings.TrimSpace(value)
	switch strings.ToLower(normalized) {
	case strings.ToLower(string(ModeJapaneseToChinese)), "jp-cn", "jp2cn":
		return ModeJapaneseToChinese, nil
	case strings.ToLower(string(ModeChineseToJapanese)), "cn-jp", "cn2jp":
		return ModeChineseToJapanese, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
}

func (m Mode) prompt(entry vocabulary.Entry) string {
	if m == ModeJapaneseToChinese {
		return entry.Translation
	}
	return entry.SourceWithPhonetic()
}

func (m Mode) answer(entry vocabulary.Entry) string {
	if m == ModeJapaneseToChinese {
		return entry.SourceWithPhonetic()
	}
	return entry.Translation
}
