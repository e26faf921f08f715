package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

func TestPrintVocabulary(t *testing.T) {
	store, err := vocabulary.NewStore()
	require.NoError(t, err)

	tests := []struct {
		name    string
		levels  []vocabulary.Level
		want    []string
		wantErr error
	}{
		{
			name:   "one level",
			levels: []vocabulary.Level{vocabulary.LevelHSK1},
			want: []string{
				"3 words of HSK1",
				"  1. 你好 (nǐ hǎo) → こんにちは\n",
			},
		},
		{
			name:   "two levels",
			levels: []vocabulary.Level{vocabulary.LevelHSK3, vocabulary.LevelHSK4},
			want: []string{
				"3 words of HSK3",
				"3 words of HSK4",
				"  3. 文化 (wénhuà) → 文化\n",
			},
		},
		{
			name:    "unknown level",
			levels:  []vocabulary.Level{"HSK6"},
			wantErr: vocabulary.ErrUnknownLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := PrintVocabulary(&stdout, store, message.MustNew(message.English), tt.levels)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestPrintLevels(t *testing.T) {
	store, err := vocabulary.NewStore()
	require.NoError(t, err)

	var stdout bytes.Buffer
	require.NoError(t, PrintLevels(&stdout, store))
	assert.Equal(t, "HSK1\t3\nHSK2\t3\nHSK3\t3\nHSK4\t3\n", stdout.String())
}
