package main

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
	"github.com/at-ishikawa/hskquiz/internal/server"
	"github.com/at-ishikawa/hskquiz/internal/testutil"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func newTestQuizServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := vocabulary.NewStore()
	require.NoError(t, err)
	factory, err := quiz.NewFactory(quiz.NewGenerator(store))
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := server.NewSessionStore(time.Minute)
	quizHandler := server.NewQuizHandler(sessions, factory, store, message.Japanese, logger)
	pageHandler, err := server.NewPageHandler(sessions, factory, store, message.Japanese, quiz.NewSettings("HSK1", 10, "cn-jp"), logger)
	require.NoError(t, err)

	srv := httptest.NewServer(server.NewRouter(quizHandler, pageHandler, nil, logger))
	t.Cleanup(srv.Close)
	return srv
}

func TestPlayCommand(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		remote  bool
		want    []string
		wantErr string
	}{
		{
			name:  "every answer wrong and no restart",
			stdin: "x\nx\nx\nn\n",
			args:  []string{"play", "--level", "HSK1", "--count", "3", "--lang", "en"},
			want: []string{
				"Starting a quiz with 3 questions (HSK1, CN→JP)",
				"0/3 correct",
				"You may need a little more practice.",
				"See you next time.",
			},
		},
		{
			name:  "quit in the middle",
			stdin: "quit\n",
			args:  []string{"play", "--level", "hsk2", "--count", "2", "--mode", "jp-cn", "--lang", "en"},
			want: []string{
				"Starting a quiz with 2 questions (HSK2, JP→CN)",
				"1. ",
			},
		},
		{
			name:   "played on a server",
			stdin:  "x\nx\nn\n",
			args:   []string{"play", "--count", "2", "--lang", "en"},
			remote: true,
			want: []string{
				"Starting a quiz with 2 questions (HSK1, CN→JP)",
				"0/2 correct",
			},
		},
		{
			name:    "invalid count is rejected by the configuration",
			stdin:   "",
			args:    []string{"play", "--count", "0", "--lang", "en"},
			wantErr: "question_count must be 1 or greater",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Isolate(t)
			args := tt.args
			if tt.remote {
				args = append(args, "--server", newTestQuizServer(t).URL)
			}

			got, err := execute(t, tt.stdin, args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}
