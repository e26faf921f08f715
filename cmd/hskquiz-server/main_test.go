package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/hskquiz/internal/api"
	"github.com/at-ishikawa/hskquiz/internal/config"
	"github.com/at-ishikawa/hskquiz/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:       8080,
			CORS:       config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
			SessionTTL: time.Minute,
		},
		Quiz: config.QuizConfig{
			Level:         "HSK2",
			QuestionCount: 2,
			Mode:          "jp-cn",
			Language:      "en",
		},
		Log: config.LogConfig{Format: "text"},
	}
}

func TestNewHandler(t *testing.T) {
	handler, sessions, err := newHandler(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Run("health check", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("page uses the configured defaults", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer res.Body.Close()
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, string(body), `lang="en"`)
		assert.Contains(t, string(body), "HSK vocabulary quiz")
	})

	t.Run("quiz service keeps sessions", func(t *testing.T) {
		client := api.NewQuizServiceClient(srv.Client(), srv.URL)
		res, err := client.StartQuiz(context.Background(), connect.NewRequest(&api.StartQuizRequest{
			Level:         "HSK2",
			QuestionCount: 2,
			Mode:          "jp-cn",
		}))
		require.NoError(t, err)
		assert.NotEmpty(t, res.Msg.SessionID)
		assert.Equal(t, 2, res.Msg.Quiz.Total)
		assert.Equal(t, 1, sessions.Len())
	})
}

func TestRun_InvalidConfig(t *testing.T) {
	testutil.Isolate(t)
	t.Setenv("HSKQUIZ_LOG_FORMAT", "xml")

	err := run(context.Background(), io.Discard)
	assert.ErrorContains(t, err, "format must be one of [text json tint]")
}

func TestLoadConfig(t *testing.T) {
	dir := testutil.Isolate(t)
	configFile = testutil.SetupTestConfig(t, dir, testutil.WithLanguage("en"))
	t.Cleanup(func() { configFile = "" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, "en", cfg.Quiz.Language)
}
