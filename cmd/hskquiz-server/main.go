package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/hskquiz/internal/bootstrap"
	"github.com/at-ishikawa/hskquiz/internal/config"
	"github.com/at-ishikawa/hskquiz/internal/logging"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
	"github.com/at-ishikawa/hskquiz/internal/server"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "hskquiz-server",
		Short:         "HSK quiz service and web page HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), os.Stderr)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logOutput io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	logger, err := logging.New(logOutput, cfg.Log.Format, debugMode)
	if err != nil {
		return fmt.Errorf("logging.New() > %w", err)
	}
	slog.SetDefault(logger)

	app := bootstrap.New(bootstrap.WithLogger(logger))

	handler, sessions, err := newHandler(cfg, logger)
	if err != nil {
		return fmt.Errorf("newHandler() > %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook("sessions", func(ctx context.Context) error {
		logger.Info("discarding quiz sessions", slog.Int("sessions", sessions.Len()))
		return nil
	})
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("Starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// newHandler wires the vocabulary, the quiz factory and the session store into the HTTP routes.
func newHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, *server.SessionStore, error) {
	store, err := vocabulary.NewStore()
	if err != nil {
		return nil, nil, fmt.Errorf("vocabulary.NewStore() > %w", err)
	}
	factory, err := quiz.NewFactory(quiz.NewGenerator(store), quiz.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("quiz.NewFactory() > %w", err)
	}

	language := cfg.Quiz.DisplayLanguage()
	sessions := server.NewSessionStore(cfg.Server.SessionTTL, server.WithStoreLogger(logger))
	quizHandler := server.NewQuizHandler(sessions, factory, store, language, logger)
	pageHandler, err := server.NewPageHandler(sessions, factory, store, language, cfg.Quiz.Settings(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("server.NewPageHandler() > %w", err)
	}
	return server.NewRouter(quizHandler, pageHandler, cfg.Server.CORS.AllowedOrigins, logger), sessions, nil
}
