// Package server serves the quiz over Connect RPC and as a server-rendered page.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/at-ishikawa/hskquiz/internal/api"
	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

// QuizHandler implements the QuizServiceHandler interface.
type QuizHandler struct {
	sessions        *SessionStore
	factory         *quiz.Factory
	vocabulary      *vocabulary.Store
	defaultLanguage message.Language
	logger          *slog.Logger
}

var _ api.QuizServiceHandler = (*QuizHandler)(nil)

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(
	sessions *SessionStore,
	factory *quiz.Factory,
	store *vocabulary.Store,
	defaultLanguage message.Language,
	logger *slog.Logger,
) *QuizHandler {
	return &QuizHandler{
		sessions:        sessions,
		factory:         factory,
		vocabulary:      store,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// ListLevels returns the levels with their entry counts and the quiz directions.
func (h *QuizHandler) ListLevels(
	ctx context.Context,
	req *connect.Request[api.ListLevelsRequest],
) (*connect.Response[api.ListLevelsResponse], error) {
	levels := make([]api.LevelSummary, 0, len(h.vocabulary.Levels()))
	for _, level := range h.vocabulary.Levels() {
		entries, err := h.vocabulary.Lookup(level)
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("lookup %s: %w", level, err))
		}
		levels = append(levels, api.LevelSummary{
			Level:      level.String(),
			EntryCount: len(entries),
		})
	}

	return connect.NewResponse(&api.ListLevelsResponse{
		Levels: levels,
		Modes:  lo.Map(quiz.Modes, func(mode quiz.Mode, _ int) string { return mode.String() }),
	}), nil
}

// StartQuiz submits the settings. Without a session id a new session is opened, and it is
// kept only when the quiz starts.
func (h *QuizHandler) StartQuiz(
	ctx context.Context,
	req *connect.Request[api.StartQuizRequest],
) (*connect.Response[api.QuizResponse], error) {
	settings := quiz.NewSettings(req.Msg.Level, req.Msg.QuestionCount, req.Msg.Mode)

	if req.Msg.SessionID != "" {
		return h.withSession(ctx, req.Msg.SessionID, func(controller *quiz.Controller) error {
			return controller.SubmitSettings(settings)
		})
	}

	language := h.defaultLanguage
	if req.Msg.Language != "" {
		parsed, err := message.ParseLanguage(req.Msg.Language)
		if err != nil {
			return nil, api.ToConnectError(err)
		}
		language = parsed
	}
	controller, err := h.factory.New(language)
	if err != nil {
		return nil, api.ToConnectError(err)
	}
	if err := controller.SubmitSettings(settings); err != nil {
		h.logger.DebugContext(ctx, "start rejected", slog.Any("error", err))
		return nil, api.ToConnectError(err)
	}

	sessionID := h.sessions.Add(controller)
	h.logger.InfoContext(ctx, "quiz started",
		slog.String("session_id", sessionID),
		slog.String("level", settings.Level.String()),
		slog.String("mode", settings.Mode.String()),
		slog.String("language", string(language)),
	)
	return connect.NewResponse(&api.QuizResponse{
		SessionID: sessionID,
		Quiz:      api.FromView(controller.View()),
	}), nil
}

func (h *QuizHandler) SubmitAnswer(
	ctx context.Context,
	req *connect.Request[api.SubmitAnswerRequest],
) (*connect.Response[api.QuizResponse], error) {
	return h.withSession(ctx, req.Msg.SessionID, func(controller *quiz.Controller) error {
		return controller.SubmitAnswer(req.Msg.Answer)
	})
}

func (h *QuizHandler) ShowNext(
	ctx context.Context,
	req *connect.Request[api.ShowNextRequest],
) (*connect.Response[api.QuizResponse], error) {
	return h.withSession(ctx, req.Msg.SessionID, func(controller *quiz.Controller) error {
		return controller.ShowNext()
	})
}

func (h *QuizHandler) Restart(
	ctx context.Context,
	req *connect.Request[api.RestartRequest],
) (*connect.Response[api.QuizResponse], error) {
	return h.withSession(ctx, req.Msg.SessionID, func(controller *quiz.Controller) error {
		return controller.Restart()
	})
}

func (h *QuizHandler) GetQuiz(
	ctx context.Context,
	req *connect.Request[api.GetQuizRequest],
) (*connect.Response[api.QuizResponse], error) {
	return h.withSession(ctx, req.Msg.SessionID, func(*quiz.Controller) error {
		return nil
	})
}

// withSession applies the event to the session and responds with the resulting view.
func (h *QuizHandler) withSession(
	ctx context.Context,
	sessionID string,
	event func(*quiz.Controller) error,
) (*connect.Response[api.QuizResponse], error) {
	var view quiz.View
	err := h.sessions.With(sessionID, func(controller *quiz.Controller) error {
		if err := event(controller); err != nil {
			return err
		}
		view = controller.View()
		return nil
	})
	if err != nil {
		connectErr := api.ToConnectError(err)
		level := slog.LevelDebug
		if connectErr.Code() == connect.CodeInternal {
			level = slog.LevelError
		}
		h.logger.Log(ctx, level, "quiz event rejected",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
		return nil, connectErr
	}

	return connect.NewResponse(&api.QuizResponse{
		SessionID: sessionID,
		Quiz:      api.FromView(view),
	}), nil
}
