package server

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/at-ishikawa/hskquiz/internal/api"
	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

//go:embed templates/page.html
var pageTemplate string

const sessionCookieName = "hskquiz_session"

type pageLabels struct {
	Title   string
	Level   string
	Count   string
	Mode    string
	Start   string
	Submit  string
	Next    string
	Restart string
}

type formValues struct {
	Level string
	Count int
	Mode  string
}

type answerFeedback struct {
	Correct bool
	Text    string
}

type pageData struct {
	Lang     string
	Labels   pageLabels
	Levels   []string
	Modes    []string
	Form     formValues
	View     quiz.View
	Feedback *answerFeedback
	Message  string
}

// PageHandler serves the quiz as a single HTML page. Every form posts an event and
// redirects back to the page; rejected events are rendered in place with a message.
type PageHandler struct {
	sessions  *SessionStore
	factory   *quiz.Factory
	language  message.Language
	catalog   *message.Catalog
	presenter *quiz.Presenter
	levels    []string
	defaults  quiz.Settings
	template  *template.Template
	logger    *slog.Logger
}

func NewPageHandler(
	sessions *SessionStore,
	factory *quiz.Factory,
	store *vocabulary.Store,
	language message.Language,
	defaults quiz.Settings,
	logger *slog.Logger,
) (*PageHandler, error) {
	catalog, err := message.New(language)
	if err != nil {
		return nil, fmt.Errorf("message.New() > %w", err)
	}
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("template.Parse() > %w", err)
	}

	return &PageHandler{
		sessions:  sessions,
		factory:   factory,
		language:  language,
		catalog:   catalog,
		presenter: quiz.NewPresenter(catalog),
		levels:    lo.Map(store.Levels(), func(level vocabulary.Level, _ int) string { return level.String() }),
		defaults:  defaults,
		template:  tmpl,
		logger:    logger,
	}, nil
}

func (h *PageHandler) Register(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/settings", h.SubmitSettings)
	r.Post("/answer", h.SubmitAnswer)
	r.Post("/next", h.ShowNext)
	r.Post("/restart", h.Restart)
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFrom(r)
	if sessionID == "" {
		h.render(w, http.StatusOK, quiz.View{State: quiz.StateIdle}, h.formFor(h.defaults), "")
		return
	}

	var view quiz.View
	var settings quiz.Settings
	err := h.sessions.With(sessionID, func(controller *quiz.Controller) error {
		view = controller.View()
		settings = controller.Settings()
		return nil
	})
	if errors.Is(err, api.ErrSessionNotFound) {
		clearSessionCookie(w)
		h.render(w, http.StatusOK, quiz.View{State: quiz.StateIdle}, h.formFor(h.defaults), h.catalog.Text(message.KeyErrSessionExpired))
		return
	}
	if view.State == quiz.StateIdle {
		settings = h.defaults
	}
	h.render(w, http.StatusOK, view, h.formFor(settings), "")
}

// SubmitSettings starts a quiz in the session of the cookie, or in a new session.
func (h *PageHandler) SubmitSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	count, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("count")))
	if err != nil {
		count = 0
	}
	settings := quiz.NewSettings(r.PostFormValue("level"), count, r.PostFormValue("mode"))
	form := formValues{Level: r.PostFormValue("level"), Count: count, Mode: r.PostFormValue("mode")}

	if sessionID := sessionIDFrom(r); sessionID != "" {
		var view quiz.View
		err := h.sessions.With(sessionID, func(controller *quiz.Controller) error {
			submitErr := controller.SubmitSettings(settings)
			view = controller.View()
			return submitErr
		})
		if !errors.Is(err, api.ErrSessionNotFound) {
			if err != nil {
				h.reject(w, r, view, form, err)
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}

	controller, err := h.factory.New(h.language)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := controller.SubmitSettings(settings); err != nil {
		h.reject(w, r, controller.View(), form, err)
		return
	}
	sessionID := h.sessions.Add(controller)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	answer := r.PostFormValue("answer")
	h.applyEvent(w, r, func(controller *quiz.Controller) error {
		return controller.SubmitAnswer(answer)
	})
}

func (h *PageHandler) ShowNext(w http.ResponseWriter, r *http.Request) {
	h.applyEvent(w, r, func(controller *quiz.Controller) error {
		return controller.ShowNext()
	})
}

func (h *PageHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.applyEvent(w, r, func(controller *quiz.Controller) error {
		return controller.Restart()
	})
}

func (h *PageHandler) applyEvent(w http.ResponseWriter, r *http.Request, event func(*quiz.Controller) error) {
	sessionID := sessionIDFrom(r)
	if sessionID == "" {
		h.reject(w, r, quiz.View{State: quiz.StateIdle}, h.formFor(h.defaults), quiz.ErrNoActiveSession)
		return
	}

	var view quiz.View
	var settings quiz.Settings
	err := h.sessions.With(sessionID, func(controller *quiz.Controller) error {
		eventErr := event(controller)
		view = controller.View()
		settings = controller.Settings()
		return eventErr
	})
	switch {
	case errors.Is(err, api.ErrSessionNotFound):
		clearSessionCookie(w)
		h.reject(w, r, quiz.View{State: quiz.StateIdle}, h.formFor(h.defaults), err)
	case err != nil:
		h.reject(w, r, view, h.formFor(settings), err)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// reject renders the page with the message of a rejected event.
func (h *PageHandler) reject(w http.ResponseWriter, r *http.Request, view quiz.View, form formValues, err error) {
	status := http.StatusConflict
	text := h.presenter.ErrorMessage(err)

	var validationErr *quiz.ValidationError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, api.ErrSessionNotFound):
		text = h.catalog.Text(message.KeyErrSessionExpired)
	case !quiz.IsRejection(err):
		h.fail(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "page event rejected",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	h.render(w, status, view, form, text)
}

func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "page event failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *PageHandler) render(w http.ResponseWriter, status int, view quiz.View, form formValues, text string) {
	if form.Level == "" && form.Mode == "" && form.Count == 0 {
		form = h.formFor(h.defaults)
	}
	data := pageData{
		Lang: string(h.language),
		Labels: pageLabels{
			Title:   h.catalog.Text(message.KeyPageTitle),
			Level:   h.catalog.Text(message.KeyLabelLevel),
			Count:   h.catalog.Text(message.KeyLabelCount),
			Mode:    h.catalog.Text(message.KeyLabelMode),
			Start:   h.catalog.Text(message.KeyButtonStart),
			Submit:  h.catalog.Text(message.KeyButtonSubmit),
			Next:    h.catalog.Text(message.KeyButtonNext),
			Restart: h.catalog.Text(message.KeyButtonRestart),
		},
		Levels:  h.levels,
		Modes:   lo.Map(quiz.Modes, func(mode quiz.Mode, _ int) string { return mode.String() }),
		Form:    form,
		View:    view,
		Message: text,
	}
	if last := view.LastAnswer; last != nil && view.State == quiz.StateInProgress {
		data.Feedback = &answerFeedback{Correct: last.Correct, Text: h.catalog.Text(message.KeyAnswerCorrect)}
		if !last.Correct {
			data.Feedback.Text = h.catalog.Text(message.KeyAnswerWrong, last.Expected)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.template.Execute(w, data); err != nil {
		h.logger.Error("failed to render the page", slog.Any("error", err))
	}
}

func (h *PageHandler) formFor(settings quiz.Settings) formValues {
	return formValues{
		Level: settings.Level.String(),
		Count: settings.QuestionCount,
		Mode:  settings.Mode.String(),
	}
}

func sessionIDFrom(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
