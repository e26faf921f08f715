// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 10 * time.Second

type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}

// App manages application lifecycle with graceful shutdown support.
type App struct {
	mu              sync.Mutex
	hooks           []shutdownHook
	logger          *slog.Logger
	shutdownTimeout time.Duration
	signals         []os.Signal
}

type Option func(*App)

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithShutdownTimeout bounds the time all shutdown hooks may take together.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(a *App) {
		a.shutdownTimeout = timeout
	}
}

// New creates a new App that shuts down on SIGINT or SIGTERM.
func New(opts ...Option) *App {
	a := &App{
		logger:          slog.Default(),
		shutdownTimeout: defaultShutdownTimeout,
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// Run sets up signal handling and executes the run function.
// On a signal or a canceled ctx, it calls registered shutdown hooks in LIFO order.
// If run returns an error before that, the error is returned and hooks still run.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, a.signals...)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down")
		return a.shutdown(context.Background())
	case err := <-errCh:
		if shutdownErr := a.shutdown(context.Background()); shutdownErr != nil {
			return errors.Join(err, shutdownErr)
		}
		return err
	}
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
	defer cancel()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		hook := hooks[i]
		if err := hook.fn(ctx); err != nil {
			a.logger.Error("shutdown hook failed", slog.String("hook", hook.name), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("%s: %w", hook.name, err))
			continue
		}
		a.logger.Debug("shutdown hook done", slog.String("hook", hook.name))
	}
	return errors.Join(errs...)
}
