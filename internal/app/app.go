package app

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/formguard/internal/formguard/inbound"
	"github.com/shandysiswandi/formguard/internal/formguard/usecase"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/uid"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
)

// App wires dependencies and runs one command invocation.
type App struct {
	stdio inbound.IO

	// configuration
	config config.Config
	logger *slog.Logger

	// libraries
	validator validator.Validator
	uuid      uid.StringID

	// modules
	forms   *usecase.Usecase
	command *inbound.Command

	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New(stdio inbound.IO) (*App, error) {
	app := &App{stdio: stdio}

	for _, step := range []func() error{
		app.initConfig,
		app.initInstrument,
		app.initLibraries,
		app.initModules,
		app.initClosers,
	} {
		if err := step(); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Forms exposes the form usecase for in-process callers.
func (a *App) Forms() *usecase.Usecase {
	return a.forms
}

// Run executes the command with args under a fresh correlation id and
// returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	ctx = instrumentContext(ctx, a.uuid)

	slog.DebugContext(ctx, "running command", "args", len(args))

	return a.command.Run(ctx, args)
}

// Stop releases resources in registration order.
func (a *App) Stop(ctx context.Context) {
	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
		}
	}
}
