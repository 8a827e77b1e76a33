package app

import (
	"context"
	_ "embed"
	"log/slog"
	"os"

	"github.com/shandysiswandi/formguard/internal/formguard"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/uid"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
)

//go:embed default.yaml
var defaultConfig []byte

func (a *App) initConfig() error {
	var (
		cfg *config.Viper
		err error
	)

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		cfg, err = config.NewViper(path, defaultConfig)
	} else {
		cfg, err = config.NewViperFromBytes("yaml", defaultConfig)
	}
	if err != nil {
		slog.Error("failed to init config", "error", err)
		return err
	}

	a.config = cfg
	return nil
}

func (a *App) initInstrument() error {
	a.logger = instrument.New(&instrument.Config{
		ServiceName: a.config.GetString("app.name"),
		Level:       a.config.GetString("log.level"),
		Format:      a.config.GetString("log.format"),
		MaskFields:  a.config.GetArray("log.mask_fields"),
		Output:      a.stdio.Stderr,
	})

	return nil
}

func (a *App) initLibraries() error {
	a.uuid = uid.NewUUID()

	v, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		return err
	}
	a.validator = v

	return nil
}

func (a *App) initModules() error {
	forms, cmd, err := formguard.New(formguard.Dependency{
		Config:    a.config,
		Validator: a.validator,
		IO:        a.stdio,
	})
	if err != nil {
		slog.Error("failed to init module formguard", "error", err)
		return err
	}

	a.forms = forms
	a.command = cmd
	return nil
}

func (a *App) initClosers() error {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}

	return nil
}

func instrumentContext(ctx context.Context, gen uid.StringID) context.Context {
	if instrument.GetCorrelationID(ctx) != "" {
		return ctx
	}

	return instrument.SetCorrelationID(ctx, gen.Generate())
}
