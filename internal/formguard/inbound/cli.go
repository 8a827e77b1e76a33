package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/formguard/internal/formguard/entity"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/goerror"
	"github.com/shandysiswandi/formguard/internal/pkg/stacktrace"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Exit codes returned by Command.Run.
const (
	ExitValid   = 0
	ExitInvalid = 1
	ExitUsage   = 2
	ExitPanic   = 3
)

// Result formats accepted by --output.
const (
	outputJSON = "json"
	outputText = "text"
)

// IO bundles the streams a Command reads from and writes to.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Command validates one field record from the command line.
type Command struct {
	uc     uc
	cfg    config.Config
	stdio  IO
	notify *WriterNotifier
}

func NewCommand(uc uc, cfg config.Config, stdio IO) *Command {
	return &Command{uc: uc, cfg: cfg, stdio: stdio, notify: NewWriterNotifier(stdio.Stderr)}
}

type fieldView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Trim  bool   `json:"trim"`
}

type formView struct {
	Kind   entity.Kind `json:"kind"`
	Fields []fieldView `json:"fields"`
}

// Run parses args, validates the record and prints the outcome.
//
// A panic while handling args is logged with its internal frames and
// reported as ExitPanic.
func (c *Command) Run(ctx context.Context, args []string) (code int) {
	defer func() {
		if rvr := recover(); rvr != nil {
			paths := stacktrace.InternalPaths(debug.Stack())
			if len(paths) == 0 {
				slog.ErrorContext(ctx, "panic on the command trace debug", "because", rvr, "stack", string(debug.Stack()))
			} else {
				slog.ErrorContext(ctx, "panic on the command", "because", rvr, "stack", paths)
			}

			fmt.Fprintln(c.stdio.Stderr, "internal error")
			code = ExitPanic
		}
	}()

	return c.run(ctx, args)
}

func (c *Command) run(ctx context.Context, args []string) int {
	fs := pflag.NewFlagSet("formguard", pflag.ContinueOnError)
	fs.SetOutput(c.stdio.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(c.stdio.Stderr, "usage: formguard [flags] <kind>")
		fmt.Fprintln(c.stdio.Stderr, "kinds: "+strings.Join(lo.Map(entity.Kinds(), func(k entity.Kind, _ int) string { return k.String() }), ", "))
		fs.PrintDefaults()
	}

	fields := fs.StringArrayP("field", "f", nil, "field value as id=value, repeatable")
	input := fs.StringP("input", "i", "", "YAML or JSON field record file, - for stdin")
	output := fs.StringP("output", "o", c.cfg.GetString("cli.output"), "result format: json or text")
	list := fs.Bool("list", false, "list form kinds and their fields")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitValid
		}
		return ExitUsage
	}

	format := strings.ToLower(strings.TrimSpace(*output))
	if format == "" {
		format = outputJSON
	}
	if format != outputJSON && format != outputText {
		fmt.Fprintf(c.stdio.Stderr, "unknown output format %q, want json or text\n", *output)
		return ExitUsage
	}

	if *list {
		return c.printForms(format)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return ExitUsage
	}

	kind, err := entity.ParseKind(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(c.stdio.Stderr, "unknown form kind %q\n", fs.Arg(0))
		return ExitUsage
	}

	values, err := c.record(*input, *fields)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read field record", "error", err)
		fmt.Fprintln(c.stdio.Stderr, err.Error())
		return ExitUsage
	}

	out, err := c.uc.Validate(ctx, kind, values)
	if err != nil {
		fmt.Fprintln(c.stdio.Stderr, err.Error())
		return ExitUsage
	}

	if !out.Valid {
		c.notify.Notify(out.Message)
	}

	if err := c.printOutcome(format, out); err != nil {
		slog.ErrorContext(ctx, "failed to write outcome", "error", err)
		return ExitUsage
	}

	if !out.Valid {
		return ExitInvalid
	}
	return ExitValid
}

// record merges the input file (if any) with --field pairs; pairs win.
func (c *Command) record(input string, pairs []string) (entity.Values, error) {
	values := make(entity.Values)

	if input != "" {
		r := c.stdio.Stdin
		if input != "-" {
			f, err := os.Open(input)
			if err != nil {
				return nil, goerror.NewInvalidFormat(err, "Cannot open field record")
			}
			defer f.Close()
			r = f
		}

		rec, err := decodeRecord(r)
		if err != nil {
			return nil, err
		}
		for k, v := range rec {
			values[k] = v
		}
	}

	for _, pair := range pairs {
		id, val, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, goerror.NewInvalidFormat(nil, fmt.Sprintf("field %q must be formatted as id=value", pair))
		}
		values[id] = val
	}

	return values, nil
}

// decodeRecord reads a flat mapping of field id to value. JSON parses as YAML.
func decodeRecord(r io.Reader) (entity.Values, error) {
	var raw map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat(err, "Invalid field record")
	}

	return entity.Values(raw), nil
}

func (c *Command) printOutcome(format string, out entity.Outcome) error {
	if format == outputText {
		if out.Valid {
			_, err := fmt.Fprintf(c.stdio.Stdout, "OK %s\n", out.Kind)
			return err
		}
		_, err := fmt.Fprintf(c.stdio.Stdout, "FAIL %s field=%s reason=%s\n", out.Kind, out.Field, out.Reason)
		return err
	}

	return json.NewEncoder(c.stdio.Stdout).Encode(out)
}

func (c *Command) printForms(format string) int {
	views := lo.Map(c.uc.Forms(), func(f entity.Form, _ int) formView {
		return formView{
			Kind: f.Kind,
			Fields: lo.Map(f.Fields, func(fd entity.Field, _ int) fieldView {
				return fieldView{ID: fd.ID, Label: fd.Label, Trim: fd.Trim}
			}),
		}
	})

	if format == outputText {
		for _, v := range views {
			ids := lo.Map(v.Fields, func(fd fieldView, _ int) string { return fd.ID })
			fmt.Fprintf(c.stdio.Stdout, "%s: %s\n", v.Kind, strings.Join(ids, ", "))
		}
		return ExitValid
	}

	if err := json.NewEncoder(c.stdio.Stdout).Encode(views); err != nil {
		return ExitUsage
	}
	return ExitValid
}
