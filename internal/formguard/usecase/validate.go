package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/formguard/internal/formguard/entity"
)

// Validate runs the checks of kind against src in declared order and stops
// at the first failure. The error is non-nil only when kind has no definition.
func (s *Usecase) Validate(ctx context.Context, kind entity.Kind, src FieldSource) (entity.Outcome, error) {
	form, ok := s.forms[kind]
	if !ok {
		slog.WarnContext(ctx, "validation requested for unknown form", "kind", kind.String())
		return entity.Failed(kind, "", entity.ReasonNone, ""), ErrUnknownForm
	}

	return s.evaluate(ctx, form, src), nil
}

func (s *Usecase) evaluate(ctx context.Context, form entity.Form, src FieldSource) entity.Outcome {
	values := read(form, src)

	for _, c := range form.Checks {
		var err error
		if c.Other != "" {
			err = s.validator.VarWithValue(values[c.Field], values[c.Other], c.Tag)
		} else {
			err = s.validator.Var(values[c.Field], c.Tag)
		}
		if err == nil {
			continue
		}

		slog.DebugContext(ctx, "form validation failed",
			"kind", form.Kind.String(),
			"field", c.Field,
			"reason", string(c.Reason),
		)

		return entity.Failed(form.Kind, c.Field, c.Reason, s.validator.Message(c.MessageKey))
	}

	slog.DebugContext(ctx, "form validation passed", "kind", form.Kind.String())

	return entity.Passed(form.Kind)
}

// read snapshots every declared field once, applying its trim policy. A nil
// source behaves as one where every field is absent.
func read(form entity.Form, src FieldSource) map[string]string {
	values := make(map[string]string, len(form.Fields))
	for _, f := range form.Fields {
		var raw string
		if src != nil {
			raw = src.Get(f.ID)
		}
		values[f.ID] = f.Normalize(raw)
	}

	return values
}

// Check is the notifier-style entry point: it reports whether the submission
// may proceed and, on failure, shows exactly one message through n.
func (s *Usecase) Check(ctx context.Context, kind entity.Kind, src FieldSource, n Notifier) bool {
	out, err := s.Validate(ctx, kind, src)
	if err != nil {
		slog.ErrorContext(ctx, "failed to validate form", "kind", kind.String(), "error", err)
		return false
	}

	if !out.Valid && n != nil {
		n.Notify(out.Message)
	}

	return out.Valid
}

// Forms returns the active definitions in registration order.
func (s *Usecase) Forms() []entity.Form {
	out := make([]entity.Form, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.forms[k])
	}

	return out
}

// Form returns the definition for kind.
func (s *Usecase) Form(kind entity.Kind) (entity.Form, bool) {
	f, ok := s.forms[kind]
	return f, ok
}
