package usecase

import (
	"fmt"
	"strings"

	"github.com/shandysiswandi/formguard/internal/formguard/entity"
	"github.com/shandysiswandi/formguard/internal/pkg/goerror"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
)

// ErrUnknownForm is returned when no definition exists for the requested kind.
var ErrUnknownForm = goerror.NewNotFound("Unknown form kind")

// FieldSource looks up current field contents by identifier. Absent fields
// must yield "".
type FieldSource interface {
	Get(id string) string
}

// Notifier surfaces a single failure message to the user and returns once it
// has been acknowledged.
type Notifier interface {
	Notify(message string)
}

type Usecase struct {
	validator validator.Validator
	forms     map[entity.Kind]entity.Form
	order     []entity.Kind
}

type Dependency struct {
	Validator validator.Validator
	// Forms overrides the built-in definitions. Optional.
	Forms []entity.Form
	// Messages overrides or extends the built-in catalog. Optional.
	Messages map[string]string
	// UploadExtensions restricts upload file names to these extensions, e.g.
	// pdf and docx. Empty accepts any chosen file. Optional.
	UploadExtensions []string
}

func New(dep Dependency) (*Usecase, error) {
	if dep.Validator == nil {
		return nil, validator.ErrValidatorRequired
	}

	forms := dep.Forms
	if forms == nil {
		forms = entity.Forms()
	}

	messages := entity.Messages()
	if exts := entity.NormalizeExtensions(dep.UploadExtensions); len(exts) > 0 {
		forms = restrictUpload(forms, exts)
		messages[entity.MsgUploadFileType] = entity.FileTypeMessage(exts)
	}
	for k, v := range dep.Messages {
		messages[k] = v
	}

	for key, text := range messages {
		if err := dep.Validator.AddMessage(key, text); err != nil {
			return nil, goerror.NewServer(err)
		}
	}

	uc := &Usecase{
		validator: dep.Validator,
		forms:     make(map[entity.Kind]entity.Form, len(forms)),
		order:     make([]entity.Kind, 0, len(forms)),
	}
	for _, f := range forms {
		if err := uc.compile(f); err != nil {
			return nil, goerror.NewServer(err)
		}

		if _, dup := uc.forms[f.Kind]; !dup {
			uc.order = append(uc.order, f.Kind)
		}
		uc.forms[f.Kind] = f
	}

	return uc, nil
}

// restrictUpload appends the file type check to the upload form. The other
// definitions and the caller's slices are left untouched.
func restrictUpload(forms []entity.Form, exts []string) []entity.Form {
	out := make([]entity.Form, len(forms))
	for i, f := range forms {
		if f.Kind == entity.KindUpload {
			checks := make([]entity.Check, 0, len(f.Checks)+1)
			checks = append(checks, f.Checks...)
			f.Checks = append(checks, entity.FileTypeCheck("file", exts))
		}
		out[i] = f
	}

	return out
}

// compile runs every check of f once against empty values, so an undeclared
// field or a malformed tag fails here instead of on a submission.
func (s *Usecase) compile(f entity.Form) error {
	for i, c := range f.Checks {
		if _, ok := f.Field(c.Field); !ok {
			return fmt.Errorf("form %s check %d: field %q is not declared", f.Kind, i, c.Field)
		}
		if c.Other != "" {
			if _, ok := f.Field(c.Other); !ok {
				return fmt.Errorf("form %s check %d: field %q is not declared", f.Kind, i, c.Other)
			}
		}
		if strings.TrimSpace(c.Tag) == "" {
			return fmt.Errorf("form %s check %d on %q: tag is empty", f.Kind, i, c.Field)
		}
		if err := s.dryRun(c); err != nil {
			return fmt.Errorf("form %s check %d on %q: %w", f.Kind, i, c.Field, err)
		}
	}

	return nil
}

// dryRun reports a panic from the validator as an error. A plain validation
// failure is expected for empty values and is ignored.
func (s *Usecase) dryRun(c entity.Check) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			err = fmt.Errorf("invalid tag %q: %v", c.Tag, rvr)
		}
	}()

	if c.Other != "" {
		_ = s.validator.VarWithValue("", "", c.Tag)
	} else {
		_ = s.validator.Var("", c.Tag)
	}

	return nil
}
