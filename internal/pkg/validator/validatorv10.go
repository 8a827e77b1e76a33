package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// Permissive local@domain.tld shape with a 2-3 letter lowercase final segment.
	reTLDEmail = regexp.MustCompile(`^[^ ]+@[^ ]+\.[a-z]{2,3}$`)
)

var (
	// ErrTranslatorNotFound indicates the requested translator is unavailable.
	ErrTranslatorNotFound = errors.New("translator not found")

	// ErrValidatorRequired indicates a dependency was built without a Validator.
	ErrValidatorRequired = errors.New("validator is required")
)

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when struct validation fails.
//
// Keys are the `schema` tag of the field when present, so they match form
// field identifiers, and the Go field name otherwise.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(schemaTagName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := v10CustomValidation(validate, enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError)
		for _, fe := range validateErrs {
			errV10[fe.Field()] = fe.Translate(v.translator)
		}

		return errV10
	}

	return nil
}

// Var validates a single value against tag.
func (v *V10Validator) Var(value any, tag string) error {
	return v.validate.Var(value, tag)
}

// VarWithValue validates value against other using a cross-field tag.
func (v *V10Validator) VarWithValue(value, other any, tag string) error {
	return v.validate.VarWithValue(value, other, tag)
}

// AddMessage registers text under key, replacing any previous entry.
func (v *V10Validator) AddMessage(key, text string) error {
	return v.translator.Add(key, text, true)
}

// Message resolves key from the catalog.
func (v *V10Validator) Message(key string) string {
	msg, err := v.translator.T(key)
	if err != nil {
		slog.Warn("warning: message not found in catalog", "key", key, "error", err)
		return key
	}

	return msg
}

func schemaTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("schema"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}

	return name
}

//nolint:forcetypeassert // make linter silent
func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) error {
	if err := validate.RegisterValidation("tldemail", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return reTLDEmail.MatchString(s)
	}); err != nil {
		return err
	}

	if err := validate.RegisterValidation("fileext", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		idx := strings.LastIndex(s, ".")
		if idx == -1 {
			return false
		}

		ext := s[idx+1:]
		for _, allowed := range strings.Fields(fl.Param()) {
			if strings.EqualFold(ext, allowed) {
				return true
			}
		}
		return false
	}); err != nil {
		return err
	}

	if err := validate.RegisterTranslation("fileext", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("fileext", "{0} must have one of the extensions: {1}", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field(), fe.Param())
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.(error).Error()
			}

			return t
		},
	); err != nil {
		return err
	}

	return validate.RegisterTranslation("tldemail", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("tldemail", "{0} must be a valid email address", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.(error).Error()
			}

			return t
		},
	)
}
