package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *V10Validator {
	t.Helper()

	v, err := NewV10Validator()
	require.NoError(t, err)
	return v
}

func TestV10Validator_TLDEmail(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		email string
		ok    bool
	}{
		{email: "a@b.co", ok: true},
		{email: "john@example.com", ok: true},
		{email: "a@b.c", ok: false},
		{email: "a b@c.com", ok: false},
		{email: "a@b.info", ok: false},
		{email: "a@b.COM", ok: false},
		{email: "ab.com", ok: false},
		{email: "@b.com", ok: false},
		{email: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := v.Var(tt.email, "tldemail")
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestV10Validator_FileExt(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name string
		tag  string
		ok   bool
	}{
		{name: "syllabus.pdf", tag: "fileext=pdf doc docx txt", ok: true},
		{name: `C:\fakepath\notes.DOCX`, tag: "fileext=pdf doc docx txt", ok: true},
		{name: "archive.tar.txt", tag: "fileext=pdf doc docx txt", ok: true},
		{name: ".txt", tag: "fileext=pdf doc docx txt", ok: true},
		{name: "malware.exe", tag: "fileext=pdf doc docx txt", ok: false},
		{name: "syllabus.pdf.exe", tag: "fileext=pdf doc docx txt", ok: false},
		{name: "README", tag: "fileext=pdf doc docx txt", ok: false},
		{name: "trailing.", tag: "fileext=pdf doc docx txt", ok: false},
		{name: "", tag: "fileext=pdf", ok: false},
		{name: "syllabus.pdf", tag: "fileext", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.tag, func(t *testing.T) {
			err := v.Var(tt.name, tt.tag)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestV10Validator_FileExtMessage(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(struct {
		File string `schema:"file" validate:"fileext=pdf txt"`
	}{File: "a.exe"})

	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "file must have one of the extensions: pdf txt", verr.Values()["file"])
}

func TestV10Validator_Var(t *testing.T) {
	v := newTestValidator(t)

	assert.Error(t, v.Var("", "required"))
	assert.NoError(t, v.Var("x", "required"))
	assert.Error(t, v.Var("abcde", "min=6"))
	assert.NoError(t, v.Var("abcdef", "min=6"))
	assert.NoError(t, v.Var("ééééééé", "min=6"))
}

func TestV10Validator_VarWithValue(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.VarWithValue("abcdef", "abcdef", "eqfield"))
	assert.Error(t, v.VarWithValue("abcdef", "abcdeg", "eqfield"))
}

func TestV10Validator_Validate(t *testing.T) {
	v := newTestValidator(t)

	type form struct {
		Email string `schema:"email" validate:"required,tldemail"`
		Name  string `validate:"required"`
	}

	err := v.Validate(form{Email: "a@b.c"})
	require.Error(t, err)

	var ve V10ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email must be a valid email address", ve.Values()["email"])
	assert.Equal(t, "Name is a required field", ve.Values()["Name"])

	assert.NoError(t, v.Validate(form{Email: "a@b.co", Name: "x"}))
}

func TestV10ValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation error", V10ValidationError{}.Error())
	assert.Equal(t, `{"a":"b"}`, V10ValidationError{"a": "b"}.Error())
}

func TestV10Validator_Message(t *testing.T) {
	v := newTestValidator(t)

	require.NoError(t, v.AddMessage("search.required", "Please enter a search keyword."))
	assert.Equal(t, "Please enter a search keyword.", v.Message("search.required"))

	require.NoError(t, v.AddMessage("search.required", "replaced"))
	assert.Equal(t, "replaced", v.Message("search.required"))

	assert.Equal(t, "missing.key", v.Message("missing.key"))
}
