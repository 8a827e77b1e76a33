package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shandysiswandi/formguard/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + k.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("REGISTER")
	require.NoError(t, err)
	assert.Equal(t, KindRegister, got)

	_, err = ParseKind("profile")
	assert.ErrorIs(t, err, ErrKindUnknown)
}

func TestKind_IsUnknown(t *testing.T) {
	assert.True(t, KindUnknown.IsUnknown())
	assert.True(t, Kind(11).IsUnknown())
	assert.False(t, KindSearch.IsUnknown())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestKind_Text(t *testing.T) {
	b, err := json.Marshal(struct {
		K Kind `json:"k"`
	}{K: KindUpload})
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"upload"}`, string(b))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("semester")))
	assert.Equal(t, KindSemester, k)
	assert.Error(t, k.UnmarshalText([]byte("nope")))
}

func TestField_Normalize(t *testing.T) {
	trimmed := Field{ID: "search", Trim: true}
	raw := Field{ID: "password"}

	assert.Equal(t, "", trimmed.Normalize("  "))
	assert.Equal(t, "go", trimmed.Normalize("\t go \n"))
	assert.Equal(t, "go", trimmed.Normalize("\uFEFFgo "))
	assert.Equal(t, "  ", raw.Normalize("  "))
}

func TestForms_CoverEveryKind(t *testing.T) {
	forms := Forms()
	require.Len(t, forms, len(Kinds()))

	msgs := Messages()
	for i, f := range forms {
		assert.Equal(t, Kinds()[i], f.Kind)
		require.NotEmpty(t, f.Checks, f.Kind.String())

		for _, c := range f.Checks {
			_, ok := f.Field(c.Field)
			assert.True(t, ok, "%s: check on undeclared field %q", f.Kind, c.Field)
			if c.Other != "" {
				_, ok = f.Field(c.Other)
				assert.True(t, ok, "%s: check against undeclared field %q", f.Kind, c.Other)
			}
			assert.Contains(t, msgs, c.MessageKey)
		}
	}
}

func TestForm_FieldIDs(t *testing.T) {
	register := Forms()[1]
	assert.Equal(t, []string{"name", "email", "password", "confirm"}, register.FieldIDs())

	_, ok := register.Field("missing")
	assert.False(t, ok)
}

func TestValues_Get(t *testing.T) {
	v := Values{"userid": "u1"}
	assert.Equal(t, "u1", v.Get("userid"))
	assert.Equal(t, "", v.Get("password"))

	var nilValues Values
	assert.Equal(t, "", nilValues.Get("userid"))
}

func TestOutcome_Err(t *testing.T) {
	assert.NoError(t, Passed(KindLogin).Err())

	err := Failed(KindSearch, "search", ReasonRequired, "Please enter a search keyword.").Err()

	var ge *goerror.Error
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "Please enter a search keyword.", ge.Msg())
	assert.Equal(t, map[string]string{"search": "Please enter a search keyword."}, ge.Fields())
	assert.Equal(t, goerror.CodeInvalidInput, ge.Code())
}

func TestOutcome_JSON(t *testing.T) {
	b, err := json.Marshal(Failed(KindRegister, "email", ReasonEmailFormat, "Invalid email format."))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"valid":false,"kind":"register","field":"email","reason":"email_format","message":"Invalid email format."}`,
		string(b),
	)

	b, err = json.Marshal(Passed(KindLogin))
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":true,"kind":"login"}`, string(b))
}

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "allowlist", in: UploadExtensions(), want: []string{"pdf", "doc", "docx", "txt"}},
		{name: "dots case and spaces", in: []string{" .PDF ", "..Txt"}, want: []string{"pdf", "txt"}},
		{name: "duplicates", in: []string{"pdf", "PDF", ".pdf"}, want: []string{"pdf"}},
		{name: "unusable entries", in: []string{"", "tar.gz", "a b", "x,y", "p|q", "k=v"}, want: []string{}},
		{name: "nil", in: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExtensions(tt.in))
		})
	}
}

func TestFileTypeCheck(t *testing.T) {
	c := FileTypeCheck("file", []string{"pdf", "txt"})

	assert.Equal(t, Check{
		Field:      "file",
		Tag:        "fileext=pdf txt",
		Reason:     ReasonFileType,
		MessageKey: MsgUploadFileType,
	}, c)
	assert.Equal(t, "Invalid file type. Allowed: pdf, txt", FileTypeMessage([]string{"pdf", "txt"}))
	assert.Equal(t, FileTypeMessage(UploadExtensions()), Messages()[MsgUploadFileType])
}
