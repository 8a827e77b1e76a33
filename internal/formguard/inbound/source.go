package inbound

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/shandysiswandi/formguard/internal/formguard/entity"
	"github.com/shandysiswandi/formguard/internal/pkg/goerror"
)

// MaxFormMemory bounds the multipart body kept in memory while parsing.
const MaxFormMemory int64 = 10 << 20 // 10 MB

// url.Values already satisfies usecase.FieldSource through its Get method.

// FromRequest reads the submitted fields of r, which may be urlencoded or
// multipart. POST, PUT and PATCH read the body only, so a query string cannot
// fill a field the body lacks; other methods read the query. For a file part
// the value is the client filename, the same value a browser file input
// reports. The first value wins for repeated keys.
func FromRequest(r *http.Request) (entity.Values, error) {
	if err := r.ParseMultipartForm(MaxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, goerror.NewInvalidFormat(err, "Invalid form submission")
	}

	form := r.Form
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		form = r.PostForm
	}

	values := make(entity.Values, len(form))
	for k, vs := range form {
		if len(vs) > 0 {
			values[k] = vs[0]
		}
	}

	if r.MultipartForm != nil {
		for k, files := range r.MultipartForm.File {
			if len(files) > 0 && values[k] == "" {
				values[k] = files[0].Filename
			}
		}
	}

	return values, nil
}

// FromStruct encodes a typed form such as entity.RegisterForm into field
// values using its `schema` tags.
func FromStruct(form any) (url.Values, error) {
	dst := make(url.Values)
	if err := schema.NewEncoder().Encode(form, dst); err != nil {
		return nil, goerror.NewInvalidFormat(err, "Invalid form struct")
	}

	return dst, nil
}

// Bind decodes field values into a typed form struct. Unknown keys are ignored.
func Bind(src url.Values, dst any) error {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	if err := dec.Decode(dst, src); err != nil {
		return goerror.NewInvalidFormat(err, "Invalid form values")
	}

	return nil
}

// ToURLValues converts a field record to url.Values, e.g. before Bind.
func ToURLValues(v entity.Values) url.Values {
	out := make(url.Values, len(v))
	for k, val := range v {
		out.Set(k, val)
	}
	return out
}
