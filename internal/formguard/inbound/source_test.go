package inbound

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shandysiswandi/formguard/internal/formguard/entity"
	"github.com/shandysiswandi/formguard/internal/formguard/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRequest_URLEncoded(t *testing.T) {
	body := url.Values{"userid": {"u1", "u2"}, "password": {"secret"}}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	values, err := FromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "u1", values.Get("userid"))
	assert.Equal(t, "secret", values.Get("password"))
	assert.Equal(t, "", values.Get("missing"))
}

func TestFromRequest_Query(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/search?search=graphs", nil)

	values, err := FromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, entity.Values{"search": "graphs"}, values)
}

func TestFromRequest_BodyIgnoresQuery(t *testing.T) {
	tests := []struct {
		method string
		want   entity.Values
	}{
		{method: http.MethodPost, want: entity.Values{"other": "1"}},
		{method: http.MethodPut, want: entity.Values{"other": "1"}},
		{method: http.MethodPatch, want: entity.Values{"other": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, "/search?search=fromquery", strings.NewReader("other=1"))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			values, err := FromRequest(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
			assert.Equal(t, "", values.Get("search"))
		})
	}
}

func TestFromRequest_MultipartFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "syllabus.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("subject_id", "7"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/upload?file=fromquery.pdf", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	values, err := FromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "syllabus.pdf", values.Get("file"))
	assert.Equal(t, "7", values.Get("subject_id"))
}

func TestFromRequest_BrokenMultipart(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("garbage"))
	r.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")

	_, err := FromRequest(r)
	assert.Error(t, err)
}

func TestFromStruct(t *testing.T) {
	values, err := FromStruct(&entity.RegisterForm{Name: "Jane", Email: "jane@uni.edu", Password: "abcdef"})
	require.NoError(t, err)

	var src usecase.FieldSource = values
	assert.Equal(t, "Jane", src.Get("name"))
	assert.Equal(t, "jane@uni.edu", src.Get("email"))
	assert.Equal(t, "", src.Get("confirm"))

	_, err = FromStruct("not a struct")
	assert.Error(t, err)
}

func TestBind(t *testing.T) {
	var form entity.StudentForm
	err := Bind(url.Values{
		"studentName":  {"Jane"},
		"studentEmail": {"jane@uni.edu"},
		"dob":          {"2001-02-03"},
		"gender":       {"F"},
		"csrf":         {"ignored"},
	}, &form)
	require.NoError(t, err)

	assert.Equal(t, entity.StudentForm{StudentName: "Jane", StudentEmail: "jane@uni.edu", DOB: "2001-02-03", Gender: "F"}, form)
}

func TestBind_NotPointer(t *testing.T) {
	assert.Error(t, Bind(url.Values{"search": {"x"}}, entity.SearchForm{}))
}

func TestToURLValues(t *testing.T) {
	v := ToURLValues(entity.Values{"course": "1", "semester": "2"})
	assert.Equal(t, "1", v.Get("course"))
	assert.Equal(t, "2", v.Get("semester"))

	var form entity.SemesterForm
	require.NoError(t, Bind(v, &form))
	assert.Equal(t, entity.SemesterForm{Course: "1", Semester: "2"}, form)
}

func TestNotifiers(t *testing.T) {
	var got []string
	var n usecase.Notifier = NotifierFunc(func(m string) { got = append(got, m) })
	n.Notify("a")
	assert.Equal(t, []string{"a"}, got)

	var buf bytes.Buffer
	NewWriterNotifier(&buf).Notify("Please enter a search keyword.")
	assert.Equal(t, "Please enter a search keyword.\n", buf.String())
}
