package entity

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Message catalog keys, "<kind>.<reason>".
const (
	MsgLoginRequired            = "login.required"
	MsgRegisterRequired         = "register.required"
	MsgRegisterEmailFormat      = "register.email_format"
	MsgRegisterPasswordLength   = "register.password_length"
	MsgRegisterPasswordMismatch = "register.password_mismatch"
	MsgStudentRequired          = "student.required"
	MsgSubjectRequired          = "subject.required"
	MsgUnitRequired             = "unit.required"
	MsgProgramRequired          = "program.required"
	MsgCourseRequired           = "course.required"
	MsgSemesterRequired         = "semester.required"
	MsgUploadRequired           = "upload.required"
	MsgUploadFileType           = "upload.file_type"
	MsgSearchRequired           = "search.required"
)

// Messages is the English text for every catalog key.
func Messages() map[string]string {
	return map[string]string{
		MsgLoginRequired:            "User ID and Password are required.",
		MsgRegisterRequired:         "All fields are required.",
		MsgRegisterEmailFormat:      "Invalid email format.",
		MsgRegisterPasswordLength:   "Password must be at least 6 characters.",
		MsgRegisterPasswordMismatch: "Passwords do not match.",
		MsgStudentRequired:          "All fields are required.",
		MsgSubjectRequired:          "Subject Name and Code are required.",
		MsgUnitRequired:             "Unit Title and Description are required.",
		MsgProgramRequired:          "Program Name and Code are required.",
		MsgCourseRequired:           "Course name is required.",
		MsgSemesterRequired:         "Course and Semester must be selected.",
		MsgUploadRequired:           "Please upload a syllabus file.",
		MsgUploadFileType:           FileTypeMessage(UploadExtensions()),
		MsgSearchRequired:           "Please enter a search keyword.",
	}
}

// MinPasswordLength is the registration password floor, in characters.
const MinPasswordLength = 6

// UploadExtensions is the syllabus file allowlist used when upload file types
// are restricted. Unrestricted uploads accept any file name.
func UploadExtensions() []string {
	return []string{"pdf", "doc", "docx", "txt"}
}

// FileTypeMessage is the failure text for a file outside exts.
func FileTypeMessage(exts []string) string {
	return "Invalid file type. Allowed: " + strings.Join(exts, ", ")
}

// NormalizeExtensions lowercases exts, drops leading dots and duplicates, and
// discards entries that cannot be expressed in a validator tag.
func NormalizeExtensions(exts []string) []string {
	out := lo.FilterMap(exts, func(ext string, _ int) (string, bool) {
		ext = strings.ToLower(strings.TrimLeft(strings.TrimSpace(ext), "."))
		return ext, ext != "" && !strings.ContainsAny(ext, ".,|= \t")
	})

	return lo.Uniq(out)
}

// FileTypeCheck restricts field to names ending in one of exts. exts must be
// normalized and non-empty.
func FileTypeCheck(field string, exts []string) Check {
	return Check{
		Field:      field,
		Tag:        "fileext=" + strings.Join(exts, " "),
		Reason:     ReasonFileType,
		MessageKey: MsgUploadFileType,
	}
}

func required(key string, ids ...string) []Check {
	checks := make([]Check, 0, len(ids))
	for _, id := range ids {
		checks = append(checks, Check{Field: id, Tag: "required", Reason: ReasonRequired, MessageKey: key})
	}
	return checks
}

// Forms returns the definition of every form kind, in Kinds order.
//
// Field identifiers are the element ids of the rendered pages.
func Forms() []Form {
	return []Form{
		{
			Kind: KindLogin,
			Fields: []Field{
				{ID: "userid", Label: "User ID", Trim: true},
				{ID: "password", Label: "Password"},
			},
			Checks: required(MsgLoginRequired, "userid", "password"),
		},
		{
			Kind: KindRegister,
			Fields: []Field{
				{ID: "name", Label: "Name", Trim: true},
				{ID: "email", Label: "Email", Trim: true},
				{ID: "password", Label: "Password"},
				{ID: "confirm", Label: "Confirm Password"},
			},
			Checks: append(required(MsgRegisterRequired, "name", "email", "password", "confirm"),
				Check{Field: "email", Tag: "tldemail", Reason: ReasonEmailFormat, MessageKey: MsgRegisterEmailFormat},
				Check{Field: "password", Tag: "min=" + strconv.Itoa(MinPasswordLength), Reason: ReasonPasswordLength, MessageKey: MsgRegisterPasswordLength},
				Check{Field: "password", Tag: "eqfield", Other: "confirm", Reason: ReasonPasswordMismatch, MessageKey: MsgRegisterPasswordMismatch},
			),
		},
		{
			Kind: KindStudent,
			Fields: []Field{
				{ID: "studentName", Label: "Student Name", Trim: true},
				{ID: "studentEmail", Label: "Student Email", Trim: true},
				{ID: "dob", Label: "Date of Birth"},
				{ID: "gender", Label: "Gender"},
			},
			Checks: required(MsgStudentRequired, "studentName", "studentEmail", "dob", "gender"),
		},
		{
			Kind: KindSubject,
			Fields: []Field{
				{ID: "subject", Label: "Subject Name", Trim: true},
				{ID: "code", Label: "Subject Code", Trim: true},
			},
			Checks: required(MsgSubjectRequired, "subject", "code"),
		},
		{
			Kind: KindUnit,
			Fields: []Field{
				{ID: "unitTitle", Label: "Unit Title", Trim: true},
				{ID: "unitDesc", Label: "Unit Description", Trim: true},
			},
			Checks: required(MsgUnitRequired, "unitTitle", "unitDesc"),
		},
		{
			Kind: KindProgram,
			Fields: []Field{
				{ID: "programName", Label: "Program Name", Trim: true},
				{ID: "programCode", Label: "Program Code", Trim: true},
			},
			Checks: required(MsgProgramRequired, "programName", "programCode"),
		},
		{
			Kind:   KindCourse,
			Fields: []Field{{ID: "courseName", Label: "Course Name", Trim: true}},
			Checks: required(MsgCourseRequired, "courseName"),
		},
		{
			Kind: KindSemester,
			Fields: []Field{
				{ID: "course", Label: "Course"},
				{ID: "semester", Label: "Semester"},
			},
			Checks: required(MsgSemesterRequired, "course", "semester"),
		},
		{
			Kind:   KindUpload,
			Fields: []Field{{ID: "file", Label: "Syllabus File"}},
			Checks: required(MsgUploadRequired, "file"),
		},
		{
			Kind:   KindSearch,
			Fields: []Field{{ID: "search", Label: "Search Keyword", Trim: true}},
			Checks: required(MsgSearchRequired, "search"),
		},
	}
}
