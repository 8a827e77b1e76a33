package entity

// Typed submissions, one per form kind. The `schema` tags are the field
// identifiers so the structs encode to and decode from form values directly.

type LoginForm struct {
	UserID   string `schema:"userid"`
	Password string `schema:"password"`
}

type RegisterForm struct {
	Name     string `schema:"name"`
	Email    string `schema:"email"`
	Password string `schema:"password"`
	Confirm  string `schema:"confirm"`
}

type StudentForm struct {
	StudentName  string `schema:"studentName"`
	StudentEmail string `schema:"studentEmail"`
	DOB          string `schema:"dob"`
	Gender       string `schema:"gender"`
}

type SubjectForm struct {
	Subject string `schema:"subject"`
	Code    string `schema:"code"`
}

type UnitForm struct {
	UnitTitle string `schema:"unitTitle"`
	UnitDesc  string `schema:"unitDesc"`
}

type ProgramForm struct {
	ProgramName string `schema:"programName"`
	ProgramCode string `schema:"programCode"`
}

type CourseForm struct {
	CourseName string `schema:"courseName"`
}

type SemesterForm struct {
	Course   string `schema:"course"`
	Semester string `schema:"semester"`
}

// UploadForm carries the chosen file's name, as the file input reports it.
type UploadForm struct {
	File string `schema:"file"`
}

type SearchForm struct {
	Search string `schema:"search"`
}
