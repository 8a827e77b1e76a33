package entity

import (
	"errors"
	"strings"
)

var ErrKindUnknown = errors.New("formguard: form kind is unknown")

type Kind int16

const (
	// KindUnknown is mean kind is not known / not set.
	KindUnknown Kind = 0

	KindLogin    Kind = 1
	KindRegister Kind = 2
	KindStudent  Kind = 3
	KindSubject  Kind = 4
	KindUnit     Kind = 5
	KindProgram  Kind = 6
	KindCourse   Kind = 7
	KindSemester Kind = 8
	KindUpload   Kind = 9
	KindSearch   Kind = 10
)

// Kinds lists every known form kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindLogin, KindRegister, KindStudent, KindSubject, KindUnit,
		KindProgram, KindCourse, KindSemester, KindUpload, KindSearch,
	}
}

func (k Kind) String() string {
	switch k {
	case KindLogin:
		return "login"
	case KindRegister:
		return "register"
	case KindStudent:
		return "student"
	case KindSubject:
		return "subject"
	case KindUnit:
		return "unit"
	case KindProgram:
		return "program"
	case KindCourse:
		return "course"
	case KindSemester:
		return "semester"
	case KindUpload:
		return "upload"
	case KindSearch:
		return "search"
	default:
		return "unknown"
	}
}

func (k Kind) IsUnknown() bool {
	return k < KindLogin || k > KindSearch
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name, see ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind maps a case-insensitive kind name to a Kind.
func ParseKind(raw string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}

	return KindUnknown, ErrKindUnknown
}

// Reason is the stable code of a failed check.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonRequired         Reason = "required"
	ReasonEmailFormat      Reason = "email_format"
	ReasonPasswordLength   Reason = "password_length"
	ReasonPasswordMismatch Reason = "password_mismatch"
	ReasonFileType         Reason = "file_type"
)
