package entity

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Field describes one form input.
type Field struct {
	// ID is the identifier used to look the value up in a field source.
	ID string
	// Label is a human name for rendering and logs.
	Label string
	// Trim strips surrounding whitespace before any check. Free-text inputs
	// trim; selections, passwords and file handles are checked as-is.
	Trim bool
}

// Normalize applies the field's trim policy to raw.
func (f Field) Normalize(raw string) string {
	if !f.Trim {
		return raw
	}

	return strings.TrimFunc(raw, isTrimmable)
}

// U+FEFF is stripped by browser trimming but is not unicode.IsSpace.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Check is one ordered step of a form's validation.
type Check struct {
	// Field is the identifier of the value under test.
	Field string
	// Tag is a validator tag expression, e.g. "required" or "min=6".
	Tag string
	// Other names a second field for cross-field tags such as "eqfield".
	Other string
	// Reason is the stable failure code.
	Reason Reason
	// MessageKey selects the failure text in the message catalog.
	MessageKey string
}

// Form is the declarative definition of one form kind.
type Form struct {
	Kind   Kind
	Fields []Field
	Checks []Check
}

// Field returns the field definition for id.
func (f Form) Field(id string) (Field, bool) {
	return lo.Find(f.Fields, func(fd Field) bool { return fd.ID == id })
}

// FieldIDs returns the field identifiers in declaration order.
func (f Form) FieldIDs() []string {
	return lo.Map(f.Fields, func(fd Field, _ int) string { return fd.ID })
}
