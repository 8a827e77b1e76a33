// Package validator provides the rule engine behind form and dependency
// validation.
//
// Business code depends on the Validator interface. Single values are checked
// against go-playground tag expressions (for example "required" or "min=6"),
// structs against their `validate` tags, and user-facing messages are kept in
// a translator catalog so callers never hard-code text at the check site.
package validator

// Validator checks values and structs and resolves catalog messages.
type Validator interface {
	// Validate validates a struct using its `validate` tags.
	Validate(data any) error
	// Var validates a single value against a tag expression.
	Var(value any, tag string) error
	// VarWithValue validates value against other using a cross-field tag such as "eqfield".
	VarWithValue(value, other any, tag string) error
	// AddMessage registers or replaces the catalog text for key.
	AddMessage(key, text string) error
	// Message returns the catalog text for key, or key itself when it is not registered.
	Message(key string) string
}
