package entity

import "github.com/shandysiswandi/formguard/internal/pkg/goerror"

// Values is a caller-supplied field record keyed by field identifier.
type Values map[string]string

// Get returns the value for id; absent keys yield "".
func (v Values) Get(id string) string {
	return v[id]
}

// Outcome is the result of validating one submission.
type Outcome struct {
	Valid   bool   `json:"valid"`
	Kind    Kind   `json:"kind"`
	Field   string `json:"field,omitempty"`
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// Passed returns a successful outcome for kind.
func Passed(kind Kind) Outcome {
	return Outcome{Valid: true, Kind: kind}
}

// Failed returns a failed outcome for kind.
func Failed(kind Kind, field string, reason Reason, message string) Outcome {
	return Outcome{Kind: kind, Field: field, Reason: reason, Message: message}
}

// Err converts a failed outcome into a validation error mapping the failing
// field to its message. It returns nil for a valid outcome.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}

	return goerror.NewInvalidInput(o.Message, o.Field, o.Message)
}
