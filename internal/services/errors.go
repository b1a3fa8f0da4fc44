package services

import (
	"errors"
	"fmt"
)

// ValidationError blocks checkout progression. It is user-correctable and
// never retried automatically.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NetworkError wraps a failed collaborator call. The triggering action is
// surfaced to the operator and not retried, except for the documented
// payment-terms case handled inside the submission pipeline.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// PermissionError marks a gateway rejection caused by missing payment-terms
// permissions. The pipeline recovers from it transparently by retrying the
// draft order once without payment terms.
type PermissionError struct {
	Op  string
	Err error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s denied: %v", e.Op, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// PartialFailureError reports that the order was created (and possibly
// completed) but a best-effort follow-up step failed. It never rolls back
// the already-submitted order.
type PartialFailureError struct {
	Step string
	Err  error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("order submitted but %s failed: %v", e.Step, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

// ParseError marks a collaborator response that did not match its expected
// shape.
type ParseError struct {
	Source string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected %s response: %s", e.Source, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPermission reports whether err is (or wraps) a PermissionError.
func IsPermission(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
