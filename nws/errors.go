package nws

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrConflictingParameters is returned when mutually exclusive observation
// query parameters are both supplied.
var ErrConflictingParameters = errors.New("cannot have both 'current' and 'recordId'")

// SchemaError reports an upstream JSON document missing a field this client
// depends on. Raw carries the offending document for diagnostics.
type SchemaError struct {
	Field   string
	Message string
	Raw     json.RawMessage
}

func (e *SchemaError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%q attribute not found, possible response schema change", e.Field)
}

// UpstreamError reports a failure status the API returned explicitly,
// either on the wire or as a problem document in the response body.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("status: %d, NWS API error response: %s", e.Status, e.Detail)
}

// InvalidTimestampError reports a start/end value matching none of the
// accepted timestamp layouts.
type InvalidTimestampError struct {
	Value string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: expected %q, %q or %q",
		e.Value, layoutDateTimeZ, layoutDate, layoutDateTimeSpace)
}

// MissingArgumentError reports a required argument that was empty or absent.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%q is required", e.Name)
}
