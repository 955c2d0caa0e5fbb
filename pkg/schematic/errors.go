package schematic

import "fmt"

// SchemaError reports input that could not be decoded into the schematic
// model: malformed documents, mistyped fields, or enum tokens outside
// their domain.
type SchemaError struct {
	// Err is the underlying decode failure.
	Err error
}

func (e *SchemaError) Error() string {
	return "invalid component schematic: " + e.Err.Error()
}

// Unwrap returns the underlying decode failure.
func (e *SchemaError) Unwrap() error { return e.Err }

// FormatError reports an identifier that does not follow the
// group/version.kind form.
type FormatError struct {
	// Input is the identifier that failed to parse.
	Input string

	// Missing names the absent portion: "missing version and kind" when
	// the input has no slash, "missing kind" when the part after the
	// slash has no dot.
	Missing string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Missing)
}

// ParameterError reports a failure to resolve a declared parameter or a
// reference to one.
type ParameterError struct {
	// Parameter is the name of the parameter involved.
	Parameter string

	// Reason describes the failure.
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Parameter, e.Reason)
}
