package settings

// EnvironmentError reports that the settings variable was absent from the
// lookup source. The underlying cause travels with the error and is rendered
// only when the message is formatted.
type EnvironmentError struct {
	Err error
}

func (e *EnvironmentError) Error() string {
	return "Error getting env variable: " + e.Err.Error()
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// ParseError reports that the blob contents could not be deserialized into
// Settings: malformed JSON, a wrong value type, or a missing required key.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "Could not deserialize settings blob: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
