package ai

import "fmt"

// MalformedOutputError reports model output missing the structure a parser
// expected. The raw text is kept so callers can surface it for diagnosis
// instead of discarding it.
type MalformedOutputError struct {
	Reason string
	Raw    string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %s", e.Reason)
}
