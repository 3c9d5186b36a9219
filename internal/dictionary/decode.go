package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyWord is returned when a lookup is requested for a word that is
// empty after trimming. Callers treat it as a no-op, not a failure.
var ErrEmptyWord = errors.New("empty word")

// ParseError indicates the response document was not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("response is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ModelReportedError indicates the completion service explicitly rejected the
// input word. Its message is shown to the user.
type ModelReportedError struct {
	Message string
}

func (e *ModelReportedError) Error() string {
	return e.Message
}

// IncompleteResponseError indicates the response document parsed but lacks
// required top-level fields.
type IncompleteResponseError struct {
	MissingFields []string
}

func (e *IncompleteResponseError) Error() string {
	return fmt.Sprintf("incomplete response: missing fields %v", e.MissingFields)
}

// DecodeWordDetails parses a raw response document into WordDetails.
//
// It fails with a *ParseError when the document is not JSON, with a
// *ModelReportedError when the document carries an "error" field, and with an
// *IncompleteResponseError when any of RequiredFields is absent. Nested array
// item shapes are trusted as-is.
func DecodeWordDetails(raw []byte) (WordDetails, error) {
	var details WordDetails

	var document map[string]json.RawMessage
	if err := json.Unmarshal(raw, &document); err != nil {
		return details, &ParseError{Err: err}
	}

	if rawMessage, ok := document["error"]; ok {
		var message string
		if err := json.Unmarshal(rawMessage, &message); err != nil {
			message = string(rawMessage)
		}
		return details, &ModelReportedError{Message: message}
	}

	var missing []string
	for _, field := range RequiredFields {
		if _, ok := document[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return details, &IncompleteResponseError{MissingFields: missing}
	}

	if err := json.Unmarshal(raw, &details); err != nil {
		return details, &ParseError{Err: err}
	}
	return details, nil
}
