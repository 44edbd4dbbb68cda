package inputguard

import (
	"errors"
	"net/http"
)

// Rejection is a terminal client-input verdict. It is written to the client
// as {"message": ..., "code": ...} with the given status.
type Rejection struct {
	Status  int
	Code    string
	Message string
}

func (r *Rejection) Error() string {
	if r.Code == "" {
		return r.Message
	}
	return r.Code + ": " + r.Message
}

// Rejection codes.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodePrototypePollution = "PROTOTYPE_POLLUTION_ATTEMPT"
)

var (
	// ErrInvalidInputData is the generic rejection for input the sanitizer
	// could not process. It carries no code.
	ErrInvalidInputData = &Rejection{Status: http.StatusBadRequest, Message: "Invalid input data"}

	// ErrInvalidInput rejects requests carrying injection patterns.
	ErrInvalidInput = &Rejection{Status: http.StatusBadRequest, Code: CodeInvalidInput, Message: "Invalid input detected"}

	// ErrPrototypePollution rejects requests carrying reserved object keys.
	ErrPrototypePollution = &Rejection{Status: http.StatusBadRequest, Code: CodePrototypePollution, Message: "Security violation detected"}
)

var (
	// ErrBodyTooLarge is logged when a decodable body exceeds the configured
	// size limit. Clients see ErrInvalidInputData.
	ErrBodyTooLarge = errors.New("request body exceeds limit")

	// ErrMalformedBody is logged when a JSON or form body cannot be decoded.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrMalformedQuery is logged when the query string holds a bracket key
	// that cannot be parsed.
	ErrMalformedQuery = errors.New("malformed query string")
)
