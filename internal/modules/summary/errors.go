package summary

import (
	"errors"
	"net/http"
)

// Kind classifies pipeline failures for the HTTP layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindExtraction
	KindFetch
	KindConfiguration
	KindSummarization
)

// Status maps a Kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindExtraction:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindExtraction:
		return "extraction"
	case KindFetch:
		return "fetch"
	case KindConfiguration:
		return "configuration"
	case KindSummarization:
		return "summarization"
	default:
		return "internal"
	}
}

// Error is a classified pipeline failure. Message is shown to clients as is.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

const (
	msgURLRequired      = "URL is required."
	msgInvalidURL       = "URL must be an absolute http(s) address."
	msgExtractionFailed = "Could not extract sufficient text from the blog. Please check the URL or try a different one."
	msgInternal         = "Failed to summarize blog due to an internal server error."
	// Shown instead of a translation when no English summary came back.
	UrduFailureNotice = "اردو خلاصہ تیار کرنے میں ناکامی ہوئی (انگریزی خلاصہ دستیاب نہیں تھا)۔"
)

// asError converts any error into a classified *Error.
func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	message := msgInternal
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return newError(KindInternal, message, err)
}
