package domain

import "errors"

var (
	// Validation-class errors, detected before any model call.
	ErrDocumentTypeNotFound = errors.New("document type not found")
	ErrUnsupportedFormat    = errors.New("unsupported file format")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrNoReadableText       = errors.New("no readable text in document")
	ErrPromptNotFound       = errors.New("prompt template not configured")
	ErrValidation           = errors.New("request validation failed")

	// Model gateway errors.
	ErrModelAuth        = errors.New("model provider rejected credentials")
	ErrModelRateLimited = errors.New("model provider rate limited")
	ErrModelUnavailable = errors.New("model provider unreachable")
	ErrModelEmptyReply  = errors.New("model returned an empty reply")
	ErrModel            = errors.New("model provider error")

	// Response handling errors.
	ErrInvalidResponseFormat = errors.New("model reply is not a valid JSON object")
	ErrChecklistNotFound     = errors.New("verification checklist not found")
)

// ErrorKind returns the stable machine-readable kind for a pipeline error,
// or "INTERNAL_ERROR" when the error is outside the taxonomy.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrDocumentTypeNotFound):
		return "DOCUMENT_TYPE_NOT_FOUND"
	case errors.Is(err, ErrUnsupportedFormat):
		return "UNSUPPORTED_FORMAT"
	case errors.Is(err, ErrFileTooLarge):
		return "FILE_TOO_LARGE"
	case errors.Is(err, ErrNoReadableText):
		return "NO_READABLE_TEXT"
	case errors.Is(err, ErrPromptNotFound):
		return "PROMPT_NOT_FOUND"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrModelAuth):
		return "MODEL_AUTH_ERROR"
	case errors.Is(err, ErrModelRateLimited):
		return "MODEL_RATE_LIMITED"
	case errors.Is(err, ErrModelUnavailable):
		return "MODEL_UNAVAILABLE"
	case errors.Is(err, ErrModelEmptyReply):
		return "MODEL_EMPTY_REPLY"
	case errors.Is(err, ErrModel):
		return "MODEL_ERROR"
	case errors.Is(err, ErrInvalidResponseFormat):
		return "INVALID_RESPONSE_FORMAT"
	case errors.Is(err, ErrChecklistNotFound):
		return "CHECKLIST_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}
