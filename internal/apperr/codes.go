package apperr

// Code represents a machine-readable error code.
type Code string

// Retrieval errors.
const (
	// CodeVideoUnavailable indicates the video cannot be found or accessed.
	CodeVideoUnavailable Code = "VIDEO_UNAVAILABLE"
	// CodeTranscriptsDisabled indicates the uploader disabled transcripts.
	CodeTranscriptsDisabled Code = "TRANSCRIPTS_DISABLED"
	// CodeNoTranscriptFound indicates no transcript track exists for the video.
	CodeNoTranscriptFound Code = "NO_TRANSCRIPT_FOUND"
	// CodeLanguageNotAvailable indicates the requested language has no track.
	CodeLanguageNotAvailable Code = "LANGUAGE_NOT_AVAILABLE"
	// CodeIPBlocked indicates the upstream provider detected automated access.
	CodeIPBlocked Code = "IP_BLOCKED"
)

// Request and connectivity errors.
const (
	// CodeInvalidFormat indicates an unrecognized output format value.
	CodeInvalidFormat Code = "INVALID_FORMAT"
	// CodeInvalidInput indicates a query parameter failed to bind.
	CodeInvalidInput Code = "INVALID_INPUT"
	// CodeNetworkError indicates a connectivity failure to the upstream provider.
	CodeNetworkError Code = "NETWORK_ERROR"
	// CodeTimeout indicates the upstream fetch exceeded its deadline.
	CodeTimeout Code = "TIMEOUT"
	// CodeInternal indicates an unanticipated server error.
	CodeInternal Code = "INTERNAL_ERROR"
)
