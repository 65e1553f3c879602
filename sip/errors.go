package sip

import "github.com/sippet/gosippet/internal/errorutil"

// Error represents a SIP parse error code.
// See [errorutil.Error].
type Error = errorutil.Error

// ErrInvalidArgument is returned when the parser input is not a byte buffer.
const ErrInvalidArgument = errorutil.ErrInvalidArgument

// Framing errors.
const (
	// ErrInvalidLineBreak is returned for a bare CR not followed by LF.
	ErrInvalidLineBreak Error = "invalid_line_break"
)

// Start line errors.
const (
	ErrMissingMethod          Error = "missing_method"
	ErrMissingURI             Error = "missing_uri"
	ErrMissingStatusCode      Error = "missing_status_code"
	ErrEmptyStatusCode        Error = "empty_status_code"
	ErrInvalidStatusCode      Error = "invalid_status_code"
	ErrMissingVersionSpec     Error = "missing_version_spec"
	ErrMissingVersion         Error = "missing_version"
	ErrMalformedVersion       Error = "malformed_version"
	ErrMalformedVersionNumber Error = "malformed_version_number"
)

// Generic header value errors.
const (
	ErrEmptyValue     Error = "empty_value"
	ErrInvalidToken   Error = "invalid_token"
	ErrMissingSubtype Error = "missing_subtype"
)

// Host and Via errors.
const (
	ErrUnknownVersion      Error = "unknown_version"
	ErrMissingSentProtocol Error = "missing_sent_protocol"
	ErrMissingSentBy       Error = "missing_sentby"
	ErrInvalidSentBy       Error = "invalid_sentby"
)

// Contact errors.
const (
	ErrInvalidURI       Error = "invalid_uri"
	ErrUnclosedLAquot   Error = "unclosed_laquot"
	ErrUnclosedQString  Error = "unclosed_qstring"
	ErrMissingAddress   Error = "missing_address"
	ErrInvalidCharFound Error = "invalid_char_found"
)

// Numeric errors.
const (
	ErrInvalidDigits             Error = "invalid_digits"
	ErrInvalidSequence           Error = "invalid_sequence"
	ErrMissingSequence           Error = "missing_sequence"
	ErrMissingTimestamp          Error = "missing_timestamp"
	ErrInvalidTimestamp          Error = "invalid_timestamp"
	ErrMissingMajor              Error = "missing_major"
	ErrMissingOrInvalidMajor     Error = "missing_or_invalid_major"
	ErrInvalidMinor              Error = "invalid_minor"
	ErrMissingDeltaSecs          Error = "missing_delta_secs"
	ErrMissingOrInvalidDeltaSecs Error = "missing_or_invalid_delta_secs"
)

// Auth errors.
const (
	ErrMissingAuthScheme Error = "missing_auth_scheme"
)

// Warning errors.
const (
	ErrEmptyInput      Error = "empty_input"
	ErrInvalidCode     Error = "invalid_code"
	ErrEmptyWarnAgent  Error = "empty_warn_agent"
	ErrMissingWarnText Error = "missing_warn_text"
	ErrInvalidWarnText Error = "invalid_warn_text"
)

// Date errors.
const (
	ErrEmptyDate   Error = "empty_date"
	ErrInvalidDate Error = "invalid_date"
)

// Comment errors.
const (
	ErrInvalidComment Error = "invalid_comment"
)

// Dispatcher errors.
const (
	// ErrMultipleDefinition is returned when a singular header occurs twice.
	ErrMultipleDefinition Error = "multiple_definition"
)

// Resource errors.
const (
	ErrNoMemory Error = "no_memory"
)
