package realdebrid

import (
	"errors"
	"fmt"
)

// ErrorCode is the numeric error_code sent by the API. It implements error so
// that errors.Is(err, CodeBadToken) matches any *APIError carrying that code.
type ErrorCode int

const (
	CodeInternalError                  ErrorCode = -1
	CodeMissingParameter               ErrorCode = 1
	CodeBadParameterValue              ErrorCode = 2
	CodeUnknownMethod                  ErrorCode = 3
	CodeMethodNotAllowed               ErrorCode = 4
	CodeSlowDown                       ErrorCode = 5
	CodeResourceUnreachable            ErrorCode = 6
	CodeResourceNotFound               ErrorCode = 7
	CodeBadToken                       ErrorCode = 8
	CodePermissionDenied               ErrorCode = 9
	CodeTwoFactorAuthenticationNeeded  ErrorCode = 10
	CodeTwoFactorAuthenticationPending ErrorCode = 11
	CodeInvalidLogin                   ErrorCode = 12
	CodeInvalidPassword                ErrorCode = 13
	CodeAccountLocked                  ErrorCode = 14
	CodeAccountNotActivated            ErrorCode = 15
	CodeUnsupportedHoster              ErrorCode = 16
	CodeHosterInMaintenance            ErrorCode = 17
	CodeHosterLimitReached             ErrorCode = 18
	CodeHosterTemporarilyUnavailable   ErrorCode = 19
	CodeHosterNotAvailableForFreeUsers ErrorCode = 20
	CodeTooManyActiveDownloads         ErrorCode = 21
	CodeIPAddressNotAllowed            ErrorCode = 22
	CodeTrafficExhausted               ErrorCode = 23
	CodeFileUnavailable                ErrorCode = 24
	CodeServiceUnavailable             ErrorCode = 25
	CodeUploadTooBig                   ErrorCode = 26
	CodeUploadError                    ErrorCode = 27
	CodeFileNotAllowed                 ErrorCode = 28
	CodeTorrentTooBig                  ErrorCode = 29
	CodeTorrentFileInvalid             ErrorCode = 30
	CodeActionAlreadyDone              ErrorCode = 31
	CodeImageResolutionError           ErrorCode = 32
	CodeTorrentAlreadyActive           ErrorCode = 33
	CodeTooManyRequests                ErrorCode = 34
	CodeInfringingFile                 ErrorCode = 35
	CodeFairUsageLimit                 ErrorCode = 36
)

// CodeFor maps a raw error_code to its ErrorCode. Codes the library does not
// know about map to CodeInternalError.
func CodeFor(code int) ErrorCode {
	switch c := ErrorCode(code); c {
	case CodeMissingParameter, CodeBadParameterValue, CodeUnknownMethod, CodeMethodNotAllowed,
		CodeSlowDown, CodeResourceUnreachable, CodeResourceNotFound, CodeBadToken,
		CodePermissionDenied, CodeTwoFactorAuthenticationNeeded, CodeTwoFactorAuthenticationPending,
		CodeInvalidLogin, CodeInvalidPassword, CodeAccountLocked, CodeAccountNotActivated,
		CodeUnsupportedHoster, CodeHosterInMaintenance, CodeHosterLimitReached,
		CodeHosterTemporarilyUnavailable, CodeHosterNotAvailableForFreeUsers,
		CodeTooManyActiveDownloads, CodeIPAddressNotAllowed, CodeTrafficExhausted,
		CodeFileUnavailable, CodeServiceUnavailable, CodeUploadTooBig, CodeUploadError,
		CodeFileNotAllowed, CodeTorrentTooBig, CodeTorrentFileInvalid, CodeActionAlreadyDone,
		CodeImageResolutionError, CodeTorrentAlreadyActive, CodeTooManyRequests,
		CodeInfringingFile, CodeFairUsageLimit:
		return c
	default:
		return CodeInternalError
	}
}

func (c ErrorCode) String() string {
	switch c {
	case CodeMissingParameter:
		return "Missing parameter"
	case CodeBadParameterValue:
		return "Bad parameter value"
	case CodeUnknownMethod:
		return "Unknown method"
	case CodeMethodNotAllowed:
		return "Method not allowed"
	case CodeSlowDown:
		return "Slow down"
	case CodeResourceUnreachable:
		return "Ressource unreachable"
	case CodeResourceNotFound:
		return "Resource not found"
	case CodeBadToken:
		return "Bad token"
	case CodePermissionDenied:
		return "Permission denied"
	case CodeTwoFactorAuthenticationNeeded:
		return "Two-Factor authentication needed"
	case CodeTwoFactorAuthenticationPending:
		return "Two-Factor authentication pending"
	case CodeInvalidLogin:
		return "Invalid login"
	case CodeInvalidPassword:
		return "Invalid password"
	case CodeAccountLocked:
		return "Account locked"
	case CodeAccountNotActivated:
		return "Account not activated"
	case CodeUnsupportedHoster:
		return "Unsupported hoster"
	case CodeHosterInMaintenance:
		return "Hoster in maintenance"
	case CodeHosterLimitReached:
		return "Hoster limit reached"
	case CodeHosterTemporarilyUnavailable:
		return "Hoster temporarily unavailable"
	case CodeHosterNotAvailableForFreeUsers:
		return "Hoster not available for free users"
	case CodeTooManyActiveDownloads:
		return "Too many active downloads"
	case CodeIPAddressNotAllowed:
		return "IP Address not allowed"
	case CodeTrafficExhausted:
		return "Traffic exhausted"
	case CodeFileUnavailable:
		return "File unavailable"
	case CodeServiceUnavailable:
		return "Service unavailable"
	case CodeUploadTooBig:
		return "Upload too big"
	case CodeUploadError:
		return "Upload error"
	case CodeFileNotAllowed:
		return "File not allowed"
	case CodeTorrentTooBig:
		return "Torrent too big"
	case CodeTorrentFileInvalid:
		return "Torrent file invalid"
	case CodeActionAlreadyDone:
		return "Action already done"
	case CodeImageResolutionError:
		return "Image resolution error"
	case CodeTorrentAlreadyActive:
		return "Torrent already active"
	case CodeTooManyRequests:
		return "Too many requests"
	case CodeInfringingFile:
		return "Infringing file"
	case CodeFairUsageLimit:
		return "Fair Usage Limit"
	default:
		return "Internal error"
	}
}

func (c ErrorCode) Error() string {
	return c.String()
}

// APIError is a failed request as reported by the service. Code is the only
// field worth branching on; Message is whatever text came with it.
type APIError struct {
	StatusCode int
	Code       ErrorCode
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("realdebrid: %s (status %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("realdebrid: %s (status %d): %s", e.Code, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Code
}

// TransportError wraps a failure to talk to the API at all (DNS, connect, TLS,
// timeout, connection reset, reading the body).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("realdebrid: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a successful response does not match the expected schema.
type DecodeError struct {
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("realdebrid: decoding %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TotalCountError is returned when the X-Total-Count header is not an unsigned integer.
type TotalCountError struct {
	Value string
	Err   error
}

func (e *TotalCountError) Error() string {
	return fmt.Sprintf("realdebrid: invalid X-Total-Count %q: %v", e.Value, e.Err)
}

func (e *TotalCountError) Unwrap() error {
	return e.Err
}

// RegexError is returned when a hoster pattern sent by the API does not compile.
type RegexError struct {
	Pattern string
	Err     error
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("realdebrid: compiling hoster regex %q: %v", e.Pattern, e.Err)
}

func (e *RegexError) Unwrap() error {
	return e.Err
}

// ErrInvalidHeaderValue is returned by New when the token cannot be sent in an Authorization header.
var ErrInvalidHeaderValue = errors.New("realdebrid: token is not a valid header value")

// Code returns the service error code carried by err, if any.
func Code(err error) (ErrorCode, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return 0, false
}
