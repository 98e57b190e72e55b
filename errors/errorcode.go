package errors

// ErrorCode identifies a failure class in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	// Analysis
	ErrorCode_ANALYSIS_FAILED         ErrorCode = 2000
	ErrorCode_ANALYSIS_NOT_CONFIGURED ErrorCode = 2001
	ErrorCode_MISSING_TRANSCRIPT      ErrorCode = 2002
	ErrorCode_PREFILL_DECODE_FAILED   ErrorCode = 2003

	// Slack export
	ErrorCode_SLACK_NOT_CONFIGURED  ErrorCode = 3000
	ErrorCode_SLACK_DELIVERY_FAILED ErrorCode = 3001

	// Storage
	ErrorCode_STORAGE_NOT_CONFIGURED ErrorCode = 4000
	ErrorCode_DB_CONNECTION_FAILED   ErrorCode = 4001
	ErrorCode_DB_QUERY_FAILED        ErrorCode = 4002
)

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "HTTP_OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_UNAUTHENTICATED:
		return "UNAUTHENTICATED"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_ANALYSIS_FAILED:
		return "ANALYSIS_FAILED"
	case ErrorCode_ANALYSIS_NOT_CONFIGURED:
		return "ANALYSIS_NOT_CONFIGURED"
	case ErrorCode_MISSING_TRANSCRIPT:
		return "MISSING_TRANSCRIPT"
	case ErrorCode_PREFILL_DECODE_FAILED:
		return "PREFILL_DECODE_FAILED"
	case ErrorCode_SLACK_NOT_CONFIGURED:
		return "SLACK_NOT_CONFIGURED"
	case ErrorCode_SLACK_DELIVERY_FAILED:
		return "SLACK_DELIVERY_FAILED"
	case ErrorCode_STORAGE_NOT_CONFIGURED:
		return "STORAGE_NOT_CONFIGURED"
	case ErrorCode_DB_CONNECTION_FAILED:
		return "DB_CONNECTION_FAILED"
	case ErrorCode_DB_QUERY_FAILED:
		return "DB_QUERY_FAILED"
	default:
		return "UNKNOWN"
	}
}
