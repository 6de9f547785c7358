package errors

// ErrorCode identifies a class of application error in responses and logs.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_INPUT    ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_FORBIDDEN        ErrorCode = 1004
	ErrorCode_DUPLICATE_ID     ErrorCode = 2001
	ErrorCode_UPSTREAM_ERROR   ErrorCode = 3001
	ErrorCode_SCHEMA_VIOLATION ErrorCode = 3002
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:          "OK",
	ErrorCode_INTERNAL:         "INTERNAL",
	ErrorCode_INVALID_INPUT:    "INVALID_INPUT",
	ErrorCode_NOT_FOUND:        "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:   "ALREADY_EXISTS",
	ErrorCode_FORBIDDEN:        "FORBIDDEN",
	ErrorCode_DUPLICATE_ID:     "DUPLICATE_ID",
	ErrorCode_UPSTREAM_ERROR:   "UPSTREAM_ERROR",
	ErrorCode_SCHEMA_VIOLATION: "SCHEMA_VIOLATION",
}

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
