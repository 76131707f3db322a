package errors

// ErrorCode identifies an application error condition independently of the
// HTTP status it maps to.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	ErrorCode_INTERNAL         ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT ErrorCode = 2
	ErrorCode_NOT_FOUND        ErrorCode = 3
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 4

	ErrorCode_MEETING_NOT_FOUND  ErrorCode = 100
	ErrorCode_INVALID_MEETING_ID ErrorCode = 101
	ErrorCode_WEBHOOK_FAILED     ErrorCode = 102

	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = 200
	ErrorCode_SUMMARY_FAILED       ErrorCode = 201
	ErrorCode_UNUSABLE_AUDIO       ErrorCode = 202
	ErrorCode_UPLOAD_FAILED        ErrorCode = 203

	ErrorCode_DB_QUERY_FAILED ErrorCode = 300
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:              "OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:      "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:    "MEETING_NOT_FOUND",
	ErrorCode_INVALID_MEETING_ID:   "INVALID_MEETING_ID",
	ErrorCode_WEBHOOK_FAILED:       "WEBHOOK_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED: "TRANSCRIPTION_FAILED",
	ErrorCode_SUMMARY_FAILED:       "SUMMARY_FAILED",
	ErrorCode_UNUSABLE_AUDIO:       "UNUSABLE_AUDIO",
	ErrorCode_UPLOAD_FAILED:        "UPLOAD_FAILED",
	ErrorCode_DB_QUERY_FAILED:      "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
