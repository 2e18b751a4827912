package commons

const (
	CodeNotFound         = "not_found"
	CodeMalformedIBAN    = "malformed_iban"
	CodeValidationFailed = "validation_failed"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeInternal         = "internal_error"
)

type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

// ErrorResponse builds a failed response; code lets clients tell failure kinds apart
// without parsing the message.
func ErrorResponse[T any](code, message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Code:    code,
		Errors:  errors,
	}
}

func (r Response[T]) Summary() (success bool, code, message string) {
	return r.Success, r.Code, r.Message
}
