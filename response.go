package leadcapture

import (
	"errors"
	"net/http"
)

// Response is the envelope returned for every call.
type Response struct {
	Success    bool              `json:"success"`
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Code       Kind              `json:"code,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
}

// Success wraps data in a successful envelope. A zero statusCode means 200.
func Success(data interface{}, message string, statusCode int) Response {
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	return Response{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}
}

// Failure converts err into an error envelope. Errors that are not *Error, and
// internal errors, are rendered with a generic message.
func Failure(err error) Response {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal || e.Kind == "" {
		return Response{
			StatusCode: http.StatusInternalServerError,
			Message:    internalMessage,
			Code:       KindInternal,
		}
	}

	resp := Response{
		StatusCode: e.Kind.StatusCode(),
		Message:    e.Message,
		Code:       e.Kind,
	}
	if e.Kind == KindValidation {
		resp.Errors = e.Fields
	}
	return resp
}
