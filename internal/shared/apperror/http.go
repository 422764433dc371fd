package apperror

import (
	"errors"
	"net/http"
)

// HTTPError adalah bentuk flat yang siap dikirim ke transport layer
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP meratakan error apapun menjadi HTTPError.
// Error yang bukan *AppError dianggap internal error (pesan asli disembunyikan).
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
