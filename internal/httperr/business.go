package httperr

import "errors"

const (
	CodeNotFound            = "not_found"
	CodeDuplicate           = "duplicate"
	CodeInvalidReference    = "invalid_reference"
	CodeConstraintViolation = "constraint_violation"
	CodeInvalidState        = "invalid_state"
	CodeInvalidDateOrTime   = "invalid_date_or_time"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf devolve o código de negócio do erro, ou "" se não houver.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
