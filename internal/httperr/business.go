package httperr

import "errors"

// BusinessError is a domain rule violation identified by a stable code,
// e.g. "slot_already_taken" or "unsupported_granularity". Handlers map
// codes to HTTP statuses; codes are part of the API contract.
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

// BusinessCode extracts the code, or "" when err is not a BusinessError.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
