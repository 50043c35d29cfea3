package httperr

import "errors"

// BusinessError is a rule refusal rather than a failure: the slot is taken,
// the service is disabled, the notice is too short. Handlers map the code to
// a 4xx; anything that is not a BusinessError stays a 500.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given refusal code, unwrapping
// as needed.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
