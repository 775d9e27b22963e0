package httperr

import "errors"

// BusinessError is a rule violation crossing the usecase boundary as a stable
// machine code ("already_saved", "not_authorized") rather than a storage
// error, so handlers can pick the HTTP status by code alone.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err is a business error carrying exactly code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
