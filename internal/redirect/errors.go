package redirect

import "errors"

var (
	ErrInvalidRedirect = errors.New("invalid redirect")
	ErrWrite           = errors.New("redirect write failed")
)
