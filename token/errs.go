package token

import "errors"

var (
	ErrNumber            = errors.New("malformed number")
	ErrNumberLeadingZero = errors.New("number has leading zero")
)
