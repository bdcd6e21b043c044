package colordefs

import "errors"

var (
	// ErrIO is returned when the input cannot be read or the output cannot be written.
	ErrIO = errors.New("io error")
	// ErrParse is returned when the color document is not valid YAML/JSON.
	ErrParse = errors.New("parse error")
	// ErrSchema is returned when an entry lacks rgb or rgb is not three numbers.
	ErrSchema = errors.New("schema error")
)
