package errors

import "errors"

var (
	// ErrParse is a general error used to wrap more specific scanning errors.
	ErrParse = errors.New("parse error")

	// ErrNotPointerToStruct indicates that a provided data container is not
	// a pointer to a struct.
	ErrNotPointerToStruct = errors.New("object must be a pointer to struct or interface")

	// ErrInvalidTag indicates an invalid tag or invalid use of an existing tag.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrNotValue indicates that a struct field type marked as a flag cannot
	// be parsed from a command-line string.
	ErrNotValue = errors.New("field cannot be used as a flag value")

	// ErrUnexportedField indicates that a field marked as a flag is not
	// exported, so its value cannot be set.
	ErrUnexportedField = errors.New("field marked as flag is not exported")
)
