package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// tagPattern matches the part of a validator error naming the tag
// that failed, such as "the 'ip' tag".
var tagPattern = regexp.MustCompile(`the '.*' tag`)

// invalidVarError wraps an error raised by the validator library on a
// single value, and rewrites its message into one suited to a command
// line rather than to a struct field.
type invalidVarError struct {
	fieldName    string
	fieldValue   string
	validatorErr error
}

func (err *invalidVarError) Error() string {
	matched := tagPattern.FindString(err.validatorErr.Error())
	if matched != "" {
		var tagname string

		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			tagname = strings.Trim(parts[1], "'")
		}

		return fmt.Sprintf("`%s` is not a valid %s", err.fieldValue, tagname)
	}

	// Or simply replace the empty key with the field name.
	return strings.ReplaceAll(err.validatorErr.Error(), "''", fmt.Sprintf("'%s'", err.fieldName))
}

func (err *invalidVarError) Unwrap() error { return err.validatorErr }
