package parser

import (
	"fmt"
	"reflect"

	"github.com/reeflective/gflags/internal/errors"
)

// MultiTag is a struct tag parsed into a map, where a key used several
// times in the tag keeps all of its values, in order.
type MultiTag map[string][]string

// GetFieldTag parses the struct tags for a given field. The returned
// boolean is true when the field carries no tags at all.
func GetFieldTag(field reflect.StructField) (*MultiTag, bool, error) {
	tag := MultiTag{}
	if err := tag.parse(string(field.Tag)); err != nil {
		return nil, true, err
	}

	return &tag, len(tag) == 0, nil
}

// Get returns the first value recorded for a tag key.
func (t *MultiTag) Get(key string) (string, bool) {
	if val, ok := (*t)[key]; ok {
		return val[0], true
	}

	return "", false
}

// GetMany returns every value recorded for a tag key.
func (t *MultiTag) GetMany(key string) []string {
	if val, ok := (*t)[key]; ok {
		return val
	}

	return nil
}

// parse scans a raw struct tag with the same syntax rules as
// reflect.StructTag, except that repeated keys accumulate.
func (t *MultiTag) parse(tag string) error {
	for tag != "" {
		// Skip leading space.
		pos := 0
		for pos < len(tag) && tag[pos] == ' ' {
			pos++
		}
		tag = tag[pos:]
		if tag == "" {
			break
		}

		// Scan to colon. A space, a quote or a control character is a syntax error.
		// Strictly speaking, control chars include the space character.
		pos = 0
		for pos < len(tag) && tag[pos] > ' ' && tag[pos] != ':' && tag[pos] != '"' && tag[pos] != 0x7f {
			pos++
		}
		if pos == 0 || pos+1 >= len(tag) || tag[pos] != ':' || tag[pos+1] != '"' {
			return fmt.Errorf("%w: invalid syntax", errors.ErrInvalidTag)
		}
		name := tag[:pos]
		tag = tag[pos+1:]

		// Scan quoted string to find value.
		pos = 1
		for pos < len(tag) && tag[pos] != '"' {
			if tag[pos] == '\\' {
				pos++
			}
			pos++
		}
		if pos >= len(tag) {
			return fmt.Errorf("%w: invalid syntax", errors.ErrInvalidTag)
		}
		qvalue := tag[:pos+1]
		tag = tag[pos+1:]

		value, ok := reflect.StructTag(name + ":" + qvalue).Lookup(name)
		if !ok {
			return fmt.Errorf("%w: tag value not found", errors.ErrInvalidTag)
		}
		(*t)[name] = append((*t)[name], value)
	}

	return nil
}
