package forms

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownField = errors.New("unknown field")

// ValidationError is returned by Submit when required fields are empty.
type ValidationError struct {
	Code    string
	Message string
	// Fields lists the form names of the missing fields.
	Fields []string
}

func (e ValidationError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(e.Fields, ", "))
	}
	if e.Code == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}
