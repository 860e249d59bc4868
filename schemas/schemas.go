// Package schemas holds the pure request-validation rules for the API.
// Every function takes already-decoded input and reports failures as
// field-level errors that serialize directly into the error response body.
package schemas

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed constraint on an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

// newValidator builds the shared validator, reporting failures under the
// field's json name rather than the Go struct name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateID checks that a raw path parameter is a strictly positive
// integer and returns the parsed value.
func ValidateID(raw string) (uint, *FieldError) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: "id", Message: "the id must be a number"}
	}
	if n <= 0 {
		return 0, &FieldError{Field: "id", Message: "the id must be positive"}
	}
	return uint(n), nil
}

// translate maps validator failures onto the API's field error messages.
func translate(err error, messages map[string]string) []FieldError {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "payload", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := messages[field+"."+fe.Tag()]
		if !ok {
			msg = "invalid value"
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}
