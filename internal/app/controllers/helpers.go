package controllers

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"membership-http-service/internal/error/validation"
)

// ErrorResponse is the envelope documented for failed requests
type ErrorResponse struct {
	Code    int         `json:"code" example:"100003"`
	Message string      `json:"message" example:"request validation failed"`
	Data    interface{} `json:"data"`
}

// bindErrors converts a binding failure into a field error map
func bindErrors(err error) validation.Errors {
	verrs := validation.Errors{}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			field := toSnakeCase(fe.Field())
			switch fe.Tag() {
			case "required":
				verrs.Add(field, "this field is required")
			case "email":
				verrs.Add(field, "enter a valid email address")
			default:
				verrs.Add(field, "invalid value")
			}
		}
		return verrs
	}

	verrs.Add("non_field_errors", "invalid request body")
	return verrs
}

// toSnakeCase converts a Go field name to its json form, e.g. CodeID to
// code_id and NextOfKinEmail to next_of_kin_email.
func toSnakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
