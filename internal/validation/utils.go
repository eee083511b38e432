// Package validation binds and validates request payloads.
//
// Rules are declared as `validator` struct tags on the payload types and
// failures are converted into errs.FieldError entries keyed by JSON field name,
// so the client gets every invalid field in a single 400 response.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/go-customers/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by calling Struct on the receiver.
type Validatable interface {
	Validate() error
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance. Field names in its errors
// are the JSON names of the fields.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s interface{}) error {
	return Validator().Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params and JSON body.
//  2. payload.Validate() applies validation rules.
//  3. Any failure is returned as a 400 *errs.HTTPError.
//
// payload must be a pointer.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil)
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewValidationError(fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts the client-facing part of an Echo bind error,
// e.g. "Unmarshal type error: expected=int, got=string, field=age, offset=10".
func bindErrorMessage(err error) string {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return fmt.Sprintf("invalid value for %s: %v", bindErr.Field, bindErr.Message)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request payload"
}

func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) []errs.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: err.Field(),
			Error: fieldErrorMessage(err),
		})
	}

	return fieldErrors
}

func fieldErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		// min/max mean length for strings and value for numbers.
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "email":
		return "must be a valid email address"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", err.Field(), err.Tag())
	}
}
