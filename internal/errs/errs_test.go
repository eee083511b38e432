package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Customer not found", false, nil)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)

	code := "CUSTOMER_NOT_FOUND"
	err = NewNotFoundError("Customer not found", false, &code)
	assert.Equal(t, code, err.Code)
}

func TestNewValidationError(t *testing.T) {
	fields := []FieldError{{Field: "age", Error: "must be at least 10"}}
	err := NewValidationError(fields)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.True(t, err.Override)
	assert.Equal(t, fields, err.Errors)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewNotFoundError("Customer not found", false, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	if assert.True(t, errors.As(wrapped, &httpErr)) {
		assert.Equal(t, "Customer not found", httpErr.Error())
	}
}
