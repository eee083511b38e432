package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/go-customers/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	ID       int     `param:"id" json:"-"`
	Name     string  `json:"last_name" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Age      int     `json:"age" validate:"required,min=10,max=99"`
	Nickname *string `json:"nickname" validate:"omitnil,min=3"`
}

func (r *signupRequest) Validate() error {
	return Struct(r)
}

type failingRequest struct{}

func (r *failingRequest) Validate() error {
	return errors.New("plan is not available")
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok, "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_Valid(t *testing.T) {
	c := newContext(http.MethodPost, `{"last_name":"Smith","email":"a@b.com","age":30}`)

	var req signupRequest
	require.NoError(t, BindAndValidate(c, &req))

	assert.Equal(t, "Smith", req.Name)
	assert.Equal(t, 30, req.Age)
}

func TestBindAndValidate_AggregatesFieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{"last_name":"","email":"not-an-email","age":150,"nickname":"x"}`)

	err := BindAndValidate(c, &signupRequest{})
	httpErr := requireHTTPError(t, err)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "last_name", Error: "is required"},
		{Field: "email", Error: "must be a valid email address"},
		{Field: "age", Error: "must not exceed 99"},
		{Field: "nickname", Error: "must be at least 3 characters"},
	}, httpErr.Errors)
}

func TestBindAndValidate_AgeBoundaries(t *testing.T) {
	cases := []struct {
		body    string
		wantErr string
	}{
		{`{"last_name":"Smith","email":"a@b.com","age":10}`, ""},
		{`{"last_name":"Smith","email":"a@b.com","age":99}`, ""},
		{`{"last_name":"Smith","email":"a@b.com","age":5}`, "must be at least 10"},
		{`{"last_name":"Smith","email":"a@b.com","age":100}`, "must not exceed 99"},
	}

	for _, tc := range cases {
		err := BindAndValidate(newContext(http.MethodPost, tc.body), &signupRequest{})
		if tc.wantErr == "" {
			assert.NoError(t, err, tc.body)
			continue
		}

		httpErr := requireHTTPError(t, err)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "age", httpErr.Errors[0].Field)
		assert.Equal(t, tc.wantErr, httpErr.Errors[0].Error)
	}
}

func TestBindAndValidate_LastNameLength(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"last_name":"Al","email":"a@b.com","age":30}`), &signupRequest{})

	httpErr := requireHTTPError(t, err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "last_name", Error: "must be at least 3 characters"}, httpErr.Errors[0])

	long := strings.Repeat("a", 101)
	err = BindAndValidate(newContext(http.MethodPost, `{"last_name":"`+long+`","email":"a@b.com","age":30}`), &signupRequest{})

	httpErr = requireHTTPError(t, err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "must not exceed 100 characters", httpErr.Errors[0].Error)
}

func TestBindAndValidate_TypeMismatch(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"last_name":"Smith","email":"a@b.com","age":"thirty"}`), &signupRequest{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Empty(t, httpErr.Errors)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_PlainValidateError(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{}`), &failingRequest{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, []errs.FieldError{{Field: "", Error: "plan is not available"}}, httpErr.Errors)
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"a@b.com":                  "a@b.com",
		"John.Doe@Example.COM":     "john.doe@example.com",
		"John.Doe+news@GMail.com":  "johndoe@gmail.com",
		"j.doe@googlemail.com":     "jdoe@gmail.com",
		"someone+tag@outlook.com":  "someone@outlook.com",
		"someone-tag@yahoo.com":    "someone@yahoo.com",
		"first.last+x@company.org": "first.last+x@company.org",
		"no-at-sign":               "no-at-sign",
		"+onlytag@gmail.com":       "+onlytag@gmail.com",
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizeEmail(in), in)
	}
}
