// Package validator wires go-playground/validator and a strict JSON binder into echo.
package validator

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts validator/v10 to echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the request validator. Field names in messages follow the json tags.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate returns ErrValidationFailed carrying the first few field failures.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(msgs, "; "))
}

func describe(fe playground.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "oneof":
		return field + " must be one of " + fe.Param()
	default:
		if fe.Param() != "" {
			return field + " failed " + fe.Tag() + "=" + fe.Param()
		}

		return field + " failed " + fe.Tag()
	}
}

// StrictBinder binds path and query parameters like echo's DefaultBinder but
// rejects JSON bodies carrying fields the target struct does not declare.
type StrictBinder struct {
	echo.DefaultBinder
}

// NewStrictBinder creates the binder.
func NewStrictBinder() *StrictBinder {
	return &StrictBinder{}
}

// Bind implements echo.Binder.
func (b *StrictBinder) Bind(i any, c echo.Context) error {
	if err := b.BindPathParams(c, i); err != nil {
		return err
	}

	req := c.Request()
	switch req.Method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		return b.BindQueryParams(c, i)
	}

	if req.ContentLength == 0 {
		return nil
	}

	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return b.BindBody(c, i)
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil && !errors.Is(err, io.EOF) {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body: " + err.Error())
	}

	return nil
}
