package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Kind  string `json:"kind" validate:"omitempty,oneof=a b"`
}

func bindJSON(t *testing.T, method, body string, target any) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	return NewStrictBinder().Bind(target, c)
}

func TestStrictBinder(t *testing.T) {
	t.Run("known fields bind", func(t *testing.T) {
		var s sample
		require.NoError(t, bindJSON(t, http.MethodPost, `{"name":"Ana","email":"ana@example.com"}`, &s))
		assert.Equal(t, "Ana", s.Name)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		var s sample
		err := bindJSON(t, http.MethodPost, `{"name":"Ana","status":"cancelled"}`, &s)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("empty body is allowed", func(t *testing.T) {
		var s sample
		assert.NoError(t, bindJSON(t, http.MethodPost, ``, &s))
	})

	t.Run("malformed json", func(t *testing.T) {
		var s sample
		assert.Error(t, bindJSON(t, http.MethodPost, `{"name":`, &s))
	})
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: "Ana"}))

	err := v.Validate(&sample{Email: "nope", Kind: "c"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "name is required")
	assert.Contains(t, appErr.Details(), "email must be a valid email")
	assert.Contains(t, appErr.Details(), "kind must be one of a b")
}
