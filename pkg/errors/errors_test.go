// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/gearbox/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_registered",
			code:    errors.ErrTransitionNotRegistered,
			message: "no transition for main.Unknown",
			wantStr: "[TRANSITION_NOT_REGISTERED] no transition for main.Unknown",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "nil event",
			wantStr: "[INVALID_INPUT] nil event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDuplicateRegistration, "%d types registered twice", 2)
	assert.Equal(t, "2 types registered twice", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "cannot load config")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrConfigLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[CONFIG_LOAD] cannot load config: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTransitionInvalid, "unnamed type").
		WithDetail("type", "struct {}").
		WithDetail("kind", "struct")

	assert.Equal(t, "struct {}", err.Details["type"])
	assert.Equal(t, "struct", err.Details["kind"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrRegistryFrozen, "frozen"), errors.ErrRegistryFrozen, true},
		{"different_code", errors.New(errors.ErrRegistryFrozen, "frozen"), errors.ErrTableSealed, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrConfigParse, "bad toml"), errors.ErrConfigParse, true},
		{"plain_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrTableSealed, errors.GetErrorCode(errors.New(errors.ErrTableSealed, "sealed")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	parseErr := errors.Wrap(rootCause, errors.ErrConfigParse, "cannot parse file")
	loadErr := errors.Wrap(parseErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(loadErr, errors.ErrConfigLoad))

	var inner *errors.GearboxError
	require.True(t, stderrors.As(loadErr.Unwrap(), &inner))
	assert.Equal(t, errors.ErrConfigParse, inner.Code)

	assert.True(t, stderrors.Is(loadErr, rootCause))
}
