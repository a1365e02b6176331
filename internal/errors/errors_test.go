package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestConfigurationError(t *testing.T) {
	cfgErr := NewConfigurationError("face number outside catalog", "21", InvalidFace, nil)
	assert.Equal(t, "face number outside catalog: 21", cfgErr.Error())
	assert.Equal(t, "21", cfgErr.Param())
	assert.Equal(t, InvalidFace, cfgErr.Kind())
	assert.True(t, IsConfigurationError(cfgErr))
	assert.True(t, IsConfigurationError(Wrap(cfgErr, "building D22")))
	assert.False(t, IsConfigurationError(New("plain")))

	inner := fmt.Errorf("yaml: line 3")
	cfgErr = NewConfigurationError("cannot parse catalog", "", InvalidCatalog, inner)
	assert.Equal(t, "cannot parse catalog: yaml: line 3", cfgErr.Error())
	assert.Equal(t, inner, Unwrap(cfgErr))
}

func TestDieError(t *testing.T) {
	dieErr := NewDieError("die has no faces", "D6", UnconfiguredDie, nil)
	assert.Equal(t, "die has no faces: D6", dieErr.Error())
	assert.Equal(t, "D6", dieErr.DieName())
	assert.True(t, IsUnconfiguredDie(dieErr))
	assert.True(t, IsUnconfiguredDie(Wrap(dieErr, "rolling")))

	posErr := NewDieError("insert position out of range", "D6", InvalidInput, nil)
	assert.False(t, IsUnconfiguredDie(posErr))
}

func TestInputError(t *testing.T) {
	mismatch := NewInputError("no die with that name", "D7", InputMismatch, nil)
	assert.True(t, IsInputMismatch(mismatch))
	assert.False(t, IsIOError(mismatch))
	assert.Equal(t, "D7", mismatch.Input())

	ioErr := NewIOError("reading input", io.ErrUnexpectedEOF)
	assert.True(t, IsIOError(ioErr))
	assert.True(t, errors.Is(ioErr, io.ErrUnexpectedEOF))
	assert.Equal(t, "reading input: unexpected EOF", ioErr.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, Unknown},
		{"plain", New("plain"), Unknown},
		{"direct", NewDieError("x", "D4", UnconfiguredDie, nil), UnconfiguredDie},
		{"wrapped", Wrap(NewIOError("x", io.EOF), "outer"), IOFailure},
		{"stdlib wrapped", fmt.Errorf("outer: %w", NewConfigurationError("x", "", InvalidFace, nil)), InvalidFace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
