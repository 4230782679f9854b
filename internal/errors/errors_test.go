package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestWrap_KeepsSentinel(t *testing.T) {
	wrapped := Wrap(errFirst, "loading user")

	assert.True(t, Is(wrapped, errFirst))
	assert.Equal(t, "loading user: first", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "errors_test.go")
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}

func TestIsAny(t *testing.T) {
	wrapped := Wrapf(errSecond, "attempt %d", 2)

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(wrapped))
}
