package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameErrorFormatting(t *testing.T) {
	cause := errors.New("no such file")
	err := New(ErrKernelOpen, "ephemeris.open", cause).
		WithResource("/data/de430.bin").
		WithAdvice("set ephemeris.kernel in refframes.yaml")

	assert.Contains(t, err.Error(), "ERR-EPH-001")
	assert.Contains(t, err.Error(), "/data/de430.bin")
	assert.Contains(t, err.UserMessage(), "refframes.yaml")
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "noop"))
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := Newf(ErrBodyUnknown, "ephemeris.resolve", "undefined planet %q", "Krypton")
	outer := fmt.Errorf("heliostate: %w", inner)

	assert.True(t, IsCode(outer, ErrBodyUnknown))
	assert.False(t, IsCode(outer, ErrKernelOpen))

	fe := AsFrame(outer)
	require.NotNil(t, fe)
	assert.Equal(t, "ephemeris.resolve", fe.Op)
}
