package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUISinkForwardsWhileAttached(t *testing.T) {
	ch := make(chan string, 4)
	SetTUISink(ch)
	defer SetTUISink(nil)

	_, err := tuiSink.Write([]byte("level=INFO msg=probing\n"))
	require.NoError(t, err)

	select {
	case line := <-ch:
		assert.Contains(t, line, "probing")
	default:
		t.Fatal("log line not forwarded to the sink channel")
	}
}

func TestTUISinkDropsWhenDetached(t *testing.T) {
	ch := make(chan string, 4)
	SetTUISink(ch)
	SetTUISink(nil)

	_, err := tuiSink.Write([]byte("dropped\n"))
	require.NoError(t, err)
	assert.Empty(t, ch)
}

func TestTUISinkNeverBlocks(t *testing.T) {
	ch := make(chan string, 1)
	SetTUISink(ch)
	defer SetTUISink(nil)

	for i := 0; i < 5; i++ {
		_, err := tuiSink.Write([]byte("line\n"))
		require.NoError(t, err)
	}
	assert.Len(t, ch, 1)
}
