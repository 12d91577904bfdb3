package terminal

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/inquire/pkg/ports"
)

func TestRegistry_Lifecycle(t *testing.T) {
	reg := NewRegistry(strings.NewReader("one\ntwo\n"), io.Discard)
	assert.False(t, reg.Live())

	first, err := reg.Acquire()
	require.NoError(t, err)
	assert.True(t, reg.Live())

	again, err := reg.Acquire()
	require.NoError(t, err)
	assert.Same(t, first, again, "acquiring a live reader resumes it")

	line, err := first.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	require.NoError(t, reg.Release())
	assert.False(t, reg.Live())
	_, err = first.ReadLine(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrClosed, "released readers stay closed")

	fresh, err := reg.Acquire()
	require.NoError(t, err)
	assert.NotSame(t, first, fresh)

	line, err = fresh.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "two", line, "the shared pump hands over unread input")

	assert.NoError(t, reg.Release())
	assert.NoError(t, reg.Release(), "releasing twice is a no-op")
}

func TestRegistry_CRLFAfterSecretDoesNotLeak(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(strings.NewReader("pw\r\nana\n"), io.Discard)

	first, err := reg.Acquire()
	require.NoError(t, err)
	require.NoError(t, first.BeginSecretCapture())
	secret, err := first.ReadSecret(ctx, "p: ")
	require.NoError(t, err)
	require.NoError(t, first.EndSecretCapture())
	assert.Equal(t, "pw", secret)
	require.NoError(t, reg.Release())

	next, err := reg.Acquire()
	require.NoError(t, err)
	line, err := next.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "ana", line, "the LF of the secret's CRLF belongs to the previous run")
	assert.NoError(t, reg.Release())
}

func TestRegistry_ClosedReaderIsReplaced(t *testing.T) {
	reg := NewRegistry(strings.NewReader(""), io.Discard)

	first, err := reg.Acquire()
	require.NoError(t, err)
	first.(*TextReader).Close()

	second, err := reg.Acquire()
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	_, err = second.ReadLine(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrClosed)
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
