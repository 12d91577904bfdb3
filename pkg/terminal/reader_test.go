package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/inquire/pkg/ports"
)

func TestTextReader_ReadLine(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReader(strings.NewReader("first\r\n second \n"), out)
	ctx := context.Background()

	line, err := r.ReadLine(ctx, " - a: ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = r.ReadLine(ctx, " - b: ")
	require.NoError(t, err)
	assert.Equal(t, " second ", line, "replies are not trimmed")

	assert.Equal(t, " - a:  - b: ", out.String())

	_, err = r.ReadLine(ctx, " - c: ")
	assert.ErrorIs(t, err, ports.ErrClosed)
	assert.True(t, r.Closed())
}

func TestTextReader_UnterminatedLastLine(t *testing.T) {
	r := NewReader(strings.NewReader("last"), io.Discard)

	line, err := r.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.ReadLine(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrClosed)
}

func TestTextReader_SanitizerRetries(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReader(strings.NewReader("waytoolong\nok\n"), out, WithMaxInputSize(5))

	line, err := r.ReadLine(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "ok", line)
	assert.Contains(t, out.String(), "Please try again.")
	assert.Equal(t, 2, strings.Count(out.String(), "> "))
}

func TestTextReader_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewReader(pr, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.ReadLine(ctx, "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, r.Closed(), "a cancelled read does not close the reader")
}

func TestTextReader_Secret(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReader(strings.NewReader("ab\x7fc\nnext\n"), out)
	ctx := context.Background()

	_, err := r.ReadSecret(ctx, "pw: ")
	assert.ErrorIs(t, err, ErrNotCapturing)

	require.NoError(t, r.BeginSecretCapture())
	secret, err := r.ReadSecret(ctx, "pw: ")
	require.NoError(t, err)
	require.NoError(t, r.EndSecretCapture())

	assert.Equal(t, "ac", secret)
	assert.Equal(t, "pw: **"+clearLine+"pw: *"+"*\n", out.String())

	line, err := r.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}

func TestTextReader_SecretCarriageReturn(t *testing.T) {
	r := NewReader(strings.NewReader("pw\r\nnext\n"), io.Discard)
	ctx := context.Background()

	require.NoError(t, r.BeginSecretCapture())
	secret, err := r.ReadSecret(ctx, "")
	require.NoError(t, err)
	require.NoError(t, r.EndSecretCapture())
	assert.Equal(t, "pw", secret)

	line, err := r.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "next", line, "the LF after a CR submit is not read as an empty line")
}

func TestTextReader_SecretInterruptClosesReader(t *testing.T) {
	r := NewReader(strings.NewReader("ab\x03more\n"), io.Discard)

	require.NoError(t, r.BeginSecretCapture())
	_, err := r.ReadSecret(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrClosed)
	assert.True(t, r.Closed())
	assert.NoError(t, r.EndSecretCapture())
}

func TestTextReader_RawModeToggle(t *testing.T) {
	var entered, restored int
	raw := func() (func() error, error) {
		entered++
		return func() error {
			restored++
			return nil
		}, nil
	}

	out := &bytes.Buffer{}
	r := NewReader(strings.NewReader("x\r"), out, WithRawMode(raw), WithMask("#"))

	require.NoError(t, r.BeginSecretCapture())
	secret, err := r.ReadSecret(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, r.EndSecretCapture())

	assert.Equal(t, "x", secret)
	assert.Equal(t, 1, entered)
	assert.Equal(t, 1, restored)
	assert.Equal(t, "#\r\n", out.String(), "raw mode needs an explicit carriage return")
}

func TestTextReader_CloseRestoresRawMode(t *testing.T) {
	restored := false
	raw := func() (func() error, error) {
		return func() error {
			restored = true
			return nil
		}, nil
	}

	r := NewReader(strings.NewReader(""), io.Discard, WithRawMode(raw))
	require.NoError(t, r.BeginSecretCapture())
	require.NoError(t, r.Close())

	assert.True(t, restored)
	_, err := r.Write([]byte("x"))
	assert.ErrorIs(t, err, ports.ErrClosed)
}
