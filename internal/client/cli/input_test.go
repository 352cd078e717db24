package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func fakeTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	origRP, origIT, origFd := readPassword, isTerminal, stdinFd
	readPassword = func(int) ([]byte, error) { return pw, err }
	isTerminal = func(int) bool { return tty }
	stdinFd = func() int { return 0 }
	t.Cleanup(func() {
		readPassword, isTerminal, stdinFd = origRP, origIT, origFd
	})
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_Terminal(t *testing.T) {
	fakeTerminal(t, true, []byte("s3cret"), nil)
	var out bytes.Buffer

	pw, err := GetPassword(rdr("not used\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	fakeTerminal(t, true, nil, errors.New("boom"))
	var out bytes.Buffer

	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	fakeTerminal(t, false, nil, errors.New("must not be called"))
	var out bytes.Buffer

	pw, err := GetPassword(rdr("piped\nnext\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("piped"), pw)
}
