package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetArgs(append([]string{"--color=never"}, args...))
	rootCmd.SetIn(bytes.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestEncode(t *testing.T) {
	stdout, _, err := execute(t, nil, "encode", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "01001000001000101100100110011111001001111\n", stdout)
}

func TestEncode_Stats(t *testing.T) {
	_, stderr, err := execute(t, []byte("AAAAAAA"), "encode", "--stats")
	require.NoError(t, err)
	assert.Contains(t, stderr, "adaptive 14 bits")
	assert.Contains(t, stderr, "static 7 bits")
}

func TestDecode(t *testing.T) {
	stdout, _, err := execute(t, []byte("0100 0001 0010 0001 0001 10\n"), "decode")
	require.NoError(t, err)
	assert.Equal(t, "ABABAB", stdout)
}

func TestDecode_Truncated(t *testing.T) {
	_, _, err := execute(t, nil, "decode", "0100000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestFrameRoundTrip(t *testing.T) {
	dir := t.TempDir()
	framed := filepath.Join(dir, "msg.ahf")
	plain := filepath.Join(dir, "msg.txt")

	_, _, err := execute(t, []byte("abracadabra"), "encode", "--format=frame", "--out", framed)
	require.NoError(t, err)

	data, err := os.ReadFile(framed)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "AHF1"))

	_, _, err = execute(t, nil, "decode", "--format=frame", "--in", framed, "--out", plain)
	require.NoError(t, err)
	data, err = os.ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, "abracadabra", string(data))
}

func TestTrace(t *testing.T) {
	stdout, _, err := execute(t, nil, "trace", "--table=false", "ABABAB")
	require.NoError(t, err)
	assert.Contains(t, stdout, "step 1: 'A' -> 01000001 (new symbol)\n")
	assert.Contains(t, stdout, "step 6: 'B' -> 0 (repeat)\n")
	assert.Contains(t, stdout, "├── 0: 'B' #762 (3) <\n")
	assert.Contains(t, stdout, "final stream (22 bits): 0100000100100001000110\n")
	assert.True(t, strings.HasSuffix(stdout, "decoded: ABABAB\nround trip: OK\n"))
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "ahuff version 0.1.0\n", stdout)
}

func TestBadFlags(t *testing.T) {
	_, _, err := execute(t, nil, "--log-level=loud", "version")
	assert.Error(t, err)

	_, _, err = execute(t, nil, "encode", "--format=hex", "x")
	assert.Error(t, err)
}
