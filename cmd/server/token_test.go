package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/resume-analyzer/pkg/auth"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := execute(t, "hash-password", "s3cret")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	_, err = execute(t, "hash-password")
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CATALOG_SOURCE", "builtin")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AUTH_CLIENT_ID", "ops")

	out, err := execute(t, "token")
	require.NoError(t, err)

	var tok auth.Token
	require.NoError(t, json.Unmarshal([]byte(out), &tok))
	assert.NotEmpty(t, tok.Value)
	assert.False(t, tok.ExpiresAt.IsZero())
}

func TestTokenCommandWithoutSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CATALOG_SOURCE", "builtin")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("JWT_SECRET", "")

	_, err := execute(t, "token", "--client", "ops")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
