package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradinggrow/backoffice/pkg/session"
)

func TestTokenCommandMintsVerifiableToken(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"token", "--secret", "cli-test-secret", "--user-id", "42", "--email", "ops@tradinggrow.com"})

	require.NoError(t, rootCmd.Execute())

	token := strings.TrimSpace(buf.String())
	require.NotEmpty(t, token)

	mgr, err := session.NewManager(session.Config{Secret: "cli-test-secret"})
	require.NoError(t, err)

	id, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "42", id.UserID)
	assert.Equal(t, "ops@tradinggrow.com", id.Email)
	assert.True(t, id.IsAdmin)
}

func TestTokenCommandRequiresSecret(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"token", "--secret", ""})

	err := rootCmd.Execute()
	assert.Error(t, err)
}
