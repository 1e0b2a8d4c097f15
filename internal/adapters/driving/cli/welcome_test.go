package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

func TestWelcomeCmd_PrintsGreeting(t *testing.T) {
	chat := &MockChatService{
		WelcomeFunc: func(context.Context) (*domain.Welcome, error) {
			return &domain.Welcome{
				Message:          "Hello! Ask me anything.",
				AvailableDomains: []string{"hours", "locations"},
				Suggestions:      []string{"What are your hours?"},
			}, nil
		},
	}
	cleanup := setupTestServicesWith(chat, &MockAdminService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"welcome"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hello! Ask me anything.")
	assert.Contains(t, buf.String(), "hours")
	assert.Contains(t, buf.String(), "What are your hours?")
}
