package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptStatusTerminal(t *testing.T) {
	assert.False(t, PromptStatusPending.Terminal())
	assert.False(t, PromptStatusInProgress.Terminal())
	assert.True(t, PromptStatusCompleted.Terminal())
	assert.True(t, PromptStatusError.Terminal())
}
