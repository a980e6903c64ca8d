package usecase_test

import (
	"testing"

	"mf-receipts/internal/domain"
	"mf-receipts/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestSessionState_Lifecycle(t *testing.T) {
	session := usecase.NewSessionState()
	assert.False(t, session.Authenticated())
	assert.ErrorIs(t, session.RequireAuthenticated(), domain.ErrNotAuthenticated)

	session.Init("token-123")
	assert.True(t, session.Authenticated())
	assert.NoError(t, session.RequireAuthenticated())
	assert.NotEmpty(t, session.SessionID())

	first := session.SessionID()
	session.Init("token-456")
	assert.NotEqual(t, first, session.SessionID())

	session.Clear()
	assert.False(t, session.Authenticated())
	assert.Empty(t, session.SessionID())
}
