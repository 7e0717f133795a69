package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active operator with hashed password", func(t *testing.T) {
		user, err := NewUser("operator1", "Op1@Example.com", "s3cret-pass")
		require.NoError(t, err)

		assert.Equal(t, "operator1", user.Username)
		assert.Equal(t, "op1@example.com", user.Email)
		assert.Equal(t, RoleOperator, user.Role)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.True(t, user.CheckPassword("s3cret-pass"))
		assert.False(t, user.CheckPassword("wrong"))
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := NewUser("  ", "a@b.c", "s3cret-pass")
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("operator1", "a@b.c", "short")
		assert.Error(t, err)
	})
}

func TestUser_SetPassword(t *testing.T) {
	user, err := NewUser("operator1", "a@b.c", "original-pass")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("replacement-pass"))
	assert.True(t, user.CheckPassword("replacement-pass"))
	assert.False(t, user.CheckPassword("original-pass"))

	assert.Error(t, user.SetPassword("short"))
}

func TestUser_IsActive(t *testing.T) {
	user := &User{Status: UserStatusActive}
	assert.True(t, user.IsActive())

	user.Status = UserStatusInactive
	assert.False(t, user.IsActive())
}

func TestUser_RecordLogin(t *testing.T) {
	user := &User{}
	now := time.Now()
	user.RecordLogin(now)
	require.NotNil(t, user.LastLogin)
	assert.Equal(t, now, *user.LastLogin)
}
