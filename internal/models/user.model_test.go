package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPasswordAndCheckPassword(t *testing.T) {
	user := User{Name: "Admin", Email: "admin@teatro.local"}
	require.NoError(t, user.SetPassword("secret123"))

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
	assert.False(t, user.CheckPassword(""))
}

func TestUserBeforeCreate(t *testing.T) {
	user := User{Name: "Admin", Email: "  Admin@Teatro.LOCAL ", PasswordHash: "hash"}
	require.NoError(t, user.BeforeCreate(nil))
	assert.Equal(t, "admin@teatro.local", user.Email)
}

func TestUserBeforeCreateRejectsEmptyFields(t *testing.T) {
	noEmail := User{Name: "Admin", PasswordHash: "hash"}
	assert.Error(t, noEmail.BeforeCreate(nil))

	noPassword := User{Name: "Admin", Email: "admin@teatro.local"}
	assert.Error(t, noPassword.BeforeCreate(nil))
}

func TestToProfileOmitsPassword(t *testing.T) {
	user := User{Name: "Admin", Email: "admin@teatro.local", IsAdmin: true}
	user.ID = 7

	profile := user.ToProfile()
	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, "Admin", profile.Name)
	assert.Equal(t, "admin@teatro.local", profile.Email)
	assert.True(t, profile.IsAdmin)
}
