package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticLogin(t *testing.T) {
	a := NewStatic("admin", "admin", "admin_token")

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{"valid", "admin", "admin", true},
		{"wrong password", "admin", "nope", false},
		{"wrong username", "nope", "admin", false},
		{"swapped", "admin_token", "admin", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, ok := a.Login(tt.username, tt.password)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "admin_token", session.Token)
				assert.Equal(t, RoleAdmin, session.Role)
			} else {
				assert.Empty(t, session.Token)
				assert.Empty(t, session.Role)
			}
		})
	}
}

func TestStaticLoginIssuesSameSession(t *testing.T) {
	a := NewStatic("admin", "admin", "admin_token")

	first, ok := a.Login("admin", "admin")
	assert.True(t, ok)
	second, ok := a.Login("admin", "admin")
	assert.True(t, ok)
	assert.Equal(t, first, second)
}

func TestStaticAuthorize(t *testing.T) {
	a := NewStatic("admin", "admin", "admin_token")

	assert.True(t, a.Authorize("admin_token"))
	assert.False(t, a.Authorize("wrong"))
	assert.False(t, a.Authorize(""))
}
