// authenticationhandler/validation_test.go
package authenticationhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidClientID(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		want     bool
	}{
		{"canonical uuid", "6c7f91d4-2c85-4ec8-96f7-2f2a9cd51e6d", true},
		{"uppercase uuid", "6C7F91D4-2C85-4EC8-96F7-2F2A9CD51E6D", true},
		{"missing dashes", "6c7f91d42c854ec896f72f2a9cd51e6d", false},
		{"too short", "6c7f91d4", false},
		{"empty", "", false},
		{"random string", "not-a-uuid-at-all-but-36-chars-long!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := IsValidClientID(tt.clientID)
			assert.Equal(t, tt.want, got)
			if !tt.want {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestIsValidClientSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   bool
	}{
		{"valid secret", "Sup3rSecretValue0123456789", true},
		{"too short", "Ab1", false},
		{"no uppercase", "sup3rsecretvalue0123456789", false},
		{"no lowercase", "SUP3RSECRETVALUE0123456789", false},
		{"no digit", "SuperSecretValueABCDEFGH", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := IsValidClientSecret(tt.secret)
			assert.Equal(t, tt.want, got)
			if !tt.want {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"alphanumeric", "apiuser01", true},
		{"with safe specials", "api.user_01@corp", true},
		{"with space", "api user", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := IsValidUsername(tt.username)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	valid, _ := IsValidPassword("longenough")
	assert.True(t, valid)

	invalid, msg := IsValidPassword("short")
	assert.False(t, invalid)
	assert.NotEmpty(t, msg)
}
