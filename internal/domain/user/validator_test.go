package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormValidator_ValidateCreate(t *testing.T) {
	v := NewFormValidator()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "valid input",
			userName: "Ana Souza",
			email:    "ana@example.com",
			password: "secret1",
			wantErr:  false,
		},
		{
			name:     "password exactly at minimum",
			userName: "Ana",
			email:    "ana@example.com",
			password: "123456",
			wantErr:  false,
		},
		{
			name:     "password too short",
			userName: "Ana",
			email:    "ana@example.com",
			password: "12345",
			wantErr:  true,
		},
		{
			name:     "empty name",
			userName: "",
			email:    "ana@example.com",
			password: "secret1",
			wantErr:  true,
		},
		{
			name:     "whitespace name",
			userName: "   ",
			email:    "ana@example.com",
			password: "secret1",
			wantErr:  true,
		},
		{
			name:     "email without at",
			userName: "Ana",
			email:    "ana.example.com",
			password: "secret1",
			wantErr:  true,
		},
		{
			name:     "email without domain dot",
			userName: "Ana",
			email:    "ana@example",
			password: "secret1",
			wantErr:  true,
		},
		{
			name:     "email starting with at",
			userName: "Ana",
			email:    "@example.com",
			password: "secret1",
			wantErr:  true,
		},
		{
			name:     "email with space",
			userName: "Ana",
			email:    "ana souza@example.com",
			password: "secret1",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCreate(tt.userName, tt.email, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormValidator_ValidateUpdate(t *testing.T) {
	v := NewFormValidator()

	// Update never looks at the password, so a short one must not matter.
	assert.NoError(t, v.ValidateUpdate("Ana", "ana@example.com"))
	assert.Error(t, v.ValidateUpdate("", "ana@example.com"))
	assert.Error(t, v.ValidateUpdate("Ana", "not-an-email"))
}
