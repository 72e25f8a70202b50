package accountservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okuznetsov/blogware/internal/common"
)

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid", password: "Str0ng!pass", valid: true},
		{name: "empty", password: "", valid: false},
		{name: "too short", password: "S0!a", valid: false},
		{name: "no uppercase", password: "str0ng!pass", valid: false},
		{name: "no lowercase", password: "STR0NG!PASS", valid: false},
		{name: "no number", password: "Strong!pass", valid: false},
		{name: "no symbol", password: "Str0ngpass", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			assert.Equal(t, tc.valid, v.Valid())
		})
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "valid", email: "user@example.com", valid: true},
		{name: "empty", email: "", valid: false},
		{name: "missing domain", email: "user@", valid: false},
		{name: "missing at sign", email: "user.example.com", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.email)
			assert.Equal(t, tc.valid, v.Valid())
		})
	}
}
