package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		param  string
		wantID int64
		wantOK bool
	}{
		{name: "simple integer", param: "5", wantID: 5, wantOK: true},
		{name: "zero", param: "0", wantID: 0, wantOK: true},
		{name: "large integer", param: "123456789", wantID: 123456789, wantOK: true},
		{name: "empty", param: "", wantOK: false},
		{name: "negative", param: "-5", wantOK: false},
		{name: "explicit plus sign", param: "+5", wantOK: false},
		{name: "decimal", param: "5.0", wantOK: false},
		{name: "alphabetic", param: "abc", wantOK: false},
		{name: "mixed", param: "12a", wantOK: false},
		{name: "leading whitespace", param: " 5", wantOK: false},
		{name: "trailing whitespace", param: "5 ", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, msg := parseUserID(tt.param)
			if tt.wantOK {
				assert.Empty(t, msg)
				assert.Equal(t, tt.wantID, id)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestRequiredUserDataValidation(t *testing.T) {
	t.Parallel()

	v := newValidator()

	tests := []struct {
		name     string
		req      UpdateUserRequest
		wantOK   bool
		wantMsgs []string
	}{
		{
			name:   "valid payload",
			req:    UpdateUserRequest{Username: "ab", Email: "a@b.com"},
			wantOK: true,
		},
		{
			name:   "username at max length",
			req:    UpdateUserRequest{Username: stringOfLen(50), Email: "a@b.com"},
			wantOK: true,
		},
		{
			name:     "username too short",
			req:      UpdateUserRequest{Username: "a", Email: "a@b.com"},
			wantMsgs: []string{"Username must be at least 2 characters"},
		},
		{
			name:     "username too long",
			req:      UpdateUserRequest{Username: stringOfLen(51), Email: "a@b.com"},
			wantMsgs: []string{"Username must be at most 50 characters"},
		},
		{
			name:     "missing username",
			req:      UpdateUserRequest{Email: "a@b.com"},
			wantMsgs: []string{"Username is required"},
		},
		{
			name:     "invalid email",
			req:      UpdateUserRequest{Username: "ab", Email: "not-an-email"},
			wantMsgs: []string{"Email must be a valid email address"},
		},
		{
			name: "both fields invalid keeps field order",
			req:  UpdateUserRequest{Username: "a", Email: "nope"},
			wantMsgs: []string{
				"Username must be at least 2 characters",
				"Email must be a valid email address",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(tt.req)
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsgs, validationMessages(err))
		})
	}
}

func TestPartialUserDataValidation(t *testing.T) {
	t.Parallel()

	v := newValidator()

	username := "ab"
	shortUsername := "a"
	email := "a@b.com"
	badEmail := "nope"

	tests := []struct {
		name   string
		req    PatchUserRequest
		wantOK bool
	}{
		// An entirely empty payload is accepted; a no-op PATCH is allowed.
		{name: "empty payload", req: PatchUserRequest{}, wantOK: true},
		{name: "username only", req: PatchUserRequest{Username: &username}, wantOK: true},
		{name: "email only", req: PatchUserRequest{Email: &email}, wantOK: true},
		{name: "both fields", req: PatchUserRequest{Username: &username, Email: &email}, wantOK: true},
		{name: "short username", req: PatchUserRequest{Username: &shortUsername}, wantOK: false},
		{name: "bad email", req: PatchUserRequest{Email: &badEmail}, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(tt.req)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegistrationValidation(t *testing.T) {
	t.Parallel()

	v := newValidator()

	tests := []struct {
		name   string
		req    RegisterRequest
		wantOK bool
	}{
		{
			name:   "valid registration",
			req:    RegisterRequest{Username: "abc", Email: "a@b.com", Password: "Passw0rd!"},
			wantOK: true,
		},
		{
			name:   "username too short for registration",
			req:    RegisterRequest{Username: "ab", Email: "a@b.com", Password: "Passw0rd!"},
			wantOK: false,
		},
		{
			name:   "password too short",
			req:    RegisterRequest{Username: "abc", Email: "a@b.com", Password: "Pw0!"},
			wantOK: false,
		},
		{
			name:   "password missing uppercase",
			req:    RegisterRequest{Username: "abc", Email: "a@b.com", Password: "passw0rd!"},
			wantOK: false,
		},
		{
			name:   "password missing lowercase",
			req:    RegisterRequest{Username: "abc", Email: "a@b.com", Password: "PASSW0RD!"},
			wantOK: false,
		},
		{
			name:   "password missing digit",
			req:    RegisterRequest{Username: "abc", Email: "a@b.com", Password: "Password!"},
			wantOK: false,
		},
		{
			name:   "password missing special character",
			req:    RegisterRequest{Username: "abc", Email: "a@b.com", Password: "Passw0rd1"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(tt.req)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	t.Parallel()

	v := newValidator()

	// No complexity check at login; any non-empty password passes.
	assert.NoError(t, v.Struct(LoginRequest{Email: "a@b.com", Password: "x"}))
	assert.Error(t, v.Struct(LoginRequest{Email: "a@b.com", Password: ""}))
	assert.Error(t, v.Struct(LoginRequest{Email: "nope", Password: "x"}))
}

// stringOfLen builds an ASCII string of exactly n characters.
func stringOfLen(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
