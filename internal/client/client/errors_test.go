package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors_MatchSentinels(t *testing.T) {
	cause := errors.New("connection refused")

	ne := &NetworkError{Message: "dial tcp: connection refused", Err: cause}
	require.ErrorIs(t, ne, ErrNetwork)
	require.ErrorIs(t, ne, cause)

	re := &RegistrationFailedError{StatusCode: 409}
	require.ErrorIs(t, re, ErrRegistrationFailed)
	assert.Equal(t, "registration failed: status 409", re.Error())

	pe := &ProfileFetchError{Err: ne}
	require.ErrorIs(t, pe, ErrProfileFetchFailed)
	require.ErrorIs(t, pe, ErrNetwork)

	pe2 := &ProfileFetchError{StatusCode: 401}
	require.ErrorIs(t, pe2, ErrProfileFetchFailed)
	require.NotErrorIs(t, pe2, ErrNetwork)
	assert.Equal(t, "profile fetch failed: status 401", pe2.Error())

	ue := &UnexpectedStatusError{StatusCode: 500, Op: ErrLoginFailed}
	require.ErrorIs(t, ue, ErrLoginFailed)
	assert.Equal(t, "login failed: unexpected status 500", ue.Error())

	ve := &ValidationError{Op: OpRegister, Fields: []string{"email"}}
	require.ErrorIs(t, ve, ErrInvalidInput)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid credentials wrapped", err: fmt.Errorf("login: %w", ErrInvalidCredentials), want: MsgInvalidCredentials},
		{name: "invalid input", err: ErrInvalidInput, want: MsgInvalidInput},
		{name: "login validation", err: &ValidationError{Op: OpLogin, Fields: []string{"password"}}, want: MsgInvalidInput},
		{name: "register validation", err: &ValidationError{Op: OpRegister, Fields: []string{"fullName"}}, want: MsgFillAllFields},
		{name: "registration status", err: &RegistrationFailedError{StatusCode: 400}, want: "Registration Failed: 400"},
		{name: "network", err: &NetworkError{Message: "timeout", Err: errors.New("timeout")}, want: "Network Error: timeout"},
		{name: "profile over network", err: &ProfileFetchError{Err: &NetworkError{Message: "x", Err: errors.New("x")}}, want: MsgProfileFetchFailed},
		{name: "unexpected login status", err: &UnexpectedStatusError{StatusCode: 503, Op: ErrLoginFailed}, want: MsgLoginFailed},
		{name: "other", err: errors.New("disk full"), want: "disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
