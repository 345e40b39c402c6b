package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func TestIssueToken_VerifyToken_RoundTrip(t *testing.T) {
	token, err := IssueToken("68a1f0c2e4b0aa0001234567", "aluno@escola.br", time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, testSignKey)
	require.NoError(t, err)

	assert.Equal(t, "68a1f0c2e4b0aa0001234567", claims.Subject)
	assert.Equal(t, "aluno@escola.br", claims.Email)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestIssueToken_InvalidParams_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		duration time.Duration
		signKey  string
	}{
		{name: "empty subject", subject: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", subject: "abc", duration: 0, signKey: testSignKey},
		{name: "empty sign key", subject: "abc", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := IssueToken(tt.subject, "e@mail", tt.duration, tt.signKey)
			assert.Error(t, err)
			assert.Empty(t, token)
		})
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := IssueToken("abc", "e@mail", -time.Minute, testSignKey)
	require.NoError(t, err)

	claims, err := VerifyToken(token, testSignKey)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestVerifyToken_Malformed_TableTest(t *testing.T) {
	valid, err := IssueToken("abc", "e@mail", time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		signKey string
	}{
		{name: "garbage string", token: "not-a-token", signKey: testSignKey},
		{name: "empty string", token: "", signKey: testSignKey},
		{name: "wrong sign key", token: valid, signKey: "another-key"},
		{name: "truncated token", token: valid[:len(valid)/2], signKey: testSignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := VerifyToken(tt.token, tt.signKey)
			assert.ErrorIs(t, err, ErrTokenMalformed)
			assert.Nil(t, claims)
		})
	}
}
