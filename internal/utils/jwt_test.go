package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer    = "go-user-admin-test"
	testSignKey   = "test-sign-key"
	testAccountID = "665f1cabc0ffee0123456789"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAccountID, time.Hour, testSignKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testAccountID, token.AccountID)
}

func TestGenerateJWTToken_InvalidParams_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		accountID string
		duration  time.Duration
		signKey   string
	}{
		{name: "empty issuer", accountID: testAccountID, duration: time.Hour, signKey: testSignKey},
		{name: "empty account ID", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, accountID: testAccountID, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, accountID: testAccountID, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.accountID, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testAccountID, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)

	require.NoError(t, err)
	assert.Equal(t, testAccountID, parsed.AccountID)

	subject, err := parsed.GetAccountID()
	require.NoError(t, err)
	assert.Equal(t, testAccountID, subject)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testAccountID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "another-key", testIssuer)

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("some-other-service", testAccountID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_ExpiredToken(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testAccountID, -time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("definitely.not.a-jwt", testSignKey, testIssuer)

	assert.Error(t, err)
}
