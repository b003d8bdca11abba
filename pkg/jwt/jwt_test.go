package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tanvirul/shopledger-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "shopledger-test"
	testExpMin = 60
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "supervisor", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "supervisor", role)
}

func TestParse_ExpiredToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "owner", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "an expired token must not parse")
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "owner", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err, "a wrong secret must invalidate the token")
}

func TestParse_Garbage(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "owner", testIssuer, testExpMin)
	assert.Error(t, err)
}
