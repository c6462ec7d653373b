// AngelaMos | 2026
// security_test.go

package core

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAdminTokenRoundTrip(t *testing.T) {
	hash, err := HashAdminToken("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyAdminToken("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyAdminToken("wrong token", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashAdminTokenUsesRandomSalt(t *testing.T) {
	first, err := HashAdminToken("same input")
	require.NoError(t, err)
	second, err := HashAdminToken("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyAdminTokenRejectsMalformedHash(t *testing.T) {
	_, err := VerifyAdminToken("token", "not-a-hash")
	assert.Error(t, err)
}

func TestTokenFingerprintStable(t *testing.T) {
	a := TokenFingerprint("token-value")
	b := TokenFingerprint("token-value")
	c := TokenFingerprint("other-value")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, CompareFingerprints(a, b))
	assert.False(t, CompareFingerprints(a, c))
}

func TestGenerateSecureTokenLengthAndUniqueness(t *testing.T) {
	first, err := GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := GenerateSecureToken(32)
	require.NoError(t, err)

	assert.Len(t, first, base64.URLEncoding.EncodedLen(32))
	assert.NotEqual(t, first, second)
}
