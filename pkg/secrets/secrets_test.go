package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
)

func TestGenerateAPIKey(t *testing.T) {
	first, err := GenerateAPIKey()
	require.NoError(t, err)
	second, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "acta_"))
	assert.NotEqual(t, first, second)
}

func TestHashAndVerifyAPIKey(t *testing.T) {
	hash, err := HashAPIKey("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("matching key", func(t *testing.T) {
		assert.NoError(t, VerifyAPIKey(hash, "s3cret"))
	})

	t.Run("wrong key", func(t *testing.T) {
		err := VerifyAPIKey(hash, "guess")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("missing key", func(t *testing.T) {
		err := VerifyAPIKey(hash, "")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("empty key cannot be hashed", func(t *testing.T) {
		_, err := HashAPIKey("", bcrypt.MinCost)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("overlong key", func(t *testing.T) {
		_, err := HashAPIKey(strings.Repeat("k", 80), bcrypt.MinCost)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}
