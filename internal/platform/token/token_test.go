package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "notary/pkg/domain-errors"
)

func TestMintAndValidate(t *testing.T) {
	svc := NewService("test-signing-key", "notary-test")

	t.Run("round trip", func(t *testing.T) {
		raw, err := svc.Mint("addr-1", time.Hour)
		require.NoError(t, err)

		claims, err := svc.Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, "addr-1", claims.Address)
		assert.Equal(t, "notary-test", claims.Issuer)
	})

	t.Run("expired token", func(t *testing.T) {
		raw, err := svc.Mint("addr-1", -time.Minute)
		require.NoError(t, err)

		_, err = svc.Validate(raw)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewService("other-key", "notary-test")
		raw, err := other.Mint("addr-1", time.Hour)
		require.NoError(t, err)

		_, err = svc.Validate(raw)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
