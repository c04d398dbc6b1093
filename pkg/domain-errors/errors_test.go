package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("direct coded error", func(t *testing.T) {
		err := New(CodeNotFound, "document missing")
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeAlreadyExists))
	})

	t.Run("wrapped coded error", func(t *testing.T) {
		inner := New(CodeExpiredClaim, "claim expired")
		outer := fmt.Errorf("add claim: %w", inner)
		assert.True(t, HasCode(outer, CodeExpiredClaim))
	})

	t.Run("uncoded error", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeOperationFailed))
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeOperationFailed, "load state", cause)

	require.True(t, HasCode(err, CodeOperationFailed))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "load state")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeUnauthorized, CodeOf(New(CodeUnauthorized, "")))
	assert.Equal(t, CodeOperationFailed, CodeOf(errors.New("plain")))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeAlreadyExists:        http.StatusConflict,
		CodeNotFound:             http.StatusNotFound,
		CodeUnauthorized:         http.StatusForbidden,
		CodeInvalidAuthority:     http.StatusForbidden,
		CodeInvalidVersion:       http.StatusBadRequest,
		CodeInvalidStatus:        http.StatusBadRequest,
		CodeInvalidSignature:     http.StatusBadRequest,
		CodeExpiredClaim:         http.StatusBadRequest,
		CodeMissingIdentityClaim: http.StatusBadRequest,
		CodeInvalidInput:         http.StatusBadRequest,
		CodeInvalidState:         http.StatusConflict,
		CodeOperationFailed:      http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), string(code))
	}
}
