package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHash(t *testing.T) {
	t.Run("round trips valid hex", func(t *testing.T) {
		in := strings.Repeat("ab", 32)
		h, err := ParseHash(in)
		require.NoError(t, err)
		assert.Equal(t, in, h.String())
		assert.False(t, h.IsZero())
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := ParseHash("abcd")
		require.Error(t, err)
	})

	t.Run("rejects non-hex", func(t *testing.T) {
		_, err := ParseHash(strings.Repeat("zz", 32))
		require.Error(t, err)
	})

	t.Run("zero value is the root sentinel", func(t *testing.T) {
		assert.True(t, ZeroHash.IsZero())
	})
}

func TestParseStatuses(t *testing.T) {
	for _, word := range []string{"pending", "active", "revoked", "expired"} {
		status, err := ParseDocumentStatus(word)
		require.NoError(t, err)
		assert.Equal(t, word, status.String())
	}
	_, err := ParseDocumentStatus("frozen")
	require.Error(t, err)

	for _, word := range []string{"draft", "pending_approval", "approved", "rejected", "superseded"} {
		status, err := ParseVersionStatus(word)
		require.NoError(t, err)
		assert.Equal(t, word, status.String())
	}
	_, err = ParseVersionStatus("final")
	require.Error(t, err)
}

func TestVersionSignedAndQuorum(t *testing.T) {
	version := DocumentVersion{
		RequiredSigners: []Address{"alice", "bob"},
	}
	assert.False(t, version.Signed("alice"))
	assert.False(t, version.QuorumMet())

	version.Signatures = append(version.Signatures, Signature{Signer: "alice"})
	assert.True(t, version.Signed("alice"))
	assert.False(t, version.QuorumMet())

	version.Signatures = append(version.Signatures, Signature{Signer: "bob"})
	assert.True(t, version.QuorumMet())
}

func TestDocumentAuthorized(t *testing.T) {
	doc := Document{
		Owner:             "owner",
		AuthorizedSigners: []Address{"alice"},
	}
	assert.True(t, doc.Authorized("owner"))
	assert.True(t, doc.Authorized("alice"))
	assert.False(t, doc.Authorized("mallory"))
	assert.False(t, doc.SignerAuthorized("owner"))
}

func TestStateClone(t *testing.T) {
	hash, err := ParseHash(strings.Repeat("11", 32))
	require.NoError(t, err)

	state := NewState("admin")
	state.Documents[hash] = Document{
		Hash:      hash,
		Status:    DocumentPending,
		Owner:     "owner",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Versions: []DocumentVersion{{
			Hash:            hash,
			ParentHash:      ZeroHash,
			Status:          VersionPendingApproval,
			RequiredSigners: []Address{"alice"},
		}},
		AuthorizedSigners: []Address{"alice"},
	}
	state.UserDocuments["owner"] = []Hash{hash}
	state.Authorities = []Address{"authority"}
	state.Settings["MIN_SIGN"] = "1"

	clone, err := state.Clone()
	require.NoError(t, err)
	require.Equal(t, state, clone)

	// Mutating the clone must not leak into the original.
	doc := clone.Documents[hash]
	doc.Status = DocumentActive
	doc.AuthorizedSigners = append(doc.AuthorizedSigners, "bob")
	clone.Documents[hash] = doc
	clone.Settings["MIN_SIGN"] = "2"

	assert.Equal(t, DocumentPending, state.Documents[hash].Status)
	assert.Len(t, state.Documents[hash].AuthorizedSigners, 1)
	assert.Equal(t, "1", state.Settings["MIN_SIGN"])
}

func TestStateJSONMapKeys(t *testing.T) {
	hash, err := ParseHash(strings.Repeat("22", 32))
	require.NoError(t, err)

	state := NewState("admin")
	state.Documents[hash] = Document{Hash: hash, Status: DocumentPending}

	raw, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(raw), hash.String())

	var decoded State
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, DocumentPending, decoded.Documents[hash].Status)
}
