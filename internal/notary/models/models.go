// Package models holds the notary ledger's domain types. Values here are
// plain data; all mutation rules live in the service layer.
package models

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Hash is a 32-byte content hash identifying a document or version.
type Hash [32]byte

// ZeroHash marks "no parent version" on a root version.
var ZeroHash Hash

// ParseHash decodes a 64-character hex string into a Hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("parse hash: %w", err)
	}
	if len(raw) != len(h) {
		return Hash{}, fmt.Errorf("parse hash: want %d bytes, got %d", len(h), len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// IsZero reports whether h is the root sentinel.
func (h Hash) IsZero() bool { return h == ZeroHash }

func (h Hash) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// SignatureData is an opaque 64-byte signature blob. It is recorded, never
// verified, by this engine.
type SignatureData [64]byte

// ParseSignatureData decodes a 128-character hex string.
func ParseSignatureData(s string) (SignatureData, error) {
	var d SignatureData
	raw, err := hex.DecodeString(s)
	if err != nil {
		return SignatureData{}, fmt.Errorf("parse signature data: %w", err)
	}
	if len(raw) != len(d) {
		return SignatureData{}, fmt.Errorf("parse signature data: want %d bytes, got %d", len(d), len(raw))
	}
	copy(d[:], raw)
	return d, nil
}

func (d SignatureData) String() string { return hex.EncodeToString(d[:]) }

func (d SignatureData) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *SignatureData) UnmarshalText(text []byte) error {
	parsed, err := ParseSignatureData(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Address is an opaque account identity. The engine relies only on equality;
// any account model the host uses maps onto it.
type Address string

// ParseAddress validates an address at trust boundaries.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return "", fmt.Errorf("address must not be empty")
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

func (a Address) IsNil() bool { return a == "" }

// DocumentStatus is the lifecycle state of a document. Transitions are not
// guarded; UpdateStatus may move a document to any status.
type DocumentStatus string

const (
	DocumentPending DocumentStatus = "pending"
	DocumentActive  DocumentStatus = "active"
	DocumentRevoked DocumentStatus = "revoked"
	DocumentExpired DocumentStatus = "expired"
)

// ParseDocumentStatus validates a status word at the transport boundary.
func ParseDocumentStatus(s string) (DocumentStatus, error) {
	switch status := DocumentStatus(s); status {
	case DocumentPending, DocumentActive, DocumentRevoked, DocumentExpired:
		return status, nil
	default:
		return "", fmt.Errorf("unknown document status: %q", s)
	}
}

func (s DocumentStatus) String() string { return string(s) }

// VersionStatus is the lifecycle state of a single document version.
type VersionStatus string

const (
	VersionDraft           VersionStatus = "draft"
	VersionPendingApproval VersionStatus = "pending_approval"
	VersionApproved        VersionStatus = "approved"
	VersionRejected        VersionStatus = "rejected"
	VersionSuperseded      VersionStatus = "superseded"
)

// ParseVersionStatus validates a version status word.
func ParseVersionStatus(s string) (VersionStatus, error) {
	switch status := VersionStatus(s); status {
	case VersionDraft, VersionPendingApproval, VersionApproved,
		VersionRejected, VersionSuperseded:
		return status, nil
	default:
		return "", fmt.Errorf("unknown version status: %q", s)
	}
}

func (s VersionStatus) String() string { return string(s) }

// Signature records one signer's approval of a version. The claim reference
// points at a supporting identity claim but is not cross-validated here.
type Signature struct {
	Signer         Address       `json:"signer"`
	Timestamp      time.Time     `json:"timestamp"`
	SignatureData  SignatureData `json:"signature_data"`
	ClaimReference Hash          `json:"claim_reference"`
}

// DocumentVersion is one entry in a document's append-only version history.
// RequiredSigners is frozen at version creation and does not track later
// changes to the document's authorized-signer list.
type DocumentVersion struct {
	Hash            Hash              `json:"hash"`
	ParentHash      Hash              `json:"parent_hash"`
	Title           string            `json:"title"`
	Status          VersionStatus     `json:"status"`
	Creator         Address           `json:"creator"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Signatures      []Signature       `json:"signatures"`
	RequiredSigners []Address         `json:"required_signers"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// Signed reports whether the signer already signed this version.
func (v *DocumentVersion) Signed(signer Address) bool {
	for _, sig := range v.Signatures {
		if sig.Signer == signer {
			return true
		}
	}
	return false
}

// QuorumMet reports exact-count quorum: every required signer accounted for.
// Duplicate-signer prevention is what keeps the count from passing the
// threshold.
func (v *DocumentVersion) QuorumMet() bool {
	return len(v.Signatures) == len(v.RequiredSigners)
}

// Document is an immutable, hash-identified notarized document with its
// version history.
type Document struct {
	Hash              Hash              `json:"hash"`
	Status            DocumentStatus    `json:"status"`
	Owner             Address           `json:"owner"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	CurrentVersion    int               `json:"current_version"`
	Versions          []DocumentVersion `json:"versions"`
	AuthorizedSigners []Address         `json:"authorized_signers"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// Current returns the document's current version. CurrentVersion is always a
// valid index because versions never shrink.
func (d *Document) Current() *DocumentVersion {
	return &d.Versions[d.CurrentVersion]
}

// Authorized reports whether addr may modify the document: the owner or any
// authorized signer.
func (d *Document) Authorized(addr Address) bool {
	if addr == d.Owner {
		return true
	}
	return d.SignerAuthorized(addr)
}

// SignerAuthorized checks addr against the document's live signer list (not
// a version's frozen snapshot).
func (d *Document) SignerAuthorized(addr Address) bool {
	for _, signer := range d.AuthorizedSigners {
		if signer == addr {
			return true
		}
	}
	return false
}

// IdentityClaim is an authority-issued, time-bounded assertion about a user.
// Claims are append-only and never expire automatically; expiry is checked
// only at issuance.
type IdentityClaim struct {
	Authority  Address           `json:"authority"`
	ClaimType  string            `json:"claim_type"`
	ClaimValue Hash              `json:"claim_value"`
	Signature  SignatureData     `json:"signature"`
	IssuedAt   time.Time         `json:"issued_at"`
	ExpiresAt  time.Time         `json:"expires_at"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// State is the single persisted aggregate: every operation loads it whole,
// mutates a copy, and writes it back.
type State struct {
	Admin         Address                    `json:"admin"`
	Documents     map[Hash]Document          `json:"documents"`
	UserDocuments map[Address][]Hash         `json:"user_documents"`
	Authorities   []Address                  `json:"authorities"`
	Claims        map[Address][]IdentityClaim `json:"claims"`
	Settings      map[string]string          `json:"settings"`
}

// NewState builds an initialized aggregate owned by admin.
func NewState(admin Address) *State {
	return &State{
		Admin:         admin,
		Documents:     make(map[Hash]Document),
		UserDocuments: make(map[Address][]Hash),
		Claims:        make(map[Address][]IdentityClaim),
		Settings:      make(map[string]string),
	}
}

// IsAuthority reports whether addr is a registered authority.
func (s *State) IsAuthority(addr Address) bool {
	for _, authority := range s.Authorities {
		if authority == addr {
			return true
		}
	}
	return false
}

// Clone deep-copies the aggregate via the JSON codec so callers can mutate
// freely without touching the stored snapshot.
func (s *State) Clone() (*State, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("clone state: %w", err)
	}
	var out State
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("clone state: %w", err)
	}
	if out.Documents == nil {
		out.Documents = make(map[Hash]Document)
	}
	if out.UserDocuments == nil {
		out.UserDocuments = make(map[Address][]Hash)
	}
	if out.Claims == nil {
		out.Claims = make(map[Address][]IdentityClaim)
	}
	if out.Settings == nil {
		out.Settings = make(map[string]string)
	}
	return &out, nil
}
