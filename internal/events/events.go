// Package events carries lifecycle notifications out of the notary engine.
// Delivery toward observers is at-least-once; the engine never fails an
// operation because an event could not be delivered.
package events

import (
	"context"
	"time"

	"notary/internal/notary/models"
)

// Topic partitions events the way the ledger publishes them: document
// lifecycle on "docs", authority and claim activity on "auth".
type Topic string

const (
	TopicDocs Topic = "docs"
	TopicAuth Topic = "auth"
)

// Type enumerates the lifecycle events the engine emits.
type Type string

const (
	TypeDocumentCreated Type = "document_created"
	TypeVersionAdded    Type = "version_added"
	TypeDocumentSigned  Type = "document_signed"
	TypeStatusChanged   Type = "status_changed"
	TypeClaimAdded      Type = "claim_added"
	TypeAuthorityAdded  Type = "authority_added"
)

// Event is one lifecycle notification. Hash carries the document or version
// hash for document events; Address carries the user or authority for
// registry events. Status is set only on status_changed.
type Event struct {
	ID        string                `json:"id"`
	Topic     Topic                 `json:"topic"`
	Type      Type                  `json:"type"`
	Hash      models.Hash           `json:"hash,omitempty"`
	Address   models.Address        `json:"address,omitempty"`
	Status    models.DocumentStatus `json:"status,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
}

// Emitter receives lifecycle events for observers.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// DocumentCreated builds the creation event for a document hash.
func DocumentCreated(hash models.Hash) Event {
	return Event{Topic: TopicDocs, Type: TypeDocumentCreated, Hash: hash}
}

// VersionAdded carries the new version's hash, not the document's.
func VersionAdded(versionHash models.Hash) Event {
	return Event{Topic: TopicDocs, Type: TypeVersionAdded, Hash: versionHash}
}

// DocumentSigned carries the document hash, not the version hash.
func DocumentSigned(docHash models.Hash) Event {
	return Event{Topic: TopicDocs, Type: TypeDocumentSigned, Hash: docHash}
}

// StatusChanged carries the document hash and its new status.
func StatusChanged(docHash models.Hash, status models.DocumentStatus) Event {
	return Event{Topic: TopicDocs, Type: TypeStatusChanged, Hash: docHash, Status: status}
}

// ClaimAdded carries the subject user, not the issuing authority.
func ClaimAdded(user models.Address) Event {
	return Event{Topic: TopicAuth, Type: TypeClaimAdded, Address: user}
}

// AuthorityAdded carries the newly registered authority.
func AuthorityAdded(authority models.Address) Event {
	return Event{Topic: TopicAuth, Type: TypeAuthorityAdded, Address: authority}
}
