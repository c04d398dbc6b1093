package httptransport

import "time"

// Wire request shapes. Hashes and signature blobs travel as hex strings and
// are validated at the handler boundary.

type InitializeRequest struct {
	Admin string `json:"admin"`
}

type CreateDocumentRequest struct {
	Hash     string            `json:"hash"`
	Title    string            `json:"title"`
	Signers  []string          `json:"signers"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type AddVersionRequest struct {
	Hash     string            `json:"hash"`
	Title    string            `json:"title"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type SignDocumentRequest struct {
	SignatureData  string `json:"signature_data"`
	ClaimReference string `json:"claim_reference,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type RegisterAuthorityRequest struct {
	Authority string `json:"authority"`
}

type AddClaimRequest struct {
	ClaimType  string            `json:"claim_type"`
	ClaimValue string            `json:"claim_value"`
	Signature  string            `json:"signature"`
	ExpiresAt  time.Time         `json:"expires_at"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type UpdateConfigRequest struct {
	Value string `json:"value"`
}
