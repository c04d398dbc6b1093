// Package httptransport is the thin HTTP layer over the ledger engine. It
// parses and validates wire input, resolves the caller address from the
// bearer token, and translates coded domain errors into JSON responses.
// Business rules stay in the service.
package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"notary/internal/notary/models"
	"notary/internal/platform/metrics"
	"notary/internal/platform/middleware"
	dErrors "notary/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mocks.go -package=mocks Service

// Service is the ledger operation surface the transport depends on.
type Service interface {
	Initialize(ctx context.Context, admin models.Address) error
	CreateDocument(ctx context.Context, caller models.Address, hash models.Hash, title string, signers []models.Address, metadata map[string]string) error
	AddVersion(ctx context.Context, caller models.Address, documentHash, versionHash models.Hash, title string, metadata map[string]string) error
	SignDocument(ctx context.Context, caller models.Address, documentHash models.Hash, sig models.Signature) error
	UpdateStatus(ctx context.Context, caller models.Address, documentHash models.Hash, status models.DocumentStatus) error
	VerifyDocument(ctx context.Context, documentHash models.Hash) (*models.Document, error)
	UserDocuments(ctx context.Context, user models.Address) ([]models.Hash, error)
	RegisterAuthority(ctx context.Context, caller, authority models.Address) error
	AddClaim(ctx context.Context, caller, user models.Address, claim models.IdentityClaim) error
	Config(ctx context.Context, key string) (string, error)
	UpdateConfig(ctx context.Context, caller models.Address, key, value string) error
}

// writeRateLimit caps ledger writes per caller per minute.
const writeRateLimit = 120

// Handler handles the ledger's HTTP endpoints.
type Handler struct {
	logger    *slog.Logger
	service   Service
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
	limiter   *middleware.RateLimiter
}

// New creates a Handler.
func New(service Service, logger *slog.Logger, m *metrics.Metrics, validator middleware.TokenValidator) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		metrics:   m,
		validator: validator,
		limiter:   middleware.NewRateLimiter(writeRateLimit, time.Minute),
	}
}

// Router wires all endpoints with the shared middleware chain. Reads are
// open to any caller; writes require an authenticated caller address.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	if h.metrics != nil {
		r.Use(middleware.Latency(h.metrics))
	}

	r.Get("/healthz", h.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Get("/documents/{hash}", h.handleVerifyDocument)
		r.Get("/users/{address}/documents", h.handleUserDocuments)
		r.Get("/config/{key}", h.handleGetConfig)

		// One-time bootstrap; a second call fails with AlreadyExists, so
		// this stays open.
		r.Post("/admin/initialize", h.handleInitialize)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(h.validator, h.logger))
			r.Use(h.limiter.Limit)
			r.Post("/documents", h.handleCreateDocument)
			r.Post("/documents/{hash}/versions", h.handleAddVersion)
			r.Post("/documents/{hash}/signatures", h.handleSignDocument)
			r.Put("/documents/{hash}/status", h.handleUpdateStatus)
			r.Post("/authorities", h.handleRegisterAuthority)
			r.Post("/users/{address}/claims", h.handleAddClaim)
			r.Put("/config/{key}", h.handleUpdateConfig)
		})
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	var req InitializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	admin, err := models.ParseAddress(req.Admin)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	if err := h.service.Initialize(r.Context(), admin); err != nil {
		h.logError(r.Context(), "initialize failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	hash, err := models.ParseHash(req.Hash)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	signers := make([]models.Address, 0, len(req.Signers))
	for _, s := range req.Signers {
		signer, err := models.ParseAddress(s)
		if err != nil {
			writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
			return
		}
		signers = append(signers, signer)
	}
	if err := h.service.CreateDocument(r.Context(), caller, hash, req.Title, signers, req.Metadata); err != nil {
		h.logError(r.Context(), "create document failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(HashResponse{Hash: hash.String()})
}

func (h *Handler) handleAddVersion(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	docHash, err := models.ParseHash(chi.URLParam(r, "hash"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	var req AddVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	versionHash, err := models.ParseHash(req.Hash)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	if err := h.service.AddVersion(r.Context(), caller, docHash, versionHash, req.Title, req.Metadata); err != nil {
		h.logError(r.Context(), "add version failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(HashResponse{Hash: versionHash.String()})
}

func (h *Handler) handleSignDocument(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	docHash, err := models.ParseHash(chi.URLParam(r, "hash"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	var req SignDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	sigData, err := models.ParseSignatureData(req.SignatureData)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	var claimRef models.Hash
	if req.ClaimReference != "" {
		claimRef, err = models.ParseHash(req.ClaimReference)
		if err != nil {
			writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
			return
		}
	}
	// The authenticated caller is the signer; a token holder cannot record
	// signatures on someone else's behalf.
	sig := models.Signature{
		Signer:         caller,
		Timestamp:      time.Now(),
		SignatureData:  sigData,
		ClaimReference: claimRef,
	}
	if err := h.service.SignDocument(r.Context(), caller, docHash, sig); err != nil {
		h.logError(r.Context(), "sign document failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	docHash, err := models.ParseHash(chi.URLParam(r, "hash"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	status, err := models.ParseDocumentStatus(req.Status)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidStatus, err.Error()))
		return
	}
	if err := h.service.UpdateStatus(r.Context(), caller, docHash, status); err != nil {
		h.logError(r.Context(), "update status failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleVerifyDocument(w http.ResponseWriter, r *http.Request) {
	docHash, err := models.ParseHash(chi.URLParam(r, "hash"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	doc, err := h.service.VerifyDocument(r.Context(), docHash)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(doc)
}

func (h *Handler) handleUserDocuments(w http.ResponseWriter, r *http.Request) {
	user, err := models.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	hashes, err := h.service.UserDocuments(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := UserDocumentsResponse{Documents: make([]string, 0, len(hashes))}
	for _, hash := range hashes {
		resp.Documents = append(resp.Documents, hash.String())
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleRegisterAuthority(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req RegisterAuthorityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	authority, err := models.ParseAddress(req.Authority)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	if err := h.service.RegisterAuthority(r.Context(), caller, authority); err != nil {
		h.logError(r.Context(), "register authority failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddClaim(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	user, err := models.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	var req AddClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	claimValue, err := models.ParseHash(req.ClaimValue)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	attestation, err := models.ParseSignatureData(req.Signature)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return
	}
	claim := models.IdentityClaim{
		Authority:  caller,
		ClaimType:  req.ClaimType,
		ClaimValue: claimValue,
		Signature:  attestation,
		IssuedAt:   time.Now(),
		ExpiresAt:  req.ExpiresAt,
		Metadata:   req.Metadata,
	}
	if err := h.service.AddClaim(r.Context(), caller, user, claim); err != nil {
		h.logError(r.Context(), "add claim failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, err := h.service.Config(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(ConfigResponse{Key: key, Value: value})
}

func (h *Handler) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")
	var req UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if err := h.service.UpdateConfig(r.Context(), caller, key, req.Value); err != nil {
		h.logError(r.Context(), "update config failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// caller pulls the authenticated address set by RequireAuth. Missing means
// the middleware chain is miswired, which should never reach production.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (models.Address, bool) {
	raw := middleware.GetCaller(r.Context())
	if raw == "" {
		h.logger.ErrorContext(r.Context(), "caller missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(r.Context()),
		)
		writeError(w, dErrors.New(dErrors.CodeOperationFailed, "authentication context error"))
		return "", false
	}
	return models.Address(raw), true
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeOperationFailed {
		h.logger.ErrorContext(ctx, msg,
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		return
	}
	h.logger.WarnContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"code", string(code),
	)
}

// writeError centralizes domain error translation so every endpoint sends
// the same JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(dErrors.ToHTTPStatus(code))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": string(code),
	})
}
