// Package service implements the notary ledger engine: document lifecycle,
// signature quorum tracking, the authority and claims registry, and the
// admin-gated settings layer, all over one shared aggregate record.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"notary/internal/events"
	"notary/internal/notary/models"
	"notary/internal/notary/store"
	"notary/internal/platform/metrics"
	dErrors "notary/pkg/domain-errors"
)

// Reserved settings keys. The engine stores them as opaque strings and does
// not validate values against them.
const (
	SettingMaxSigners     = "MAX_SIGN"
	SettingMinSigners     = "MIN_SIGN"
	SettingExpiryDays     = "EXP_DAYS"
	SettingFeeAmount      = "FEE_AMT"
	SettingVersionRequire = "VER_REQ"
)

// Service is the ledger engine. Every public operation is one atomic
// transaction over the whole aggregate: load snapshot, mutate a copy, write
// it back, then emit events. The mutex keeps operations strictly one at a
// time; a failure before Save leaves state untouched.
type Service struct {
	mu      sync.Mutex
	store   store.Store
	emitter events.Emitter
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates the ledger engine over a record store and an event emitter.
func New(st store.Store, emitter events.Emitter, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:   st,
		emitter: emitter,
		logger:  logger,
		tracer:  otel.Tracer("notary/service"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize sets the ledger admin. One-time: a second call fails with
// AlreadyExists and leaves the original admin in place.
func (s *Service) Initialize(ctx context.Context, admin models.Address) error {
	return s.instrument(ctx, "initialize", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		initialized, err := s.store.Initialized(ctx)
		if err != nil {
			return dErrors.Wrap(dErrors.CodeOperationFailed, "check ledger state", err)
		}
		if initialized {
			return dErrors.New(dErrors.CodeAlreadyExists, "ledger already initialized")
		}
		if err := s.store.Save(ctx, models.NewState(admin)); err != nil {
			return dErrors.Wrap(dErrors.CodeOperationFailed, "save ledger state", err)
		}
		s.logger.InfoContext(ctx, "ledger initialized", "admin", admin.String())
		return nil
	})
}

// CreateDocument records a new document under its content hash, wrapping a
// root version that awaits approval from the given signers.
func (s *Service) CreateDocument(
	ctx context.Context,
	caller models.Address,
	hash models.Hash,
	title string,
	signers []models.Address,
	metadata map[string]string,
) error {
	return s.instrument(ctx, "create_document", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		if _, ok := state.Documents[hash]; ok {
			return dErrors.New(dErrors.CodeAlreadyExists, "document already recorded")
		}

		now := s.now()
		version := models.DocumentVersion{
			Hash:            hash,
			ParentHash:      models.ZeroHash,
			Title:           title,
			Status:          models.VersionPendingApproval,
			Creator:         caller,
			CreatedAt:       now,
			UpdatedAt:       now,
			RequiredSigners: signers,
			Metadata:        metadata,
		}
		state.Documents[hash] = models.Document{
			Hash:              hash,
			Status:            models.DocumentPending,
			Owner:             caller,
			CreatedAt:         now,
			UpdatedAt:         now,
			CurrentVersion:    0,
			Versions:          []models.DocumentVersion{version},
			AuthorizedSigners: signers,
			Metadata:          metadata,
		}
		// No duplicate check on the creator's list; document uniqueness is
		// enforced by the hash key above.
		state.UserDocuments[caller] = append(state.UserDocuments[caller], hash)

		if err := s.save(ctx, state); err != nil {
			return err
		}
		if s.metrics != nil {
			s.metrics.DocumentsCreated.Inc()
		}
		s.emit(ctx, events.DocumentCreated(hash))
		s.logger.InfoContext(ctx, "document created",
			"hash", hash.String(),
			"owner", caller.String(),
			"signers", len(signers),
		)
		return nil
	})
}

// AddVersion appends a new draft version and makes it current. The new
// version's parent is the document root, not the previous version, and its
// required-signer list is a frozen snapshot of the document's current
// authorized signers.
func (s *Service) AddVersion(
	ctx context.Context,
	caller models.Address,
	documentHash models.Hash,
	versionHash models.Hash,
	title string,
	metadata map[string]string,
) error {
	return s.instrument(ctx, "add_version", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		document, ok := state.Documents[documentHash]
		if !ok {
			return dErrors.New(dErrors.CodeNotFound, "document not found")
		}
		if !document.Authorized(caller) {
			return dErrors.New(dErrors.CodeUnauthorized, "caller may not modify this document")
		}

		now := s.now()
		version := models.DocumentVersion{
			Hash:            versionHash,
			ParentHash:      documentHash,
			Title:           title,
			Status:          models.VersionDraft,
			Creator:         caller,
			CreatedAt:       now,
			UpdatedAt:       now,
			RequiredSigners: append([]models.Address{}, document.AuthorizedSigners...),
			Metadata:        metadata,
		}
		document.Versions = append(document.Versions, version)
		document.CurrentVersion = len(document.Versions) - 1
		document.UpdatedAt = now
		state.Documents[documentHash] = document

		if err := s.save(ctx, state); err != nil {
			return err
		}
		if s.metrics != nil {
			s.metrics.VersionsAdded.Inc()
		}
		s.emit(ctx, events.VersionAdded(versionHash))
		s.logger.InfoContext(ctx, "version added",
			"document", documentHash.String(),
			"version", versionHash.String(),
			"index", document.CurrentVersion,
		)
		return nil
	})
}

// SignDocument records one signer's signature on the document's current
// version. Authorization is checked against the document's live signer
// list; quorum counts against the version's frozen snapshot. When the
// counts meet, the version becomes approved and the document active in the
// same write.
func (s *Service) SignDocument(
	ctx context.Context,
	caller models.Address,
	documentHash models.Hash,
	sig models.Signature,
) error {
	return s.instrument(ctx, "sign_document", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		document, ok := state.Documents[documentHash]
		if !ok {
			return dErrors.New(dErrors.CodeNotFound, "document not found")
		}
		if !document.SignerAuthorized(caller) {
			return dErrors.New(dErrors.CodeUnauthorized, "caller is not an authorized signer")
		}

		version := document.Current()
		if version.Signed(sig.Signer) {
			return dErrors.New(dErrors.CodeAlreadyExists, "signer already signed this version")
		}

		now := s.now()
		version.Signatures = append(version.Signatures, sig)
		version.UpdatedAt = now

		quorum := version.QuorumMet()
		if quorum {
			version.Status = models.VersionApproved
			document.Status = models.DocumentActive
		}
		document.UpdatedAt = now
		state.Documents[documentHash] = document

		if err := s.save(ctx, state); err != nil {
			return err
		}
		if s.metrics != nil {
			s.metrics.SignaturesRecorded.Inc()
			if quorum {
				s.metrics.QuorumsReached.Inc()
			}
		}
		s.emit(ctx, events.DocumentSigned(documentHash))
		s.logger.InfoContext(ctx, "document signed",
			"document", documentHash.String(),
			"signer", sig.Signer.String(),
			"signatures", len(version.Signatures),
			"required", len(version.RequiredSigners),
			"quorum", quorum,
		)
		return nil
	})
}

// RegisterAuthority adds an identity to the trusted-authority set. Admin
// only. Re-registering is a no-op: no error, no second event.
func (s *Service) RegisterAuthority(ctx context.Context, caller, authority models.Address) error {
	return s.instrument(ctx, "register_authority", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		if caller != state.Admin {
			return dErrors.New(dErrors.CodeUnauthorized, "only the admin may register authorities")
		}
		if state.IsAuthority(authority) {
			return nil
		}

		state.Authorities = append(state.Authorities, authority)
		if err := s.save(ctx, state); err != nil {
			return err
		}
		if s.metrics != nil {
			s.metrics.AuthoritiesRegistered.Inc()
		}
		s.emit(ctx, events.AuthorityAdded(authority))
		s.logger.InfoContext(ctx, "authority registered", "authority", authority.String())
		return nil
	})
}

// AddClaim appends an identity claim to the user's list. The caller must
// itself be a registered authority and the claim must not already be
// expired. Claims are retained indefinitely; expiry is never re-checked.
func (s *Service) AddClaim(
	ctx context.Context,
	caller models.Address,
	user models.Address,
	claim models.IdentityClaim,
) error {
	return s.instrument(ctx, "add_claim", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		if !state.IsAuthority(caller) {
			return dErrors.New(dErrors.CodeInvalidAuthority, "caller is not a registered authority")
		}
		// expires_at must be strictly in the future.
		if !claim.ExpiresAt.After(s.now()) {
			return dErrors.New(dErrors.CodeExpiredClaim, "claim is already expired")
		}

		state.Claims[user] = append(state.Claims[user], claim)
		if err := s.save(ctx, state); err != nil {
			return err
		}
		if s.metrics != nil {
			s.metrics.ClaimsIssued.Inc()
		}
		s.emit(ctx, events.ClaimAdded(user))
		s.logger.InfoContext(ctx, "claim added",
			"user", user.String(),
			"authority", caller.String(),
			"claim_type", claim.ClaimType,
		)
		return nil
	})
}

// VerifyDocument returns the full document record for a hash.
func (s *Service) VerifyDocument(ctx context.Context, documentHash models.Hash) (*models.Document, error) {
	var document *models.Document
	err := s.instrument(ctx, "verify_document", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		found, ok := state.Documents[documentHash]
		if !ok {
			return dErrors.New(dErrors.CodeNotFound, "document not found")
		}
		document = &found
		return nil
	})
	return document, err
}

// UserDocuments lists the hashes recorded under a user. Never an error for
// unknown users; the list is simply empty.
func (s *Service) UserDocuments(ctx context.Context, user models.Address) ([]models.Hash, error) {
	var hashes []models.Hash
	err := s.instrument(ctx, "get_user_documents", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		hashes = append([]models.Hash{}, state.UserDocuments[user]...)
		return nil
	})
	return hashes, err
}

// UpdateStatus overwrites the document status. Owner only. There is no
// transition graph: any status may move to any other.
func (s *Service) UpdateStatus(
	ctx context.Context,
	caller models.Address,
	documentHash models.Hash,
	status models.DocumentStatus,
) error {
	return s.instrument(ctx, "update_status", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		document, ok := state.Documents[documentHash]
		if !ok {
			return dErrors.New(dErrors.CodeNotFound, "document not found")
		}
		if caller != document.Owner {
			return dErrors.New(dErrors.CodeUnauthorized, "only the owner may update status")
		}

		document.Status = status
		document.UpdatedAt = s.now()
		state.Documents[documentHash] = document

		if err := s.save(ctx, state); err != nil {
			return err
		}
		s.emit(ctx, events.StatusChanged(documentHash, status))
		s.logger.InfoContext(ctx, "status changed",
			"document", documentHash.String(),
			"status", status.String(),
		)
		return nil
	})
}

// Config reads one settings value.
func (s *Service) Config(ctx context.Context, key string) (string, error) {
	var value string
	err := s.instrument(ctx, "get_config", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		found, ok := state.Settings[key]
		if !ok {
			return dErrors.New(dErrors.CodeNotFound, "config key not set")
		}
		value = found
		return nil
	})
	return value, err
}

// UpdateConfig writes one settings value. Admin only. Values are opaque
// strings; no schema is enforced, and no event is emitted.
func (s *Service) UpdateConfig(ctx context.Context, caller models.Address, key, value string) error {
	return s.instrument(ctx, "update_config", func(ctx context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		state, err := s.load(ctx)
		if err != nil {
			return err
		}
		if caller != state.Admin {
			return dErrors.New(dErrors.CodeUnauthorized, "only the admin may update config")
		}

		state.Settings[key] = value
		if err := s.save(ctx, state); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "config updated", "key", key)
		return nil
	})
}

func (s *Service) load(ctx context.Context) (*models.State, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeOperationFailed, "load ledger state", err)
	}
	return state, nil
}

func (s *Service) save(ctx context.Context, state *models.State) error {
	if err := s.store.Save(ctx, state); err != nil {
		return dErrors.Wrap(dErrors.CodeOperationFailed, "save ledger state", err)
	}
	return nil
}

// emit delivers an event after a successful write. Delivery failures are
// logged, never surfaced: observers are advisory.
func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "event emit failed",
			"type", string(event.Type),
			"error", err,
		)
	}
}

func (s *Service) instrument(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, operation)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	s.metrics.ObserveOperation(operation, time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		s.metrics.IncError(operation, string(dErrors.CodeOf(err)))
	}
	return err
}
