package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notary/internal/notary/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEventConstructors(t *testing.T) {
	hash, err := models.ParseHash(strings.Repeat("44", 32))
	require.NoError(t, err)

	created := DocumentCreated(hash)
	assert.Equal(t, TopicDocs, created.Topic)
	assert.Equal(t, TypeDocumentCreated, created.Type)
	assert.Equal(t, hash, created.Hash)

	signed := DocumentSigned(hash)
	assert.Equal(t, TypeDocumentSigned, signed.Type)
	assert.Equal(t, hash, signed.Hash)

	changed := StatusChanged(hash, models.DocumentRevoked)
	assert.Equal(t, models.DocumentRevoked, changed.Status)

	claim := ClaimAdded("user")
	assert.Equal(t, TopicAuth, claim.Topic)
	assert.Equal(t, models.Address("user"), claim.Address)

	authority := AuthorityAdded("authority")
	assert.Equal(t, TopicAuth, authority.Topic)
	assert.Equal(t, TypeAuthorityAdded, authority.Type)
}

func TestPublisherWorkerDeliversToSink(t *testing.T) {
	sink := NewMemorySink()
	publisher := NewPublisher(discardLogger(), 8)
	worker := NewWorker(discardLogger(), sink, publisher.Inbox())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	hash, err := models.ParseHash(strings.Repeat("55", 32))
	require.NoError(t, err)
	require.NoError(t, publisher.Emit(ctx, DocumentCreated(hash)))
	require.NoError(t, publisher.Emit(ctx, AuthorityAdded("authority")))

	require.Eventually(t, func() bool {
		return len(sink.Events()) == 2
	}, time.Second, 10*time.Millisecond)

	emitted := sink.Events()
	assert.Equal(t, TypeDocumentCreated, emitted[0].Type)
	assert.NotEmpty(t, emitted[0].ID)
	assert.False(t, emitted[0].Timestamp.IsZero())
	assert.Equal(t, TypeAuthorityAdded, emitted[1].Type)

	cancel()
	<-done
}

type failingSink struct {
	mu    sync.Mutex
	calls int
}

func (s *failingSink) Emit(context.Context, Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return errors.New("broker down")
}

func (s *failingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestWorkerKeepsRunningOnSinkFailure(t *testing.T) {
	sink := &failingSink{}
	publisher := NewPublisher(discardLogger(), 8)
	worker := NewWorker(discardLogger(), sink, publisher.Inbox())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	require.NoError(t, publisher.Emit(ctx, ClaimAdded("user")))
	require.NoError(t, publisher.Emit(ctx, ClaimAdded("other")))

	require.Eventually(t, func() bool {
		return sink.count() == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
