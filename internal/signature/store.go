package signature

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-signature-bot/internal/platform/observability"
)

// Repository is the durable backing store for signatures.
type Repository interface {
	LoadSignatures(ctx context.Context) (map[string]string, error)
	SaveSignature(ctx context.Context, channelID, signature string) error
	DeleteSignature(ctx context.Context, channelID string) error
}

// Store keeps the in-memory mirror of configured signatures in sync with the
// durable repository. The repository is authoritative: every mutation is
// written there first, and the mirror is only updated after the write
// succeeds.
type Store struct {
	repo   Repository
	logger *zerolog.Logger

	mu    sync.RWMutex
	cache map[string]string
}

func NewStore(repo Repository, logger *zerolog.Logger) *Store {
	return &Store{
		repo:   repo,
		logger: logger,
		cache:  make(map[string]string),
	}
}

// Load populates the mirror from the repository. Called once at startup; a
// failure here must abort the process, since serving without previously
// configured signatures would silently disable signing for existing channels.
func (s *Store) Load(ctx context.Context) error {
	signatures, err := s.repo.LoadSignatures(ctx)
	if err != nil {
		return fmt.Errorf("load signatures: %w", err)
	}

	s.mu.Lock()
	s.cache = signatures
	s.mu.Unlock()

	observability.SignaturesConfigured.Set(float64(len(signatures)))
	s.logger.Info().Int("count", len(signatures)).Msg("Loaded channel signatures")

	return nil
}

// Get returns the configured signature for a channel, if any.
func (s *Store) Get(channelID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sig, ok := s.cache[channelID]

	return sig, ok
}

// Set creates or overwrites a channel's signature.
func (s *Store) Set(ctx context.Context, channelID, sig string) error {
	if err := s.repo.SaveSignature(ctx, channelID, sig); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[channelID] = sig
	size := len(s.cache)
	s.mu.Unlock()

	observability.SignaturesConfigured.Set(float64(size))
	s.logger.Info().Str("channel_id", channelID).Msg("Saved signature")

	return nil
}

// Remove deletes a channel's signature. Removing an absent entry is not an
// error.
func (s *Store) Remove(ctx context.Context, channelID string) error {
	if err := s.repo.DeleteSignature(ctx, channelID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.cache, channelID)
	size := len(s.cache)
	s.mu.Unlock()

	observability.SignaturesConfigured.Set(float64(size))
	s.logger.Info().Str("channel_id", channelID).Msg("Removed signature")

	return nil
}
