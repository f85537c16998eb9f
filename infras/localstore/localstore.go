package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"studyspot/config"
	"studyspot/infras/otel"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	otelScopeName       = "localstore"
	otelStoreKeyAttr    = "store.key"
	recordFileExtension = ".json"
	storeDirPermission  = 0o755
)

// ErrKeyNotFound is returned by Get when no record exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence port of the application: independent text-encoded
// records addressed by key, each overwritten wholesale on every mutation.
// There are no partial or merge updates; the last write wins.
type Store interface {
	Get(ctx context.Context, key string, value any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

type fileStore struct {
	dir  string
	mu   sync.Mutex
	otel otel.Otel
}

// New returns a file-backed Store keeping one JSON file per key under the
// configured storage directory.
func New(cfg *config.Config, ot otel.Otel) Store {
	if err := os.MkdirAll(cfg.Storage.Dir, storeDirPermission); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.Dir).Msg("Failed to create storage directory")
	}

	log.Info().Str("dir", cfg.Storage.Dir).Msg("Local store initialized")

	return &fileStore{
		dir:  cfg.Storage.Dir,
		otel: ot,
	}
}

// Get implements Store.
func (s *fileStore) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelStoreKeyAttr, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.recordPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrKeyNotFound
		}

		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to read store record")

		return fmt.Errorf("failed to read store record: %w", err)
	}

	if err = json.Unmarshal(raw, value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal store record")

		return fmt.Errorf("failed to unmarshal store record: %w", err)
	}

	return nil
}

// Set implements Store. The record is replaced atomically via a temp file
// rename so a crash mid-write never leaves a truncated record behind.
func (s *fileStore) Set(ctx context.Context, key string, value any) (err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelStoreKeyAttr, key)

	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal store record")

		return fmt.Errorf("failed to marshal store record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to create temp record")

		return fmt.Errorf("failed to create temp record: %w", err)
	}

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("key", key).Msg("failed to write store record")

		return fmt.Errorf("failed to write store record: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to close temp record: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.recordPath(key)); err != nil {
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("key", key).Msg("failed to replace store record")

		return fmt.Errorf("failed to replace store record: %w", err)
	}

	return nil
}

// Delete implements Store. Deleting an absent key is not an error.
func (s *fileStore) Delete(ctx context.Context, key string) (err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelStoreKeyAttr, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = os.Remove(s.recordPath(key)); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("key", key).Msg("failed to delete store record")

		return fmt.Errorf("failed to delete store record: %w", err)
	}

	return nil
}

func (s *fileStore) recordPath(key string) string {
	return filepath.Join(s.dir, key+recordFileExtension)
}
