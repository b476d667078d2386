package resource

import (
	"context"
	"errors"
	"log/slog"
)

// Mutation describes one write against the external API.
type Mutation struct {
	Kind Kind
	// ID is the target entity; empty for creates.
	ID string
	// Validate runs before any network call. A non-nil result aborts the
	// mutation and is returned as a *ValidationError.
	Validate func() error
	// Remote performs the write.
	Remote func(ctx context.Context) error
}

// Coordinator runs mutations and reloads the cache after each success.
type Coordinator[T any] struct {
	cache  *Cache[T]
	locks  *KeyedMutex
	logger *slog.Logger
}

func NewCoordinator[T any](cache *Cache[T], logger *slog.Logger) *Coordinator[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator[T]{
		cache:  cache,
		locks:  NewKeyedMutex(),
		logger: logger.With("resource", cache.Name()),
	}
}

// Cache returns the cache this coordinator reconciles.
func (c *Coordinator[T]) Cache() *Cache[T] { return c.cache }

// Apply validates m, sends it, and reloads the cache once it succeeded.
// Writes to the same ID are serialized. A failed write leaves the cache as
// it was. If the write succeeds but the reload fails, the *FetchError is
// returned.
func (c *Coordinator[T]) Apply(ctx context.Context, m Mutation) error {
	if m.Validate != nil {
		if err := m.Validate(); err != nil {
			return asValidationError(err)
		}
	}

	if err := c.send(ctx, m); err != nil {
		c.logger.Warn("mutation failed", "kind", m.Kind, "id", m.ID, "error", err)
		return &MutationError{Kind: m.Kind, Resource: c.cache.Name(), ID: m.ID, Err: err}
	}

	if _, err := c.cache.Load(ctx); err != nil {
		c.logger.Warn("reload after mutation failed", "kind", m.Kind, "id", m.ID, "error", err)
		return err
	}
	c.logger.Debug("mutation reconciled", "kind", m.Kind, "id", m.ID, "version", c.cache.Version())
	return nil
}

func (c *Coordinator[T]) send(ctx context.Context, m Mutation) error {
	if m.ID != "" {
		unlock := c.locks.Lock(m.ID)
		defer unlock()
	}
	return m.Remote(ctx)
}

func asValidationError(err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return &ValidationError{Err: err}
}
