// Package store is the persistent JSON store every repository reads and
// writes through. Values live as JSON blobs under namespaced keys in a
// kv.Backend; every Write notifies local subscribers and, when a change feed
// is attached, the other stores sharing the backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nexus-os/office-backend/internal/pkg/changefeed"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
)

const DefaultNamespace = "nexus_"

type Store struct {
	backend   kv.Backend
	namespace string
	origin    string
	feed      changefeed.Feed
	logger    *slog.Logger
	notifier  *Notifier

	// serialises Mutate within this process
	mu sync.Mutex
}

type Option func(*Store)

func WithNamespace(ns string) Option {
	return func(s *Store) { s.namespace = ns }
}

func WithFeed(feed changefeed.Feed) Option {
	return func(s *Store) { s.feed = feed }
}

// WithOrigin fixes the id this store publishes under. Feeds that need the id
// before the store exists (kafka consumer groups) share it this way.
func WithOrigin(origin string) Option {
	return func(s *Store) { s.origin = origin }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func New(backend kv.Backend, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		namespace: DefaultNamespace,
		origin:    uuid.NewString(),
		feed:      changefeed.Noop{},
		logger:    slog.Default(),
		notifier:  NewNotifier(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Origin identifies this store on the change feed.
func (s *Store) Origin() string { return s.origin }

func (s *Store) Namespace() string { return s.namespace }

// Subscribe registers fn with the change notifier.
func (s *Store) Subscribe(fn func()) func() {
	return s.notifier.Subscribe(fn)
}

func (s *Store) key(k string) string {
	return s.namespace + k
}

// Read returns the value stored at key. When nothing is stored yet, def is
// persisted without notifying and returned.
func Read[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	raw, err := s.backend.Get(ctx, s.key(key))
	if errors.Is(err, kv.ErrNotFound) {
		if err := s.put(ctx, key, def); err != nil {
			return def, err
		}
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("read %s: %w", key, err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def, fmt.Errorf("decode %s: %w", key, err)
	}
	return value, nil
}

// ReadMergeByID reads a list and appends every entry of def whose id is not
// already stored. When anything was appended the merged list is persisted
// without notifying.
func ReadMergeByID[T any](ctx context.Context, s *Store, key string, def []T, id func(T) string) ([]T, error) {
	stored, err := Read(ctx, s, key, def)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(stored))
	for _, item := range stored {
		seen[id(item)] = struct{}{}
	}

	merged := stored
	added := 0
	for _, item := range def {
		if _, ok := seen[id(item)]; ok {
			continue
		}
		merged = append(merged, item)
		added++
	}

	if added > 0 {
		if err := s.put(ctx, key, merged); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// Write replaces the value at key, then notifies subscribers and the feed.
func (s *Store) Write(ctx context.Context, key string, value any) error {
	if err := s.put(ctx, key, value); err != nil {
		return err
	}
	s.changed(ctx, s.key(key))
	return nil
}

func (s *Store) put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Put(ctx, s.key(key), raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) changed(ctx context.Context, fullKey string) {
	s.notifier.Notify()

	// the write already happened; a lost signal only delays other stores
	if err := s.feed.Publish(ctx, changefeed.Change{Key: fullKey, Origin: s.origin}); err != nil {
		s.logger.Error("publish change", "key", fullKey, "error", err)
	}
}

// Mutator is the part of Store that services need to group a
// read-modify-write.
type Mutator interface {
	Mutate(ctx context.Context, fn func(ctx context.Context) error) error
}

type mutationKey struct{ s *Store }

// Mutate runs fn while holding the store's mutation lock. Nested Mutate
// calls made with the ctx handed to fn run inline.
func (s *Store) Mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(mutationKey{s}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, mutationKey{s}, true))
}

// Reset deletes every key in the namespace and notifies once.
func (s *Store) Reset(ctx context.Context) error {
	return s.Mutate(ctx, func(ctx context.Context) error {
		keys, err := s.backend.Keys(ctx, s.namespace)
		if err != nil {
			return fmt.Errorf("list keys: %w", err)
		}
		for _, k := range keys {
			if err := s.backend.Delete(ctx, k); err != nil {
				return fmt.Errorf("delete %s: %w", k, err)
			}
		}
		s.logger.Info("store reset", "namespace", s.namespace, "keys", len(keys))
		s.changed(ctx, s.namespace)
		return nil
	})
}

// Listen consumes the change feed until ctx is done. Changes from other
// stores inside this namespace notify local subscribers.
func (s *Store) Listen(ctx context.Context) error {
	err := s.feed.Listen(ctx, func(c changefeed.Change) {
		if c.Origin == s.origin || !strings.HasPrefix(c.Key, s.namespace) {
			return
		}
		s.logger.Debug("external change", "key", c.Key, "origin", c.Origin)
		s.notifier.Notify()
	})
	if err != nil {
		return fmt.Errorf("listen for changes: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if err := s.feed.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.backend.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
