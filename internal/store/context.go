package store

import "context"

type ctxKey struct{}

// NewContext returns a child context that carries s. Screens built from
// that context share the same store.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the store carried by ctx, if any
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok && s != nil
}

// MustFromContext is like FromContext but panics when ctx carries no store.
// Reaching for the store outside its scope is a programming error.
func MustFromContext(ctx context.Context) *Store {
	s, ok := FromContext(ctx)
	if !ok {
		panic("store: MustFromContext called outside a store scope (missing store.NewContext)")
	}
	return s
}
