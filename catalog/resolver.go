package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no resolver knows the requested id.
var ErrNotFound = errors.New("title not found")

// Resolver looks up a content id.
type Resolver interface {
	Resolve(ctx context.Context, id string) (Record, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, id string) (Record, error)

func (f ResolverFunc) Resolve(ctx context.Context, id string) (Record, error) {
	return f(ctx, id)
}

// Chain tries each resolver in order and returns the first record found.
// When every resolver fails the individual errors are joined.
func Chain(resolvers ...Resolver) Resolver {
	return ResolverFunc(func(ctx context.Context, id string) (Record, error) {
		id = strings.TrimSpace(id)
		if id == "" {
			return Record{}, fmt.Errorf("empty id: %w", ErrNotFound)
		}

		var errs []error
		for _, r := range resolvers {
			record, err := r.Resolve(ctx, id)
			if err == nil {
				return record, nil
			}
			errs = append(errs, err)

			if ctx.Err() != nil {
				break
			}
		}

		return Record{}, errors.Join(errs...)
	})
}
