package rest

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
	"github.com/heartmarshall/verbnet-reader/internal/service/verbnet"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type classResolver interface {
	ResolveClasses(ctx context.Context, ids []string) []verbnet.Resolved
}

// newClassLoader creates a loader that groups class lookups so that each
// owning document is opened once per batch. Must be created per request.
func newClassLoader(svc classResolver) *dataloader.Loader[string, *domain.ClassNode] {
	return dataloader.NewBatchedLoader(
		newClassBatchFn(svc),
		dataloader.WithWait[string, *domain.ClassNode](wait),
		dataloader.WithBatchCapacity[string, *domain.ClassNode](maxBatch),
	)
}

func newClassBatchFn(svc classResolver) dataloader.BatchFunc[string, *domain.ClassNode] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.ClassNode] {
		resolved := svc.ResolveClasses(ctx, keys)

		results := make([]*dataloader.Result[*domain.ClassNode], len(keys))
		for i := range keys {
			results[i] = &dataloader.Result[*domain.ClassNode]{Data: resolved[i].Node, Error: resolved[i].Err}
		}
		return results
	}
}

// loadClasses resolves ids through a fresh loader. Results are aligned
// with ids.
func loadClasses(ctx context.Context, svc classResolver, ids []string) []verbnet.Resolved {
	loader := newClassLoader(svc)

	thunks := make([]dataloader.Thunk[*domain.ClassNode], len(ids))
	for i, id := range ids {
		thunks[i] = loader.Load(ctx, id)
	}

	out := make([]verbnet.Resolved, len(ids))
	for i, thunk := range thunks {
		out[i].Node, out[i].Err = thunk()
	}
	return out
}
