// Package dataloader provides per-request DataLoaders that batch the
// church and org-unit lookups needed to expand member listings into
// single SQL calls. Loaders call repositories directly, bypassing the
// service layer; the member rows being expanded were already scoped.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type orgUnitRepo interface {
	GetOrgUnitsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.OrgUnit, error)
}

type churchRepo interface {
	GetChurchesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Church, error)
}

// Repos holds the repositories required by DataLoaders.
type Repos struct {
	OrgUnit orgUnitRepo
	Church  churchRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	OrgUnitByID *dataloader.Loader[uuid.UUID, *domain.OrgUnit]
	ChurchByID  *dataloader.Loader[uuid.UUID, *domain.Church]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		OrgUnitByID: newLoader(newOrgUnitBatchFn(repos.OrgUnit)),
		ChurchByID:  newLoader(newChurchBatchFn(repos.Church)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
