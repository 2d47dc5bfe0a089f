package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

func newOrgUnitBatchFn(repo orgUnitRepo) dataloader.BatchFunc[uuid.UUID, *domain.OrgUnit] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.OrgUnit] {
		units, err := repo.GetOrgUnitsByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.OrgUnit](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.OrgUnit, len(units))
		for i := range units {
			byID[units[i].ID] = &units[i]
		}

		return mapResults(keys, byID, nilValue[*domain.OrgUnit])
	}
}

func newChurchBatchFn(repo churchRepo) dataloader.BatchFunc[uuid.UUID, *domain.Church] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Church] {
		churches, err := repo.GetChurchesByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Church](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Church, len(churches))
		for i := range churches {
			byID[churches[i].ID] = &churches[i]
		}

		return mapResults(keys, byID, nilValue[*domain.Church])
	}
}

// ExpandMembers fills Church, Cell, Group and Department on every member.
// All thunks are requested before any is awaited so each relation type is
// fetched in one batch.
func (l *Loaders) ExpandMembers(ctx context.Context, members []domain.Member) error {
	type pending struct {
		church            dataloader.Thunk[*domain.Church]
		cell, group, dept dataloader.Thunk[*domain.OrgUnit]
	}

	thunks := make([]pending, len(members))
	for i, m := range members {
		thunks[i].church = l.ChurchByID.Load(ctx, m.ChurchID)
		thunks[i].cell = l.loadOrgUnit(ctx, m.CellID)
		thunks[i].group = l.loadOrgUnit(ctx, m.GroupID)
		thunks[i].dept = l.loadOrgUnit(ctx, m.DepartmentID)
	}

	for i := range members {
		var err error
		m := &members[i]
		if m.Church, err = thunks[i].church(); err != nil {
			return fmt.Errorf("load church %s: %w", m.ChurchID, err)
		}
		if m.Cell, err = thunks[i].cell(); err != nil {
			return fmt.Errorf("load cell: %w", err)
		}
		if m.Group, err = thunks[i].group(); err != nil {
			return fmt.Errorf("load group: %w", err)
		}
		if m.Department, err = thunks[i].dept(); err != nil {
			return fmt.Errorf("load department: %w", err)
		}
	}
	return nil
}

func (l *Loaders) loadOrgUnit(ctx context.Context, id *uuid.UUID) dataloader.Thunk[*domain.OrgUnit] {
	if id == nil {
		return func() (*domain.OrgUnit, error) { return nil, nil }
	}
	return l.OrgUnitByID.Load(ctx, *id)
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := found[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() T {
	var zero T
	return zero
}
