// Copyright 2025 Savor Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-savor/savor/internal/menu/model"
	"github.com/go-savor/savor/internal/menu/repo"
	"github.com/go-savor/savor/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.MustInit(log.SetDefaults())
	m.Run()
}

// fakeMenuRepo is an in-memory IMenuRepository double.
type fakeMenuRepo struct {
	mu      sync.Mutex
	items   []model.MenuItem
	nextId  int
	deleted []model.ItemRef

	listErr   error
	createErr error
	updateErr error
	// per-ref delete failures
	deleteErr map[model.ItemRef]error
	// refs whose delete panics instead of returning
	panicRefs map[model.ItemRef]bool

	lastUpdate model.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		deleteErr: make(map[model.ItemRef]error),
		panicRefs: make(map[model.ItemRef]bool),
	}
}

func (f *fakeMenuRepo) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.MenuItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeMenuRepo) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return model.MenuItem{}, f.createErr
	}
	f.nextId++
	item.Id = string(rune('a' + f.nextId - 1))
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeMenuRepo) Update(ctx context.Context, item model.MenuItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.lastUpdate = item
	return nil
}

func (f *fakeMenuRepo) Delete(ctx context.Context, category, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref := model.ItemRef{Category: category, Id: id}
	if f.panicRefs[ref] {
		panic("store client gone")
	}
	if err := f.deleteErr[ref]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, ref)
	return nil
}

var _ repo.IMenuRepository = (*fakeMenuRepo)(nil)

func TestCreateMenuItemRejectsInvalidForm(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	svc := NewMenuService(menuRepo)

	form := &model.MenuItemForm{Category: "chickens", Price: "10", Cost: "5", Stock: "3"}
	_, err := svc.CreateMenuItem(context.Background(), form)

	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "name", verrs[0].Field)

	// nothing must reach the backend on validation failure
	assert.Empty(t, menuRepo.items)
}

func TestCreateMenuItemAssignsStoreId(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo())

	form := &model.MenuItemForm{Name: "Cola", Category: "beverages", Price: "3", Cost: "1", Stock: "50"}
	created, err := svc.CreateMenuItem(context.Background(), form)
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "beverages", created.Category)
}

func TestUpdateMenuItemRejectsCategoryChange(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	svc := NewMenuService(menuRepo)

	form := &model.MenuItemForm{Name: "Cola", Category: "beverages", Price: "3", Cost: "1", Stock: "50"}
	err := svc.UpdateMenuItem(context.Background(), "chickens", "a", form)

	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "category", verrs[0].Field)
	assert.Empty(t, menuRepo.lastUpdate.Id)
}

func TestUpdateMenuItemAddressesByPath(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	svc := NewMenuService(menuRepo)

	form := &model.MenuItemForm{Name: "Spicy Wings", Category: "chickens", Price: "10", Cost: "5", Stock: "3"}
	require.NoError(t, svc.UpdateMenuItem(context.Background(), "chickens", "k1", form))

	assert.Equal(t, "k1", menuRepo.lastUpdate.Id)
	assert.Equal(t, "chickens", menuRepo.lastUpdate.Category)
	assert.Equal(t, "Spicy Wings", menuRepo.lastUpdate.Name)
}

func TestListMenuItemsPropagatesBackendError(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	menuRepo.listErr = &repo.BackendError{Op: "list", Path: "menu", Err: errors.New("boom")}
	svc := NewMenuService(menuRepo)

	_, err := svc.ListMenuItems(context.Background(), SortByNone)
	var backendErr *repo.BackendError
	require.ErrorAs(t, err, &backendErr)
}

func TestBulkDeleteSettlesAllAndReportsFailures(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	refB := model.ItemRef{Category: "chickens", Id: "b"}
	menuRepo.deleteErr[refB] = &repo.BackendError{Op: "delete", Path: "menu/chickens/b", Err: errors.New("permission denied")}
	svc := NewMenuService(menuRepo)

	refs := []model.ItemRef{
		{Category: "chickens", Id: "a"},
		refB,
		{Category: "chickens", Id: "c"},
	}

	succeeded, err := svc.BulkDelete(context.Background(), refs)

	// a and c must still be deleted, b is the sole reported failure
	assert.ElementsMatch(t, []model.ItemRef{
		{Category: "chickens", Id: "a"},
		{Category: "chickens", Id: "c"},
	}, succeeded)
	assert.ElementsMatch(t, succeeded, menuRepo.deleted)

	var bulkErr *BulkDeleteError
	require.ErrorAs(t, err, &bulkErr)
	require.Len(t, bulkErr.Failures, 1)
	assert.Equal(t, refB, bulkErr.Failures[0].Ref)
	assert.Contains(t, bulkErr.Failures[0].Reason, "permission denied")
}

func TestBulkDeletePanickingDeleteCountsAsFailure(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	refB := model.ItemRef{Category: "chickens", Id: "b"}
	menuRepo.panicRefs[refB] = true
	svc := NewMenuService(menuRepo)

	refs := []model.ItemRef{
		{Category: "chickens", Id: "a"},
		refB,
		{Category: "chickens", Id: "c"},
	}

	succeeded, err := svc.BulkDelete(context.Background(), refs)

	assert.ElementsMatch(t, []model.ItemRef{
		{Category: "chickens", Id: "a"},
		{Category: "chickens", Id: "c"},
	}, succeeded)

	var bulkErr *BulkDeleteError
	require.ErrorAs(t, err, &bulkErr)
	require.Len(t, bulkErr.Failures, 1)
	assert.Equal(t, refB, bulkErr.Failures[0].Ref)
	assert.Contains(t, bulkErr.Failures[0].Reason, "panic")
}

func TestBulkDeleteAllSucceed(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	svc := NewMenuService(menuRepo)

	refs := []model.ItemRef{
		{Category: "beverages", Id: "a"},
		{Category: "desserts-and-treats", Id: "b"},
	}

	succeeded, err := svc.BulkDelete(context.Background(), refs)
	require.NoError(t, err)
	assert.ElementsMatch(t, refs, succeeded)
}

func TestBulkDeleteEmptySelection(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepo())

	succeeded, err := svc.BulkDelete(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, succeeded)
}
