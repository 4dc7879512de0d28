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
	"fmt"

	"github.com/go-savor/savor/internal/menu/model"
	"github.com/go-savor/savor/internal/menu/repo"
	"github.com/go-savor/savor/pkg/log"
	"github.com/go-savor/savor/pkg/parallel"
)

// MenuService gates all menu writes behind the form validator and fans bulk
// deletes out concurrently. It holds no state of its own; every operation is
// a single-shot call against the store.
type MenuService struct {
	menuRepo repo.IMenuRepository
}

func NewMenuService(menuRepo repo.IMenuRepository) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
	}
}

// ListMenuItems performs a fresh full read of the menu tree and applies the
// requested in-memory sort. Reads are never cached or coalesced.
func (s *MenuService) ListMenuItems(ctx context.Context, sortKey string) ([]model.MenuItem, error) {
	items, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		log.Errorf("list menu items: %v", err)
		return nil, err
	}
	return SortItems(items, sortKey), nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, form *model.MenuItemForm) (model.MenuItem, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return model.MenuItem{}, errs
	}

	created, err := s.menuRepo.Create(ctx, form.Item())
	if err != nil {
		log.Errorf("create menu item %q: %v", form.Name, err)
		return model.MenuItem{}, err
	}
	return created, nil
}

// UpdateMenuItem edits the item at (category, id) in place. The category is
// part of the store address: a form that tries to move the item to another
// category is rejected up front, otherwise the write would land on the old
// path with the new category embedded in the body.
func (s *MenuService) UpdateMenuItem(ctx context.Context, category, id string, form *model.MenuItemForm) error {
	errs := form.Validate()
	if form.Category != "" && form.Category != category {
		errs = append(errs, model.FieldError{
			Field:   "category",
			Message: "Category cannot be changed",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	item := form.Item()
	item.Id = id
	item.Category = category

	if err := s.menuRepo.Update(ctx, item); err != nil {
		log.Errorf("update menu item %s/%s: %v", category, id, err)
		return err
	}
	return nil
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, category, id string) error {
	if err := s.menuRepo.Delete(ctx, category, id); err != nil {
		log.Errorf("delete menu item %s/%s: %v", category, id, err)
		return err
	}
	return nil
}

// DeleteFailure is one failed delete within a bulk operation.
type DeleteFailure struct {
	Ref    model.ItemRef `json:"ref"`
	Reason string        `json:"reason"`
}

// BulkDeleteError aggregates the failures of a bulk delete. The deletes that
// succeeded are not rolled back; there are no transaction semantics across
// multiple deletes.
type BulkDeleteError struct {
	Failures []DeleteFailure
}

func (e *BulkDeleteError) Error() string {
	return fmt.Sprintf("bulk delete: %d item(s) failed", len(e.Failures))
}

// BulkDelete issues one delete per ref concurrently and waits for every one
// of them to settle. It returns the refs that were deleted successfully and,
// when any delete failed, a BulkDeleteError naming each failed ref.
func (s *MenuService) BulkDelete(ctx context.Context, refs []model.ItemRef) ([]model.ItemRef, error) {
	results := make([]error, len(refs))

	g := parallel.Settle(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func(ctx context.Context) (err error) {
			// a panicking delete must count as a failed ref, not a success
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic: %v", r)
				}
				results[i] = err
			}()
			return s.menuRepo.Delete(ctx, ref.Category, ref.Id)
		})
	}
	_ = g.Wait()

	succeeded := make([]model.ItemRef, 0, len(refs))
	var failures []DeleteFailure
	for i, ref := range refs {
		if results[i] != nil {
			failures = append(failures, DeleteFailure{Ref: ref, Reason: results[i].Error()})
			continue
		}
		succeeded = append(succeeded, ref)
	}

	if len(failures) > 0 {
		log.Warnw("bulk delete partially failed",
			"requested", len(refs),
			"failed", len(failures),
		)
		return succeeded, &BulkDeleteError{Failures: failures}
	}
	return succeeded, nil
}
