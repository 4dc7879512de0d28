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

package repo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-savor/savor/internal/menu/model"
	"github.com/go-savor/savor/pkg/rtdb"
)

const menuRoot = "menu"

// ErrNotFound reports a write aimed at a record that does not exist.
var ErrNotFound = errors.New("record not found")

// BackendError is any failure of a read/write/delete against the menu store.
// It always carries the operation and the store path it targeted; the repo
// never swallows causes and never retries on its own.
type BackendError struct {
	Op   string
	Path string
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("menu store: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

type IMenuRepository interface {
	// ListAll reads the entire menu subtree. An absent or empty subtree is a
	// valid state and yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]model.MenuItem, error)
	// Create persists item under menu/{category} and returns it with the
	// store-assigned id. The caller cannot supply an id.
	Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error)
	// Update merges item's fields into the record at menu/{category}/{id}.
	// Fields left empty with omitempty semantics stay untouched. Updating an
	// absent record fails with ErrNotFound; it never creates one.
	Update(ctx context.Context, item model.MenuItem) error
	// Delete removes menu/{category}/{id}. Deleting an absent pair is a
	// no-op, not an error.
	Delete(ctx context.Context, category, id string) error
}

// menuRecord is the stored document shape at menu/{category}/{id}. The id
// lives only in the path; the category is redundantly stored in both the
// path and the body.
type menuRecord struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Cost       string `json:"cost"`
	Price      string `json:"price"`
	Stock      string `json:"stock"`
	Option     bool   `json:"option"`
	Additional bool   `json:"additional"`
	Small      string `json:"small,omitempty"`
	Medium     string `json:"medium,omitempty"`
	Large      string `json:"large,omitempty"`
}

type MenuRepo struct {
	db *rtdb.Client
}

func NewMenuRepo(db *rtdb.Client) IMenuRepository {
	return &MenuRepo{
		db: db,
	}
}

// ListAll flattens the category→item nesting into a single slice. Category
// and item keys are walked in sorted order so repeated listings are stable.
func (r *MenuRepo) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	var tree map[string]map[string]menuRecord
	if err := r.db.Get(ctx, menuRoot, &tree); err != nil {
		return nil, &BackendError{Op: "list", Path: menuRoot, Err: err}
	}

	items := make([]model.MenuItem, 0)
	for _, category := range sortedKeys(tree) {
		records := tree[category]
		for _, id := range sortedKeys(records) {
			rec := records[id]
			if rec.Name == "" {
				return nil, &BackendError{
					Op:   "list",
					Path: itemPath(category, id),
					Err:  errors.New("malformed record: missing name"),
				}
			}
			items = append(items, toItem(category, id, rec))
		}
	}
	return items, nil
}

func (r *MenuRepo) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	path := categoryPath(item.Category)
	id, err := r.db.Push(ctx, path, toRecord(item))
	if err != nil {
		return model.MenuItem{}, &BackendError{Op: "create", Path: path, Err: err}
	}
	item.Id = id
	return item, nil
}

func (r *MenuRepo) Update(ctx context.Context, item model.MenuItem) error {
	if item.Id == "" {
		return &BackendError{
			Op:   "update",
			Path: categoryPath(item.Category),
			Err:  errors.New("item id is required"),
		}
	}
	path := itemPath(item.Category, item.Id)

	// a PATCH against the store upserts, so absence is checked first: update
	// must never create a record at an address that does not exist
	var existing menuRecord
	if err := r.db.Get(ctx, path, &existing); err != nil {
		return &BackendError{Op: "update", Path: path, Err: err}
	}
	if existing.Name == "" {
		return &BackendError{Op: "update", Path: path, Err: ErrNotFound}
	}

	if err := r.db.Patch(ctx, path, toRecord(item)); err != nil {
		return &BackendError{Op: "update", Path: path, Err: err}
	}
	return nil
}

func (r *MenuRepo) Delete(ctx context.Context, category, id string) error {
	path := itemPath(category, id)
	if err := r.db.Delete(ctx, path); err != nil {
		return &BackendError{Op: "delete", Path: path, Err: err}
	}
	return nil
}

func categoryPath(category string) string {
	return fmt.Sprintf("%s/%s", menuRoot, category)
}

func itemPath(category, id string) string {
	return fmt.Sprintf("%s/%s/%s", menuRoot, category, id)
}

func toRecord(item model.MenuItem) menuRecord {
	return menuRecord{
		Name:       item.Name,
		Category:   item.Category,
		Cost:       item.Cost,
		Price:      item.Price,
		Stock:      item.Stock,
		Option:     item.Option,
		Additional: item.Additional,
		Small:      item.Small,
		Medium:     item.Medium,
		Large:      item.Large,
	}
}

// toItem takes the id from the item key and the category from the parent
// key; the path is authoritative over the record body.
func toItem(category, id string, rec menuRecord) model.MenuItem {
	return model.MenuItem{
		Id:         id,
		Category:   category,
		Name:       rec.Name,
		Price:      rec.Price,
		Cost:       rec.Cost,
		Stock:      rec.Stock,
		Option:     rec.Option,
		Additional: rec.Additional,
		Small:      rec.Small,
		Medium:     rec.Medium,
		Large:      rec.Large,
	}
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
