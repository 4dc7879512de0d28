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
	"sort"
	"sync"

	"github.com/go-savor/savor/internal/menu/model"
)

// SelectionService tracks which items are currently marked for bulk action.
// It is purely in-memory and never talks to the store.
type SelectionService struct {
	mu       sync.Mutex
	selected map[model.ItemRef]struct{}
}

func NewSelectionService() *SelectionService {
	return &SelectionService{
		selected: make(map[model.ItemRef]struct{}),
	}
}

// Toggle flips membership of ref: present → removed, absent → added.
// It reports whether ref is selected after the call.
func (s *SelectionService) Toggle(ref model.ItemRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selected[ref]; ok {
		delete(s.selected, ref)
		return false
	}
	s.selected[ref] = struct{}{}
	return true
}

// Selected returns the current selection in a stable order.
func (s *SelectionService) Selected() []model.ItemRef {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs := make([]model.ItemRef, 0, len(s.selected))
	for ref := range s.selected {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Category != refs[j].Category {
			return refs[i].Category < refs[j].Category
		}
		return refs[i].Id < refs[j].Id
	})
	return refs
}

// Remove drops the given refs from the selection, e.g. after they were
// deleted successfully.
func (s *SelectionService) Remove(refs ...model.ItemRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ref := range refs {
		delete(s.selected, ref)
	}
}

// Clear empties the selection.
func (s *SelectionService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = make(map[model.ItemRef]struct{})
}
