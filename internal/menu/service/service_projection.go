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
	"strconv"

	"github.com/go-savor/savor/internal/menu/model"
)

// Sort keys accepted by the listing projection.
const (
	SortByCategory = "category"
	SortByStock    = "stock"
	SortByOption   = "option"
	SortByNone     = "none"
)

// SortItems reorders a listing for display without touching the store. The
// sort is stable: ties keep the encounter order of the input. Unrecognized
// keys leave the input order as-is.
func SortItems(items []model.MenuItem, key string) []model.MenuItem {
	sorted := make([]model.MenuItem, len(items))
	copy(sorted, items)

	switch key {
	case SortByCategory:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Category < sorted[j].Category
		})
	case SortByStock:
		sort.SliceStable(sorted, func(i, j int) bool {
			return stockValue(sorted[i].Stock) > stockValue(sorted[j].Stock)
		})
	case SortByOption:
		// orderable items first
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Option && !sorted[j].Option
		})
	}

	return sorted
}

// stockValue parses a stock string for the descending stock sort. Malformed
// values parse as 0, which places them at the end of the listing.
func stockValue(stock string) int {
	n, err := strconv.Atoi(stock)
	if err != nil {
		return 0
	}
	return n
}
