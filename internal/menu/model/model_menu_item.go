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

package model

// MenuItem is a single item on the restaurant menu. The store addresses it at
// menu/{category}/{id}; the id is assigned by the store on creation and the
// category never changes afterwards. Price, cost and stock travel as decimal
// strings so the UI boundary is free of float formatting ambiguity; anything
// comparing or summing them must parse first.
type MenuItem struct {
	Id       string `json:"id,omitempty"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Cost     string `json:"cost"`
	Stock    string `json:"stock"`
	// Option marks the item as orderable.
	Option bool `json:"option"`
	// Additional marks the item as having size-based pricing; Small, Medium
	// and Large are the incremental prices per tier and are only meaningful
	// when Additional is true.
	Additional bool   `json:"additional"`
	Small      string `json:"small,omitempty"`
	Medium     string `json:"medium,omitempty"`
	Large      string `json:"large,omitempty"`
}

// ItemRef addresses a menu item. Ids are only unique within their category
// partition, so an item is always addressed by the (category, id) pair,
// never by id alone.
type ItemRef struct {
	Category string `json:"category"`
	Id       string `json:"id"`
}

// Category is one entry of the fixed category vocabulary.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Categories is the fixed vocabulary of menu categories. This is
// configuration rather than logic, but the validator rejects anything
// outside it.
var Categories = []Category{
	{Value: "fries-and-sides", Label: "Fries & Sides"},
	{Value: "burgers-and-sandwiches", Label: "Burgers & Sandwiches"},
	{Value: "chickens", Label: "Chickens"},
	{Value: "salads-and-wraps", Label: "Salads & Wraps"},
	{Value: "desserts-and-treats", Label: "Desserts & Treats"},
	{Value: "beverages", Label: "Beverages"},
}

// IsValidCategory reports whether value is part of the category vocabulary.
func IsValidCategory(value string) bool {
	for _, c := range Categories {
		if c.Value == value {
			return true
		}
	}
	return false
}
