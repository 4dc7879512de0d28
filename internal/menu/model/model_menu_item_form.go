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

import (
	"fmt"
	"strings"
)

// FieldError describes one invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full set of field errors for one form submission.
// Validation never stops at the first problem so the UI can show every
// invalid field at once.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// MenuItemForm is the raw form submission for creating or editing a menu
// item. Booleans default to false when absent; size prices are optional and
// deliberately unvalidated even when Additional is set.
type MenuItemForm struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      string `json:"price"`
	Cost       string `json:"cost"`
	Stock      string `json:"stock"`
	Option     bool   `json:"option"`
	Additional bool   `json:"additional"`
	Small      string `json:"small"`
	Medium     string `json:"medium"`
	Large      string `json:"large"`
}

// Validate runs synchronously and collects every field error before any
// network call is made. Price, cost and stock are checked for presence only,
// not numeric well-formedness.
func (f *MenuItemForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if f.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Please enter a name"})
	}
	if f.Category == "" {
		errs = append(errs, FieldError{Field: "category", Message: "Please select a category"})
	} else if !IsValidCategory(f.Category) {
		errs = append(errs, FieldError{Field: "category", Message: "Unknown category"})
	}
	if f.Price == "" {
		errs = append(errs, FieldError{Field: "price", Message: "Please enter a price"})
	}
	if f.Cost == "" {
		errs = append(errs, FieldError{Field: "cost", Message: "Please enter a cost"})
	}
	if f.Stock == "" {
		errs = append(errs, FieldError{Field: "stock", Message: "Please enter a stock"})
	}

	return errs
}

// Item builds a MenuItem from a validated form. The id is left empty; the
// store assigns it on creation.
func (f *MenuItemForm) Item() MenuItem {
	return MenuItem{
		Category:   f.Category,
		Name:       f.Name,
		Price:      f.Price,
		Cost:       f.Cost,
		Stock:      f.Stock,
		Option:     f.Option,
		Additional: f.Additional,
		Small:      f.Small,
		Medium:     f.Medium,
		Large:      f.Large,
	}
}
