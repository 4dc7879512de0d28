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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() MenuItemForm {
	return MenuItemForm{
		Name:     "Crispy Wings",
		Category: "chickens",
		Price:    "10",
		Cost:     "5",
		Stock:    "3",
	}
}

func TestValidateValidForm(t *testing.T) {
	f := validForm()
	assert.Empty(t, f.Validate())
}

func TestValidateEmptyNameIsTheOnlyError(t *testing.T) {
	f := validForm()
	f.Name = ""

	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "Please enter a name", errs[0].Message)
}

func TestValidateCollectsAllErrorsAtOnce(t *testing.T) {
	f := MenuItemForm{}

	errs := f.Validate()
	require.Len(t, errs, 5)

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "category", "price", "cost", "stock"}, fields)
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	f := validForm()
	f.Category = "pizzas"

	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "category", errs[0].Field)
}

func TestValidateSizePricesNeverChecked(t *testing.T) {
	// size tiers stay unvalidated even when additional pricing is on
	f := validForm()
	f.Additional = true
	f.Small = ""
	f.Medium = "not-a-number"

	assert.Empty(t, f.Validate())
}

func TestItemLeavesIdEmpty(t *testing.T) {
	f := validForm()
	f.Option = true

	item := f.Item()
	assert.Empty(t, item.Id)
	assert.Equal(t, "chickens", item.Category)
	assert.Equal(t, "Crispy Wings", item.Name)
	assert.True(t, item.Option)
	assert.False(t, item.Additional)
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(c.Value))
	}
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("Chickens"))
}
