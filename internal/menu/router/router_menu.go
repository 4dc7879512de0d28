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

package router

import (
	"errors"

	"github.com/go-savor/savor/internal/menu/model"
	"github.com/go-savor/savor/internal/menu/service"
	httpx "github.com/go-savor/savor/pkg/http"
	"github.com/go-savor/savor/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// menuRouter registers menu item and selection routes
func (rt *Router) menuRouter(r fiber.Router) {
	menuGroup := r.Group("/menu")
	{
		menuGroup.Get("/", rt.listMenuItems)          // GET /menu?sort=category|stock|option|none
		menuGroup.Post("/", rt.createMenuItem)        // POST /menu
		menuGroup.Post("/bulk-delete", rt.bulkDelete) // POST /menu/bulk-delete

		menuGroup.Post("/selection/toggle", rt.toggleSelection) // POST /menu/selection/toggle
		menuGroup.Get("/selection", rt.getSelection)            // GET /menu/selection
		menuGroup.Delete("/selection", rt.deleteSelection)      // DELETE /menu/selection

		menuGroup.Put("/:category/:id", rt.updateMenuItem)    // PUT /menu/:category/:id
		menuGroup.Delete("/:category/:id", rt.deleteMenuItem) // DELETE /menu/:category/:id
	}
}

// listMenuItems lists every menu item across all categories
func (rt *Router) listMenuItems(c *fiber.Ctx) error {
	menuService := rt.Services.Menu

	sortKey := c.Query("sort", service.SortByNone)

	items, err := menuService.ListMenuItems(c.Context(), sortKey)
	if err != nil {
		return httpx.WithRepErrMsg(c, httpx.BackendRequestFailed.Code, err.Error(), c.Path())
	}

	c.Locals(middleware.DETAIL, items)
	c.Locals(middleware.OPERATION, "list menu items")
	return nil
}

// createMenuItem creates a menu item from the submitted form
func (rt *Router) createMenuItem(c *fiber.Ctx) error {
	menuService := rt.Services.Menu

	var form model.MenuItemForm
	if err := c.BodyParser(&form); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, "invalid request body", c.Path())
	}

	created, err := menuService.CreateMenuItem(c.Context(), &form)
	if err != nil {
		return rt.menuError(c, err)
	}

	c.Locals(middleware.DETAIL, created)
	c.Locals(middleware.OPERATION, "create menu item")
	return nil
}

// updateMenuItem edits the item addressed by the path
func (rt *Router) updateMenuItem(c *fiber.Ctx) error {
	menuService := rt.Services.Menu

	category := c.Params("category")
	id := c.Params("id")

	var form model.MenuItemForm
	if err := c.BodyParser(&form); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, "invalid request body", c.Path())
	}

	if err := menuService.UpdateMenuItem(c.Context(), category, id, &form); err != nil {
		return rt.menuError(c, err)
	}

	c.Locals(middleware.OPERATION, "update menu item")
	return nil
}

// deleteMenuItem deletes the item addressed by the path
func (rt *Router) deleteMenuItem(c *fiber.Ctx) error {
	menuService := rt.Services.Menu

	category := c.Params("category")
	id := c.Params("id")

	if err := menuService.DeleteMenuItem(c.Context(), category, id); err != nil {
		return httpx.WithRepErrMsg(c, httpx.BackendRequestFailed.Code, err.Error(), c.Path())
	}

	rt.Services.Selection.Remove(model.ItemRef{Category: category, Id: id})

	c.Locals(middleware.OPERATION, "delete menu item")
	return nil
}

// toggleSelection flips selection membership for one (category, id) pair
func (rt *Router) toggleSelection(c *fiber.Ctx) error {
	var ref model.ItemRef
	if err := c.BodyParser(&ref); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, "invalid request body", c.Path())
	}
	if ref.Category == "" || ref.Id == "" {
		return httpx.WithRepErrMsg(c, httpx.BadRequest.Code, "category and id are required", c.Path())
	}

	selected := rt.Services.Selection.Toggle(ref)

	c.Locals(middleware.DETAIL, fiber.Map{"ref": ref, "selected": selected})
	c.Locals(middleware.OPERATION, "toggle selection")
	return nil
}

// getSelection returns the currently selected pairs
func (rt *Router) getSelection(c *fiber.Ctx) error {
	c.Locals(middleware.DETAIL, rt.Services.Selection.Selected())
	c.Locals(middleware.OPERATION, "get selection")
	return nil
}

// deleteSelection bulk-deletes the current selection. Pairs that deleted
// successfully leave the selection; failed pairs stay selected.
func (rt *Router) deleteSelection(c *fiber.Ctx) error {
	menuService := rt.Services.Menu

	refs := rt.Services.Selection.Selected()
	succeeded, err := menuService.BulkDelete(c.Context(), refs)
	rt.Services.Selection.Remove(succeeded...)
	if err != nil {
		return rt.menuError(c, err)
	}

	c.Locals(middleware.DETAIL, fiber.Map{"deleted": succeeded})
	c.Locals(middleware.OPERATION, "delete selection")
	return nil
}

// bulkDelete deletes an explicit list of (category, id) pairs
func (rt *Router) bulkDelete(c *fiber.Ctx) error {
	menuService := rt.Services.Menu

	var req struct {
		Refs []model.ItemRef `json:"refs"`
	}
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, "invalid request body", c.Path())
	}

	succeeded, err := menuService.BulkDelete(c.Context(), req.Refs)
	rt.Services.Selection.Remove(succeeded...)
	if err != nil {
		return rt.menuError(c, err)
	}

	c.Locals(middleware.DETAIL, fiber.Map{"deleted": succeeded})
	c.Locals(middleware.OPERATION, "bulk delete menu items")
	return nil
}

// listCategories returns the fixed category vocabulary for the item form
func (rt *Router) listCategories(c *fiber.Ctx) error {
	c.Locals(middleware.DETAIL, model.Categories)
	c.Locals(middleware.OPERATION, "list categories")
	return nil
}

// menuError maps service errors onto the response code table.
func (rt *Router) menuError(c *fiber.Ctx, err error) error {
	var verrs model.ValidationErrors
	if errors.As(err, &verrs) {
		return httpx.WithRepErrDetail(c, httpx.ValidationFailed.Code, verrs, c.Path())
	}

	var bulkErr *service.BulkDeleteError
	if errors.As(err, &bulkErr) {
		return httpx.WithRepErrDetail(c, httpx.BackendRequestFailed.Code, bulkErr.Failures, c.Path())
	}

	return httpx.WithRepErrMsg(c, httpx.BackendRequestFailed.Code, err.Error(), c.Path())
}
