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
	httpx "github.com/go-savor/savor/pkg/http"
	"github.com/go-savor/savor/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// uploadRouter registers image upload routes
func (rt *Router) uploadRouter(r fiber.Router) {
	r.Post("/images", rt.uploadImage) // POST /images - upload menu item image
}

// uploadImage stores one multipart image in the object store
func (rt *Router) uploadImage(c *fiber.Ctx) error {
	uploadService := rt.Services.Upload

	file, err := c.FormFile("file")
	if err != nil {
		return httpx.WithRepErrMsg(c, httpx.BadRequest.Code, "file is required", c.Path())
	}

	response, err := uploadService.UploadImage(c.Context(), file)
	if err != nil {
		return httpx.WithRepErrMsg(c, httpx.Failed.Code, err.Error(), c.Path())
	}

	c.Locals(middleware.DETAIL, response)
	c.Locals(middleware.OPERATION, "upload image")
	return nil
}
