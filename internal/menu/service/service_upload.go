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
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-savor/savor/pkg/id"
	"github.com/go-savor/savor/pkg/log"
	"github.com/minio/minio-go/v7"
)

const (
	imagePrefix  = "images"
	maxImageSize = 10 * 1024 * 1024 // 10MB
)

// ObjectStore is the write-only blob store the upload service needs.
type ObjectStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (minio.UploadInfo, error)
}

// UploadService writes menu item images as opaque blobs under the images/
// prefix. Nothing reads them back through this service.
type UploadService struct {
	store ObjectStore
}

func NewUploadService(store ObjectStore) *UploadService {
	return &UploadService{
		store: store,
	}
}

type UploadResponse struct {
	ObjectName   string    `json:"objectName"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"contentType"`
	UploadTime   time.Time `json:"uploadTime"`
}

// UploadImage stores a single image blob and returns where it landed.
func (us *UploadService) UploadImage(ctx context.Context, file *multipart.FileHeader) (*UploadResponse, error) {
	if file == nil {
		return nil, fmt.Errorf("file is required")
	}
	if file.Size == 0 {
		return nil, fmt.Errorf("file size cannot be zero")
	}
	if file.Size > maxImageSize {
		return nil, fmt.Errorf("file size exceeds maximum limit of %d bytes", maxImageSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := generateObjectName(file.Filename)

	info, err := us.store.Put(ctx, objectName, src, file.Size, contentType)
	if err != nil {
		log.Errorf("upload image %q: %v", file.Filename, err)
		return nil, fmt.Errorf("upload image: %w", err)
	}

	log.Infow("image uploaded",
		"object", info.Key,
		"size", file.Size,
	)

	return &UploadResponse{
		ObjectName:   objectName,
		OriginalName: file.Filename,
		Size:         file.Size,
		ContentType:  contentType,
		UploadTime:   time.Now(),
	}, nil
}

// generateObjectName builds a unique object name under the images/ prefix,
// keeping a sanitized version of the original filename for operators.
func generateObjectName(originalName string) string {
	ext := filepath.Ext(originalName)
	nameWithoutExt := sanitizeFileName(strings.TrimSuffix(originalName, ext))
	return fmt.Sprintf("%s/%s_%s%s", imagePrefix, nameWithoutExt, id.GetUUID(), ext)
}

func sanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}
