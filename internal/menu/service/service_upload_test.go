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
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	putErr error

	objectName  string
	contentType string
	size        int64
	body        []byte
}

func (f *fakeObjectStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objectName = objectName
	f.contentType = contentType
	f.size = size
	f.body = body
	return minio.UploadInfo{Key: objectName, Size: size}, nil
}

// fileHeader builds a real multipart.FileHeader the way fiber's FormFile would.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	if contentType != "" {
		h["Content-Type"] = []string{contentType}
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadImage(t *testing.T) {
	store := &fakeObjectStore{}
	svc := NewUploadService(store)

	content := []byte("png-bytes")
	resp, err := svc.UploadImage(context.Background(), fileHeader(t, "Spicy Wings.png", "image/png", content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.ObjectName, "images/Spicy_Wings_"))
	assert.True(t, strings.HasSuffix(resp.ObjectName, ".png"))
	assert.Equal(t, "Spicy Wings.png", resp.OriginalName)
	assert.Equal(t, int64(len(content)), resp.Size)
	assert.Equal(t, "image/png", resp.ContentType)

	assert.Equal(t, resp.ObjectName, store.objectName)
	assert.Equal(t, content, store.body)
}

func TestUploadImageDefaultsContentType(t *testing.T) {
	store := &fakeObjectStore{}
	svc := NewUploadService(store)

	resp, err := svc.UploadImage(context.Background(), fileHeader(t, "blob", "", []byte{0x1}))
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", resp.ContentType)
}

func TestUploadImageRejectsNilFile(t *testing.T) {
	svc := NewUploadService(&fakeObjectStore{})

	_, err := svc.UploadImage(context.Background(), nil)
	require.Error(t, err)
}

func TestUploadImagePropagatesStoreError(t *testing.T) {
	store := &fakeObjectStore{putErr: errors.New("bucket gone")}
	svc := NewUploadService(store)

	_, err := svc.UploadImage(context.Background(), fileHeader(t, "a.png", "image/png", []byte{0x1}))
	require.ErrorContains(t, err, "bucket gone")
}

func TestGenerateObjectNameSanitizes(t *testing.T) {
	name := generateObjectName("../etc/pass wd.png")
	assert.True(t, strings.HasPrefix(name, "images/"))
	assert.NotContains(t, strings.TrimPrefix(name, "images/"), "/")
	assert.NotContains(t, name, " ")
	assert.True(t, strings.HasSuffix(name, ".png"))
}
