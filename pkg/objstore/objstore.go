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

// Package objstore wraps a MinIO/S3-compatible object store for opaque blob
// writes.
package objstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Conf holds the object store connection configuration.
type Conf struct {
	Endpoint        string
	AccessKeyId     string
	SecretAccessKey string
	Bucket          string
	UseTLS          bool
}

type Store struct {
	conf   Conf
	client *minio.Client
}

func New(conf Conf) (*Store, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKeyId, conf.SecretAccessKey, ""),
		Secure: conf.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("objstore: new client: %w", err)
	}
	return &Store{
		conf:   conf,
		client: client,
	}, nil
}

// Put writes a single opaque blob at objectName. There is no read-back
// contract; the object is write-only as far as this service is concerned.
func (s *Store) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (minio.UploadInfo, error) {
	exists, err := s.client.BucketExists(ctx, s.conf.Bucket)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("objstore: check bucket %s: %w", s.conf.Bucket, err)
	}
	if !exists {
		return minio.UploadInfo{}, fmt.Errorf("objstore: bucket %s does not exist", s.conf.Bucket)
	}

	info, err := s.client.PutObject(ctx, s.conf.Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("objstore: put %s: %w", objectName, err)
	}
	return info, nil
}
