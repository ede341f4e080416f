package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps files in a bucket, under an optional prefix.
// Folders are zero-byte objects whose name ends with a slash.
type ObjectStore struct {
	client Client
	bucket string
	prefix string
}

// NewObjectStore returns a store backed by client.
func NewObjectStore(client Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *ObjectStore) objectName(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

func (s *ObjectStore) folderName(folder string) string {
	return s.objectName(strings.TrimSuffix(folder, "/")) + "/"
}

// Save implements Store.
func (s *ObjectStore) Save(ctx context.Context, folder, name string, r io.Reader, size int64) (string, error) {
	key := newKey(folder, name)
	if err := validKey(key); err != nil {
		return "", err
	}

	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(key), r, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// Open implements Store.
func (s *ObjectStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", key, err)
	}
	return obj, nil
}

// Remove implements Store.
func (s *ObjectStore) Remove(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, s.objectName(key), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// HasFolder implements Store. A folder exists when any object lives under it.
func (s *ObjectStore) HasFolder(ctx context.Context, folder string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    s.folderName(folder),
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list folder %s: %w", folder, obj.Err)
		}
		return true, nil
	}
	return false, nil
}

// MakeFolder implements Store.
func (s *ObjectStore) MakeFolder(ctx context.Context, folder string) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.folderName(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to create folder %s: %w", folder, err)
	}
	return nil
}

// Ping implements Store.
func (s *ObjectStore) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// Location implements Store.
func (s *ObjectStore) Location() string {
	if s.prefix == "" {
		return "s3://" + s.bucket
	}
	return "s3://" + s.bucket + "/" + s.prefix
}
