package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"datadiff/core/storage"
	"datadiff/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSafeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data.csv", "data.csv"},
		{"My Report (v2).csv", "My_Report_v2.csv"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\file.xlsx`, "file.xlsx"},
		{"Café Résumé.xml", "Cafe_Resume.xml"},
		{".hidden", "hidden"},
		{"???", "file"},
		{"", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.SafeName(tt.in))
		})
	}
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := storage.NewLocalStore(dir)

	t.Run("SaveOpenRemove", func(t *testing.T) {
		key, err := store.Save(ctx, storage.FolderUploads, "a b.csv", strings.NewReader("x,y\n"), 4)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "uploads/"))
		assert.True(t, strings.HasSuffix(key, "_a_b.csv"))

		rc, err := store.Open(ctx, key)
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, rc.Close())
		require.NoError(t, err)
		assert.Equal(t, "x,y\n", string(data))

		require.NoError(t, store.Remove(ctx, key))
		_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
		assert.True(t, os.IsNotExist(err))
		assert.NoError(t, store.Remove(ctx, key))
	})

	t.Run("DistinctKeys", func(t *testing.T) {
		k1, err := store.Save(ctx, storage.FolderUploads, "same.csv", strings.NewReader("1"), 1)
		require.NoError(t, err)
		k2, err := store.Save(ctx, storage.FolderUploads, "same.csv", strings.NewReader("2"), 1)
		require.NoError(t, err)
		assert.NotEqual(t, k1, k2)
	})

	t.Run("RejectsEscapingKeys", func(t *testing.T) {
		for _, key := range []string{"", "../secret", "/etc/passwd", "a/../../b", `a\b`} {
			_, err := store.Open(ctx, key)
			assert.Error(t, err, key)
		}
	})

	t.Run("Folders", func(t *testing.T) {
		ok, err := store.HasFolder(ctx, "reports")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, store.MakeFolder(ctx, "reports"))

		ok, err = store.HasFolder(ctx, "reports")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
		assert.Error(t, storage.NewLocalStore(filepath.Join(dir, "missing")).Ping(ctx))
	})
}

func TestObjectStore(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveUsesPrefix", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "bucket", "team/")

		client.On("PutObject", mock.Anything, "bucket",
			mock.MatchedBy(func(name string) bool {
				return strings.HasPrefix(name, "team/uploads/") && strings.HasSuffix(name, "_data.csv")
			}),
			mock.Anything, int64(3), mock.Anything,
		).Return(minio.UploadInfo{}, nil)

		key, err := store.Save(ctx, storage.FolderUploads, "data.csv", strings.NewReader("abc"), 3)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "uploads/"))
		client.AssertExpectations(t)
	})

	t.Run("SaveError", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "bucket", "")
		client.On("PutObject", mock.Anything, "bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		_, err := store.Save(ctx, storage.FolderUploads, "data.csv", strings.NewReader("abc"), 3)
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("Open", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "bucket", "")
		client.On("GetObject", mock.Anything, "bucket", "uploads/k.csv", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("hello"))), nil)

		rc, err := store.Open(ctx, "uploads/k.csv")
		require.NoError(t, err)
		data, _ := io.ReadAll(rc)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("Remove", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "bucket", "p")
		client.On("RemoveObject", mock.Anything, "bucket", "p/uploads/k.csv", mock.Anything).Return(nil)

		assert.NoError(t, store.Remove(ctx, "uploads/k.csv"))
		client.AssertExpectations(t)
	})

	t.Run("HasFolder", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "bucket", "")
		client.On("ListObjects", mock.Anything, "bucket", minio.ListObjectsOptions{Prefix: "uploads/", MaxKeys: 1}).
			Return(mocks.Objects(minio.ObjectInfo{Key: "uploads/a.csv"}))
		client.On("ListObjects", mock.Anything, "bucket", minio.ListObjectsOptions{Prefix: "downloads/", MaxKeys: 1}).
			Return(mocks.Objects())
		client.On("ListObjects", mock.Anything, "bucket", minio.ListObjectsOptions{Prefix: "broken/", MaxKeys: 1}).
			Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("boom")}))

		ok, err := store.HasFolder(ctx, "uploads")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.HasFolder(ctx, "downloads")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = store.HasFolder(ctx, "broken")
		assert.ErrorContains(t, err, "boom")
	})

	t.Run("MakeFolder", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "bucket", "")
		client.On("PutObject", mock.Anything, "bucket", "downloads/", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		assert.NoError(t, store.MakeFolder(ctx, "downloads"))
		client.AssertExpectations(t)
	})

	t.Run("Ping", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "bucket", "")
		client.On("BucketExists", mock.Anything, "bucket").Return(false, nil).Once()
		client.On("BucketExists", mock.Anything, "bucket").Return(true, nil).Once()

		assert.ErrorContains(t, store.Ping(ctx), "does not exist")
		assert.NoError(t, store.Ping(ctx))
	})
}
