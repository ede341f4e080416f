package checks

import (
	"context"
	"errors"
	"testing"

	"datadiff/core/storage"
	"datadiff/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStructure_Local(t *testing.T) {
	ctx := context.Background()
	store := storage.NewLocalStore(t.TempDir())

	missing, err := CheckStructure(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, storage.RequiredFolders, missing)

	require.NoError(t, FixStructure(ctx, store, zap.NewNop(), missing))

	missing, err = CheckStructure(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestStructure_Object(t *testing.T) {
	ctx := context.Background()

	t.Run("ReportsMissing", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "test-bucket", "")

		client.On("ListObjects", mock.Anything, "test-bucket", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
			return o.Prefix == "uploads/"
		})).Return(mocks.Objects(minio.ObjectInfo{Key: "uploads/"}))
		client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		missing, err := CheckStructure(ctx, store)
		require.NoError(t, err)
		assert.Equal(t, []string{storage.FolderDownloads}, missing)
	})

	t.Run("ListError", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "test-bucket", "")
		client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("access denied")}))

		_, err := CheckStructure(ctx, store)
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("FixCreatesMarkers", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "test-bucket", "")
		client.On("PutObject", mock.Anything, "test-bucket", "downloads/", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		require.NoError(t, FixStructure(ctx, store, zap.NewNop(), []string{storage.FolderDownloads}))
		client.AssertExpectations(t)
	})

	t.Run("FixError", func(t *testing.T) {
		client := new(mocks.Client)
		store := storage.NewObjectStore(client, "test-bucket", "")
		client.On("PutObject", mock.Anything, "test-bucket", "uploads/", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("read only"))

		err := FixStructure(ctx, store, zap.NewNop(), []string{storage.FolderUploads})
		assert.ErrorContains(t, err, "read only")
	})
}
