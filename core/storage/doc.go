// Package storage provides the upload/download area used by the HTTP features.
//
// # Store
//
// Store is the backend-neutral interface. Two implementations exist:
//   - LocalStore keeps files under a directory (driver "local").
//   - ObjectStore keeps files in an S3 compatible bucket through the MinIO client
//     (driver "s3"), optionally under a prefix.
//
// Saved files get a UUID prefix in their key, so concurrent requests uploading files
// with the same name never overwrite each other. Client supplied names are reduced
// with SafeName before use.
//
// # Client Interface
//
// Client abstracts the MinIO client so ObjectStore can be tested with the mock in
// core/storage/mocks.
//
// # Usage
//
//	store, err := storage.NewStore(cfg.Storage)
//	key, err := store.Save(ctx, storage.FolderUploads, "source.csv", r, size)
package storage
