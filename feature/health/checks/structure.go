package checks

import (
	"context"
	"fmt"

	"datadiff/core/storage"

	"go.uber.org/zap"
)

// CheckStructure returns the required folders missing from the store.
func CheckStructure(ctx context.Context, store storage.Store) ([]string, error) {
	missing := []string{}
	for _, folder := range storage.RequiredFolders {
		found, err := store.HasFolder(ctx, folder)
		if err != nil {
			return nil, fmt.Errorf("failed to check folder %s: %w", folder, err)
		}
		if !found {
			missing = append(missing, folder)
		}
	}
	return missing, nil
}

// FixStructure creates the missing folders.
func FixStructure(ctx context.Context, store storage.Store, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		if err := store.MakeFolder(ctx, folder); err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}
