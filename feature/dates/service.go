package dates

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"datadiff/core/storage"

	"go.uber.org/zap"
)

// Service rewrites uploaded CSV files and keeps the results in the store.
type Service struct {
	store  storage.Store
	logger *zap.Logger
}

// NewService creates a new date converter service.
func NewService(store storage.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Update parses date, rewrites the CSV and saves the output to the downloads folder.
func (s *Service) Update(ctx context.Context, name string, r io.Reader, date string) (*Result, error) {
	target, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	result, err := Rewrite(name, r, target)
	if err != nil {
		return nil, err
	}

	key, err := s.store.Save(ctx, storage.FolderDownloads, result.Name, bytes.NewReader(result.Data), int64(len(result.Data)))
	if err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", result.Name, err)
	}

	s.logger.Info("Dates updated",
		zap.String("file", name),
		zap.Int("updated", result.Updated),
		zap.String("key", key))

	return result, nil
}
