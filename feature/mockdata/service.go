package mockdata

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"datadiff/core/storage"

	"go.uber.org/zap"
)

// File is an encoded dataset ready to be sent.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	// Key is where the file was kept in the store.
	Key string
}

// Service generates datasets and their downloads.
type Service struct {
	generator *Generator
	store     storage.Store
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new mock data service.
func NewService(provider DataProvider, store storage.Store, logger *zap.Logger) *Service {
	return &Service{
		generator: NewGenerator(provider),
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate returns the rows described by req.
func (s *Service) Generate(req Request) (*Dataset, error) {
	return s.generator.Generate(req)
}

// Download generates req, encodes it as f and keeps a copy in the downloads folder.
func (s *Service) Download(ctx context.Context, req Request, f Format) (*File, error) {
	ds, err := s.generator.Generate(req)
	if err != nil {
		return nil, err
	}

	data, err := Encode(ds, f)
	if err != nil {
		return nil, err
	}

	file := &File{
		Name:        f.FileName(s.now()),
		ContentType: f.ContentType(),
		Data:        data,
	}

	key, err := s.store.Save(ctx, storage.FolderDownloads, file.Name, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", file.Name, err)
	}
	file.Key = key

	s.logger.Info("Mock data generated",
		zap.String("format", string(f)),
		zap.Int("rows", len(ds.Rows)),
		zap.String("key", key))

	return file, nil
}
