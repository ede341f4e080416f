package filediff

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"datadiff/core/diff"
	"datadiff/core/failure"
	"datadiff/core/formats"
	"datadiff/core/storage"
	"datadiff/core/table"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Upload is a file received from a client.
type Upload struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// FromFileHeader wraps a multipart file.
func FromFileHeader(fh *multipart.FileHeader) Upload {
	return Upload{
		Name: fh.Filename,
		Size: fh.Size,
		Open: func() (io.ReadCloser, error) { return fh.Open() },
	}
}

// FromBytes wraps in-memory content.
func FromBytes(name string, data []byte) Upload {
	return Upload{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}

// Preview is the head of a decoded file.
type Preview struct {
	FileType string      `json:"fileType"`
	Columns  []string    `json:"columns"`
	Rows     []table.Row `json:"rows"`
}

// Service compares and previews uploaded files.
type Service struct {
	store    storage.Store
	registry *formats.Registry
	opts     diff.Options
	logger   *zap.Logger
}

// NewService creates a new file difference service.
func NewService(store storage.Store, registry *formats.Registry, opts diff.Options, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		registry: registry,
		opts:     opts,
		logger:   logger,
	}
}

// Compare checks both uploads, stores them, decodes source then target, and
// returns their difference report. Stored copies are removed before returning.
func (s *Service) Compare(ctx context.Context, source, target Upload) (*diff.Report, error) {
	srcFormat, err := s.registry.Lookup(source.Name)
	if err != nil {
		return nil, err
	}
	tgtFormat, err := s.registry.Lookup(target.Name)
	if err != nil {
		return nil, err
	}
	if srcFormat.Name() != tgtFormat.Name() {
		return nil, failure.New(failure.KindUnsupportedFileType,
			"both files must be of the same type, got %s and %s", srcFormat.Name(), tgtFormat.Name())
	}

	keys := make([]string, 2)
	g, gctx := errgroup.WithContext(ctx)
	for i, up := range []Upload{source, target} {
		g.Go(func() error {
			key, err := s.save(gctx, up)
			keys[i] = key
			return err
		})
	}
	defer s.cleanup(keys)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	src, err := s.load(ctx, keys[0], source.Name)
	if err != nil {
		return nil, err
	}
	tgt, err := s.load(ctx, keys[1], target.Name)
	if err != nil {
		return nil, err
	}

	report, err := diff.Compare(src.Table, tgt.Table, srcFormat.Name(), s.opts)
	if err != nil {
		return nil, err
	}
	if srcFormat.Kind() == table.Tree {
		report.OriginalSourceLines = src.Lines
	}

	s.logger.Info("Files compared",
		zap.String("source", source.Name),
		zap.String("target", target.Name),
		zap.Int("rows", report.Summary.TotalRows),
		zap.Int("differing", report.Summary.DifferingRows))

	return report, nil
}

// Preview decodes an upload and returns its first rows.
func (s *Service) Preview(ctx context.Context, up Upload) (*Preview, error) {
	if _, err := s.registry.Lookup(up.Name); err != nil {
		return nil, err
	}

	key, err := s.save(ctx, up)
	defer s.cleanup([]string{key})
	if err != nil {
		return nil, err
	}

	src, err := s.load(ctx, key, up.Name)
	if err != nil {
		return nil, err
	}

	head := src.Table.Head(s.opts.PreviewRows)
	return &Preview{FileType: src.Format, Columns: head.Columns, Rows: head.Rows}, nil
}

// CompareFiles compares two files on the local disk without going through the store.
func (s *Service) CompareFiles(sourcePath, targetPath string) (*diff.Report, error) {
	if formats.Extension(sourcePath) != formats.Extension(targetPath) {
		return nil, failure.New(failure.KindUnsupportedFileType,
			"both files must be of the same type, got %s and %s",
			formats.Extension(sourcePath), formats.Extension(targetPath))
	}

	src, err := s.registry.LoadFile(sourcePath)
	if err != nil {
		return nil, err
	}
	tgt, err := s.registry.LoadFile(targetPath)
	if err != nil {
		return nil, err
	}

	report, err := diff.Compare(src.Table, tgt.Table, src.Format, s.opts)
	if err != nil {
		return nil, err
	}
	if src.Table.Kind == table.Tree {
		report.OriginalSourceLines = src.Lines
	}
	return report, nil
}

func (s *Service) save(ctx context.Context, up Upload) (string, error) {
	rc, err := up.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %s: %w", up.Name, err)
	}
	defer rc.Close()

	key, err := s.store.Save(ctx, storage.FolderUploads, up.Name, rc, up.Size)
	if err != nil {
		return "", fmt.Errorf("failed to save upload %s: %w", up.Name, err)
	}
	return key, nil
}

func (s *Service) load(ctx context.Context, key, name string) (*formats.Source, error) {
	rc, err := s.store.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to open stored upload %s: %w", name, err)
	}
	defer rc.Close()

	return s.registry.Load(name, rc)
}

// cleanup removes stored uploads. It runs after the request context may be gone.
func (s *Service) cleanup(keys []string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.store.Remove(context.Background(), key); err != nil {
			s.logger.Warn("Failed to remove upload", zap.String("key", key), zap.Error(err))
		}
	}
}
