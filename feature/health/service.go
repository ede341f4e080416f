package health

import (
	"context"

	"datadiff/core/storage"
	"datadiff/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StorageReport describes the store.
type StorageReport struct {
	Status   string   `json:"status"`
	Location string   `json:"location"`
	Missing  []string `json:"missing"`
	Error    string   `json:"error,omitempty"`
}

// Checks holds the result of each check.
type Checks struct {
	Storage  *StorageReport         `json:"storage"`
	Database *checks.DatabaseReport `json:"database"`
}

// Report combines every check.
type Report struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Checks  Checks `json:"checks"`
}

// Healthy reports whether every enabled check passed.
func (r *Report) Healthy() bool {
	return r.Status == checks.StatusOK
}

// Service handles health checks.
type Service struct {
	store  storage.Store
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new health service. db may be nil.
func NewService(store storage.Store, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		db:     db,
		logger: logger,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.store)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.store, s.logger, missing)
}

// CheckStorage pings the store and checks its layout.
func (s *Service) CheckStorage(ctx context.Context) *StorageReport {
	report := &StorageReport{Status: checks.StatusOK, Location: s.store.Location(), Missing: []string{}}

	if err := s.store.Ping(ctx); err != nil {
		report.Status = checks.StatusError
		report.Error = err.Error()
		return report
	}

	missing, err := s.CheckStructure(ctx)
	if err != nil {
		report.Status = checks.StatusError
		report.Error = err.Error()
		return report
	}
	if len(missing) > 0 {
		report.Status = checks.StatusError
		report.Missing = missing
	}
	return report
}

// CheckDatabase reports on the optional database.
func (s *Service) CheckDatabase(ctx context.Context) *checks.DatabaseReport {
	return checks.CheckDatabase(ctx, s.db)
}

// Run performs every check.
func (s *Service) Run(ctx context.Context) *Report {
	storageReport := s.CheckStorage(ctx)
	dbReport := s.CheckDatabase(ctx)

	report := &Report{
		Status:  checks.StatusOK,
		Message: "datadiff is running",
		Checks:  Checks{Storage: storageReport, Database: dbReport},
	}
	if storageReport.Status == checks.StatusError || dbReport.Status == checks.StatusError {
		report.Status = "degraded"
		report.Message = "one or more checks failed"
	}
	return report
}
