package checks

import (
	"context"
	"sort"

	"datadiff/core/database"

	"gorm.io/gorm"
)

// Database check states.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusDisabled = "disabled"
)

// DatabaseReport describes the optional database connection.
type DatabaseReport struct {
	Status string `json:"status"`
	Driver string `json:"driver,omitempty"`
	// Tables lists the tables available to table comparisons.
	Tables []string `json:"tables,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// CheckDatabase pings db and lists its tables. A nil db reports disabled.
func CheckDatabase(ctx context.Context, db *gorm.DB) *DatabaseReport {
	if db == nil {
		return &DatabaseReport{Status: StatusDisabled}
	}

	report := &DatabaseReport{Status: StatusOK, Driver: db.Dialector.Name()}
	if err := database.Ping(ctx, db); err != nil {
		report.Status = StatusError
		report.Error = err.Error()
		return report
	}

	tables, err := db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		report.Status = StatusError
		report.Error = err.Error()
		return report
	}
	sort.Strings(tables)
	report.Tables = tables
	return report
}
