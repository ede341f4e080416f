// Package database connects to SQL databases and reads tables for comparison.
//
// It wraps GORM to configure MySQL or SQLite connections from the application's
// configuration.
//
// # Connect
//
// Connect opens and pings the configured database. The service runs without one; the
// database only backs the "compare tables" command and the health check.
//
// # Table Source
//
// LoadTable and LoadQuery scan a result set into a table.Grid whose first row is the
// column names, then run table.Normalize, so database rows compare exactly like rows
// read from a CSV or XLSX file. GetTableColumns inspects a table's schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	tbl, err := database.LoadTable(ctx, db, "customers")
package database
