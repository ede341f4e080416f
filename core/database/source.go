package database

import (
	"context"
	"fmt"

	"datadiff/core/failure"
	"datadiff/core/table"

	"gorm.io/gorm"
)

// LoadTable reads every row of tableName into a canonical table.
// Columns keep the table's declaration order.
func LoadTable(ctx context.Context, db *gorm.DB, tableName string) (*table.Table, error) {
	columns, err := GetTableColumns(db.WithContext(ctx), tableName)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, failure.New(failure.KindInvalidInput, "table %q does not exist", tableName)
	}

	return LoadQuery(ctx, db, "SELECT * FROM "+QuoteIdent(db, tableName))
}

// LoadQuery runs a read query and turns its result set into a canonical table.
// The result column names become the header row.
func LoadQuery(ctx context.Context, db *gorm.DB, query string, args ...any) (*table.Table, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	header := make([]any, len(names))
	for i, n := range names {
		header[i] = n
	}
	grid := table.Grid{header}

	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		grid = append(grid, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return table.Normalize(grid)
}
