// Package mockdata generates fake tabular datasets from a field schema.
//
// Every value comes from a DataProvider, so tests can swap the gofakeit backed
// default for a deterministic stub.
//
// # Field Types
//
// text, number, date, boolean, name, email, phone, address and select. Fields marked
// unique are regenerated up to 10 times when a value repeats.
//
// # HTTP Endpoints
//
//   - POST /api/test-generator/generate : Returns the rows as JSON.
//   - POST /api/test-generator/download/csv : CSV attachment.
//   - POST /api/test-generator/download/json : JSON attachment.
//   - POST /api/test-generator/download/excel : XLSX attachment.
package mockdata
