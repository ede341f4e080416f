// Package health reports whether datadiff can serve requests.
//
// # Checks Provided
//
//   - Storage: The store is reachable and holds the uploads and downloads folders.
//   - Database: The optional database answers a ping. Its tables are listed.
//
// # HTTP Endpoints
//
//   - GET /api/health : Runs all checks.
//   - GET /api/health/storage : Runs the storage layout check (supports ?fix=true).
package health
