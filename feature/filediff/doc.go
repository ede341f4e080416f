// Package filediff exposes the file comparison engine over HTTP.
//
// Uploaded files are written to the shared store, decoded by the format registry,
// compared, and removed again once the request is answered.
//
// # HTTP Endpoints
//
//   - POST /api/file-difference/upload : Compares sourceFile with targetFile.
//   - POST /api/file-difference/preview : Returns the first rows of file.
//   - GET /api/file-difference/health : Liveness of the feature.
package filediff
