// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - requestlog: Logs every request with its RayID, status and duration through zap.
//
// RayID must be registered before requestlog so that request logs carry the ID.
package middleware
