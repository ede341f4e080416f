// Package server builds the HTTP application and holds its configuration.
//
// # Configuration
//
// The Config struct defines the HTTP port, the request body limit and the allowed
// CORS origins.
//
// # Application
//
// New returns a Fiber app with the global middleware chain (RayID, request logging,
// CORS) and an error handler that maps failure kinds to HTTP statuses. Features
// register their routes on it through the loader.
//
// # Usage
//
//	app := server.New(cfg.Server, log)
//	_ = mgr.LoadAll(app)
//	_ = app.Listen(":" + cfg.Server.Port)
package server
