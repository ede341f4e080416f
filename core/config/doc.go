// Package config provides configuration management for datadiff.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, body limit, CORS origins (SERVER_PORT, ...)
//   - Storage: upload/download store, local directory or S3/MinIO bucket (STORAGE_DRIVER, ...)
//   - Log: Logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Database: optional MySQL/SQLite connection (DATABASE_HOST, ...)
//   - Compare: row matching thresholds and preview size (COMPARE_MATCH_THRESHOLD, ...)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
