package storage

const (
	// DriverLocal keeps files in a directory on disk.
	DriverLocal = "local"
	// DriverS3 keeps files in an S3 compatible bucket.
	DriverS3 = "s3"
)

// Config holds configuration for the upload/download store.
type Config struct {
	// Driver selects the backend (local, s3).
	Driver string `mapstructure:"driver" default:"local"`
	// Dir is the root directory of the local backend.
	Dir string `mapstructure:"dir" default:"./data"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to store files in.
	Bucket string `mapstructure:"bucket" default:"datadiff"`
	// Prefix is prepended to every object name in the bucket.
	Prefix string `mapstructure:"prefix" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
