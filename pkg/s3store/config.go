package s3store

// Config describes the bucket holding section files.
type Config struct {
	Bucket         string `env:"S3_BUCKET,required"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`                           // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"` // For S3-compatible services like MinIO
	Prefix         string `env:"S3_PREFIX" envDefault:"resources"`       // Key prefix of the section files, without trailing slash
}
