package s3store

import "errors"

var (
	ErrInvalidConfig          = errors.New("invalid s3 configuration")
	ErrFailedToLoadConfig     = errors.New("failed to load aws configuration")
	ErrFailedToLoadResources  = errors.New("failed to load resources from s3")
	ErrFailedToStoreResources = errors.New("failed to store resources in s3")
	ErrBucketNotFound         = errors.New("bucket not found")
	ErrAccessDenied           = errors.New("access denied")
	ErrServiceUnavailable     = errors.New("s3 service unavailable")
	ErrOperationTimeout       = errors.New("s3 operation timed out")
	ErrOperationCanceled      = errors.New("s3 operation canceled")
	ErrHealthcheckFailed      = errors.New("healthcheck failed, bucket is not available")
)
