package pg

import (
	"errors"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")
	ErrFailedToLoadResources    = errors.New("failed to load resources from postgres")
	ErrFailedToStoreResources   = errors.New("failed to store resources in postgres")
	ErrFailedToListen           = errors.New("failed to listen for resource changes")
	ErrSchemaNotMigrated        = errors.New("resources table does not exist, run migrations first")
)
