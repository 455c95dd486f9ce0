package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrFailedToLoadResources  = errors.New("failed to load resources from mongo")
	ErrInvalidDocument        = errors.New("invalid resource document")
	ErrFailedToStoreResources = errors.New("failed to store resources in mongo")
)
