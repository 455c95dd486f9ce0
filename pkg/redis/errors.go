package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
	ErrFailedToLoadResources        = errors.New("failed to load resources from redis")
	ErrFailedToStoreResources       = errors.New("failed to store resources in redis")
	ErrFailedToSubscribe            = errors.New("failed to subscribe to reload channel")
)
