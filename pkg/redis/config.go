package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the database. It should be in the format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`                      // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`                     // RetryInterval is the interval between retry attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`                   // ConnectTimeout is the timeout for connecting to the database.

	KeyPrefix     string `env:"REDIS_RESX_PREFIX" envDefault:"resx"`          // KeyPrefix namespaces resource hashes: {prefix}:{lang}:{section}.
	Channel       string `env:"REDIS_RESX_CHANNEL" envDefault:"resx:reload"`  // Channel carries reload notifications.
	ScanBatchSize int    `env:"REDIS_SCAN_BATCH_SIZE" envDefault:"1000"`      // ScanBatchSize is the COUNT hint passed to SCAN.
}
