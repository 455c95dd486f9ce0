// Package config loads typed configuration structs from the environment.
//
// Structs describe their variables with github.com/caarlos0/env/v11 tags.
// A .env file in the working directory is read on first use through
// github.com/joho/godotenv; LoadEnv reads explicit files such as
// ".env.local". Parsed values are cached per type for the life of the process:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile and can be matched with errors.Is.
package config
