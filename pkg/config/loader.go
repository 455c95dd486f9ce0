package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the outcome of parsing one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	entries         sync.Map // reflect.Type => *entry
	defaultEnvFiles sync.Once
)

// Load fills v from environment variables using `env` struct tags.
// The first call reads a .env file from the working directory if one exists.
// Each configuration type is parsed once; later calls copy the cached value,
// so every component sees the same settings. A failed parse is cached too.
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvFiles.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	raw, _ := entries.LoadOrStore(reflect.TypeFor[T](), &entry{})
	e := raw.(*entry)
	e.once.Do(func() {
		var fresh T
		if err := env.Parse(&fresh); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = fresh
	})

	if e.err != nil {
		return e.err
	}
	cached, ok := e.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cached
	return nil
}

// MustLoad is Load that panics on error, for settings the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given env files into the process environment.
// Variables that are already set win over file values, and earlier files win over later ones.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every parsed configuration. Intended for tests.
func ResetCache() {
	entries.Range(func(key, _ any) bool {
		entries.Delete(key)
		return true
	})
}
