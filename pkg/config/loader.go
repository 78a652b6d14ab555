package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]any)

	defaultEnvOnce sync.Once
)

// Load parses environment variables into a configuration struct based on
// its `env` field tags. The first call loads the default .env file if one
// exists; a missing file is not an error. Each concrete struct type is
// parsed once per process and cached, so repeated calls are cheap and
// consistent.
//
// Example:
//
//	type PolicyConfig struct {
//		NicknameMinLen int `env:"USER_NICKNAME_MIN_LEN" envDefault:"3"`
//		PageSize       int `env:"USER_DEFAULT_PAGE_SIZE" envDefault:"10"`
//	}
//
//	cfg, err := config.Load[PolicyConfig]()
func Load[T any]() (T, error) {
	var zero T

	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := typeName[T]()

	cacheMu.RLock()
	if cached, ok := cache[key]; ok {
		cacheMu.RUnlock()
		return cached.(T), nil
	}
	cacheMu.RUnlock()

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return zero, fmt.Errorf("%w: %s: %v", ErrParseFailed, key, err)
	}

	cacheMu.Lock()
	cache[key] = cfg
	cacheMu.Unlock()

	return cfg, nil
}

// MustLoad is Load for configuration required at process start: it panics
// on failure so misconfiguration prevents startup instead of surfacing per
// request.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Reset clears the cache. Intended for tests that mutate the environment.
func Reset() {
	cacheMu.Lock()
	cache = make(map[string]any)
	cacheMu.Unlock()
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
