package config

import (
	"context"
	"sync"

	"draftorder-gateway/internal/common/enum"
	"draftorder-gateway/internal/pkg/shopify"
)

// Config holds application-level configuration loaded from environment
// variables. Upstream Shopify settings are deliberately not part of this
// struct: they are resolved per request through shopify.ResolveConfig so a
// missing credential surfaces as a request-time configuration error instead
// of preventing boot.
type Config struct {
	AppEnv     enum.EnvEnum `env:"APP_ENV" envDefault:"development"`
	AppPort    int          `env:"APP_PORT" envDefault:"8080"`
	AppBaseURL string       `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
}

// SetupServerDto contains dependencies for server setup
type SetupServerDto struct {
	Ctx     *context.Context
	Cancel  context.CancelFunc
	Wg      *sync.WaitGroup
	Env     *Config
	Shopify *shopify.Client
}
