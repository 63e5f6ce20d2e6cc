package bootstrap

import (
	"soundlight-quotes/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads .env when present (local development), then the
// environment. A missing .env is not an error.
func LoadConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.LoadConfig()
}
