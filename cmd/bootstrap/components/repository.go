package components

import (
	"time"

	repo_impl "soundlight-quotes/internal/infra/repository"
	"soundlight-quotes/internal/pkg/config"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDraftTTL,
		repo_impl.NewDraftRepository,
		repo_impl.NewBookingRepository,
		repo_impl.NewBookingReadStore,
	),
)

// NewDraftTTL lifts the configured draft lifetime out of the config
// struct so the repository constructor stays config-agnostic.
func NewDraftTTL(cfg config.Config) time.Duration {
	return cfg.Draft.TTL
}
