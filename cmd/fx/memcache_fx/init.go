package memcache_fx

import (
	"context"

	"darwinplanner/internal/config"
	"darwinplanner/internal/infra"
	"darwinplanner/pkg/logger"
	mem "darwinplanner/pkg/memcache"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideSessionStore)

// provideSessionStore picks the in-process store or Redis from
// sessions.store.
func provideSessionStore(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (mem.SessionStore, error) {
	if cfg.Sessions.Store != "redis" {
		log.Info("using in-memory conversation store", "ttl", cfg.Sessions.TTL.String())
		return mem.NewMemorySessions(cfg.Sessions.TTL), nil
	}

	client, err := infra.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))

	log.Info("using redis conversation store", "address", cfg.Redis.Address, "ttl", cfg.Sessions.TTL.String())
	return mem.NewRedisSessions(client, cfg.Sessions.TTL), nil
}
