package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"darwinplanner/cmd/fx/account_fx"
	"darwinplanner/cmd/fx/catalog_fx"
	"darwinplanner/cmd/fx/config_fx"
	"darwinplanner/cmd/fx/controllers_fx"
	"darwinplanner/cmd/fx/conversation_fx"
	"darwinplanner/cmd/fx/db_fx"
	"darwinplanner/cmd/fx/memcache_fx"
	"darwinplanner/cmd/fx/prompt_fx"
	"darwinplanner/cmd/fx/travel_plan_fx"
	"darwinplanner/internal/api"
	"darwinplanner/internal/config"
	"darwinplanner/internal/infra"
	"darwinplanner/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		travel_plan_fx.Module,
		prompt_fx.Module,
		conversation_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartTracing),
		fx.Invoke(StartServer),
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.SugaredLogger.Desugar()}
		}),
	)

	app.Run()
}

func StartTracing(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) error {
	shutdown, err := infra.InitTracing(context.Background(), *cfg, log)
	if err != nil {
		return err
	}
	lc.Append(fx.StopHook(shutdown))
	return nil
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", "addr", srv.Addr, "environment", cfg.App.Environment)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
