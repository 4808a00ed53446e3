package app

import (
	"context"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/scene-bridge/src/bridge/gateway"
	"github.com/uber/scene-bridge/src/bridge/handler"
	"github.com/uber/scene-bridge/src/bridge/internal/core"
	"github.com/uber/scene-bridge/src/bridge/internal/fs"
	"github.com/uber/scene-bridge/src/bridge/internal/jsonrpcfx"
	"github.com/uber/scene-bridge/src/bridge/internal/logfilewriter"
	resourcerewriter "github.com/uber/scene-bridge/src/bridge/internal/resource-rewriter"
	"github.com/uber/scene-bridge/src/bridge/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the scene-bridge application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	logfilewriter.Module,
	resourcerewriter.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Prefix: "scene_bridge",
			Tags: map[string]string{
				"service": "scene-bridge",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)
