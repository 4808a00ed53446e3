package handler

import (
	controller "github.com/uber/scene-bridge/src/bridge/controller"
	bridgedaemon "github.com/uber/scene-bridge/src/bridge/controller/bridge-daemon"
	handler "github.com/uber/scene-bridge/src/bridge/handler/bridge-daemon"
	"github.com/uber/scene-bridge/src/bridge/repository/connection"
	"go.uber.org/fx"
)

// Module provides the bridge daemon server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(connection.New),
	fx.Provide(handler.New),
	fx.Invoke(outputDaemonInfo),
	fx.Invoke(func(h handler.Handler) {}),
	fx.Invoke(func(c bridgedaemon.Controller) {}),
)
